package handlers

import (
	"log/slog"
	"sync"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// domainValidations are the binding tags used by the request DTOs.
var domainValidations = map[string]validator.Func{
	"claimcategory": func(fl validator.FieldLevel) bool {
		return domain.IsClaimCategory(fl.Field().String())
	},
	"attendancestatus": func(fl validator.FieldLevel) bool {
		return domain.AttendanceStatus(fl.Field().String()).IsValid()
	},
	"leavetype": func(fl validator.FieldLevel) bool {
		return domain.LeaveType(fl.Field().String()).IsValid()
	},
}

// RegisterValidators adds the domain binding tags to gin's validator engine.
// Safe to call more than once.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Error("Gin validator engine is not go-playground/validator; domain binding tags are unavailable")
			return
		}
		for tag, fn := range domainValidations {
			if err := v.RegisterValidation(tag, fn); err != nil {
				slog.Error("Failed to register binding tag", slog.String("tag", tag), slog.String("error", err.Error()))
			}
		}
	})
}
