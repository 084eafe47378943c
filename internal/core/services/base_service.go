package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/site_claims_app/internal/apperrors"
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	now func() time.Time
}

// Option configures the shared parts of a service.
type Option func(*BaseService)

// WithClock replaces time.Now, mostly for tests that need a fixed "today".
func WithClock(now func() time.Time) Option {
	return func(b *BaseService) {
		if now != nil {
			b.now = now
		}
	}
}

func newBaseService(opts []Option) BaseService {
	b := BaseService{now: time.Now}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Now returns the current time in UTC.
func (s *BaseService) Now() time.Time {
	if s.now == nil {
		return time.Now().UTC()
	}
	return s.now().UTC()
}

// CurrentDate returns the current calendar date.
func (s *BaseService) CurrentDate() time.Time {
	return domain.DateOf(s.Now())
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireAdmin returns apperrors.ErrForbidden unless the identity is an admin.
func (s *BaseService) RequireAdmin(ctx context.Context, identity domain.Identity, action string) error {
	if identity.IsAdmin() {
		return nil
	}
	s.LogInfo(ctx, "Admin action refused",
		slog.String("user_id", identity.ID),
		slog.String("action", action))
	return apperrors.ErrForbidden
}

// invalid wraps apperrors.ErrValidation with a field-specific message.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}
