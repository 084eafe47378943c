package mapping

import (
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:            d.ID,
		Name:              d.Name,
		Email:             d.Email,
		Role:              string(d.Role),
		Department:        d.Department,
		Location:          d.Location,
		IsActive:          d.IsActive,
		LeaveBalanceTotal: d.LeaveBalanceTotal,
		LeaveTaken:        d.LeaveTaken,
		PasswordHash:      d.PasswordHash,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		ID:                m.UserID,
		Name:              m.Name,
		Email:             m.Email,
		Role:              domain.Role(m.Role),
		Department:        m.Department,
		Location:          m.Location,
		IsActive:          m.IsActive,
		LeaveBalanceTotal: m.LeaveBalanceTotal,
		LeaveTaken:        m.LeaveTaken,
		PasswordHash:      m.PasswordHash,
	}
}
