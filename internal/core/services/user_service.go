package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/site_claims_app/internal/apperrors"
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/site_claims_app/internal/core/ports/services"
	"github.com/SscSPs/site_claims_app/internal/core/query"
	"github.com/SscSPs/site_claims_app/internal/dto"
	"github.com/SscSPs/site_claims_app/internal/utils"
)

type userService struct {
	BaseService
	userRepo    portsrepo.UserRepositoryFacade
	balanceRepo portsrepo.LeaveBalanceRepositoryFacade
}

// NewUserService creates a user service. Creating a user also opens their leave balance.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, balanceRepo portsrepo.LeaveBalanceRepositoryFacade, opts ...Option) portssvc.UserSvcFacade {
	return &userService{
		BaseService: newBaseService(opts),
		userRepo:    userRepo,
		balanceRepo: balanceRepo,
	}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	balance, err := s.balanceRepo.FindLeaveBalance(ctx, userID)
	switch {
	case err == nil:
		applyLeaveFigures(user, *balance)
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to load leave balance", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load leave balance of %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, criteria query.UserCriteria) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	balances, err := s.balanceRepo.ListLeaveBalances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list leave balances")
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}
	byUser := make(map[string]domain.LeaveBalance, len(balances))
	for _, b := range balances {
		byUser[b.UserID] = b
	}
	for i := range users {
		if b, ok := byUser[users[i].ID]; ok {
			applyLeaveFigures(&users[i], b)
		}
	}
	return query.Filter(users, criteria.Predicates()...), nil
}

// applyLeaveFigures copies the balance row, which approvals and balance edits
// keep current, onto the user. Users without a row keep their opening figures.
func applyLeaveFigures(user *domain.User, balance domain.LeaveBalance) {
	user.LeaveBalanceTotal = balance.Total
	user.LeaveTaken = balance.Used
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	id := strings.TrimSpace(req.ID)
	switch {
	case id == "":
		return nil, invalid("id is required")
	case strings.TrimSpace(req.Name) == "":
		return nil, invalid("name is required")
	case strings.TrimSpace(req.Email) == "":
		return nil, invalid("email is required")
	case req.Password == "":
		return nil, invalid("password is required")
	case !req.Role.IsValid():
		return nil, invalid("unknown role %q", req.Role)
	case strings.TrimSpace(req.Department) == "":
		return nil, invalid("department is required")
	case strings.TrimSpace(req.Location) == "":
		return nil, invalid("location is required")
	case req.LeaveBalance == nil || *req.LeaveBalance < 0:
		return nil, invalid("leaveBalance must be zero or more")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		ID:                id,
		Name:              strings.TrimSpace(req.Name),
		Email:             strings.TrimSpace(req.Email),
		Role:              req.Role,
		Department:        strings.TrimSpace(req.Department),
		Location:          strings.TrimSpace(req.Location),
		IsActive:          true,
		LeaveBalanceTotal: *req.LeaveBalance,
		PasswordHash:      hash,
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user", slog.String("user_id", id))
		}
		return nil, fmt.Errorf("failed to create user %s: %w", id, err)
	}

	balance := domain.LeaveBalance{UserID: id, Total: user.LeaveBalanceTotal, Used: user.LeaveTaken}
	if err := s.balanceRepo.SaveLeaveBalance(ctx, balance); err != nil {
		s.LogError(ctx, err, "Failed to open leave balance", slog.String("user_id", id))
		return nil, fmt.Errorf("failed to open leave balance for %s: %w", id, err)
	}

	s.LogInfo(ctx, "User created", slog.String("new_user_id", id), slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, invalid("name cannot be empty")
		}
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		if strings.TrimSpace(*req.Email) == "" {
			return nil, invalid("email cannot be empty")
		}
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.Department != nil {
		user.Department = strings.TrimSpace(*req.Department)
	}
	if req.Location != nil {
		user.Location = strings.TrimSpace(*req.Location)
	}

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) SetUserActive(ctx context.Context, userID string, active bool) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.IsActive = active
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to change user status", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to change status of user %s: %w", userID, err)
	}
	s.LogInfo(ctx, "User status changed", slog.String("target_user_id", userID), slog.Bool("active", active))
	return user, nil
}

func (s *userService) ResetPassword(ctx context.Context, userID, password string) error {
	if password == "" {
		return invalid("password is required")
	}
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to reset password", slog.String("user_id", userID))
		return fmt.Errorf("failed to reset password for %s: %w", userID, err)
	}
	return nil
}

// DeleteUser does not cascade: claims, attendance, leave and the balance row stay.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	return nil
}
