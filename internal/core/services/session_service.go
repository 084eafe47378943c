package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/site_claims_app/internal/apperrors"
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/site_claims_app/internal/core/ports/services"
	"github.com/SscSPs/site_claims_app/internal/utils"
	"github.com/google/uuid"
)

// sessionService keeps one identity per login session in the key-value
// store, under portsrepo.SessionKey(sessionID).
type sessionService struct {
	BaseService
	userRepo portsrepo.UserReader
	kv       portsrepo.KeyValueStore
}

// NewSessionService creates a new session service.
func NewSessionService(userRepo portsrepo.UserReader, kv portsrepo.KeyValueStore, opts ...Option) portssvc.SessionSvcFacade {
	return &sessionService{
		BaseService: newBaseService(opts),
		userRepo:    userRepo,
		kv:          kv,
	}
}

func (s *sessionService) Login(ctx context.Context, userID, password string) (*domain.Session, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Login failed: user lookup", slog.String("user_id", userID))
			return nil, fmt.Errorf("failed to look up user for login: %w", err)
		}
		user = nil
	}

	// Unknown users still pay for a password check.
	if !utils.PasswordMatches(user, password) {
		reason := "wrong password"
		if user == nil {
			reason = "unknown user"
		}
		s.LogInfo(ctx, "Login failed: "+reason, slog.String("user_id", userID))
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		s.LogInfo(ctx, "Login failed: user inactive", slog.String("user_id", userID))
		return nil, apperrors.ErrInvalidCredentials
	}

	session := domain.Session{ID: uuid.NewString(), Identity: user.Identity()}
	raw, err := json.Marshal(session.Identity)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session identity: %w", err)
	}
	if err := s.kv.Put(ctx, portsrepo.SessionKey(session.ID), raw); err != nil {
		s.LogError(ctx, err, "Failed to persist session", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.LogInfo(ctx, "User logged in",
		slog.String("user_id", session.Identity.ID),
		slog.String("role", string(session.Identity.Role)),
		slog.String("session_id", session.ID))
	return &session, nil
}

func (s *sessionService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.kv.Delete(ctx, portsrepo.SessionKey(sessionID)); err != nil {
		s.LogError(ctx, err, "Failed to end session", slog.String("session_id", sessionID))
		return fmt.Errorf("failed to end session: %w", err)
	}
	s.LogInfo(ctx, "User logged out", slog.String("session_id", sessionID))
	return nil
}

func (s *sessionService) Current(ctx context.Context, sessionID string) (*domain.Identity, error) {
	if sessionID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	raw, err := s.kv.Get(ctx, portsrepo.SessionKey(sessionID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		s.LogError(ctx, err, "Stored session is corrupt", slog.String("session_id", sessionID))
		return nil, apperrors.ErrUnauthorized
	}
	return &identity, nil
}

func (s *sessionService) Resolve(ctx context.Context, sessionID, userID string) (*domain.Identity, error) {
	stored, err := s.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if stored.ID != userID {
		s.LogInfo(ctx, "Session belongs to another user",
			slog.String("session_id", sessionID), slog.String("user_id", userID))
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve user %s: %w", userID, err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrUnauthorized
	}
	identity := user.Identity()
	return &identity, nil
}

func (s *sessionService) IsAdmin(identity domain.Identity) bool {
	return identity.IsAdmin()
}
