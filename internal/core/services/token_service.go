package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	portssvc "github.com/SscSPs/site_claims_app/internal/core/ports/services"
	"github.com/SscSPs/site_claims_app/internal/platform/config"
	"github.com/SscSPs/site_claims_app/internal/utils"
)

// tokenService issues HS256 access tokens whose subject is the user ID and
// whose jti is the session ID.
type tokenService struct {
	BaseService
	secret string
	expiry time.Duration
	issuer string
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, opts ...Option) portssvc.TokenSvcFacade {
	return &tokenService{
		BaseService: newBaseService(opts),
		secret:      cfg.JWTSecret,
		expiry:      cfg.JWTExpiryDuration,
		issuer:      cfg.JWTIssuer,
	}
}

// GenerateAccessToken creates a new JWT access token for the given session.
// Token lifetimes run on the wall clock, not the service clock.
func (s *tokenService) GenerateAccessToken(ctx context.Context, session domain.Session) (string, time.Time, error) {
	issuedAt := time.Now()
	accessToken, err := utils.IssueAccessToken(session, s.secret, issuedAt, s.expiry, s.issuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", session.Identity.ID))
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, issuedAt.Add(s.expiry), nil
}
