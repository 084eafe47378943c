package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/site_claims_app/internal/core/ports/services"
	"github.com/SscSPs/site_claims_app/internal/dto"
	"github.com/SscSPs/site_claims_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	sessionService portssvc.SessionSvcFacade
	tokenService   portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(ss portssvc.SessionSvcFacade, ts portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{
		sessionService: ss,
		tokenService:   ts,
	}
}

// registerAuthRoutes sets up the public login route.
func registerAuthRoutes(r *gin.Engine, h *AuthHandler, loginLimiter *limiter.Limiter) {
	login := []gin.HandlerFunc{h.Login}
	if loginLimiter != nil {
		login = append([]gin.HandlerFunc{middleware.RateLimit(loginLimiter)}, login...)
	}

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", login...)
	}
}

// registerSessionRoutes exposes the caller's own identity and ends the
// caller's session. rg must sit behind AuthMiddleware.
func registerSessionRoutes(rg *gin.RouterGroup, h *AuthHandler) {
	rg.GET("/me", getMe)
	rg.POST("/auth/logout", h.Logout)
}

// Login godoc
// @Summary User login
// @Description Checks the user ID and password of an active user, stores the session and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	session, err := h.sessionService.Login(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		respondError(c, err, "log in")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), *session)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToIdentityResponse(session.Identity),
	})
}

// Logout godoc
// @Summary User logout
// @Description Ends the session named by the bearer token. The token is rejected from then on.
// @Tags auth
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No active session"})
		return
	}
	if err := h.sessionService.Logout(c.Request.Context(), sessionID); err != nil {
		respondError(c, err, "log out")
		return
	}
	c.Status(http.StatusNoContent)
}

// getMe godoc
// @Summary Current user
// @Description Returns the identity the bearer token resolves to.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.IdentityResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func getMe(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToIdentityResponse(identity))
}
