package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
	"github.com/SscSPs/site_claims_app/internal/core/services"
	"github.com/SscSPs/site_claims_app/internal/dto"
	"github.com/SscSPs/site_claims_app/internal/handlers"
	"github.com/SscSPs/site_claims_app/internal/platform/config"
	"github.com/SscSPs/site_claims_app/internal/repositories/kv"
	"github.com/SscSPs/site_claims_app/internal/repositories/memory"
	"github.com/SscSPs/site_claims_app/internal/seed"
	"github.com/SscSPs/site_claims_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
	"github.com/xuri/excelize/v2"
)

// APITestSuite drives the full router against seeded in-memory storage
// with the service clock fixed at 2025-05-22 10:15 UTC.
type APITestSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret string
	repos     portsrepo.RepositoryProvider
}

func (suite *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	ctx := context.Background()
	repos, err := memory.NewRepositoryProvider(ctx, kv.NewMemoryStore())
	suite.Require().NoError(err)
	suite.Require().NoError(seed.Apply(ctx, repos, slog.New(slog.NewTextHandler(io.Discard, nil))))
	suite.repos = repos

	cfg := &config.Config{
		IsProduction:      true,
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "site-claims-test",
	}
	now := time.Date(2025, 5, 22, 10, 15, 0, 0, time.UTC)
	container := services.NewServiceContainer(cfg, repos, services.WithClock(func() time.Time { return now }))

	loginLimiter := limiter.New(limitermemory.NewStore(), limiter.Rate{Period: time.Minute, Limit: 3})

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container, loginLimiter)
}

// generateTestToken opens a session for the given user directly in the
// key-value store and signs a token naming it.
func (suite *APITestSuite) generateTestToken(userID string) string {
	ctx := context.Background()
	identity := domain.Identity{ID: userID}
	if user, err := suite.repos.UserRepo.FindUserByID(ctx, userID); err == nil {
		identity = user.Identity()
	}
	session := domain.Session{ID: uuid.NewString(), Identity: identity}
	raw, err := json.Marshal(identity)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repos.KV.Put(ctx, portsrepo.SessionKey(session.ID), raw))

	signed, err := utils.IssueAccessToken(session, suite.jwtSecret, time.Now(), time.Hour, "site-claims-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

// withToken sends a request authorized by an explicit bearer token.
func (suite *APITestSuite) withToken(method, url, token string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(method, url, nil)
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) do(method, url, userID string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (suite *APITestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *APITestSuite) TestLogin() {
	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{UserID: "Admin", Password: "Password"})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.LoginResponse
	suite.decode(w, &resp)
	suite.NotEmpty(resp.Token)
	suite.True(resp.User.IsAdmin)
	suite.Equal("Admin User", resp.User.Name)

	// The returned token opens the authenticated API.
	suite.Equal(http.StatusOK, suite.withToken(http.MethodGet, "/api/v1/me", resp.Token).Code)
}

func (suite *APITestSuite) TestLogout_RevokesOnlyThatToken() {
	login := func() string {
		w := suite.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{UserID: "u2", Password: "password123"})
		suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
		var resp dto.LoginResponse
		suite.decode(w, &resp)
		return resp.Token
	}
	phone, laptop := login(), login()

	suite.Equal(http.StatusNoContent, suite.withToken(http.MethodPost, "/api/v1/auth/logout", phone).Code)

	suite.Equal(http.StatusUnauthorized, suite.withToken(http.MethodGet, "/api/v1/me", phone).Code)
	suite.Equal(http.StatusUnauthorized, suite.withToken(http.MethodPost, "/api/v1/auth/logout", phone).Code)
	suite.Equal(http.StatusOK, suite.withToken(http.MethodGet, "/api/v1/me", laptop).Code)
}

func (suite *APITestSuite) TestLogout_RequiresToken() {
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodPost, "/api/v1/auth/logout", "", nil).Code)
}

func (suite *APITestSuite) TestTokenWithoutSessionIsRejected() {
	claims := jwt.RegisteredClaims{
		Issuer:    "site-claims-test",
		Subject:   "Admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	bare, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)
	suite.Equal(http.StatusUnauthorized, suite.withToken(http.MethodGet, "/api/v1/me", bare).Code)

	claims.ID = uuid.NewString()
	unknown, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)
	suite.Equal(http.StatusUnauthorized, suite.withToken(http.MethodGet, "/api/v1/me", unknown).Code)
}

func (suite *APITestSuite) TestLogin_WrongPassword() {
	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{UserID: "User1", Password: "Password"})
	suite.Equal(http.StatusUnauthorized, w.Code)

	var resp handlers.ErrorResponse
	suite.decode(w, &resp)
	suite.Equal("Invalid user ID or password", resp.Error)
}

func (suite *APITestSuite) TestLogin_RateLimited() {
	bad := dto.LoginRequest{UserID: "Admin", Password: "nope"}
	for range 3 {
		suite.Equal(http.StatusUnauthorized, suite.do(http.MethodPost, "/api/v1/auth/login", "", bad).Code)
	}
	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", bad)
	suite.Equal(http.StatusTooManyRequests, w.Code)
	suite.Equal("0", w.Header().Get("X-RateLimit-Remaining"))
}

func (suite *APITestSuite) TestAuthRequired() {
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodGet, "/api/v1/claims", "", nil).Code)
	// Tokens for users without an account are refused.
	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodGet, "/api/v1/claims", "u3", nil).Code)
}

func (suite *APITestSuite) TestClaims_ScopedToViewer() {
	w := suite.do(http.MethodGet, "/api/v1/claims", "u2", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var mine dto.ListClaimsResponse
	suite.decode(w, &mine)
	suite.Require().Len(mine.Claims, 2)
	for _, c := range mine.Claims {
		suite.Equal("u2", c.UserID)
	}

	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/claims/c2", "u2", nil).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/claims/c2", "Admin", nil).Code)
}

func (suite *APITestSuite) TestClaims_FilterAndPaginate() {
	w := suite.do(http.MethodGet, "/api/v1/claims?status=pending", "Admin", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var pending dto.ListClaimsResponse
	suite.decode(w, &pending)
	suite.Len(pending.Claims, 3)

	var ids []string
	url := "/api/v1/claims?limit=2"
	for {
		w := suite.do(http.MethodGet, url, "Admin", nil)
		suite.Require().Equal(http.StatusOK, w.Code)
		var page dto.ListClaimsResponse
		suite.decode(w, &page)
		suite.LessOrEqual(len(page.Claims), 2)
		for _, c := range page.Claims {
			ids = append(ids, c.ID)
		}
		if page.NextToken == "" {
			break
		}
		url = "/api/v1/claims?limit=2&nextToken=" + page.NextToken
	}
	suite.Equal([]string{"c1", "c2", "c3", "c4", "c5"}, ids)

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/claims?status=archived", "Admin", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/claims?nextToken=!!", "Admin", nil).Code)
}

func (suite *APITestSuite) TestSubmitClaim() {
	req := map[string]any{
		"category":    "Fuel",
		"amount":      "42.10",
		"description": "Generator diesel",
		"date":        "2025-05-21",
		"project":     "Project A",
	}
	w := suite.do(http.MethodPost, "/api/v1/claims", "u2", req)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var created dto.ClaimResponse
	suite.decode(w, &created)
	suite.Equal("u2", created.UserID)
	suite.Equal("pending", string(created.Status))
	suite.Equal("42.1", created.Amount.String())

	req["category"] = "Snacks"
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/v1/claims", "u2", req).Code)

	req["category"] = "Fuel"
	req["project"] = "Project Z"
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/v1/claims", "u2", req).Code)
}

func (suite *APITestSuite) TestApproveClaim() {
	suite.Equal(http.StatusForbidden, suite.do(http.MethodPost, "/api/v1/claims/c4/approve", "u2", nil).Code)

	w := suite.do(http.MethodPost, "/api/v1/claims/c4/approve", "Admin", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var approved dto.ClaimResponse
	suite.decode(w, &approved)
	suite.Equal("approved", string(approved.Status))
	suite.Require().NotNil(approved.ApprovedBy)
	suite.Equal("Admin User", *approved.ApprovedBy)

	suite.Equal(http.StatusConflict, suite.do(http.MethodPost, "/api/v1/claims/c4/approve", "Admin", nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodPost, "/api/v1/claims/nope/approve", "Admin", nil).Code)
}

func (suite *APITestSuite) TestRejectClaim_RequiresReason() {
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/v1/claims/c2/reject", "Admin", map[string]string{}).Code)

	w := suite.do(http.MethodPost, "/api/v1/claims/c2/reject", "Admin", dto.RejectRequest{Reason: "Missing receipt"})
	suite.Require().Equal(http.StatusOK, w.Code)
	var rejected dto.ClaimResponse
	suite.decode(w, &rejected)
	suite.Equal("rejected", string(rejected.Status))
}

func (suite *APITestSuite) TestDeleteClaim() {
	// c1 is approved, so its owner may no longer delete it.
	suite.Equal(http.StatusConflict, suite.do(http.MethodDelete, "/api/v1/claims/c1", "u2", nil).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/claims/c4", "u2", nil).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/claims/c4", "u2", nil).Code)
}

func (suite *APITestSuite) TestAttendance_CheckInOut() {
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/attendance/today", "u2", nil).Code)

	w := suite.do(http.MethodPost, "/api/v1/attendance/check-in", "u2", nil)
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var record dto.AttendanceResponse
	suite.decode(w, &record)
	suite.Equal("2025-05-22", record.Date)
	suite.Equal("present", string(record.Status))
	suite.Require().NotNil(record.CheckInTime)
	suite.Equal("10:15", *record.CheckInTime)

	suite.Equal(http.StatusConflict, suite.do(http.MethodPost, "/api/v1/attendance/check-in", "u2", nil).Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodPost, "/api/v1/attendance/check-out", "u2", nil).Code)
	suite.Equal(http.StatusConflict, suite.do(http.MethodPost, "/api/v1/attendance/check-out", "u2", nil).Code)
}

func (suite *APITestSuite) TestAttendance_ListByDate() {
	w := suite.do(http.MethodGet, "/api/v1/attendance?from=2025-05-20&to=2025-05-20", "Admin", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ListAttendanceResponse
	suite.decode(w, &resp)
	suite.Len(resp.Records, 3)

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/attendance?from=20-05-2025", "Admin", nil).Code)
}

func (suite *APITestSuite) TestAttendance_AdminOnlyWrites() {
	body := map[string]any{"userId": "u2", "date": "2025-05-19", "status": "present", "checkInTime": "08:00"}
	suite.Equal(http.StatusForbidden, suite.do(http.MethodPost, "/api/v1/attendance", "u2", body).Code)
	suite.Equal(http.StatusCreated, suite.do(http.MethodPost, "/api/v1/attendance", "Admin", body).Code)
	suite.Equal(http.StatusConflict, suite.do(http.MethodPost, "/api/v1/attendance", "Admin", body).Code)

	body["date"] = "2025-05-18"
	body["checkInTime"] = "8am"
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/v1/attendance", "Admin", body).Code)
	body["checkInTime"] = "8:05"
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/v1/attendance", "Admin", body).Code)
	body["checkInTime"] = "24:00"
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/v1/attendance", "Admin", body).Code)
	body["checkInTime"] = "08:05"
	suite.Equal(http.StatusCreated, suite.do(http.MethodPost, "/api/v1/attendance", "Admin", body).Code)
}

func (suite *APITestSuite) TestDomainBindingTagsAreRegistered() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	suite.Require().True(ok)
	type tagged struct {
		Category string `binding:"claimcategory"`
		Status   string `binding:"attendancestatus"`
		Type     string `binding:"leavetype"`
	}
	suite.NoError(v.Struct(tagged{Category: "Travel & DA", Status: "present", Type: "annual"}))
	suite.Error(v.Struct(tagged{Category: "travel", Status: "present", Type: "annual"}))
}

func (suite *APITestSuite) TestLeave_ApproveChargesBalance() {
	w := suite.do(http.MethodGet, "/api/v1/leave/balances/me", "u2", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var before dto.LeaveBalanceResponse
	suite.decode(w, &before)
	suite.Equal(20, before.Available)

	suite.Equal(http.StatusOK, suite.do(http.MethodPost, "/api/v1/leave/requests/l1/approve", "Admin", nil).Code)

	w = suite.do(http.MethodGet, "/api/v1/leave/balances/u2", "u2", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var after dto.LeaveBalanceResponse
	suite.decode(w, &after)
	suite.Equal(3, after.Used)
	suite.Equal(17, after.Available)

	suite.Equal(http.StatusForbidden, suite.do(http.MethodGet, "/api/v1/leave/balances/Admin", "u2", nil).Code)
}

func (suite *APITestSuite) TestLeave_RequestValidation() {
	body := map[string]string{"leaveType": "annual", "startDate": "2025-06-10", "endDate": "2025-06-09", "reason": "Trip"}
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/v1/leave/requests", "u2", body).Code)

	body["leaveType"] = "sabbatical"
	body["endDate"] = "2025-06-12"
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/v1/leave/requests", "u2", body).Code)

	body["leaveType"] = "annual"
	w := suite.do(http.MethodPost, "/api/v1/leave/requests", "u2", body)
	suite.Require().Equal(http.StatusCreated, w.Code)
	var created dto.LeaveRequestResponse
	suite.decode(w, &created)
	suite.Equal(3, created.Days)
}

func (suite *APITestSuite) TestLeave_UpdateBalance() {
	w := suite.do(http.MethodPut, "/api/v1/leave/balances/u2", "Admin", map[string]int{"used": 25})
	suite.Require().Equal(http.StatusOK, w.Code)
	var balance dto.LeaveBalanceResponse
	suite.decode(w, &balance)
	suite.Equal(20, balance.Total)
	suite.Equal(-5, balance.Available)

	suite.Equal(http.StatusNotFound, suite.do(http.MethodPut, "/api/v1/leave/balances/ghost", "Admin", map[string]int{"used": 1}).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPut, "/api/v1/leave/balances/u2", "Admin", map[string]int{"used": -1}).Code)
}

func (suite *APITestSuite) TestUsers_AdminOnly() {
	suite.Equal(http.StatusForbidden, suite.do(http.MethodGet, "/api/v1/users", "u2", nil).Code)

	w := suite.do(http.MethodGet, "/api/v1/users?role=admin", "Admin", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ListUsersResponse
	suite.decode(w, &resp)
	suite.Len(resp.Users, 2)
	suite.NotContains(w.Body.String(), "password")
}

func (suite *APITestSuite) TestUsers_DeactivateRevokesAccess() {
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/me", "u2", nil).Code)

	w := suite.do(http.MethodPut, "/api/v1/users/u2/active", "Admin", map[string]bool{"isActive": false})
	suite.Require().Equal(http.StatusOK, w.Code)

	suite.Equal(http.StatusUnauthorized, suite.do(http.MethodGet, "/api/v1/me", "u2", nil).Code)
	suite.Equal(http.StatusUnauthorized,
		suite.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{UserID: "u2", Password: "password123"}).Code)
}

func (suite *APITestSuite) TestProjects() {
	suite.Equal(http.StatusForbidden, suite.do(http.MethodPost, "/api/v1/projects", "u2", dto.CreateProjectRequest{Name: "Project E"}).Code)

	w := suite.do(http.MethodPost, "/api/v1/projects", "Admin", dto.CreateProjectRequest{Name: "  Project E "})
	suite.Require().Equal(http.StatusCreated, w.Code)
	var resp dto.ListProjectsResponse
	suite.decode(w, &resp)
	suite.Contains(resp.Projects, "Project E")

	suite.Equal(http.StatusConflict, suite.do(http.MethodPost, "/api/v1/projects", "Admin", dto.CreateProjectRequest{Name: "Project E"}).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/projects/Project%20E", "Admin", nil).Code)
}

func (suite *APITestSuite) TestClaimsReport() {
	w := suite.do(http.MethodGet, "/api/v1/reports/claims", "Admin", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var report dto.ClaimsReportResponse
	suite.decode(w, &report)
	suite.Equal(5, report.TotalCount)
	suite.Equal(20, report.ApprovalRate)
	suite.Require().Len(report.ByStatus, 3)
	suite.Equal("pending", report.ByStatus[0].Key)
	suite.Equal(3, report.ByStatus[0].Count)

	w = suite.do(http.MethodGet, "/api/v1/reports/claims", "u2", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decode(w, &report)
	suite.Equal(2, report.TotalCount)
}

func (suite *APITestSuite) TestExportClaims() {
	w := suite.do(http.MethodGet, "/api/v1/reports/claims/export?status=pending", "Admin", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	suite.True(strings.HasPrefix(w.Header().Get("Content-Disposition"), `attachment; filename="claims_report_`))

	book, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	suite.Require().NoError(err)
	defer book.Close()
	rows, err := book.GetRows("Claims")
	suite.Require().NoError(err)
	suite.Len(rows, 4) // header plus three pending claims
}

func (suite *APITestSuite) TestDashboard() {
	w := suite.do(http.MethodGet, "/api/v1/home", "u2", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var dash dto.DashboardResponse
	suite.decode(w, &dash)
	suite.Equal(2, dash.TotalClaims)
	suite.Equal(1, dash.PendingClaims)
	suite.Equal(100, dash.AttendanceRate)
	suite.False(dash.CheckedInToday)
	suite.Equal(0, dash.PendingApprovals)
	suite.Require().NotNil(dash.LeaveAvailable)
	suite.Equal(20, *dash.LeaveAvailable)

	w = suite.do(http.MethodGet, "/api/v1/home", "Admin", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.decode(w, &dash)
	suite.Equal(4, dash.PendingApprovals)
}

func TestAPITestSuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
