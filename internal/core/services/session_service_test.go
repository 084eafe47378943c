package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/site_claims_app/internal/apperrors"
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	portssvc "github.com/SscSPs/site_claims_app/internal/core/ports/services"
	"github.com/SscSPs/site_claims_app/internal/core/services"
	"github.com/SscSPs/site_claims_app/internal/repositories/kv"
	"github.com/SscSPs/site_claims_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserReader ---
type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Test Suite ---
type SessionServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockRepo *MockUserReader
	store    *kv.MemoryStore
	service  portssvc.SessionSvcFacade
	admin    *domain.User
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockUserReader)
	suite.store = kv.NewMemoryStore()
	suite.service = services.NewSessionService(suite.mockRepo, suite.store)

	hash, err := utils.HashPassword("Password")
	suite.Require().NoError(err)
	suite.admin = &domain.User{
		ID: "Admin", Name: "Admin User", Email: "admin@example.com", Role: domain.RoleAdmin,
		Department: "Management", Location: "Head Office", IsActive: true, PasswordHash: hash,
	}
}

func (suite *SessionServiceTestSuite) TestLogin_Success() {
	suite.mockRepo.On("FindUserByID", suite.ctx, "Admin").Return(suite.admin, nil).Once()

	session, err := suite.service.Login(suite.ctx, "Admin", "Password")

	suite.Require().NoError(err)
	suite.NotEmpty(session.ID)
	suite.Equal("Admin", session.Identity.ID)
	suite.Equal(domain.RoleAdmin, session.Identity.Role)
	suite.True(suite.service.IsAdmin(session.Identity))

	current, err := suite.service.Current(suite.ctx, session.ID)
	suite.Require().NoError(err)
	suite.Equal(session.Identity, *current)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestLogin_EachLoginOpensItsOwnSession() {
	suite.mockRepo.On("FindUserByID", suite.ctx, "Admin").Return(suite.admin, nil).Twice()

	first, err := suite.service.Login(suite.ctx, "Admin", "Password")
	suite.Require().NoError(err)
	second, err := suite.service.Login(suite.ctx, "Admin", "Password")
	suite.Require().NoError(err)
	suite.NotEqual(first.ID, second.ID)

	suite.Require().NoError(suite.service.Logout(suite.ctx, first.ID))

	_, err = suite.service.Current(suite.ctx, first.ID)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	current, err := suite.service.Current(suite.ctx, second.ID)
	suite.Require().NoError(err)
	suite.Equal("Admin", current.ID)
}

func (suite *SessionServiceTestSuite) TestLogin_WrongPassword() {
	suite.mockRepo.On("FindUserByID", suite.ctx, "Admin").Return(suite.admin, nil).Once()

	session, err := suite.service.Login(suite.ctx, "Admin", "wrong")

	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *SessionServiceTestSuite) TestLogin_InactiveUserWithCorrectPassword() {
	suite.admin.IsActive = false
	suite.mockRepo.On("FindUserByID", suite.ctx, "Admin").Return(suite.admin, nil).Once()

	session, err := suite.service.Login(suite.ctx, "Admin", "Password")

	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *SessionServiceTestSuite) TestLogin_UnknownUser() {
	suite.mockRepo.On("FindUserByID", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Login(suite.ctx, "ghost", "Password")

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *SessionServiceTestSuite) TestLogin_UnknownUserTakesAsLongAsWrongPassword() {
	suite.mockRepo.On("FindUserByID", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound)
	suite.mockRepo.On("FindUserByID", suite.ctx, "Admin").Return(suite.admin, nil)
	_, _ = suite.service.Login(suite.ctx, "ghost", "warm-up")

	start := time.Now()
	_, err := suite.service.Login(suite.ctx, "Admin", "wrong")
	wrongPassword := time.Since(start)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)

	start = time.Now()
	_, err = suite.service.Login(suite.ctx, "ghost", "Password")
	unknownUser := time.Since(start)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)

	suite.Greater(unknownUser, wrongPassword/4)
}

func (suite *SessionServiceTestSuite) TestLogin_RepositoryFailure() {
	suite.mockRepo.On("FindUserByID", suite.ctx, "Admin").Return(nil, assert.AnError).Once()

	_, err := suite.service.Login(suite.ctx, "Admin", "Password")

	suite.ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrInvalidCredentials)
}

func (suite *SessionServiceTestSuite) TestLogout_EndsSession() {
	suite.mockRepo.On("FindUserByID", suite.ctx, "Admin").Return(suite.admin, nil)
	session, err := suite.service.Login(suite.ctx, "Admin", "Password")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.Logout(suite.ctx, session.ID))

	_, err = suite.service.Current(suite.ctx, session.ID)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	_, err = suite.service.Resolve(suite.ctx, session.ID, "Admin")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NoError(suite.service.Logout(suite.ctx, session.ID))
}

func (suite *SessionServiceTestSuite) TestCurrent_WithoutSession() {
	_, err := suite.service.Current(suite.ctx, "")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	_, err = suite.service.Current(suite.ctx, "never-issued")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *SessionServiceTestSuite) TestResolve() {
	suite.mockRepo.On("FindUserByID", suite.ctx, "Admin").Return(suite.admin, nil)
	session, err := suite.service.Login(suite.ctx, "Admin", "Password")
	suite.Require().NoError(err)

	identity, err := suite.service.Resolve(suite.ctx, session.ID, "Admin")
	suite.Require().NoError(err)
	suite.Equal("Admin User", identity.Name)

	_, err = suite.service.Resolve(suite.ctx, session.ID, "u2")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.Resolve(suite.ctx, "never-issued", "Admin")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	suite.admin.IsActive = false
	_, err = suite.service.Resolve(suite.ctx, session.ID, "Admin")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
