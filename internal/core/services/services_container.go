package services

import (
	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/site_claims_app/internal/core/ports/services"
	"github.com/SscSPs/site_claims_app/internal/platform/config"
)

// NewServiceContainer wires every service to the repositories it needs.
// opts are applied to each service, e.g. WithClock in tests.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, opts ...Option) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Session:    NewSessionService(repos.UserRepo, repos.KV, opts...),
		Token:      NewTokenService(cfg, opts...),
		User:       NewUserService(repos.UserRepo, repos.LeaveBalanceRepo, opts...),
		Claim:      NewClaimService(repos.ClaimRepo, repos.ProjectRepo, opts...),
		Attendance: NewAttendanceService(repos.AttendanceRepo, repos.UserRepo, opts...),
		Leave:      NewLeaveService(repos.LeaveRequestRepo, repos.LeaveBalanceRepo, repos.LeaveApprovals, repos.UserRepo, opts...),
		Project:    NewProjectService(repos.ProjectRepo, opts...),
		Reporting:  NewReportingService(repos, opts...),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.SessionSvcFacade    = (*sessionService)(nil)
	_ portssvc.TokenSvcFacade      = (*tokenService)(nil)
	_ portssvc.UserSvcFacade       = (*userService)(nil)
	_ portssvc.ClaimSvcFacade      = (*claimService)(nil)
	_ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)
	_ portssvc.LeaveSvcFacade      = (*leaveService)(nil)
	_ portssvc.ProjectSvcFacade    = (*projectService)(nil)
	_ portssvc.ReportingSvcFacade  = (*reportingService)(nil)
)
