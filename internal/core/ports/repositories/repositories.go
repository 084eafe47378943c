package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	ClaimRepo        ClaimRepositoryFacade
	AttendanceRepo   AttendanceRepositoryFacade
	LeaveRequestRepo LeaveRequestRepositoryFacade
	LeaveBalanceRepo LeaveBalanceRepositoryFacade
	LeaveApprovals   LeaveApprovalRecorder
	ProjectRepo      ProjectRepositoryFacade
	KV               KeyValueStore
}
