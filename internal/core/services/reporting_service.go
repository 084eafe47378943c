package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/site_claims_app/internal/apperrors"
	"github.com/SscSPs/site_claims_app/internal/core/domain"
	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/site_claims_app/internal/core/ports/services"
	"github.com/SscSPs/site_claims_app/internal/core/query"
	"github.com/shopspring/decimal"
)

type reportingService struct {
	BaseService
	claimRepo      portsrepo.ClaimReader
	attendanceRepo portsrepo.AttendanceReader
	requestRepo    portsrepo.LeaveRequestReader
	balanceRepo    portsrepo.LeaveBalanceRepositoryFacade
}

// NewReportingService creates the reporting service. It only reads.
func NewReportingService(repos portsrepo.RepositoryProvider, opts ...Option) portssvc.ReportingSvcFacade {
	return &reportingService{
		BaseService:    newBaseService(opts),
		claimRepo:      repos.ClaimRepo,
		attendanceRepo: repos.AttendanceRepo,
		requestRepo:    repos.LeaveRequestRepo,
		balanceRepo:    repos.LeaveBalanceRepo,
	}
}

func claimAmount(c domain.Claim) decimal.Decimal { return c.Amount }

func (s *reportingService) visibleClaims(ctx context.Context, viewer domain.Identity, criteria query.ClaimCriteria) ([]domain.Claim, error) {
	claims, err := s.claimRepo.ListClaims(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list claims for report")
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	return query.Filter(query.Visible(claims, viewer), criteria.Predicates()...), nil
}

func (s *reportingService) visibleAttendance(ctx context.Context, viewer domain.Identity, criteria query.AttendanceCriteria) ([]domain.AttendanceRecord, error) {
	records, err := s.attendanceRepo.ListAttendance(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list attendance for report")
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return query.Filter(query.Visible(records, viewer), criteria.Predicates()...), nil
}

func (s *reportingService) visibleLeave(ctx context.Context, viewer domain.Identity, criteria query.LeaveCriteria) ([]domain.LeaveRequest, error) {
	requests, err := s.requestRepo.ListLeaveRequests(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list leave requests for report")
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return query.Filter(query.Visible(requests, viewer), criteria.Predicates()...), nil
}

func (s *reportingService) ClaimsReport(ctx context.Context, viewer domain.Identity, criteria query.ClaimCriteria) (*domain.ClaimsReport, error) {
	claims, err := s.visibleClaims(ctx, viewer, criteria)
	if err != nil {
		return nil, err
	}
	return buildClaimsReport(claims), nil
}

func buildClaimsReport(claims []domain.Claim) *domain.ClaimsReport {
	byStatus := query.Aggregate(claims, func(c domain.Claim) string { return string(c.Status) }, claimAmount)
	byCategory := query.Aggregate(claims, func(c domain.Claim) string { return c.Category }, claimAmount)
	byProject := query.Aggregate(claims, func(c domain.Claim) string { return c.Project }, claimAmount)

	// Statuses are listed in lifecycle order, zero buckets included.
	statusGroups := make([]domain.AmountGroup, 0, len(domain.ApprovalStatuses))
	for _, st := range domain.ApprovalStatuses {
		g := byStatus.Get(string(st))
		statusGroups = append(statusGroups, domain.AmountGroup{Key: string(st), Count: g.Count, Amount: g.Sum})
	}

	return &domain.ClaimsReport{
		TotalCount:     byStatus.Count,
		TotalAmount:    byStatus.Sum,
		ApprovedAmount: byStatus.Get(string(domain.StatusApproved)).Sum,
		PendingAmount:  byStatus.Get(string(domain.StatusPending)).Sum,
		RejectedAmount: byStatus.Get(string(domain.StatusRejected)).Sum,
		ApprovalRate:   query.Rate(byStatus.Get(string(domain.StatusApproved)).Count, byStatus.Count),
		ByStatus:       statusGroups,
		ByCategory:     amountGroups(byCategory),
		ByProject:      amountGroups(byProject),
		Claims:         claims,
	}
}

func (s *reportingService) AttendanceReport(ctx context.Context, viewer domain.Identity, criteria query.AttendanceCriteria) (*domain.AttendanceReport, error) {
	records, err := s.visibleAttendance(ctx, viewer, criteria)
	if err != nil {
		return nil, err
	}

	present := query.Count(records, func(r domain.AttendanceRecord) bool { return r.Status.CountsAsPresent() })
	return &domain.AttendanceReport{
		TotalDays:      len(records),
		PresentDays:    present,
		LateDays:       query.Count(records, func(r domain.AttendanceRecord) bool { return r.Status == domain.AttendanceLate }),
		AbsentDays:     query.Count(records, func(r domain.AttendanceRecord) bool { return r.Status == domain.AttendanceAbsent }),
		LeaveDays:      query.Count(records, func(r domain.AttendanceRecord) bool { return r.Status.CountsAsLeave() }),
		AttendanceRate: query.Rate(present, len(records)),
		ByStatus:       countGroups(query.Aggregate(records, func(r domain.AttendanceRecord) string { return string(r.Status) }, nil)),
		Records:        records,
	}, nil
}

func (s *reportingService) LeaveReport(ctx context.Context, viewer domain.Identity, criteria query.LeaveCriteria) (*domain.LeaveReport, error) {
	requests, err := s.visibleLeave(ctx, viewer, criteria)
	if err != nil {
		return nil, err
	}

	totalDays := 0
	for _, r := range requests {
		totalDays += r.Days()
	}
	byStatus := query.Aggregate(requests, func(r domain.LeaveRequest) string { return string(r.Status) }, nil)
	return &domain.LeaveReport{
		TotalRequests: len(requests),
		TotalDays:     totalDays,
		ApprovalRate:  query.Rate(byStatus.Get(string(domain.StatusApproved)).Count, len(requests)),
		ByStatus:      countGroups(byStatus),
		ByType:        countGroups(query.Aggregate(requests, func(r domain.LeaveRequest) string { return string(r.LeaveType) }, nil)),
		Requests:      requests,
	}, nil
}

// Dashboard summarises the viewer's visible records. Admins also get the
// number of claims and leave requests waiting for a decision.
func (s *reportingService) Dashboard(ctx context.Context, viewer domain.Identity) (*domain.Dashboard, error) {
	claims, err := s.visibleClaims(ctx, viewer, query.ClaimCriteria{})
	if err != nil {
		return nil, err
	}
	records, err := s.visibleAttendance(ctx, viewer, query.AttendanceCriteria{})
	if err != nil {
		return nil, err
	}
	requests, err := s.visibleLeave(ctx, viewer, query.LeaveCriteria{})
	if err != nil {
		return nil, err
	}

	isPending := func(st domain.ApprovalStatus) bool { return st == domain.StatusPending }
	pendingClaims := query.Count(claims, func(c domain.Claim) bool { return isPending(c.Status) })
	pendingLeave := query.Count(requests, func(r domain.LeaveRequest) bool { return isPending(r.Status) })
	present := query.Count(records, func(r domain.AttendanceRecord) bool { return r.Status.CountsAsPresent() })
	today := s.CurrentDate()

	dash := &domain.Dashboard{
		TotalClaims:      len(claims),
		PendingClaims:    pendingClaims,
		ApprovedClaims:   query.Count(claims, func(c domain.Claim) bool { return c.Status == domain.StatusApproved }),
		TotalClaimAmount: query.Sum(claims, claimAmount),
		AttendanceDays:   len(records),
		PresentDays:      present,
		AttendanceRate:   query.Rate(present, len(records)),
		CheckedInToday: query.Count(records, func(r domain.AttendanceRecord) bool {
			return r.UserID == viewer.ID && r.Date.Equal(today)
		}) > 0,
		PendingLeave: pendingLeave,
	}
	if viewer.IsAdmin() {
		dash.PendingApprovals = pendingClaims + pendingLeave
	}

	balance, err := s.balanceRepo.FindLeaveBalance(ctx, viewer.ID)
	switch {
	case err == nil:
		available := balance.Available()
		dash.LeaveAvailable = &available
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("failed to get leave balance for %s: %w", viewer.ID, err)
	}
	return dash, nil
}

func amountGroups(agg query.Aggregation) []domain.AmountGroup {
	out := make([]domain.AmountGroup, 0, len(agg.Keys))
	for _, k := range agg.Keys {
		g := agg.Get(k)
		out = append(out, domain.AmountGroup{Key: k, Count: g.Count, Amount: g.Sum})
	}
	return out
}

func countGroups(agg query.Aggregation) []domain.CountGroup {
	out := make([]domain.CountGroup, 0, len(agg.Keys))
	for _, k := range agg.Keys {
		out = append(out, domain.CountGroup{Key: k, Count: agg.Get(k).Count})
	}
	return out
}
