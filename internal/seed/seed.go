// Package seed holds the demo data loaded into empty repositories at start-up.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
	"github.com/SscSPs/site_claims_app/internal/utils"
	"github.com/shopspring/decimal"
)

type demoUser struct {
	user     domain.User
	password string
	balance  domain.LeaveBalance
}

func demoUsers() []demoUser {
	return []demoUser{
		{
			user: domain.User{
				ID: "Admin", Name: "Admin User", Email: "admin@example.com", Role: domain.RoleAdmin,
				Department: "Management", Location: "Head Office", IsActive: true,
				LeaveBalanceTotal: 30, LeaveTaken: 5,
			},
			password: "Password",
			balance:  domain.LeaveBalance{UserID: "Admin", Annual: 15, Sick: 10, Personal: 3, Compensatory: 2, Total: 30, Used: 5},
		},
		{
			user: domain.User{
				ID: "User1", Name: "Site User", Email: "user1@example.com", Role: domain.RoleUser,
				Department: "Construction", Location: "Site A", IsActive: true,
				LeaveBalanceTotal: 20, LeaveTaken: 2,
			},
			password: "Password1",
			balance:  domain.LeaveBalance{UserID: "User1", Annual: 10, Sick: 6, Personal: 2, Compensatory: 2, Total: 20, Used: 2},
		},
		{
			user: domain.User{
				ID: "u1", Name: "John Doe", Email: "john.doe@example.com", Role: domain.RoleAdmin,
				Department: "Construction", Location: "Site A", IsActive: true,
				LeaveBalanceTotal: 20,
			},
			password: "password123",
			balance:  domain.LeaveBalance{UserID: "u1", Annual: 10, Sick: 6, Personal: 2, Compensatory: 2, Total: 20},
		},
		{
			user: domain.User{
				ID: "u2", Name: "Jane Smith", Email: "jane.smith@example.com", Role: domain.RoleUser,
				Department: "Engineering", Location: "Site B", IsActive: true,
				LeaveBalanceTotal: 20,
			},
			password: "password123",
			balance:  domain.LeaveBalance{UserID: "u2", Annual: 10, Sick: 6, Personal: 2, Compensatory: 2, Total: 20},
		},
	}
}

// Users returns the demo accounts with their passwords hashed.
func Users() ([]domain.User, error) {
	demo := demoUsers()
	users := make([]domain.User, 0, len(demo))
	for _, d := range demo {
		hash, err := utils.HashPassword(d.password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", d.user.ID, err)
		}
		u := d.user
		u.PasswordHash = hash
		users = append(users, u)
	}
	return users, nil
}

// LeaveBalances returns one balance row per demo account.
func LeaveBalances() []domain.LeaveBalance {
	demo := demoUsers()
	balances := make([]domain.LeaveBalance, 0, len(demo))
	for _, d := range demo {
		balances = append(balances, d.balance)
	}
	return balances
}

// Projects returns the default project list.
func Projects() []domain.Project {
	return []domain.Project{
		{Name: "Project A"},
		{Name: "Project B"},
		{Name: "Project C"},
		{Name: "Project D"},
		{Name: "Head Office"},
	}
}

func ptr[T any](v T) *T { return &v }

// Claims returns the five demo claims. Their owners u3 and u4 have no accounts.
func Claims() []domain.Claim {
	return []domain.Claim{
		{
			ID: "c1", UserID: "u2", UserName: "Jane Smith", Category: "Travel & DA",
			Amount: decimal.RequireFromString("75.50"), Description: "Taxi to Site B",
			Date: domain.MustDate("2025-05-10"), Status: domain.StatusApproved,
			ReceiptURL: ptr("/placeholder.svg"), Project: "Project B",
			ApprovedBy: ptr("John Doe"), ApprovedAt: ptr(domain.MustDate("2025-05-12")),
		},
		{
			ID: "c2", UserID: "u3", UserName: "Bob Johnson", Category: "Staff welfare",
			Amount: decimal.RequireFromString("32.75"), Description: "Lunch with team",
			Date: domain.MustDate("2025-05-15"), Status: domain.StatusPending, Project: "Project A",
		},
		{
			ID: "c3", UserID: "u4", UserName: "Alice Williams", Category: "Safety Shoe",
			Amount: decimal.RequireFromString("129.99"), Description: "Safety gear",
			Date: domain.MustDate("2025-05-08"), Status: domain.StatusRejected,
			ReceiptURL: ptr("/placeholder.svg"), Project: "Project C",
			RejectedReason: ptr("Receipt unclear"),
		},
		{
			ID: "c4", UserID: "u2", UserName: "Jane Smith", Category: "Printer & Stationery",
			Amount: decimal.RequireFromString("45.25"), Description: "Office supplies",
			Date: domain.MustDate("2025-05-18"), Status: domain.StatusPending,
			ReceiptURL: ptr("/placeholder.svg"), Project: "Head Office",
		},
		{
			ID: "c5", UserID: "u3", UserName: "Bob Johnson", Category: "Fuel",
			Amount: decimal.RequireFromString("120.00"), Description: "Fuel reimbursement",
			Date: domain.MustDate("2025-05-20"), Status: domain.StatusPending, Project: "Project A",
		},
	}
}

// Attendance returns the six demo attendance records for 2025-05-20 and 2025-05-21.
func Attendance() []domain.AttendanceRecord {
	siteB := &domain.GeoLocation{Latitude: 37.7749, Longitude: -122.4194, Address: "123 Construction Ave, Site B"}
	siteA := &domain.GeoLocation{Latitude: 37.7749, Longitude: -122.4194, Address: "456 Building St, Site A"}
	return []domain.AttendanceRecord{
		{
			ID: "a1", UserID: "u2", UserName: "Jane Smith", Date: domain.MustDate("2025-05-21"),
			Status: domain.AttendancePresent, CheckInTime: ptr("08:15"), CheckOutTime: ptr("17:30"), Location: siteB,
		},
		{
			ID: "a2", UserID: "u3", UserName: "Bob Johnson", Date: domain.MustDate("2025-05-21"),
			Status: domain.AttendanceLate, CheckInTime: ptr("09:45"), CheckOutTime: ptr("18:00"), Location: siteA,
			Notes: ptr("Traffic delay"),
		},
		{
			ID: "a3", UserID: "u4", UserName: "Alice Williams", Date: domain.MustDate("2025-05-21"),
			Status: domain.AttendanceAbsent, Notes: ptr("Called in sick"),
		},
		{
			ID: "a4", UserID: "u2", UserName: "Jane Smith", Date: domain.MustDate("2025-05-20"),
			Status: domain.AttendancePresent, CheckInTime: ptr("08:05"), CheckOutTime: ptr("17:15"), Location: siteB,
		},
		{
			ID: "a5", UserID: "u3", UserName: "Bob Johnson", Date: domain.MustDate("2025-05-20"),
			Status: domain.AttendancePresent, CheckInTime: ptr("08:30"), CheckOutTime: ptr("17:45"), Location: siteA,
		},
		{
			ID: "a6", UserID: "u4", UserName: "Alice Williams", Date: domain.MustDate("2025-05-20"),
			Status: domain.AttendanceOnLeave, Notes: ptr("Annual leave"),
		},
	}
}

// LeaveRequests returns a few demo leave requests in each status.
func LeaveRequests() []domain.LeaveRequest {
	created := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	return []domain.LeaveRequest{
		{
			ID: "l1", UserID: "u2", UserName: "Jane Smith", LeaveType: domain.LeaveAnnual,
			StartDate: domain.MustDate("2025-06-02"), EndDate: domain.MustDate("2025-06-04"),
			Reason: "Family function", Status: domain.StatusPending, CreatedAt: created,
		},
		{
			ID: "l2", UserID: "u4", UserName: "Alice Williams", LeaveType: domain.LeaveAnnual,
			StartDate: domain.MustDate("2025-05-20"), EndDate: domain.MustDate("2025-05-20"),
			Reason: "Annual leave", Status: domain.StatusApproved,
			ApprovedBy: ptr("John Doe"), ApprovedAt: ptr(domain.MustDate("2025-05-15")), CreatedAt: created,
		},
		{
			ID: "l3", UserID: "User1", UserName: "Site User", LeaveType: domain.LeaveSick,
			StartDate: domain.MustDate("2025-05-12"), EndDate: domain.MustDate("2025-05-13"),
			Reason: "Fever", Status: domain.StatusApproved,
			ApprovedBy: ptr("Admin User"), ApprovedAt: ptr(domain.MustDate("2025-05-14")), CreatedAt: created,
		},
		{
			ID: "l4", UserID: "u2", UserName: "Jane Smith", LeaveType: domain.LeavePersonal,
			StartDate: domain.MustDate("2025-05-28"), EndDate: domain.MustDate("2025-05-28"),
			Reason: "Bank work", Status: domain.StatusRejected,
			RejectionReason: ptr("Site audit that day"), CreatedAt: created,
		},
	}
}

// Apply fills every repository that is currently empty with demo data.
// Repositories that already hold rows are left alone, so restarting against
// durable storage never duplicates or overwrites anything.
func Apply(ctx context.Context, repos portsrepo.RepositoryProvider, logger *slog.Logger) error {
	users, err := repos.UserRepo.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) == 0 {
		seeded, err := Users()
		if err != nil {
			return err
		}
		for _, u := range seeded {
			if err := repos.UserRepo.SaveUser(ctx, u); err != nil {
				return fmt.Errorf("failed to seed user %s: %w", u.ID, err)
			}
		}
		logger.Info("Seeded demo users", slog.Int("count", len(seeded)))
	}

	balances, err := repos.LeaveBalanceRepo.ListLeaveBalances(ctx)
	if err != nil {
		return fmt.Errorf("failed to list leave balances: %w", err)
	}
	if len(balances) == 0 {
		for _, b := range LeaveBalances() {
			if err := repos.LeaveBalanceRepo.SaveLeaveBalance(ctx, b); err != nil {
				return fmt.Errorf("failed to seed leave balance %s: %w", b.UserID, err)
			}
		}
	}

	projects, err := repos.ProjectRepo.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}
	if len(projects) == 0 {
		for _, p := range Projects() {
			if err := repos.ProjectRepo.SaveProject(ctx, p); err != nil {
				return fmt.Errorf("failed to seed project %s: %w", p.Name, err)
			}
		}
	}

	claims, err := repos.ClaimRepo.ListClaims(ctx)
	if err != nil {
		return fmt.Errorf("failed to list claims: %w", err)
	}
	if len(claims) == 0 {
		for _, c := range Claims() {
			if err := repos.ClaimRepo.SaveClaim(ctx, c); err != nil {
				return fmt.Errorf("failed to seed claim %s: %w", c.ID, err)
			}
		}
	}

	records, err := repos.AttendanceRepo.ListAttendance(ctx)
	if err != nil {
		return fmt.Errorf("failed to list attendance: %w", err)
	}
	if len(records) == 0 {
		for _, a := range Attendance() {
			if err := repos.AttendanceRepo.SaveAttendance(ctx, a); err != nil {
				return fmt.Errorf("failed to seed attendance %s: %w", a.ID, err)
			}
		}
	}

	requests, err := repos.LeaveRequestRepo.ListLeaveRequests(ctx)
	if err != nil {
		return fmt.Errorf("failed to list leave requests: %w", err)
	}
	if len(requests) == 0 {
		for _, l := range LeaveRequests() {
			if err := repos.LeaveRequestRepo.SaveLeaveRequest(ctx, l); err != nil {
				return fmt.Errorf("failed to seed leave request %s: %w", l.ID, err)
			}
		}
	}

	logger.Info("Demo data ready")
	return nil
}
