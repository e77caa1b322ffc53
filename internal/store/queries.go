package store

import (
	"strings"
	"time"

	"github.com/Hariraj-0611/Leave-Management/internal/leave"
	"github.com/Hariraj-0611/Leave-Management/internal/notification"
)

// Mode selects whose leaves a filtered listing covers.
type Mode string

const (
	// ModeAll lists every leave in the system.
	ModeAll Mode = "all"
	// ModeEmployee lists only the current user's own leaves.
	ModeEmployee Mode = "employee"
	// ModeApproval lists leaves of the current manager's direct reports.
	ModeApproval Mode = "approval"
)

// LeaveFilter combines status, type, department and free-text predicates.
// Zero values mean "no restriction".
type LeaveFilter struct {
	Status     leave.Status
	Type       string
	Department string
	Search     string
	Mode       Mode
}

// FilterLeaves applies a predicate set over the leave list. The department
// predicate resolves through the owning employee; the free-text search
// matches employee name or reason, case-insensitively.
func FilterLeaves(s State, f LeaveFilter) []leave.Leave {
	search := strings.ToLower(f.Search)

	out := make([]leave.Leave, 0, len(s.Leaves))
	for _, l := range s.Leaves {
		switch f.Mode {
		case ModeEmployee:
			if s.CurrentUser == nil || l.EmployeeID != s.CurrentUser.ID {
				continue
			}
		case ModeApproval:
			if s.CurrentUser == nil || !s.CurrentUser.IsManager() {
				continue
			}
			emp, ok := s.EmployeeByID(l.EmployeeID)
			if !ok || !emp.HasManager() || *emp.ManagerID != s.CurrentUser.ID {
				continue
			}
		}

		if f.Status != "" && l.Status != f.Status {
			continue
		}
		if f.Type != "" && l.Type != f.Type {
			continue
		}
		if f.Department != "" {
			emp, ok := s.EmployeeByID(l.EmployeeID)
			if !ok || emp.Department != f.Department {
				continue
			}
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(l.EmployeeName), search) &&
			!strings.Contains(strings.ToLower(l.Reason), search) {
			continue
		}

		out = append(out, l)
	}
	return out
}

// LeavesForDay returns all leaves whose inclusive range contains the date.
func LeavesForDay(s State, date string) []leave.Leave {
	out := make([]leave.Leave, 0)
	for _, l := range s.Leaves {
		if l.Contains(date) {
			out = append(out, l)
		}
	}
	return out
}

// HasOverlap reports whether the proposed range intersects any existing
// non-rejected leave of the same employee and same type. Both ends are
// inclusive.
func HasOverlap(s State, employeeID, leaveType, startDate, endDate string) bool {
	for _, l := range s.Leaves {
		if l.EmployeeID != employeeID || l.Type != leaveType {
			continue
		}
		if l.Status == leave.StatusRejected {
			continue
		}
		if leave.Overlaps(startDate, endDate, l.StartDate, l.EndDate) {
			return true
		}
	}
	return false
}

// CountByStatus returns dashboard counts per leave status.
func CountByStatus(s State) map[leave.Status]int {
	counts := make(map[leave.Status]int)
	for _, l := range s.Leaves {
		counts[l.Status]++
	}
	return counts
}

// CountByType returns dashboard counts per leave type key.
func CountByType(s State) map[string]int {
	counts := make(map[string]int)
	for _, l := range s.Leaves {
		counts[l.Type]++
	}
	return counts
}

// CountByDepartment resolves each leave's department through its owning
// employee. Dangling employee references are counted under "Unknown".
func CountByDepartment(s State) map[string]int {
	counts := make(map[string]int)
	for _, l := range s.Leaves {
		if emp, ok := s.EmployeeByID(l.EmployeeID); ok {
			counts[emp.Department]++
		} else {
			counts["Unknown"]++
		}
	}
	return counts
}

// LeavesInMonth counts leaves whose start date falls in the given month.
func LeavesInMonth(s State, year int, month time.Month) int {
	count := 0
	for _, l := range s.Leaves {
		if start, ok := leave.ParseDate(l.StartDate); ok {
			if start.Year() == year && start.Month() == month {
				count++
			}
		}
	}
	return count
}

// PendingApprovals lists pending leaves belonging to the manager's direct
// reports, oldest application first.
func PendingApprovals(s State, managerID string) []leave.Leave {
	out := make([]leave.Leave, 0)
	for _, l := range s.Leaves {
		if !l.IsPending() {
			continue
		}
		emp, ok := s.EmployeeByID(l.EmployeeID)
		if !ok || !emp.HasManager() || *emp.ManagerID != managerID {
			continue
		}
		out = append(out, l)
	}
	return out
}

// NotificationsFor lists a user's notifications, optionally only unread.
func NotificationsFor(s State, userID string, unreadOnly bool) []notification.Notification {
	out := make([]notification.Notification, 0)
	for _, n := range s.Notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	return out
}
