package store

import (
	"github.com/Hariraj-0611/Leave-Management/internal/employee"
	"github.com/Hariraj-0611/Leave-Management/internal/leave"
	"github.com/Hariraj-0611/Leave-Management/internal/notification"
)

// State is the entire application state. Transitions replace it wholesale;
// no operation can be observed mid-transition.
type State struct {
	Employees     []employee.Employee         `json:"employees"`
	Leaves        []leave.Leave               `json:"leaves"`
	Notifications []notification.Notification `json:"notifications"`
	Departments   []string                    `json:"departments"`
	LeaveTypes    map[string]leave.TypeInfo   `json:"leave_types"`
	CurrentUser   *employee.Employee          `json:"current_user"`
}

func (s State) EmployeeByID(id string) (employee.Employee, bool) {
	for _, emp := range s.Employees {
		if emp.ID == id {
			return emp, true
		}
	}
	return employee.Employee{}, false
}

func (s State) LeaveByID(id string) (leave.Leave, bool) {
	for _, l := range s.Leaves {
		if l.ID == id {
			return l, true
		}
	}
	return leave.Leave{}, false
}

func (s State) NotificationByID(id string) (notification.Notification, bool) {
	for _, n := range s.Notifications {
		if n.ID == id {
			return n, true
		}
	}
	return notification.Notification{}, false
}

// LeaveTypeName resolves a leave type key to its display name, falling
// back to the raw key for unknown types.
func (s State) LeaveTypeName(key string) string {
	if info, ok := s.LeaveTypes[key]; ok && info.Name != "" {
		return info.Name
	}
	return key
}

// EmployeeName resolves an employee identifier to a display name,
// degrading to "Unknown" when the reference is dangling.
func (s State) EmployeeName(id string) string {
	if emp, ok := s.EmployeeByID(id); ok {
		return emp.Name
	}
	return "Unknown"
}

// valid reports whether a decoded snapshot is structurally usable.
// Anything else is silently discarded in favor of seed data.
func (s *State) valid() bool {
	return s != nil && s.Employees != nil && s.Leaves != nil
}

// normalize fills reference data missing from an imported snapshot with
// the built-in defaults so older exports stay loadable.
func (s *State) normalize() {
	if len(s.Departments) == 0 {
		s.Departments = DefaultDepartments()
	}
	if len(s.LeaveTypes) == 0 {
		s.LeaveTypes = leave.DefaultTypes()
	}
	if s.Notifications == nil {
		s.Notifications = []notification.Notification{}
	}
}
