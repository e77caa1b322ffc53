package employee

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// Employee carries a per-leave-type balance of remaining whole days.
// ManagerID is a weak reference by identifier, nil for top-level managers.
type Employee struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Department   string         `json:"department"`
	Role         Role           `json:"role"`
	ManagerID    *string        `json:"manager_id"`
	JoinDate     string         `json:"join_date"`
	LeaveBalance map[string]int `json:"leave_balance"`
}

func (e *Employee) IsManager() bool {
	return e.Role == RoleManager
}

func (e *Employee) HasManager() bool {
	return e.ManagerID != nil && *e.ManagerID != ""
}

// Balance returns the remaining days for a leave type and whether the
// employee has an entitlement pool for that type at all.
func (e *Employee) Balance(leaveType string) (int, bool) {
	if e.LeaveBalance == nil {
		return 0, false
	}
	days, ok := e.LeaveBalance[leaveType]
	return days, ok
}

// Clone returns a deep copy so that state transitions never alias the
// balance map of a previous state.
func (e Employee) Clone() Employee {
	clone := e
	if e.LeaveBalance != nil {
		clone.LeaveBalance = make(map[string]int, len(e.LeaveBalance))
		for k, v := range e.LeaveBalance {
			clone.LeaveBalance[k] = v
		}
	}
	if e.ManagerID != nil {
		id := *e.ManagerID
		clone.ManagerID = &id
	}
	return clone
}

// Deduct subtracts days from the balance pool for leaveType, clamped at
// zero. Employees without a pool for the type are left untouched.
func (e *Employee) Deduct(leaveType string, days int) {
	current, ok := e.Balance(leaveType)
	if !ok {
		return
	}
	remaining := current - days
	if remaining < 0 {
		remaining = 0
	}
	e.LeaveBalance[leaveType] = remaining
}

// ManagerRef is a convenience for building seed data.
func ManagerRef(id string) *string {
	return &id
}
