package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Leave type keys. Each key maps to an entitlement pool on the employee.
const (
	TypeAnnual = "annual"
	TypeSick   = "sick"
	TypeCasual = "casual"
)

// TypeInfo is display reference data for a leave type.
type TypeInfo struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// DefaultTypes returns the built-in leave type reference data.
func DefaultTypes() map[string]TypeInfo {
	return map[string]TypeInfo{
		TypeAnnual: {Name: "Annual Leave", Color: "blue"},
		TypeSick:   {Name: "Sick Leave", Color: "green"},
		TypeCasual: {Name: "Casual Leave", Color: "purple"},
	}
}

// Leave is a single request for time off. EmployeeName is a denormalized
// copy captured at creation: a later rename must not rewrite past records.
type Leave struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	Type         string     `json:"type"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	Reason       string     `json:"reason"`
	Status       Status     `json:"status"`
	AppliedDate  time.Time  `json:"applied_date"`
	ApprovedBy   *string    `json:"approved_by,omitempty"`
	ApprovedDate *time.Time `json:"approved_date,omitempty"`
}

func (l *Leave) IsPending() bool {
	return l.Status == StatusPending
}

// Decided reports whether the leave has left the pending state. A decided
// leave never transitions again.
func (l *Leave) Decided() bool {
	return l.Status == StatusApproved || l.Status == StatusRejected
}

func (l *Leave) Decide(status Status, approverID string, at time.Time) {
	l.Status = status
	l.ApprovedBy = &approverID
	l.ApprovedDate = &at
}

// Days returns the inclusive day count of the leave's range.
func (l *Leave) Days() int {
	return Days(l.StartDate, l.EndDate)
}

// Contains reports whether the given calendar date falls inside the
// leave's inclusive range.
func (l *Leave) Contains(date string) bool {
	day, ok := ParseDate(date)
	if !ok {
		return false
	}
	start, ok := ParseDate(l.StartDate)
	if !ok {
		return false
	}
	end, ok := ParseDate(l.EndDate)
	if !ok {
		return false
	}
	return !day.Before(start) && !day.After(end)
}
