package store

import "github.com/Hariraj-0611/Leave-Management/internal/leave"

// Command is the tagged union of state transitions. Every variant is
// handled by a pure function over the current state; unknown identifiers
// always leave the state unchanged.
type Command interface {
	isCommand()
}

// Initialize replaces the entire state. A nil or structurally unusable
// snapshot falls back to seed data; no error is ever raised.
type Initialize struct {
	Snapshot *State
}

// ApplyLeave submits a new leave application: a fresh pending leave,
// a clamped balance deduction, and a notification to the employee's
// manager when one exists.
type ApplyLeave struct {
	EmployeeID string
	Type       string
	StartDate  string
	EndDate    string
	Reason     string
}

// UpdateLeaveStatus decides a pending leave and notifies its owner.
// Already-decided leaves keep their first-set decision fields.
type UpdateLeaveStatus struct {
	LeaveID    string
	Status     leave.Status
	ApproverID string
}

// SwitchUser changes the acting employee identity.
type SwitchUser struct {
	EmployeeID string
}

// MarkNotificationRead flips the read flag; idempotent.
type MarkNotificationRead struct {
	NotificationID string
}

func (Initialize) isCommand()           {}
func (ApplyLeave) isCommand()           {}
func (UpdateLeaveStatus) isCommand()    {}
func (SwitchUser) isCommand()           {}
func (MarkNotificationRead) isCommand() {}
