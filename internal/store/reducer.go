package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Hariraj-0611/Leave-Management/internal/employee"
	"github.com/Hariraj-0611/Leave-Management/internal/leave"
	"github.com/Hariraj-0611/Leave-Management/internal/notification"
)

// Reduce applies a command to the state and returns the next state.
// It is total: it never fails, missing lookups are no-ops.
func Reduce(s State, cmd Command) State {
	switch c := cmd.(type) {
	case Initialize:
		return initialize(c)
	case ApplyLeave:
		return applyLeave(s, c)
	case UpdateLeaveStatus:
		return updateLeaveStatus(s, c)
	case SwitchUser:
		return switchUser(s, c)
	case MarkNotificationRead:
		return markNotificationRead(s, c)
	default:
		return s
	}
}

func initialize(c Initialize) State {
	if !c.Snapshot.valid() {
		return SeedState()
	}
	next := *c.Snapshot
	next.normalize()
	return next
}

func applyLeave(s State, c ApplyLeave) State {
	days := leave.Days(c.StartDate, c.EndDate)

	emp, found := s.EmployeeByID(c.EmployeeID)

	newLeave := leave.Leave{
		ID:          fmt.Sprintf("leave_%s", uuid.NewString()),
		EmployeeID:  c.EmployeeID,
		Type:        c.Type,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		Reason:      c.Reason,
		Status:      leave.StatusPending,
		AppliedDate: time.Now(),
	}
	if found {
		// captured once; later renames must not rewrite past records
		newLeave.EmployeeName = emp.Name
	}

	employees := make([]employee.Employee, len(s.Employees))
	for i, e := range s.Employees {
		if e.ID == c.EmployeeID {
			clone := e.Clone()
			clone.Deduct(c.Type, days)
			employees[i] = clone
			continue
		}
		employees[i] = e
	}

	notifications := s.Notifications
	if found && emp.HasManager() {
		msg := fmt.Sprintf("%s has applied for %s", emp.Name, s.LeaveTypeName(c.Type))
		n := notification.New(*emp.ManagerID, msg, notification.SeverityInfo)
		notifications = append(append([]notification.Notification{}, s.Notifications...), n)
	}

	next := s
	next.Employees = employees
	next.Leaves = append(append([]leave.Leave{}, s.Leaves...), newLeave)
	next.Notifications = notifications
	return next
}

func updateLeaveStatus(s State, c UpdateLeaveStatus) State {
	if c.Status != leave.StatusApproved && c.Status != leave.StatusRejected {
		return s
	}

	target, found := s.LeaveByID(c.LeaveID)
	if !found {
		return s
	}
	if target.Decided() {
		// decisions are final: approvedBy/approvedDate keep first-set values
		return s
	}

	leaves := make([]leave.Leave, len(s.Leaves))
	for i, l := range s.Leaves {
		if l.ID == c.LeaveID {
			l.Decide(c.Status, c.ApproverID, time.Now())
		}
		leaves[i] = l
	}

	severity := notification.SeveritySuccess
	if c.Status == leave.StatusRejected {
		severity = notification.SeverityError
	}
	msg := fmt.Sprintf("Your %s has been %s", s.LeaveTypeName(target.Type), c.Status)
	n := notification.New(target.EmployeeID, msg, severity)

	next := s
	next.Leaves = leaves
	next.Notifications = append(append([]notification.Notification{}, s.Notifications...), n)
	return next
}

func switchUser(s State, c SwitchUser) State {
	emp, found := s.EmployeeByID(c.EmployeeID)
	if !found {
		return s
	}
	clone := emp.Clone()
	next := s
	next.CurrentUser = &clone
	return next
}

func markNotificationRead(s State, c MarkNotificationRead) State {
	if _, found := s.NotificationByID(c.NotificationID); !found {
		return s
	}
	notifications := make([]notification.Notification, len(s.Notifications))
	for i, n := range s.Notifications {
		if n.ID == c.NotificationID {
			n.Read = true
		}
		notifications[i] = n
	}
	next := s
	next.Notifications = notifications
	return next
}
