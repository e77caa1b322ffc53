package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Hariraj-0611/Leave-Management/internal"
	"github.com/Hariraj-0611/Leave-Management/internal/leave"
)

// ErrSnapshotNotFound is returned by SnapshotStore implementations when no
// document exists under the key.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore persists the serialized application state under a single
// key, the way the original kept one document in browser local storage.
type SnapshotStore interface {
	Load(key string) ([]byte, error)
	Save(key string, document []byte) error
	Delete(key string) error
}

// Store owns the application state. It is constructed once at startup by
// the composition root, loads the persisted snapshot once, and saves
// best-effort after every transition. Persistence failures are logged; the
// in-memory state stays authoritative for the session.
type Store struct {
	mu        sync.RWMutex
	state     State
	snapshots SnapshotStore
	key       string
	logger    *slog.Logger
}

func New(snapshots SnapshotStore, key string, logger *slog.Logger) *Store {
	return &Store{
		snapshots: snapshots,
		key:       key,
		logger:    logger,
	}
}

// Load reads the persisted snapshot and initializes the state from it.
// Absent or malformed documents silently fall back to seed data.
func (st *Store) Load() {
	var snapshot *State

	doc, err := st.snapshots.Load(st.key)
	switch {
	case errors.Is(err, ErrSnapshotNotFound):
		st.logger.Info("no persisted snapshot, seeding sample data")
	case err != nil:
		st.logger.Error("failed to read persisted snapshot", "error", err)
	default:
		var decoded State
		if err := json.Unmarshal(doc, &decoded); err != nil {
			st.logger.Warn("persisted snapshot is not valid JSON, seeding sample data", "error", err)
		} else {
			snapshot = &decoded
		}
	}

	st.Dispatch(Initialize{Snapshot: snapshot})
}

// State returns the current state. Callers treat it as read-only.
func (st *Store) State() State {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.state
}

// Dispatch runs a command through the reducer and persists the result.
// Any panic inside a transition is recovered and the prior state kept:
// the store never crashes its caller.
func (st *Store) Dispatch(cmd Command) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.state = st.reduce(cmd)
	st.persist()
}

func (st *Store) reduce(cmd Command) (next State) {
	defer func() {
		if r := recover(); r != nil {
			st.logger.Error("state transition panicked, keeping previous state", "panic", r)
			next = st.state
		}
	}()
	return Reduce(st.state, cmd)
}

func (st *Store) persist() {
	doc, err := json.Marshal(st.state)
	if err != nil {
		st.logger.Error("failed to serialize state", "error", err)
		return
	}
	if err := st.snapshots.Save(st.key, doc); err != nil {
		st.logger.Error("failed to persist snapshot, in-memory state remains authoritative", "error", err)
	}
}

// ApplyLeave validates the request at the boundary and submits it. The
// created leave is returned for display.
func (st *Store) ApplyLeave(dto leave.ApplyLeaveDTO) (leave.Leave, error) {
	if err := dto.Validate(); err != nil {
		st.logger.Error("leave application validation failed", "error", err, "employee_id", dto.EmployeeID)
		return leave.Leave{}, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}
	if _, ok := st.State().EmployeeByID(dto.EmployeeID); !ok {
		return leave.Leave{}, internal.ErrEmployeeNotFound
	}

	st.Dispatch(ApplyLeave{
		EmployeeID: dto.EmployeeID,
		Type:       dto.Type,
		StartDate:  dto.StartDate,
		EndDate:    dto.EndDate,
		Reason:     dto.Reason,
	})

	state := st.State()
	created := state.Leaves[len(state.Leaves)-1]
	st.logger.Info("leave applied",
		"leave_id", created.ID,
		"employee_id", created.EmployeeID,
		"type", created.Type,
		"days", created.Days())
	return created, nil
}

// UpdateLeaveStatus decides a pending leave. Deciding an unknown leave or
// one that was already decided is surfaced as an error here; the state is
// untouched either way.
func (st *Store) UpdateLeaveStatus(leaveID string, status leave.Status, approverID string) error {
	dto := leave.UpdateLeaveStatusDTO{Status: status, ApproverID: approverID}
	if err := dto.Validate(); err != nil {
		return internal.NewValidationError(err.Error(), internal.ErrCodeInvalidStatus)
	}

	target, ok := st.State().LeaveByID(leaveID)
	if !ok {
		return internal.ErrLeaveNotFound
	}
	if target.Decided() {
		return internal.ErrLeaveAlreadyDecided
	}

	st.Dispatch(UpdateLeaveStatus{LeaveID: leaveID, Status: status, ApproverID: approverID})
	st.logger.Info("leave decided", "leave_id", leaveID, "status", status, "approver_id", approverID)
	return nil
}

// SwitchUser changes the acting identity. Unknown identifiers leave the
// state unchanged and are reported to the caller.
func (st *Store) SwitchUser(employeeID string) error {
	if _, ok := st.State().EmployeeByID(employeeID); !ok {
		return internal.ErrEmployeeNotFound
	}
	st.Dispatch(SwitchUser{EmployeeID: employeeID})
	return nil
}

// MarkNotificationRead flips the read flag. Idempotent, silent on unknown
// identifiers.
func (st *Store) MarkNotificationRead(notificationID string) {
	st.Dispatch(MarkNotificationRead{NotificationID: notificationID})
}

// ExportSnapshot serializes the full state exactly as it is persisted, so
// a backup is a byte-for-byte copy of the stored document.
func (st *Store) ExportSnapshot() ([]byte, error) {
	doc, err := json.Marshal(st.State())
	if err != nil {
		return nil, internal.NewInternalError("failed to serialize state", err)
	}
	return doc, nil
}

// ImportSnapshot replaces the whole state from pasted JSON. No merging and
// no schema validation beyond parseability; structurally unusable
// documents fall back to seed data on the next Initialize, mirroring
// startup behavior.
func (st *Store) ImportSnapshot(raw []byte) error {
	var snapshot State
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return internal.ErrImportInvalid.WithCause(err)
	}
	st.Dispatch(Initialize{Snapshot: &snapshot})
	st.logger.Info("snapshot imported", "employees", len(snapshot.Employees), "leaves", len(snapshot.Leaves))
	return nil
}

// Reset discards the persisted snapshot and reseeds the sample data.
func (st *Store) Reset() error {
	if err := st.snapshots.Delete(st.key); err != nil && !errors.Is(err, ErrSnapshotNotFound) {
		return internal.NewStorageError("failed to delete persisted snapshot", err)
	}
	st.Dispatch(Initialize{Snapshot: nil})
	return nil
}

// HasOverlap reports whether a proposed range collides with an existing
// non-rejected leave of the same employee and type.
func (st *Store) HasOverlap(employeeID, leaveType, startDate, endDate string) bool {
	return HasOverlap(st.State(), employeeID, leaveType, startDate, endDate)
}

// Filter applies a predicate set over the current leave list.
func (st *Store) Filter(f LeaveFilter) []leave.Leave {
	return FilterLeaves(st.State(), f)
}

// LeavesForDay returns leaves covering the given calendar date.
func (st *Store) LeavesForDay(date string) []leave.Leave {
	return LeavesForDay(st.State(), date)
}

// Stats summarizes the current state for dashboards.
type Stats struct {
	Employees     int
	Leaves        int
	ThisMonth     int
	ByStatus      map[leave.Status]int
	ByType        map[string]int
	ByDepartment  map[string]int
	Notifications int
}

func (st *Store) Stats(now time.Time) Stats {
	s := st.State()
	return Stats{
		Employees:     len(s.Employees),
		Leaves:        len(s.Leaves),
		ThisMonth:     LeavesInMonth(s, now.Year(), now.Month()),
		ByStatus:      CountByStatus(s),
		ByType:        CountByType(s),
		ByDepartment:  CountByDepartment(s),
		Notifications: len(s.Notifications),
	}
}
