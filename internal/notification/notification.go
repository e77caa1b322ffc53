package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification targets a user by weak reference; lookups against a missing
// user degrade gracefully instead of failing.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func New(userID, message string, severity Severity) Notification {
	return Notification{
		ID:        fmt.Sprintf("notif_%s", uuid.NewString()),
		UserID:    userID,
		Message:   message,
		Severity:  severity,
		Read:      false,
		CreatedAt: time.Now(),
	}
}
