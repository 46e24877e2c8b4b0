package models

import "time"

// RequestAuditEntry represents a single HTTP mutation event
type RequestAuditEntry struct {
	ID        int64
	Timestamp time.Time
	ActorID   int
	UserEmail string
	Method    string
	Path      string
	FormData  string
	UserAgent string
	IPAddress string
}
