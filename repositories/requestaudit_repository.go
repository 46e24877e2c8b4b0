package repositories

import (
	"database/sql"
	"time"

	"github.com/dverbeek/calltrack/models"
)

// RequestAuditRepository handles HTTP mutation audit log persistence
type RequestAuditRepository interface {
	Create(entry *models.RequestAuditEntry) error
}

type sqliteRequestAuditRepository struct {
	db *sql.DB
}

// NewRequestAuditRepository creates a new request audit repository
func NewRequestAuditRepository(db *sql.DB) RequestAuditRepository {
	return &sqliteRequestAuditRepository{db: db}
}

// Create inserts a new request audit log entry
func (r *sqliteRequestAuditRepository) Create(entry *models.RequestAuditEntry) error {
	query := `
		INSERT INTO request_audit_log (timestamp, actor_id, user_email, method, path, form_data, user_agent, ip_address)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(
		query,
		time.Now(),
		entry.ActorID,
		entry.UserEmail,
		entry.Method,
		entry.Path,
		entry.FormData,
		entry.UserAgent,
		entry.IPAddress,
	)

	return err
}
