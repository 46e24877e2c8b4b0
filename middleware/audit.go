package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dverbeek/calltrack/logging"
	"github.com/dverbeek/calltrack/models"
	"github.com/dverbeek/calltrack/repositories"
	"github.com/dverbeek/calltrack/userctx"
)

// maxAuditBodyBytes caps how much of a request body is captured
const maxAuditBodyBytes = 4096

// RequestAudit middleware records all POST/PUT/DELETE requests
func RequestAudit(auditRepo repositories.RequestAuditRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodDelete {
				entry := &models.RequestAuditEntry{
					Timestamp: time.Now(),
					ActorID:   userctx.GetActorID(r.Context()),
					UserEmail: userctx.GetActorEmail(r.Context()),
					Method:    r.Method,
					Path:      r.URL.Path,
					FormData:  captureBody(r),
					UserAgent: r.UserAgent(),
					IPAddress: getIPAddress(r),
				}

				// Log asynchronously to avoid blocking the request
				go func() {
					if err := auditRepo.Create(entry); err != nil {
						logging.GetLogger().WithError(err).Error("Failed to create request audit entry")
					}
				}()
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getIPAddress extracts the client IP, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

// captureBody reads up to maxAuditBodyBytes of the request body and restores
// it so handlers can still decode it
func captureBody(r *http.Request) string {
	if r.Body == nil {
		return ""
	}

	buf, err := io.ReadAll(io.LimitReader(r.Body, maxAuditBodyBytes))
	if err != nil {
		return ""
	}
	r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(buf), r.Body))

	return string(buf)
}
