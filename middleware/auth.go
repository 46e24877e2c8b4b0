package middleware

import (
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/dverbeek/calltrack/userctx"
)

// RequireAuth ensures the request carries an authenticated session and puts
// the acting employee's identity on the request context
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		employeeID, ok := sess.Get("employee_id").(int)
		if !ok || employeeID == 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "authentication required"}`))
			return
		}

		ctx := userctx.SetActorID(r.Context(), employeeID)
		if email, ok := sess.Get("employee_email").(string); ok {
			ctx = userctx.SetActorEmail(ctx, email)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
