package cli

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/dverbeek/calltrack/authenticator"
	"github.com/dverbeek/calltrack/controllers"
	"github.com/dverbeek/calltrack/database"
	"github.com/dverbeek/calltrack/logging"
	"github.com/dverbeek/calltrack/middleware"
	"github.com/dverbeek/calltrack/repositories"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			srvs, err := initServices(cmd)
			if err != nil {
				return err
			}
			defer database.CloseDB()

			repos := repositories.NewRepositories(database.GetDB())
			ctrl := controllers.NewControllers(srvs)

			auth, err := authenticator.NewOpenIDProvider(authenticator.ConfigFromEnv())
			if err != nil {
				return fmt.Errorf("failed to initialize OpenID provider: %w", err)
			}

			r, err := setupRouter(ctrl, auth, repos.RequestAudit)
			if err != nil {
				return fmt.Errorf("failed to setup router: %w", err)
			}

			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}

			logging.GetLogger().WithField("port", port).Info("Starting server")
			return http.ListenAndServe(":"+port, r)
		},
	}
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, auth authenticator.Provider, requestAuditRepo repositories.RequestAuditRepository) (*chi.Mux, error) {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(chimiddleware.Compress(5))

	useSecureCookies := os.Getenv("USE_HTTPS") == "true"

	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "calltrack_session",
		Secure:         useSecureCookies,
		Gclifetime:     3600,
		Maxlifetime:    3600,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// PUBLIC ROUTES (no authentication required)
	r.Get("/login", ctrl.Auth.Login(auth))
	r.Get("/callback", ctrl.Auth.Callback(auth))
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "calltrack"}`)
	})

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequestAudit(requestAuditRepo))

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", ctrl.Employee.Index)
			r.Post("/", ctrl.Employee.Create)
			r.Get("/{id}", ctrl.Employee.Show)
			r.Put("/{id}", ctrl.Employee.Update)
			r.Delete("/{id}", ctrl.Employee.Deactivate)
		})

		r.Route("/call-logs", func(r chi.Router) {
			r.Get("/", ctrl.CallLog.Index)
			r.Post("/", ctrl.CallLog.Ingest)
			r.Post("/bulk", ctrl.CallLog.BulkIngest)
			r.Post("/import", ctrl.CallLog.ImportCSV)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", ctrl.Attendance.Index)
			r.Post("/run", ctrl.Attendance.Run)
			r.Post("/manual", ctrl.Attendance.ManualUpdate)
			r.Post("/reset", ctrl.Attendance.ResetOverride)
			r.Get("/summary", ctrl.Attendance.Summary)
			r.Get("/audit", ctrl.Attendance.AuditTrail)
		})

		r.Route("/config/thresholds", func(r chi.Router) {
			r.Get("/", ctrl.Config.Show)
			r.Post("/", ctrl.Config.Activate)
			r.Get("/history", ctrl.Config.History)
		})

		r.Route("/calendar", func(r chi.Router) {
			r.Get("/pattern", ctrl.Calendar.Pattern)
			r.Put("/pattern", ctrl.Calendar.UpdatePattern)
			r.Get("/holidays", ctrl.Calendar.Holidays)
			r.Post("/holidays", ctrl.Calendar.AddHoliday)
			r.Delete("/holidays/{id}", ctrl.Calendar.RemoveHoliday)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", ctrl.Expense.Index)
			r.Post("/", ctrl.Expense.Create)
			r.Get("/categories", ctrl.Expense.Categories)
			r.Post("/categories", ctrl.Expense.CreateCategory)
			r.Put("/categories/{id}", ctrl.Expense.UpdateCategory)
			r.Get("/reimbursements", ctrl.Expense.Reimbursements)
			r.Post("/reimbursements", ctrl.Expense.CreateReimbursement)
			r.Post("/reimbursements/{id}/settle", ctrl.Expense.SettleReimbursement)
			r.Get("/{id}", ctrl.Expense.Show)
			r.Put("/{id}", ctrl.Expense.Update)
			r.Post("/{id}/submit", ctrl.Expense.Submit)
			r.Post("/{id}/approve", ctrl.Expense.Approve)
			r.Post("/{id}/reject", ctrl.Expense.Reject)
		})

		r.Route("/permissions", func(r chi.Router) {
			r.Get("/", ctrl.Permission.Catalog)
			r.Post("/grant", ctrl.Permission.Grant)
			r.Post("/revoke", ctrl.Permission.Revoke)
			r.Get("/employees/{id}", ctrl.Permission.ForEmployee)
			r.Put("/employees/{id}", ctrl.Permission.ReplaceAll)
		})
	})

	return r, nil
}
