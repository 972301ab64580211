package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/erphq/hrm-backend-go/internal/domain/capability"
	"github.com/erphq/hrm-backend-go/internal/handler/http/middleware"
)

// Handlers bundles the resource controllers the router wires up.
type Handlers struct {
	Employee     *EmployeeHandler
	Experience   *ExperienceHandler
	Education    *EducationHandler
	Dependent    *DependentHandler
	Leave        *LeaveHandler
	Note         *NoteHandler
	Performance  *PerformanceHandler
	History      *HistoryHandler
	Announcement *AnnouncementHandler
}

// route pairs a path and method with the capability required to call it.
// One central authorization step checks the capability before the handler
// runs; handlers never re-check route-level permissions themselves.
type route struct {
	method     string
	pattern    string
	capability string
	handler    http.HandlerFunc
}

func routes(h Handlers) []route {
	return []route{
		{http.MethodGet, "/", capability.ListEmployee, h.Employee.List},
		{http.MethodPost, "/", capability.CreateEmployee, h.Employee.Create},
		{http.MethodPost, "/bulk", capability.CreateEmployee, h.Employee.BulkCreate},
		{http.MethodGet, "/{id}", capability.ListEmployee, h.Employee.Get},
		{http.MethodPut, "/{id}", capability.EditEmployee, h.Employee.Update},
		{http.MethodPatch, "/{id}", capability.EditEmployee, h.Employee.Update},
		{http.MethodDelete, "/{id}", capability.DeleteEmployee, h.Employee.Delete},

		{http.MethodGet, "/{id}/experiences", capability.ListEmployee, h.Experience.List},
		{http.MethodPost, "/{id}/experiences", capability.EditEmployee, h.Experience.Create},
		{http.MethodGet, "/{id}/experiences/{exp_id}", capability.ListEmployee, h.Experience.Get},
		{http.MethodPut, "/{id}/experiences/{exp_id}", capability.EditEmployee, h.Experience.Update},
		{http.MethodDelete, "/{id}/experiences/{exp_id}", capability.EditEmployee, h.Experience.Delete},

		{http.MethodGet, "/{id}/educations", capability.ListEmployee, h.Education.List},
		{http.MethodPost, "/{id}/educations", capability.EditEmployee, h.Education.Create},
		{http.MethodGet, "/{id}/educations/{edu_id}", capability.ListEmployee, h.Education.Get},
		{http.MethodPut, "/{id}/educations/{edu_id}", capability.EditEmployee, h.Education.Update},
		{http.MethodDelete, "/{id}/educations/{edu_id}", capability.EditEmployee, h.Education.Delete},

		{http.MethodGet, "/{id}/dependents", capability.ListEmployee, h.Dependent.List},
		{http.MethodPost, "/{id}/dependents", capability.EditEmployee, h.Dependent.Create},
		{http.MethodGet, "/{id}/dependents/{dep_id}", capability.ListEmployee, h.Dependent.Get},
		{http.MethodPut, "/{id}/dependents/{dep_id}", capability.EditEmployee, h.Dependent.Update},
		{http.MethodDelete, "/{id}/dependents/{dep_id}", capability.EditEmployee, h.Dependent.Delete},

		{http.MethodGet, "/{id}/policies", capability.ListEmployee, h.Leave.Policies},
		{http.MethodGet, "/{id}/leaves", capability.ListEmployee, h.Leave.List},
		{http.MethodPost, "/{id}/leaves", capability.EditEmployee, h.Leave.Create},
		{http.MethodGet, "/{id}/events", capability.ListEmployee, h.Leave.Events},

		{http.MethodGet, "/{id}/notes", capability.ListEmployee, h.Note.List},
		{http.MethodPost, "/{id}/notes", capability.EditEmployee, h.Note.Create},
		{http.MethodDelete, "/{id}/notes/{note_id}", capability.EditEmployee, h.Note.Delete},

		{http.MethodGet, "/{id}/performances", capability.ListEmployee, h.Performance.List},
		{http.MethodPost, "/{id}/performances", capability.EditEmployee, h.Performance.Create},
		{http.MethodDelete, "/{id}/performances/{performance_id}", capability.EditEmployee, h.Performance.Delete},

		{http.MethodGet, "/{id}/histories", capability.ListEmployee, h.History.List},
		{http.MethodPost, "/{id}/histories", capability.EditEmployee, h.History.Create},
		{http.MethodDelete, "/{id}/histories/{history_id}", capability.EditEmployee, h.History.Delete},

		{http.MethodGet, "/{id}/roles", capability.HRManager, h.Employee.Roles},
		{http.MethodPut, "/{id}/roles", capability.HRManager, h.Employee.UpdateRoles},

		{http.MethodPut, "/{id}/terminate", capability.HRManager, h.Employee.Terminate},

		{http.MethodGet, "/{id}/announcements", capability.ListEmployee, h.Announcement.List},
		{http.MethodPut, "/{id}/announcements", capability.ListEmployee, h.Announcement.MarkRead},
	}
}

func NewRouter(tokenAuth *jwtauth.JWTAuth, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrm-backend"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Location"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/erp/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenAuth))
			r.Use(middleware.AuthRequired(tokenAuth))

			r.Route("/hrm/employees", func(r chi.Router) {
				for _, rt := range routes(h) {
					r.With(middleware.RequireCapability(rt.capability)).
						Method(rt.method, rt.pattern, rt.handler)
				}
			})
		})
	})

	return r
}
