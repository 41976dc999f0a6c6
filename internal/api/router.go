package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yenaing-dev/schoolnet/internal/cache"
	"github.com/yenaing-dev/schoolnet/internal/config"
	"github.com/yenaing-dev/schoolnet/internal/engine"
	"github.com/yenaing-dev/schoolnet/internal/events"
	"github.com/yenaing-dev/schoolnet/internal/store"
)

func NewRouter(s store.Store, ev events.Client, ca *cache.Cache, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(240))

	students := NewStudentsHandler(s, ev, ca)
	centers := NewCentersHandler(s)
	teachers := NewTeachersHandler(s)
	years := NewYearsHandler(s)
	exams := NewExamsHandler(s, engine.NewBuilder(s), ev, ca)
	dashboard := NewDashboardHandler(s, ca)
	uploads := NewUploadsHandler(s, cfg.Uploads.Dir, cfg.Uploads.BaseURL, logger)

	r.Get("/info", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"msg": "schoolnet platform"})
	})

	uploads.ServeFiles(r)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/students", students.List)
		r.Post("/students", students.Create)
		r.Get("/students/{id}", students.Get)
		r.Put("/students/{id}", students.Update)

		r.Get("/centers", centers.List)
		r.Post("/centers", centers.Create)
		r.Get("/centers/{id}", centers.Get)
		r.Put("/centers/{id}", centers.Update)
		r.Get("/centers/{id}/students", students.ListByCenter)
		r.Get("/centers/{id}/exam-results", exams.ListByCenter)

		r.Get("/teachers", teachers.List)
		r.Post("/teachers", teachers.Create)
		r.Put("/teachers/{id}", teachers.Update)

		r.Get("/academic-years", years.List)
		r.Put("/academic-years/{id}", years.UpdateStatus)

		r.Post("/exam-results", exams.Submit)
		r.Get("/exam-results", exams.List)
		r.Get("/exam-results/{id}", exams.Get)

		r.Get("/dashboard/totals", dashboard.Totals)
		r.Get("/dashboard/students/by-academic-year", dashboard.StudentsByAcademicYear)
		r.Get("/dashboard/students/by-grade", dashboard.StudentsByGrade)
		r.Get("/dashboard/students/by-gender", dashboard.StudentsByGender)
		r.Get("/dashboard/students/kids-club-by-center", dashboard.KidsClubByCenter)
		r.Get("/dashboard/grade-distribution", dashboard.GradeDistribution)

		r.Post("/profile-images", uploads.Upload)

		// Destructive routes sit behind the admin token.
		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.Server.AdminToken))
			r.Delete("/students/{id}", students.Delete)
			r.Delete("/centers/{id}", centers.Delete)
			r.Delete("/teachers/{id}", teachers.Delete)
			r.Delete("/exam-results/{id}", exams.Delete)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
