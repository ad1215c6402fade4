package http

import (
	"net/http"
	"path/filepath"

	"folio/internal/auth"
	"folio/internal/blog"
	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/http/handler"
	mw "folio/internal/http/middleware"
	"folio/internal/planner"
	"folio/internal/prep"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

func NewRouter(cfg config.Config, db *gorm.DB, session *auth.Session) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	store := &content.Store{DB: db}
	resolver := &content.Resolver{Dir: cfg.ContentDir}
	if cfg.UseDatabase {
		resolver.Store = store
	}

	// Public blog reads follow the configured source; admin reads and all
	// writes go through the relational store.
	dbSource := &blog.DBSource{DB: db}
	var publicSource blog.Source = dbSource
	if !cfg.UseDatabase {
		publicSource = &blog.FileSource{Dir: filepath.Join(cfg.ContentDir, "blog")}
	}

	contentH := &handler.ContentHandler{Resolver: resolver, Store: store}
	blogH := &handler.BlogHandler{
		Public: &blog.ReadModel{Source: publicSource},
		Admin:  &blog.ReadModel{Source: dbSource},
		Svc:    &blog.Service{DB: db},
	}

	plannerSvc := &planner.Service{DB: db}
	calendarH := &handler.CalendarHandler{Svc: plannerSvc}
	journalH := &handler.JournalHandler{Svc: plannerSvc}
	financeH := &handler.FinanceHandler{Svc: plannerSvc}
	itemH := &handler.ItemHandler{Svc: plannerSvc}
	prepH := &handler.PrepHandler{Svc: &prep.Service{DB: db}}
	authH := &handler.AuthHandler{PasswordHash: cfg.AdminPasswordHash, Session: session}

	// public surface
	r.Get("/api/content/{pageType}", contentH.Get)
	r.Route("/api/blog", func(r chi.Router) {
		r.Get("/posts", blogH.ListPublic)
		r.Get("/posts/{slug}", blogH.GetPublic)
		r.Get("/tags", blogH.Tags)
		r.Get("/categories", blogH.Categories)
	})
	r.Get("/api/prep/paths", prepH.Tree)

	r.Post("/api/admin/auth", authH.Login)

	// admin surface
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.RequireAdmin(session))

		r.Get("/session", authH.Check)

		r.Get("/content/{pageType}", contentH.Get)
		r.Put("/content/{pageType}", contentH.Put)

		r.Route("/blog/posts", func(r chi.Router) {
			r.Get("/", blogH.ListAdmin)
			r.Post("/", blogH.Create)
			r.Get("/{slug}", blogH.GetAdmin)
			r.Put("/{slug}", blogH.Update)
			r.Delete("/{slug}", blogH.Delete)
		})

		r.Route("/planner", func(r chi.Router) {
			r.Route("/events", func(r chi.Router) {
				r.Get("/", calendarH.List)
				r.Post("/", calendarH.Create)
				r.Get("/{id}", calendarH.Get)
				r.Put("/{id}", calendarH.Update)
				r.Delete("/{id}", calendarH.Delete)
			})

			r.Route("/journal", func(r chi.Router) {
				r.Get("/", journalH.List)
				r.Post("/", journalH.Create)
				r.Get("/{id}", journalH.Get)
				r.Put("/{id}", journalH.Update)
				r.Delete("/{id}", journalH.Delete)
			})

			r.Route("/finances", func(r chi.Router) {
				r.Get("/", financeH.List)
				r.Post("/", financeH.Create)
				r.Get("/analytics", financeH.Analytics)
				r.Get("/{id}", financeH.Get)
				r.Put("/{id}", financeH.Update)
				r.Delete("/{id}", financeH.Delete)
			})

			r.Route("/items", func(r chi.Router) {
				r.Get("/", itemH.List)
				r.Post("/", itemH.Create)
				r.Get("/{id}", itemH.Get)
				r.Put("/{id}", itemH.Update)
				r.Delete("/{id}", itemH.Delete)
			})
		})

		r.Route("/prep", func(r chi.Router) {
			r.Route("/paths", func(r chi.Router) {
				r.Get("/", prepH.ListPaths)
				r.Post("/", prepH.CreatePath)
				r.Get("/{id}", prepH.GetPath)
				r.Put("/{id}", prepH.UpdatePath)
				r.Delete("/{id}", prepH.DeletePath)
			})

			r.Route("/topics", func(r chi.Router) {
				r.Get("/", prepH.ListTopics)
				r.Post("/", prepH.CreateTopic)
				r.Get("/{id}", prepH.GetTopic)
				r.Put("/{id}", prepH.UpdateTopic)
				r.Delete("/{id}", prepH.DeleteTopic)
			})

			r.Route("/questions", func(r chi.Router) {
				r.Get("/", prepH.ListQuestions)
				r.Post("/", prepH.CreateQuestion)
				r.Get("/{id}", prepH.GetQuestion)
				r.Put("/{id}", prepH.UpdateQuestion)
				r.Delete("/{id}", prepH.DeleteQuestion)
			})

			r.Route("/resources", func(r chi.Router) {
				r.Get("/", prepH.ListResources)
				r.Post("/", prepH.CreateResource)
				r.Get("/{id}", prepH.GetResource)
				r.Put("/{id}", prepH.UpdateResource)
				r.Delete("/{id}", prepH.DeleteResource)
			})
		})
	})

	return r
}
