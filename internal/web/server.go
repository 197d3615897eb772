// Package web serves the dashboard pages and translates form submissions
// into session and product-controller operations. Errors render as inline
// alert banners next to the relevant form; success messages are transient.
package web

import (
	"embed"
	"html/template"
	"log"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/catalog-dashboard/internal/apiclient"
	"github.com/rogerio-castellano/catalog-dashboard/internal/config"
	"github.com/rogerio-castellano/catalog-dashboard/internal/models"
	"github.com/rogerio-castellano/catalog-dashboard/internal/products"
	"github.com/rogerio-castellano/catalog-dashboard/internal/session"
	"github.com/rogerio-castellano/catalog-dashboard/internal/store"
	"github.com/rogerio-castellano/catalog-dashboard/internal/web/ratelimit"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Server struct {
	cfg      *config.Config
	api      *apiclient.Client
	sessions *session.Manager
	products *products.Controller
	prefs    store.Store
	limiter  *ratelimit.Limiter
	tmpl     *template.Template
}

func NewServer(
	cfg *config.Config,
	api *apiclient.Client,
	sessions *session.Manager,
	controller *products.Controller,
	prefs store.Store,
	limiter *ratelimit.Limiter,
) (*Server, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Server{
		cfg:      cfg,
		api:      api,
		sessions: sessions,
		products: controller,
		prefs:    prefs,
		limiter:  limiter,
		tmpl:     tmpl,
	}, nil
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.healthz)

	r.Get("/login", s.redirectIfAuthenticated(s.loginPage))
	r.Post("/login", s.handleLogin)
	r.Post("/logout", s.handleLogout)
	r.Get("/register", s.redirectIfAuthenticated(s.registerPage))
	r.Post("/register", s.handleRegister)
	r.Get("/forgot-password", s.forgotPasswordPage)
	r.Post("/forgot-password", s.handleForgotPassword)
	r.Get("/reset-password/{token}", s.resetPasswordPage)
	r.Post("/reset-password/{token}", s.handleResetPassword)
	r.Post("/theme/toggle", s.handleThemeToggle)

	r.Group(func(pr chi.Router) {
		pr.Use(s.requireSession)
		pr.Get("/dashboard", s.dashboardPage)
		pr.Post("/products", s.handleCreateProduct)
		pr.Post("/products/{id}", s.handleUpdateProduct)
		pr.Post("/products/{id}/delete", s.handleDeleteProduct)
		pr.Get("/profile", s.profilePage)
		pr.Post("/profile", s.handleUpdateProfile)
		pr.Post("/profile/password", s.handleUpdatePassword)
		pr.Post("/profile/image", s.handleUploadProfileImage)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	})

	return r
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// pageData is the shared template payload: current theme, signed-in user, and
// the inline alert banners.
type pageData struct {
	Theme   string
	User    *models.UserProfile
	Error   string
	Success string
}

func (s *Server) newPageData() pageData {
	theme := s.prefs.Get(store.ThemeKey)
	if theme == "" {
		theme = s.cfg.DefaultTheme
	}
	return pageData{
		Theme: theme,
		User:  s.sessions.Snapshot().CurrentUser,
	}
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("failed to render %s: %v", name, err)
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
