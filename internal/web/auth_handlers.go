package web

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/catalog-dashboard/internal/apiclient"
	"github.com/rogerio-castellano/catalog-dashboard/internal/models"
	"github.com/rogerio-castellano/catalog-dashboard/internal/store"
)

type loginData struct {
	pageData
	Login string
}

type registerData struct {
	pageData
	Form map[string]string
}

type resetPasswordData struct {
	pageData
	Token string
}

func (s *Server) loginPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "login.html", loginData{pageData: s.newPageData()})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	data := loginData{pageData: s.newPageData()}

	if !s.limiter.Allow(clientIP(r)) {
		data.Error = "Too many login attempts. Please try again later."
		s.render(w, http.StatusTooManyRequests, "login.html", data)
		return
	}

	creds := models.Credentials{
		Login:    r.FormValue("login"),
		Password: r.FormValue("password"),
	}
	data.Login = creds.Login

	result := s.sessions.Login(r.Context(), creds)
	if !result.Success {
		data.Error = result.Message
		s.render(w, http.StatusUnauthorized, "login.html", data)
		return
	}

	if err := s.issueSessionCookie(w, creds.Login); err != nil {
		log.Printf("failed to issue session cookie: %v", err)
		data.Error = "Une erreur est survenue"
		s.render(w, http.StatusInternalServerError, "login.html", data)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Logout()
	s.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) registerPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "register.html", registerData{pageData: s.newPageData()})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	req := apiclient.RegistrationRequest{
		Login:     r.FormValue("login"),
		Email:     r.FormValue("email"),
		Password:  r.FormValue("password"),
		Nom:       r.FormValue("nom"),
		Prenom:    r.FormValue("prenom"),
		Telephone: r.FormValue("telephone"),
		Adresse:   r.FormValue("adresse"),
	}

	resp, err := s.api.Register(r.Context(), req)
	if err != nil {
		data := registerData{pageData: s.newPageData(), Form: registrationForm(req)}
		data.Error = err.Error()
		s.render(w, http.StatusBadRequest, "register.html", data)
		return
	}

	// No token is stored at registration; the user signs in next.
	data := loginData{pageData: s.newPageData(), Login: req.Login}
	data.Success = resp.Message
	if data.Success == "" {
		data.Success = "Compte créé avec succès. Vous pouvez vous connecter."
	}
	s.render(w, http.StatusOK, "login.html", data)
}

func registrationForm(req apiclient.RegistrationRequest) map[string]string {
	return map[string]string{
		"login":     req.Login,
		"email":     req.Email,
		"nom":       req.Nom,
		"prenom":    req.Prenom,
		"telephone": req.Telephone,
		"adresse":   req.Adresse,
	}
}

func (s *Server) forgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "forgot_password.html", s.newPageData())
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	data := s.newPageData()

	resp, err := s.api.ForgotPassword(r.Context(), r.FormValue("email"))
	if err != nil {
		data.Error = err.Error()
		s.render(w, http.StatusBadRequest, "forgot_password.html", data)
		return
	}
	data.Success = resp.Message
	s.render(w, http.StatusOK, "forgot_password.html", data)
}

func (s *Server) resetPasswordPage(w http.ResponseWriter, r *http.Request) {
	data := resetPasswordData{pageData: s.newPageData(), Token: chi.URLParam(r, "token")}
	s.render(w, http.StatusOK, "reset_password.html", data)
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	data := resetPasswordData{pageData: s.newPageData(), Token: chi.URLParam(r, "token")}

	password := r.FormValue("password")
	confirm := r.FormValue("confirmPassword")
	if password == "" || password != confirm {
		data.Error = "Les mots de passe ne correspondent pas"
		s.render(w, http.StatusBadRequest, "reset_password.html", data)
		return
	}

	resp, err := s.api.ResetPassword(r.Context(), data.Token, apiclient.ResetPasswordRequest{
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		data.Error = err.Error()
		s.render(w, http.StatusBadRequest, "reset_password.html", data)
		return
	}

	login := loginData{pageData: s.newPageData()}
	login.Success = resp.Message
	s.render(w, http.StatusOK, "login.html", login)
}

func (s *Server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	theme := s.prefs.Get(store.ThemeKey)
	if theme == "dark" {
		theme = "light"
	} else {
		theme = "dark"
	}
	s.prefs.Set(store.ThemeKey, theme)

	target := r.Header.Get("Referer")
	if target == "" {
		target = "/dashboard"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
