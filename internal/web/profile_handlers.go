package web

import (
	"net/http"

	"github.com/rogerio-castellano/catalog-dashboard/internal/apiclient"
	"github.com/rogerio-castellano/catalog-dashboard/internal/models"
)

func (s *Server) profilePage(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "profile.html", s.newPageData())
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	data := s.newPageData()

	profile := models.UserProfile{
		Login:     r.FormValue("login"),
		Email:     r.FormValue("email"),
		Nom:       r.FormValue("nom"),
		Prenom:    r.FormValue("prenom"),
		Telephone: r.FormValue("telephone"),
		Adresse:   r.FormValue("adresse"),
	}
	if data.User != nil {
		profile.ID = data.User.ID
	}

	updated, err := s.api.UpdateProfile(r.Context(), profile)
	if err != nil {
		data.Error = err.Error()
		s.render(w, http.StatusBadRequest, "profile.html", data)
		return
	}

	s.sessions.UpdateUser(updated)
	data.User = &updated
	data.Success = "Profil mis à jour avec succès."
	s.render(w, http.StatusOK, "profile.html", data)
}

func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	data := s.newPageData()

	newPassword := r.FormValue("newPassword")
	confirm := r.FormValue("confirmPassword")
	if newPassword == "" || newPassword != confirm {
		data.Error = "Les mots de passe ne correspondent pas"
		s.render(w, http.StatusBadRequest, "profile.html", data)
		return
	}

	resp, err := s.api.UpdatePassword(r.Context(), apiclient.UpdatePasswordRequest{
		CurrentPassword: r.FormValue("currentPassword"),
		NewPassword:     newPassword,
		ConfirmPassword: confirm,
	})
	if err != nil {
		data.Error = err.Error()
		s.render(w, http.StatusBadRequest, "profile.html", data)
		return
	}
	data.Success = resp.Message
	s.render(w, http.StatusOK, "profile.html", data)
}

func (s *Server) handleUploadProfileImage(w http.ResponseWriter, r *http.Request) {
	data := s.newPageData()

	file, header, err := r.FormFile("image")
	if err != nil {
		data.Error = "Aucune image sélectionnée"
		s.render(w, http.StatusBadRequest, "profile.html", data)
		return
	}
	defer file.Close()

	resp, err := s.api.UploadProfileImage(r.Context(), header.Filename, file)
	if err != nil {
		data.Error = err.Error()
		s.render(w, http.StatusBadRequest, "profile.html", data)
		return
	}

	// Refresh the cached profile so the new image shows immediately.
	s.sessions.CheckSession(r.Context())
	data.User = s.sessions.Snapshot().CurrentUser
	data.Success = resp.Message
	s.render(w, http.StatusOK, "profile.html", data)
}
