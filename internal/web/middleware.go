package web

import "net/http"

// requireSession gates the authenticated pages. While the session state is
// still loading it renders a neutral page instead of redirecting; only a
// settled Anonymous state sends the browser to /login.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := s.validateSessionCookie(r); err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		snap := s.sessions.Snapshot()
		if snap.IsLoading {
			s.render(w, http.StatusOK, "loading.html", s.newPageData())
			return
		}
		if !snap.IsAuthenticated {
			// Cookie present but no live session, e.g. after a restart:
			// revalidate the persisted token before deciding.
			s.sessions.CheckSession(r.Context())
			snap = s.sessions.Snapshot()
		}
		if !snap.IsAuthenticated {
			s.clearSessionCookie(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// redirectIfAuthenticated keeps signed-in users away from the auth pages.
func (s *Server) redirectIfAuthenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := s.validateSessionCookie(r); err == nil {
			if s.sessions.Snapshot().IsAuthenticated {
				http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
				return
			}
		}
		next(w, r)
	}
}
