package web

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"smartchat/internal/chat"
	"smartchat/internal/session"
)

const sessionCookie = "smartchat_session"

// Server is the form-based browser surface: register/login, send with an
// optional attachment, view and delete the transcript.
type Server struct {
	svc       *chat.Service
	sessions  *session.Manager
	gateway   chat.Gateway
	uploadDir string
	addr      string
	server    *http.Server
	tmpl      *template.Template
}

func New(svc *chat.Service, sessions *session.Manager, gateway chat.Gateway, uploadDir, addr string) *Server {
	return &Server{
		svc:       svc,
		sessions:  sessions,
		gateway:   gateway,
		uploadDir: uploadDir,
		addr:      addr,
		tmpl:      template.Must(template.New("page").Parse(pageTemplate)),
	}
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/register", s.handleRegister)
	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/logout", s.handleLogout)
	mux.HandleFunc("/provider", s.handleProvider)
	mux.HandleFunc("/send", s.handleSend)
	mux.HandleFunc("/delete", s.handleDelete)
	mux.HandleFunc("/", s.handleIndex)
	return mux
}

func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.routes(),
		// Generous write timeout: a send blocks on the provider call.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("starting chat web server on %s", s.addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// sessionFor resolves the request's cookie to a live session, minting a new
// session and cookie when none exists.
func (s *Server) sessionFor(w http.ResponseWriter, r *http.Request) *session.Session {
	var id string
	if c, err := r.Cookie(sessionCookie); err == nil {
		id = c.Value
	}
	sess := s.sessions.GetOrCreate(id)
	if sess.ID != id {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
		})
	}
	return sess
}

func redirectWith(w http.ResponseWriter, r *http.Request, key, msg string) {
	target := "/"
	if msg != "" {
		target = fmt.Sprintf("/?%s=%s", key, template.URLQueryEscaper(msg))
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
