package web

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"smartchat/internal/attach"
	"smartchat/internal/llm"
	"smartchat/internal/store"
	"smartchat/internal/uploads"
)

// maxUploadBytes caps the multipart form held in memory per send.
const maxUploadBytes = 32 << 20

type pageData struct {
	LoggedIn    bool
	Username    string
	Provider    string
	Providers   []string
	ProviderOK  bool
	ProviderErr string
	Model       string
	Notice      string
	Error       string
	History     []store.Exchange
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	sess := s.sessionFor(w, r)

	data := pageData{
		LoggedIn:  sess.LoggedIn,
		Username:  sess.Username,
		Provider:  sess.Provider,
		Providers: llm.Providers(),
		Notice:    r.URL.Query().Get("notice"),
		Error:     r.URL.Query().Get("error"),
		History:   sess.History,
	}

	// Resolve the selected provider so a bad credential shows as a
	// persistent banner instead of failing the next send.
	if _, model, err := s.gateway.CreateClient(sess.Provider); err != nil {
		data.ProviderErr = err.Error()
	} else {
		data.ProviderOK = true
		data.Model = model
	}

	if err := s.tmpl.Execute(w, data); err != nil {
		log.Printf("failed to render page: %v", err)
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.sessionFor(w, r)

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		redirectWith(w, r, "error", "Enter both username and password.")
		return
	}

	ok, err := s.svc.Register(r.Context(), sess, username, password)
	if err != nil {
		log.Printf("register failed: %v", err)
		http.Error(w, "registration unavailable", http.StatusInternalServerError)
		return
	}
	if !ok {
		redirectWith(w, r, "error", "Username exists. Try login.")
		return
	}
	redirectWith(w, r, "notice", "Registered & logged in!")
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.sessionFor(w, r)

	ok, err := s.svc.Login(r.Context(), sess, r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		log.Printf("login failed: %v", err)
		http.Error(w, "login unavailable", http.StatusInternalServerError)
		return
	}
	if !ok {
		redirectWith(w, r, "error", "Invalid credentials.")
		return
	}
	redirectWith(w, r, "notice", "Welcome, "+sess.Username+"!")
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.sessionFor(w, r)
	sess.Logout()
	redirectWith(w, r, "", "")
}

func (s *Server) handleProvider(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.sessionFor(w, r)

	choice := r.FormValue("provider")
	for _, p := range llm.Providers() {
		if choice == p {
			sess.Provider = p
			break
		}
	}
	redirectWith(w, r, "", "")
}

func (s *Server) handleSend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.sessionFor(w, r)
	if !sess.LoggedIn {
		redirectWith(w, r, "error", "Please login or register to start chatting.")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		redirectWith(w, r, "error", "Could not read the message form.")
		return
	}
	text := strings.TrimSpace(r.FormValue("message"))
	if text == "" {
		redirectWith(w, r, "error", "Please type a message.")
		return
	}

	file, err := s.readAttachment(r)
	if err != nil {
		redirectWith(w, r, "error", "Could not read the attachment.")
		return
	}

	res, err := s.svc.Send(r.Context(), sess, text, file)
	if err != nil {
		var cfgErr *llm.ConfigurationError
		if errors.As(err, &cfgErr) {
			redirectWith(w, r, "error", cfgErr.Reason)
			return
		}
		log.Printf("send failed: %v", err)
		http.Error(w, "message could not be processed", http.StatusInternalServerError)
		return
	}

	if res.ProviderErr != nil {
		if llm.IsSoftFailure(res.ProviderErr) {
			redirectWith(w, r, "notice", "The provider rejected the request (quota or auth). A fallback answer was recorded.")
		} else {
			redirectWith(w, r, "error", "API error: "+res.ProviderErr.Error())
		}
		return
	}
	redirectWith(w, r, "", "")
}

// readAttachment pulls the optional upload out of the form and keeps a copy
// on disk, the way the original uploads folder worked.
func (s *Server) readAttachment(r *http.Request) (*attach.File, error) {
	f, header, err := r.FormFile("attachment")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if _, err := uploads.Save(s.uploadDir, header.Filename, data); err != nil {
		log.Printf("failed to keep upload copy: %v", err)
	}
	return &attach.File{
		Name:     header.Filename,
		MIMEType: header.Header.Get("Content-Type"),
		Data:     data,
	}, nil
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	sess := s.sessionFor(w, r)
	if !sess.LoggedIn {
		redirectWith(w, r, "", "")
		return
	}

	if err := s.svc.DeleteHistory(r.Context(), sess); err != nil {
		log.Printf("delete history failed: %v", err)
		http.Error(w, "history could not be deleted", http.StatusInternalServerError)
		return
	}
	redirectWith(w, r, "notice", "Chat history deleted!")
}
