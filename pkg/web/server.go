// Package web serves the wizard as HTML pages, one in-memory wizard state
// per browser session.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/jaspreet-dot-casa/payload-deploy/pkg/config"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/deploylink"
	"github.com/jaspreet-dot-casa/payload-deploy/pkg/wizard"
)

const (
	// SessionCookie names the cookie carrying the session id.
	SessionCookie = "paydeploy_session"

	// DefaultAddr is where Serve listens unless told otherwise.
	DefaultAddr = "127.0.0.1:8080"

	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Options configures a Server.
type Options struct {
	Addr        string
	MaxSessions int

	// SecretFunc generates each session's secret. Defaults to wizard.GenerateSecret.
	SecretFunc func() string
}

// Server is the browser front-end of the wizard.
type Server struct {
	addr       string
	template   config.Template
	sessions   *SessionStore
	httpServer *http.Server
}

// NewServer creates a server rendering tpl.
func NewServer(tpl config.Template, opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.SecretFunc == nil {
		opts.SecretFunc = wizard.GenerateSecret
	}

	s := &Server{
		addr:     opts.Addr,
		template: tpl,
		sessions: NewSessionStore(opts.MaxSessions, func() *wizard.State {
			return wizard.NewStateWithSecret(tpl.DefaultProjectName, opts.SecretFunc())
		}),
	}
	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// URL returns the address as a browsable URL. After Listen it reflects
// the bound address, including a kernel-assigned port.
func (s *Server) URL() string {
	return "http://" + s.addr + "/"
}

// Handler returns the routed, logged HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /advance", s.handleAdvance)
	mux.HandleFunc("POST /retreat", s.handleRetreat)
	mux.HandleFunc("POST /restart", s.handleRestart)
	mux.HandleFunc("GET /link", s.handleLink)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return logRequests(mux)
}

// Listen binds the configured address. Connections made after it returns
// are queued until Serve accepts them.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	s.addr = ln.Addr().String()
	return ln, nil
}

// ListenAndServe binds the configured address and serves until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve runs the HTTP server on ln until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	serveErr := make(chan error, 1)
	log.Printf("web wizard listening on %s", ln.Addr())
	go func() {
		serveErr <- s.httpServer.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		log.Printf("web wizard stopped")
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// sessionID returns the caller's session, starting one if needed.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && s.sessions.Exists(c.Value) {
		return c.Value
	}

	id := s.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	s.render(w, r, id, http.StatusOK, "", false)
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	err := s.sessions.Do(id, func(st *wizard.State) error {
		if st.Step == wizard.StepName && r.PostForm.Has("project_name") {
			st.SetProjectName(r.PostForm.Get("project_name"))
		}
		return st.Advance()
	})
	s.afterTransition(w, r, id, err)
}

func (s *Server) handleRetreat(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	err := s.sessions.Do(id, func(st *wizard.State) error {
		return st.Retreat()
	})
	s.afterTransition(w, r, id, err)
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	err := s.sessions.Do(id, func(st *wizard.State) error {
		st.Restart()
		return nil
	})
	s.afterTransition(w, r, id, err)
}

// afterTransition redirects back to the wizard on success (post/redirect/get)
// and re-renders the page with the reason otherwise.
func (s *Server) afterTransition(w http.ResponseWriter, r *http.Request, id string, err error) {
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, wizard.ErrProjectNameTooShort):
		s.render(w, r, id, http.StatusUnprocessableEntity, "Please enter a valid project name (at least 3 characters).", true)
	case errors.Is(err, wizard.ErrNoTransition):
		s.render(w, r, id, http.StatusConflict, "That action is not available on this step.", true)
	default:
		log.Printf("session %s: %v", id, err)
		http.Error(w, "session expired, reload the page", http.StatusGone)
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, id string, status int, msg string, isErr bool) {
	snap, err := s.sessions.Snapshot(id)
	if err != nil {
		http.Error(w, "session expired, reload the page", http.StatusGone)
		return
	}

	page := WizardPage(PageData{
		State:    snap,
		Template: s.template,
		Message:  msg,
		IsError:  isErr,
	})
	templ.Handler(page, templ.WithStatus(status)).ServeHTTP(w, r)
}

func (s *Server) handleLink(w http.ResponseWriter, r *http.Request) {
	id := s.sessionID(w, r)
	snap, err := s.sessions.Snapshot(id)
	if err != nil {
		http.Error(w, "session expired, reload the page", http.StatusGone)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, deploylink.Build(&snap, s.template))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests logs one line per request.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Millisecond))
	})
}
