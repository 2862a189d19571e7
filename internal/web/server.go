package web

import (
	"crypto/rand"
	"embed"
	"encoding/hex"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jshotsmedia/studio/internal/gate"
	"github.com/jshotsmedia/studio/internal/mediastore"
	"github.com/jshotsmedia/studio/internal/platform"
	"github.com/jshotsmedia/studio/internal/service"
)

// chatBridge is the part of the assistant bridge the web layer drives
// directly (the per-message path goes through service.ChatService).
type chatBridge interface {
	Reset()
	SessionID() int64
}

type Server struct {
	studio  *service.StudioService
	booking *service.BookingService
	gallery *service.GalleryService
	chat    *service.ChatService
	bridge  chatBridge

	media     mediastore.MediaStore
	adminGate *gate.Gate
	install   *platform.InstallPrompt
	siteURL   string

	templates embed.FS
	mux       *http.ServeMux
	tmplFuncs template.FuncMap
	logger    *slog.Logger

	// Unlocked admin sessions live only in memory; they vanish with the
	// process, like everything else here.
	sessionMu     sync.Mutex
	adminSessions map[string]bool
	teamSessions  map[string]bool
}

type Options struct {
	Studio    *service.StudioService
	Booking   *service.BookingService
	Gallery   *service.GalleryService
	Chat      *service.ChatService
	Bridge    chatBridge
	Media     mediastore.MediaStore
	AdminGate *gate.Gate
	Install   *platform.InstallPrompt
	SiteURL   string
	Templates embed.FS
	Logger    *slog.Logger
}

func NewServer(opts Options) *Server {
	s := &Server{
		studio:        opts.Studio,
		booking:       opts.Booking,
		gallery:       opts.Gallery,
		chat:          opts.Chat,
		bridge:        opts.Bridge,
		media:         opts.Media,
		adminGate:     opts.AdminGate,
		install:       opts.Install,
		siteURL:       opts.SiteURL,
		templates:     opts.Templates,
		mux:           http.NewServeMux(),
		logger:        opts.Logger,
		adminSessions: make(map[string]bool),
		teamSessions:  make(map[string]bool),
		tmplFuncs: template.FuncMap{
			"stars": func(rating int) string {
				return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
			},
		},
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handleHome)
	s.mux.HandleFunc("GET /views/{view}", s.handleView)

	s.mux.HandleFunc("POST /bookings", s.handleSubmitBooking)
	s.mux.HandleFunc("POST /bookings/reopen", s.handleReopenBooking)

	s.mux.HandleFunc("POST /gallery/unlock", s.handleGalleryUnlock)
	s.mux.HandleFunc("POST /gallery/photos", s.handleGalleryUpload)

	s.mux.HandleFunc("POST /workplace/chat", s.handleChatSend)
	s.mux.HandleFunc("POST /workplace/chat/reset", s.handleChatReset)
	s.mux.HandleFunc("POST /workplace/reviews", s.handleAddReview)
	s.mux.HandleFunc("POST /workplace/team", s.handleWorkplaceAddMember)

	s.mux.HandleFunc("POST /admin/unlock", s.handleAdminUnlock)
	s.mux.HandleFunc("POST /admin/team/{id}", s.handleAdminUpdateMember)
	s.mux.HandleFunc("POST /admin/team/{id}/photo", s.handleAdminMemberPhoto)
	s.mux.HandleFunc("POST /admin/board", s.handleAdminBoardPost)
	s.mux.HandleFunc("POST /admin/settings", s.handleAdminSettings)
	s.mux.HandleFunc("POST /admin/settings/logo", s.handleAdminLogo)

	s.mux.HandleFunc("GET /media/{key}", s.handleMedia)
	s.mux.HandleFunc("GET /share/app", s.handleShareApp)
	s.mux.HandleFunc("GET /share/review/{id}", s.handleShareReview)
	s.mux.HandleFunc("GET /install", s.handleInstallStatus)
	s.mux.HandleFunc("POST /install", s.handleInstallPrompt)
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self' 'unsafe-inline'; "+
				"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; "+
				"font-src https://fonts.gstatic.com; "+
				"img-src 'self' https://picsum.photos data:; "+
				"connect-src 'self'")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}

// renderPage parses and executes a full-page template set. The footer partial
// is always part of the set; whether it shows is up to the page data.
func (s *Server) renderPage(w http.ResponseWriter, data any, files ...string) error {
	files = append(files, "base.html", "partials/footer.html")
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(s.templates, files...)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, "base", data)
}

// renderPartial parses and executes a single named partial template.
// The file must contain exactly one {{define "name"}}...{{end}} block.
func (s *Server) renderPartial(w http.ResponseWriter, file string, data any) error {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(s.templates, file)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	basename := file
	if idx := strings.LastIndexByte(file, '/'); idx >= 0 {
		basename = file[idx+1:]
	}
	for _, t := range tmpl.Templates() {
		if n := t.Name(); n != "" && n != basename {
			return t.Execute(w, data)
		}
	}
	return tmpl.ExecuteTemplate(w, basename, data)
}

// newSessionToken mints an opaque token for the in-memory session maps.
func newSessionToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func (s *Server) adminUnlocked(r *http.Request) bool {
	c, err := r.Cookie("studio_admin")
	if err != nil {
		return false
	}
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()
	return s.adminSessions[c.Value]
}

func (s *Server) teamUnlocked(r *http.Request) bool {
	c, err := r.Cookie("studio_team")
	if err != nil {
		return false
	}
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()
	return s.teamSessions[c.Value]
}

// parseID extracts the {id} path variable and returns it as int64.
func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
