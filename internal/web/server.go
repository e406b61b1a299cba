package web

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ayumik/jobtrack/internal/chat"
	"github.com/ayumik/jobtrack/internal/config"
	"github.com/ayumik/jobtrack/internal/kv"
	"github.com/ayumik/jobtrack/internal/repo"
)

//go:embed templates/*.html
var templateFS embed.FS

// NewServer creates and configures the HTTP server for the jobtrack web UI.
func NewServer(store kv.Store, cfg *config.Config, baseDir, version, bind string, port int) *http.Server {
	// Create sub-FS for templates (strip "templates/" prefix)
	templateSub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		log.Fatalf("failed to create template sub-FS: %v", err)
	}

	renderer := NewRenderer(templateSub, version)

	delay := chat.DefaultReplyDelay
	if cfg != nil && cfg.ChatReplyDelayMS > 0 {
		delay = time.Duration(cfg.ChatReplyDelayMS) * time.Millisecond
	}
	transcript := chat.NewTranscript(store)

	h := &Handlers{
		repo:       repo.New(store),
		cfg:        cfg,
		baseDir:    baseDir,
		renderer:   renderer,
		session:    chat.NewSession(transcript, chat.MockResponder{}, delay),
		transcript: transcript,
	}

	mux := http.NewServeMux()

	// Routes using Go 1.22+ pattern syntax
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/companies", http.StatusFound)
	})
	mux.HandleFunc("GET /companies", h.HandleList)
	mux.HandleFunc("GET /companies/{id}", h.HandleDetail)
	mux.HandleFunc("POST /companies/{id}/status", h.HandleSetStatus)
	mux.HandleFunc("POST /companies/{id}/delete", h.HandleDelete)
	mux.HandleFunc("GET /calendar", h.HandleCalendar)
	mux.HandleFunc("GET /chat", h.HandleChat)
	mux.HandleFunc("POST /chat", h.HandleChatSend)
	mux.HandleFunc("POST /chat/clear", h.HandleChatClear)
	mux.HandleFunc("GET /export.csv", h.HandleExportCSV)

	// Wrap with security headers
	handler := securityHeaders(mux)

	return &http.Server{
		Addr:    fmt.Sprintf("%s:%d", bind, port),
		Handler: handler,
	}
}

// securityHeaders adds security-related HTTP headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		next.ServeHTTP(w, r)
	})
}

// Run starts the HTTP server and handles graceful shutdown on SIGINT/SIGTERM.
func Run(srv *http.Server) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	log.Printf("jobtrack UI running at http://%s", srv.Addr)

	if strings.Contains(srv.Addr, "0.0.0.0") || strings.Contains(srv.Addr, "::") {
		log.Printf("WARNING: Server is binding to all interfaces and may be accessible from the network")
	}

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
