package web

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/yuin/goldmark"

	"github.com/ayumik/jobtrack/internal/chat"
	"github.com/ayumik/jobtrack/internal/company"
	"github.com/ayumik/jobtrack/internal/errors"
	"github.com/ayumik/jobtrack/internal/ops"
	"github.com/ayumik/jobtrack/internal/schedule"
)

// PageData contains common fields used across all page templates.
type PageData struct {
	Title   string
	Version string
	Nav     string // active nav item: "companies", "calendar", "chat"
}

// ListPageData is the template data for the company list page.
type ListPageData struct {
	PageData
	Items      []company.Company
	Total      int
	Industries []string
	Reminders  []schedule.Reminder
	Summary    *ops.SummaryOutput
	Search     string
	Industry   string
	Priority   string
}

// StepView is one entry of the detail page's status stepper.
type StepView struct {
	Status  company.Status
	Index   int
	Reached bool
	Current bool
}

// DetailPageData is the template data for the company detail page.
type DetailPageData struct {
	PageData
	Company      *ops.FetchOutput
	Steps        []StepView
	MemoHTML     template.HTML
	NoteHTML     map[string]template.HTML // note id -> rendered content
	CreatedLabel string
}

// CalendarPageData is the template data for the calendar page.
type CalendarPageData struct {
	PageData
	Month     schedule.Month
	PrevYear  int
	PrevMonth int
	NextYear  int
	NextMonth int
	Weekdays  []string
}

// ChatPageData is the template data for the chat page.
type ChatPageData struct {
	PageData
	Messages    []chat.Message
	ContentHTML map[string]template.HTML // message id -> rendered content
	Pending     bool
}

// ErrorPageData is the template data for the error page.
type ErrorPageData struct {
	PageData
	StatusCode int
	Message    string
}

// Renderer manages template parsing and rendering.
type Renderer struct {
	templates map[string]*template.Template
	version   string
}

// NewRenderer creates a Renderer by parsing templates from the given FS.
func NewRenderer(templateFS fs.FS, version string) *Renderer {
	funcMap := template.FuncMap{
		"add":      func(a, b int) int { return a + b },
		"sub":      func(a, b int) int { return a - b },
		"seq":      seq,
		"monthNum": func(m int) int { return m + 1 },
	}

	// Parse layout as the base template
	layoutTmpl := template.Must(template.New("layout").Funcs(funcMap).ParseFS(templateFS, "layout.html"))

	pages := map[string]string{
		"list":     "list.html",
		"detail":   "detail.html",
		"calendar": "calendar.html",
		"chat":     "chat.html",
		"error":    "error.html",
	}

	templates := make(map[string]*template.Template, len(pages))
	for name, file := range pages {
		t := template.Must(layoutTmpl.Clone())
		template.Must(t.ParseFS(templateFS, file))
		templates[name] = t
	}

	return &Renderer{
		templates: templates,
		version:   version,
	}
}

// renderPage renders a named page template with the given data and HTTP 200 status.
func (r *Renderer) renderPage(w http.ResponseWriter, name string, data any) {
	r.renderPageStatus(w, http.StatusOK, name, data)
}

// renderPageStatus renders a named page template with the given data and HTTP status code.
func (r *Renderer) renderPageStatus(w http.ResponseWriter, status int, name string, data any) {
	t, ok := r.templates[name]
	if !ok {
		log.Printf("template %q not found", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("template execution error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// renderError renders the error page. Lookup misses become a not-found page
// rather than a crash.
func (r *Renderer) renderError(w http.ResponseWriter, err error) {
	var tErr *errors.TrackError
	if !stderrors.As(err, &tErr) {
		tErr = errors.NewInternal(err)
	}

	r.renderPageStatus(w, tErr.Status, "error", ErrorPageData{
		PageData: PageData{
			Title:   fmt.Sprintf("Error %d", tErr.Status),
			Version: r.version,
		},
		StatusCode: tErr.Status,
		Message:    tErr.Message,
	})
}

// renderMarkdown converts markdown text to HTML using goldmark.
// Chat replies and memos use **bold** markers and newlines.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// displayDate formats an RFC 3339 timestamp as 2006/01/02 local time.
func displayDate(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006/01/02")
}

// seq returns [0, n) for template iteration (leading blank cells).
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
