package web

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ayumik/jobtrack/internal/chat"
	"github.com/ayumik/jobtrack/internal/company"
	"github.com/ayumik/jobtrack/internal/config"
	"github.com/ayumik/jobtrack/internal/export"
	"github.com/ayumik/jobtrack/internal/ops"
	"github.com/ayumik/jobtrack/internal/repo"
	"github.com/ayumik/jobtrack/internal/schedule"
)

// weekdayLabels is the Sunday-first weekday header row.
var weekdayLabels = []string{"日", "月", "火", "水", "木", "金", "土"}

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	repo       *repo.Repository
	cfg        *config.Config
	baseDir    string
	renderer   *Renderer
	session    *chat.Session
	transcript *chat.Transcript
}

// HandleList handles GET /companies — the filterable company list with the
// reminders panel and dashboard aggregates.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	result, err := ops.List(h.repo, ops.ListInput{
		Search:   q.Get("search"),
		Industry: q.Get("industry"),
		Priority: q.Get("priority"),
	})
	if err != nil {
		h.renderer.renderError(w, err)
		return
	}

	reminders, err := ops.Reminders(h.repo, h.cfg, time.Now())
	if err != nil {
		h.renderer.renderError(w, err)
		return
	}

	summary, err := ops.Summary(h.repo)
	if err != nil {
		h.renderer.renderError(w, err)
		return
	}

	h.renderer.renderPage(w, "list", ListPageData{
		PageData: PageData{
			Title:   "企業一覧",
			Version: h.renderer.version,
			Nav:     "companies",
		},
		Items:      result.Items,
		Total:      result.Total,
		Industries: result.Industries,
		Reminders:  reminders.Items,
		Summary:    summary,
		Search:     q.Get("search"),
		Industry:   q.Get("industry"),
		Priority:   q.Get("priority"),
	})
}

// HandleDetail handles GET /companies/{id} — status stepper, memo,
// notes, documents, and todos.
func (h *Handlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Fetch(h.repo, r.PathValue("id"))
	if err != nil {
		h.renderer.renderError(w, err)
		return
	}

	steps := make([]StepView, 0, len(company.Steps()))
	for i, s := range company.Steps() {
		steps = append(steps, StepView{
			Status:  s,
			Index:   i,
			Reached: i <= result.CurrentStepIndex,
			Current: i == result.CurrentStepIndex,
		})
	}

	noteHTML := make(map[string]template.HTML, len(result.Notes))
	for _, n := range result.Notes {
		noteHTML[n.ID] = renderMarkdown(n.Content)
	}

	h.renderer.renderPage(w, "detail", DetailPageData{
		PageData: PageData{
			Title:   result.Name,
			Version: h.renderer.version,
			Nav:     "companies",
		},
		Company:      result,
		Steps:        steps,
		MemoHTML:     renderMarkdown(result.Memo),
		NoteHTML:     noteHTML,
		CreatedLabel: displayDate(result.CreatedAt),
	})
}

// HandleSetStatus handles POST /companies/{id}/status.
func (h *Handlers) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := ops.SetStatus(h.repo, ops.SetStatusInput{
		ID:     id,
		Status: r.FormValue("status"),
	}); err != nil {
		h.renderer.renderError(w, err)
		return
	}

	http.Redirect(w, r, "/companies/"+url.PathEscape(id), http.StatusSeeOther)
}

// HandleDelete handles POST /companies/{id}/delete.
func (h *Handlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if _, err := ops.Delete(h.repo, r.PathValue("id")); err != nil {
		h.renderer.renderError(w, err)
		return
	}

	http.Redirect(w, r, "/companies", http.StatusSeeOther)
}

// HandleCalendar handles GET /calendar — the month grid.
func (h *Handlers) HandleCalendar(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := parseIntParam(r, "year", now.Year())
	month := parseIntParam(r, "month", int(now.Month())) - 1

	result, err := ops.Calendar(h.repo, ops.CalendarInput{
		Year:  year,
		Month: month,
		Today: now,
	})
	if err != nil {
		h.renderer.renderError(w, err)
		return
	}

	prevYear, prevMonth := schedule.PrevMonth(year, month)
	nextYear, nextMonth := schedule.NextMonth(year, month)

	h.renderer.renderPage(w, "calendar", CalendarPageData{
		PageData: PageData{
			Title:   "カレンダー",
			Version: h.renderer.version,
			Nav:     "calendar",
		},
		Month:     *result,
		PrevYear:  prevYear,
		PrevMonth: prevMonth + 1,
		NextYear:  nextYear,
		NextMonth: nextMonth + 1,
		Weekdays:  weekdayLabels,
	})
}

// HandleChat handles GET /chat — the advisor transcript.
func (h *Handlers) HandleChat(w http.ResponseWriter, r *http.Request) {
	messages, err := h.transcript.Messages()
	if err != nil {
		h.renderer.renderError(w, err)
		return
	}

	contentHTML := make(map[string]template.HTML, len(messages))
	for _, m := range messages {
		contentHTML[m.ID] = renderMarkdown(m.Content)
	}

	h.renderer.renderPage(w, "chat", ChatPageData{
		PageData: PageData{
			Title:   "就活AIアドバイザー",
			Version: h.renderer.version,
			Nav:     "chat",
		},
		Messages:    messages,
		ContentHTML: contentHTML,
		Pending:     h.session.Pending(),
	})
}

// HandleChatSend handles POST /chat. The handler waits out the reply delay
// so the redirected page already shows the assistant message.
func (h *Handlers) HandleChatSend(w http.ResponseWriter, r *http.Request) {
	_, replyCh, err := h.session.Send(r.FormValue("message"))
	if err != nil {
		h.renderer.renderError(w, err)
		return
	}

	<-replyCh
	http.Redirect(w, r, "/chat", http.StatusSeeOther)
}

// HandleChatClear handles POST /chat/clear. Clearing cancels any pending
// reply before wiping the transcript.
func (h *Handlers) HandleChatClear(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Clear(); err != nil {
		h.renderer.renderError(w, err)
		return
	}

	http.Redirect(w, r, "/chat", http.StatusSeeOther)
}

// HandleExportCSV handles GET /export.csv — the CSV download.
func (h *Handlers) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	companies, err := h.repo.List()
	if err != nil {
		h.renderer.renderError(w, err)
		return
	}

	filename := fmt.Sprintf("就活管理_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	_, _ = w.Write([]byte(export.CompaniesCSV(companies)))
}

// parseIntParam parses a query parameter as int with a default.
func parseIntParam(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
