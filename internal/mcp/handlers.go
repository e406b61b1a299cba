package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ayumik/jobtrack/internal/chat"
	"github.com/ayumik/jobtrack/internal/config"
	"github.com/ayumik/jobtrack/internal/errors"
	"github.com/ayumik/jobtrack/internal/kv"
	"github.com/ayumik/jobtrack/internal/ops"
	"github.com/ayumik/jobtrack/internal/repo"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	repo       *repo.Repository
	cfg        *config.Config
	baseDir    string
	transcript *chat.Transcript
	session    *chat.Session
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(store kv.Store, cfg *config.Config, baseDir string) *Handlers {
	delay := chat.DefaultReplyDelay
	if cfg != nil && cfg.ChatReplyDelayMS > 0 {
		delay = time.Duration(cfg.ChatReplyDelayMS) * time.Millisecond
	}
	transcript := chat.NewTranscript(store)

	return &Handlers{
		repo:       repo.New(store),
		cfg:        cfg,
		baseDir:    baseDir,
		transcript: transcript,
		session:    chat.NewSession(transcript, chat.MockResponder{}, delay),
	}
}

// Request types for each tool

// AddRequest represents the arguments for company_add.
type AddRequest struct {
	Name          string `json:"name"`
	Industry      string `json:"industry"`
	Priority      string `json:"priority,omitempty"`
	InterviewDate string `json:"interview_date,omitempty"`
	Memo          string `json:"memo,omitempty"`
}

// ListRequest represents the arguments for company_list.
type ListRequest struct {
	Search   string `json:"search,omitempty"`
	Industry string `json:"industry,omitempty"`
	Priority string `json:"priority,omitempty"`
}

// FetchRequest represents the arguments for company_fetch and company_delete.
type FetchRequest struct {
	ID string `json:"id"`
}

// UpdateRequest represents the arguments for company_update.
type UpdateRequest struct {
	ID            string  `json:"id"`
	Name          *string `json:"name,omitempty"`
	Industry      *string `json:"industry,omitempty"`
	Priority      *string `json:"priority,omitempty"`
	InterviewDate *string `json:"interview_date,omitempty"`
	Memo          *string `json:"memo,omitempty"`
}

// SetStatusRequest represents the arguments for company_set_status.
type SetStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// AddNoteRequest represents the arguments for company_add_note.
type AddNoteRequest struct {
	CompanyID string `json:"company_id"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
}

// DeleteNoteRequest represents the arguments for company_delete_note.
type DeleteNoteRequest struct {
	CompanyID string `json:"company_id"`
	NoteID    string `json:"note_id"`
}

// AddDocumentRequest represents the arguments for company_add_document.
type AddDocumentRequest struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
}

// DeleteDocumentRequest represents the arguments for company_delete_document.
type DeleteDocumentRequest struct {
	CompanyID  string `json:"company_id"`
	DocumentID string `json:"document_id"`
}

// AddTodoRequest represents the arguments for company_add_todo.
type AddTodoRequest struct {
	CompanyID string `json:"company_id"`
	Text      string `json:"text"`
}

// TodoRequest represents the arguments for company_toggle_todo and company_delete_todo.
type TodoRequest struct {
	CompanyID string `json:"company_id"`
	TodoID    string `json:"todo_id"`
}

// CalendarRequest represents the arguments for company_calendar.
type CalendarRequest struct {
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"` // 1-12
}

// ExportRequest represents the arguments for company_export.
type ExportRequest struct {
	Path string `json:"path,omitempty"`
}

// ChatSendRequest represents the arguments for chat_send.
type ChatSendRequest struct {
	Message string `json:"message"`
}

// Handler implementations

// HandleAdd handles the company_add tool call.
func (h *Handlers) HandleAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[AddRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Add(h.repo, ops.AddInput{
		Name:          input.Name,
		Industry:      input.Industry,
		Priority:      input.Priority,
		InterviewDate: input.InterviewDate,
		Memo:          input.Memo,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleList handles the company_list tool call.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.List(h.repo, ops.ListInput{
		Search:   input.Search,
		Industry: input.Industry,
		Priority: input.Priority,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleFetch handles the company_fetch tool call.
func (h *Handlers) HandleFetch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FetchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Fetch(h.repo, input.ID)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleUpdate handles the company_update tool call.
func (h *Handlers) HandleUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[UpdateRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Update(h.repo, ops.UpdateInput{
		ID:            input.ID,
		Name:          input.Name,
		Industry:      input.Industry,
		Priority:      input.Priority,
		InterviewDate: input.InterviewDate,
		Memo:          input.Memo,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSetStatus handles the company_set_status tool call.
func (h *Handlers) HandleSetStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SetStatusRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.SetStatus(h.repo, ops.SetStatusInput{
		ID:     input.ID,
		Status: input.Status,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleDelete handles the company_delete tool call.
func (h *Handlers) HandleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FetchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Delete(h.repo, input.ID)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleAddNote handles the company_add_note tool call.
func (h *Handlers) HandleAddNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[AddNoteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.AddNote(h.repo, ops.AddNoteInput{
		CompanyID: input.CompanyID,
		Title:     input.Title,
		Content:   input.Content,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleDeleteNote handles the company_delete_note tool call.
func (h *Handlers) HandleDeleteNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DeleteNoteRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.DeleteNote(h.repo, ops.DeleteNoteInput{
		CompanyID: input.CompanyID,
		NoteID:    input.NoteID,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleAddDocument handles the company_add_document tool call.
func (h *Handlers) HandleAddDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[AddDocumentRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.AddDocument(h.repo, ops.AddDocumentInput{
		CompanyID: input.CompanyID,
		Name:      input.Name,
		URL:       input.URL,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleDeleteDocument handles the company_delete_document tool call.
func (h *Handlers) HandleDeleteDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DeleteDocumentRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.DeleteDocument(h.repo, ops.DeleteDocumentInput{
		CompanyID:  input.CompanyID,
		DocumentID: input.DocumentID,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleAddTodo handles the company_add_todo tool call.
func (h *Handlers) HandleAddTodo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[AddTodoRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.AddTodo(h.repo, ops.AddTodoInput{
		CompanyID: input.CompanyID,
		Text:      input.Text,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleToggleTodo handles the company_toggle_todo tool call.
func (h *Handlers) HandleToggleTodo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[TodoRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.ToggleTodo(h.repo, ops.ToggleTodoInput{
		CompanyID: input.CompanyID,
		TodoID:    input.TodoID,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleDeleteTodo handles the company_delete_todo tool call.
func (h *Handlers) HandleDeleteTodo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[TodoRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.DeleteTodo(h.repo, ops.DeleteTodoInput{
		CompanyID: input.CompanyID,
		TodoID:    input.TodoID,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSummary handles the company_summary tool call.
func (h *Handlers) HandleSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Summary(h.repo)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleCalendar handles the company_calendar tool call.
func (h *Handlers) HandleCalendar(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CalendarRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	now := time.Now()
	year := input.Year
	if year == 0 {
		year = now.Year()
	}
	month := input.Month
	if month == 0 {
		month = int(now.Month())
	}

	result, err := ops.Calendar(h.repo, ops.CalendarInput{
		Year:  year,
		Month: month - 1,
		Today: now,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleReminders handles the company_reminders tool call.
func (h *Handlers) HandleReminders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Reminders(h.repo, h.cfg, time.Now())
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleExport handles the company_export tool call.
func (h *Handlers) HandleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ExportRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Export(h.repo, ops.ExportInput{
		Path:    input.Path,
		BaseDir: h.baseDir,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleChatSend handles the chat_send tool call. The reply is waited out,
// so the result carries both the user message and the assistant reply.
func (h *Handlers) HandleChatSend(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ChatSendRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	userMsg, replyCh, err := h.session.Send(input.Message)
	if err != nil {
		return errorResult(err), nil
	}

	reply, ok := <-replyCh
	if !ok {
		return errorResult(errors.NewInternal(nil)), nil
	}

	return successResult([]chat.Message{userMsg, reply})
}

// HandleChatHistory handles the chat_history tool call.
func (h *Handlers) HandleChatHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	messages, err := h.transcript.Messages()
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(messages)
}

// HandleChatClear handles the chat_clear tool call.
func (h *Handlers) HandleChatClear(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.session.Clear(); err != nil {
		return errorResult(err), nil
	}

	return successResult(map[string]bool{"cleared": true})
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if tErr, ok := err.(*errors.TrackError); ok {
		errorObj := map[string]any{
			"code":    tErr.Code,
			"message": tErr.Message,
			"status":  tErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if tErr.Code != errors.ErrInternal && tErr.Details != nil {
			errorObj["details"] = tErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult wraps a payload as an MCP JSON result.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
