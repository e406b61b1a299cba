package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ayumik/jobtrack/internal/config"
	"github.com/ayumik/jobtrack/internal/kv"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"company_add": {
		def:     addToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleAdd },
	},
	"company_list": {
		def:     listToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleList },
	},
	"company_fetch": {
		def:     fetchToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleFetch },
	},
	"company_update": {
		def:     updateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleUpdate },
	},
	"company_set_status": {
		def:     setStatusToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSetStatus },
	},
	"company_delete": {
		def:     deleteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDelete },
	},
	"company_add_note": {
		def:     addNoteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleAddNote },
	},
	"company_delete_note": {
		def:     deleteNoteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDeleteNote },
	},
	"company_add_document": {
		def:     addDocumentToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleAddDocument },
	},
	"company_delete_document": {
		def:     deleteDocumentToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDeleteDocument },
	},
	"company_add_todo": {
		def:     addTodoToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleAddTodo },
	},
	"company_toggle_todo": {
		def:     toggleTodoToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleToggleTodo },
	},
	"company_delete_todo": {
		def:     deleteTodoToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleDeleteTodo },
	},
	"company_summary": {
		def:     summaryToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSummary },
	},
	"company_calendar": {
		def:     calendarToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCalendar },
	},
	"company_reminders": {
		def:     remindersToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleReminders },
	},
	"company_export": {
		def:     exportToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleExport },
	},
	"chat_send": {
		def:     chatSendToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleChatSend },
	},
	"chat_history": {
		def:     chatHistoryToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleChatHistory },
	},
	"chat_clear": {
		def:     chatClearToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleChatClear },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with jobtrack tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(store kv.Store, cfg *config.Config, baseDir, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"jobtrack",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(store, cfg, baseDir)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(store kv.Store, cfg *config.Config, baseDir, version string) error {
	s := NewServer(store, cfg, baseDir, version)
	return server.ServeStdio(s)
}

// ToolHandlerFunc is the signature for tool handlers.
type ToolHandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
