package mcp

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions. Names follow the pattern "type_action".

var addToolDef = mcp.NewTool("company_add",
	mcp.WithDescription("Register a new company to track. Status starts at 書類選考."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Company display name")),
	mcp.WithString("industry", mcp.Required(), mcp.Description("Industry label")),
	mcp.WithString("priority", mcp.Description("Priority: A, B, or C (default B)")),
	mcp.WithString("interview_date", mcp.Description("Interview date, YYYY-MM-DD")),
	mcp.WithString("memo", mcp.Description("Free-form memo")),
)

var listToolDef = mcp.NewTool("company_list",
	mcp.WithDescription("List tracked companies with optional filters."),
	mcp.WithString("search", mcp.Description("Case-insensitive name substring filter")),
	mcp.WithString("industry", mcp.Description("Exact industry filter")),
	mcp.WithString("priority", mcp.Description("Exact priority filter (A, B, or C)")),
)

var fetchToolDef = mcp.NewTool("company_fetch",
	mcp.WithDescription("Fetch a company by id, with its selection step index."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Company id")),
)

var updateToolDef = mcp.NewTool("company_update",
	mcp.WithDescription("Update a company's basic fields. Omitted fields are unchanged."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Company id")),
	mcp.WithString("name", mcp.Description("New name")),
	mcp.WithString("industry", mcp.Description("New industry")),
	mcp.WithString("priority", mcp.Description("New priority (A, B, or C)")),
	mcp.WithString("interview_date", mcp.Description("New interview date, YYYY-MM-DD; empty clears")),
	mcp.WithString("memo", mcp.Description("New memo")),
)

var setStatusToolDef = mcp.NewTool("company_set_status",
	mcp.WithDescription("Assign the selection status. Any step of 書類選考/一次面接/最終面接/内定 is a legal target."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Company id")),
	mcp.WithString("status", mcp.Required(), mcp.Description("Target selection step")),
)

var deleteToolDef = mcp.NewTool("company_delete",
	mcp.WithDescription("Delete a company and everything it owns."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Company id")),
)

var addNoteToolDef = mcp.NewTool("company_add_note",
	mcp.WithDescription("Add a note to a company."),
	mcp.WithString("company_id", mcp.Required(), mcp.Description("Company id")),
	mcp.WithString("title", mcp.Required(), mcp.Description("Note title")),
	mcp.WithString("content", mcp.Description("Note content (markdown allowed)")),
)

var deleteNoteToolDef = mcp.NewTool("company_delete_note",
	mcp.WithDescription("Delete a note from a company."),
	mcp.WithString("company_id", mcp.Required(), mcp.Description("Company id")),
	mcp.WithString("note_id", mcp.Required(), mcp.Description("Note id")),
)

var addDocumentToolDef = mcp.NewTool("company_add_document",
	mcp.WithDescription("Add a document link to a company."),
	mcp.WithString("company_id", mcp.Required(), mcp.Description("Company id")),
	mcp.WithString("name", mcp.Required(), mcp.Description("Document name")),
	mcp.WithString("url", mcp.Required(), mcp.Description("Document URL")),
)

var deleteDocumentToolDef = mcp.NewTool("company_delete_document",
	mcp.WithDescription("Delete a document link from a company."),
	mcp.WithString("company_id", mcp.Required(), mcp.Description("Company id")),
	mcp.WithString("document_id", mcp.Required(), mcp.Description("Document id")),
)

var addTodoToolDef = mcp.NewTool("company_add_todo",
	mcp.WithDescription("Add an unchecked checklist item to a company."),
	mcp.WithString("company_id", mcp.Required(), mcp.Description("Company id")),
	mcp.WithString("text", mcp.Required(), mcp.Description("Checklist item text")),
)

var toggleTodoToolDef = mcp.NewTool("company_toggle_todo",
	mcp.WithDescription("Toggle a checklist item's completed flag."),
	mcp.WithString("company_id", mcp.Required(), mcp.Description("Company id")),
	mcp.WithString("todo_id", mcp.Required(), mcp.Description("Checklist item id")),
)

var deleteTodoToolDef = mcp.NewTool("company_delete_todo",
	mcp.WithDescription("Delete a checklist item from a company."),
	mcp.WithString("company_id", mcp.Required(), mcp.Description("Company id")),
	mcp.WithString("todo_id", mcp.Required(), mcp.Description("Checklist item id")),
)

var summaryToolDef = mcp.NewTool("company_summary",
	mcp.WithDescription("Progress aggregates: totals and counts per selection step and priority."),
)

var calendarToolDef = mcp.NewTool("company_calendar",
	mcp.WithDescription("Month grid with interview events bucketed by day."),
	mcp.WithNumber("year", mcp.Description("Year (defaults to current)")),
	mcp.WithNumber("month", mcp.Description("Month 1-12 (defaults to current)")),
)

var remindersToolDef = mcp.NewTool("company_reminders",
	mcp.WithDescription("Companies whose interview falls within the reminder window, sorted by date."),
)

var exportToolDef = mcp.NewTool("company_export",
	mcp.WithDescription("Export all companies to a CSV file."),
	mcp.WithString("path", mcp.Description("Output file path (defaults under the exports directory)")),
)

var chatSendToolDef = mcp.NewTool("chat_send",
	mcp.WithDescription("Send a message to the canned-response advisor and wait for the reply."),
	mcp.WithString("message", mcp.Required(), mcp.Description("User message")),
)

var chatHistoryToolDef = mcp.NewTool("chat_history",
	mcp.WithDescription("Return the full advisor chat transcript."),
)

var chatClearToolDef = mcp.NewTool("chat_clear",
	mcp.WithDescription("Clear the advisor chat transcript, cancelling any pending reply."),
)
