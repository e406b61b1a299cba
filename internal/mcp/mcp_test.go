package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ayumik/jobtrack/internal/config"
	"github.com/ayumik/jobtrack/internal/kv"
)

// testHandlers creates handlers over an in-memory store with no reply delay.
func testHandlers(t *testing.T) *Handlers {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.ChatReplyDelayMS = 1 // keep chat_send fast in tests
	return NewHandlers(kv.NewMemoryStore(), cfg, t.TempDir())
}

// makeRequest creates a CallToolRequest with the given arguments.
func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

// resultText extracts the text payload from a tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	return text.Text
}

func TestHandleAdd_Success(t *testing.T) {
	h := testHandlers(t)

	result, err := h.HandleAdd(context.Background(), makeRequest(map[string]any{
		"name":     "メルカリ",
		"industry": "IT",
		"priority": "A",
	}))
	if err != nil {
		t.Fatalf("HandleAdd failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("result is an error: %s", resultText(t, result))
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out.ID == "" {
		t.Error("result should carry the new company id")
	}
}

func TestHandleAdd_MissingName(t *testing.T) {
	h := testHandlers(t)

	result, err := h.HandleAdd(context.Background(), makeRequest(map[string]any{
		"industry": "IT",
	}))
	if err != nil {
		t.Fatalf("HandleAdd failed: %v", err)
	}
	if !result.IsError {
		t.Fatal("result should be an error")
	}
	if !strings.Contains(resultText(t, result), "INVALID_REQUEST") {
		t.Errorf("error payload = %s, want INVALID_REQUEST", resultText(t, result))
	}
}

func TestHandleFetch_NotFound(t *testing.T) {
	h := testHandlers(t)

	result, err := h.HandleFetch(context.Background(), makeRequest(map[string]any{
		"id": "no-such-id",
	}))
	if err != nil {
		t.Fatalf("HandleFetch failed: %v", err)
	}
	if !result.IsError {
		t.Fatal("result should be an error")
	}
	if !strings.Contains(resultText(t, result), "NOT_FOUND") {
		t.Errorf("error payload = %s, want NOT_FOUND", resultText(t, result))
	}
}

func TestHandleSetStatus_RoundTrip(t *testing.T) {
	h := testHandlers(t)

	added, err := h.HandleAdd(context.Background(), makeRequest(map[string]any{
		"name":     "社名",
		"industry": "IT",
	}))
	if err != nil {
		t.Fatalf("HandleAdd failed: %v", err)
	}
	var addOut struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(resultText(t, added)), &addOut); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	result, err := h.HandleSetStatus(context.Background(), makeRequest(map[string]any{
		"id":     addOut.ID,
		"status": "内定",
	}))
	if err != nil {
		t.Fatalf("HandleSetStatus failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("result is an error: %s", resultText(t, result))
	}

	var out struct {
		CurrentStepIndex int `json:"current_step_index"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out.CurrentStepIndex != 3 {
		t.Errorf("current_step_index = %d, want 3", out.CurrentStepIndex)
	}
}

func TestHandleChatSend_ReturnsBothMessages(t *testing.T) {
	h := testHandlers(t)

	result, err := h.HandleChatSend(context.Background(), makeRequest(map[string]any{
		"message": "面接対策を教えて",
	}))
	if err != nil {
		t.Fatalf("HandleChatSend failed: %v", err)
	}
	if result.IsError {
		t.Fatalf("result is an error: %s", resultText(t, result))
	}

	var messages []struct {
		Role string `json:"role"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &messages); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("len = %d, want 2 (user + assistant)", len(messages))
	}
	if messages[0].Role != "user" || messages[1].Role != "assistant" {
		t.Errorf("roles = %s,%s, want user,assistant", messages[0].Role, messages[1].Role)
	}
}

func TestHandleChatSend_RejectsEmpty(t *testing.T) {
	h := testHandlers(t)

	result, err := h.HandleChatSend(context.Background(), makeRequest(map[string]any{
		"message": "   ",
	}))
	if err != nil {
		t.Fatalf("HandleChatSend failed: %v", err)
	}
	if !result.IsError {
		t.Fatal("result should be an error")
	}
}

func TestValidateDisabledTools(t *testing.T) {
	unknown := ValidateDisabledTools([]string{"company_add", "not_a_tool"})
	if len(unknown) != 1 || unknown[0] != "not_a_tool" {
		t.Errorf("unknown = %v, want [not_a_tool]", unknown)
	}
}

func TestAllToolNames_CoversRegistry(t *testing.T) {
	names := AllToolNames()
	if len(names) != len(toolRegistry) {
		t.Errorf("len = %d, want %d", len(names), len(toolRegistry))
	}
}

func TestNewServer_SkipsDisabledTools(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DisabledTools = []string{"chat_send", "chat_clear"}

	s := NewServer(kv.NewMemoryStore(), cfg, t.TempDir(), "test")
	if s == nil {
		t.Fatal("NewServer returned nil")
	}
}
