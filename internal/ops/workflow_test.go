package ops

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ayumik/jobtrack/internal/company"
	"github.com/ayumik/jobtrack/internal/errors"
	"github.com/ayumik/jobtrack/internal/kv"
	"github.com/ayumik/jobtrack/internal/repo"
)

// TestFullWorkflow exercises the complete company lifecycle against a real
// SQLite store: add → fetch → update → status → note/doc/todo → export →
// delete → fetch (not found)
func TestFullWorkflow(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := kv.Init(tmpDir)
	require.NoError(t, err)
	defer store.Close()

	r := repo.New(store)

	// 1. Add
	addOut, err := Add(r, AddInput{
		Name:          "サイバーエージェント",
		Industry:      "IT",
		Priority:      "A",
		InterviewDate: "2026-09-15",
		Memo:          "一次面接はオンライン",
	})
	require.NoError(t, err)
	require.NotEmpty(t, addOut.ID)
	id := addOut.ID

	// 2. Fetch
	fetchOut, err := Fetch(r, id)
	require.NoError(t, err)
	require.Equal(t, "サイバーエージェント", fetchOut.Name)
	require.Equal(t, 0, fetchOut.CurrentStepIndex)

	// 3. Update memo
	newMemo := "一次面接はオンライン。持ち物: 学生証"
	_, err = Update(r, UpdateInput{ID: id, Memo: &newMemo})
	require.NoError(t, err)

	// 4. Advance status
	statusOut, err := SetStatus(r, SetStatusInput{ID: id, Status: string(company.StatusFirstInterview)})
	require.NoError(t, err)
	require.Equal(t, 1, statusOut.CurrentStepIndex)

	// 5. Attach a note, a document, and a todo
	noteOut, err := AddNote(r, AddNoteInput{CompanyID: id, Title: "面接メモ", Content: "逆質問を3つ用意"})
	require.NoError(t, err)
	require.NotEmpty(t, noteOut.NoteID)

	docOut, err := AddDocument(r, AddDocumentInput{CompanyID: id, Name: "採用ページ", URL: "https://example.com/careers"})
	require.NoError(t, err)
	require.NotEmpty(t, docOut.DocumentID)

	todoOut, err := AddTodo(r, AddTodoInput{CompanyID: id, Text: "お礼メールを送る"})
	require.NoError(t, err)

	toggled, err := ToggleTodo(r, ToggleTodoInput{CompanyID: id, TodoID: todoOut.TodoID})
	require.NoError(t, err)
	require.True(t, toggled.Company.Todos[0].Completed)

	// 6. Everything persisted together
	fetchOut, err = Fetch(r, id)
	require.NoError(t, err)
	require.Equal(t, newMemo, fetchOut.Memo)
	require.Len(t, fetchOut.Notes, 1)
	require.Len(t, fetchOut.Documents, 1)
	require.Len(t, fetchOut.Todos, 1)

	// 7. Export
	exportOut, err := Export(r, ExportInput{BaseDir: tmpDir})
	require.NoError(t, err)
	require.Equal(t, 1, exportOut.Count)
	data, err := os.ReadFile(exportOut.Path)
	require.NoError(t, err)
	require.Contains(t, string(data), "サイバーエージェント")

	// 8. Delete
	deleteOut, err := Delete(r, id)
	require.NoError(t, err)
	require.True(t, deleteOut.Deleted)

	_, err = Fetch(r, id)
	require.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestExport_ExplicitPath(t *testing.T) {
	tmpDir := t.TempDir()
	r := repo.New(kv.NewMemoryStore())

	_, err := Add(r, AddInput{Name: "出力社", Industry: "IT"})
	require.NoError(t, err)

	path := filepath.Join(tmpDir, "custom", "export.csv")
	out, err := Export(r, ExportInput{Path: path, BaseDir: tmpDir})
	require.NoError(t, err)
	require.Equal(t, path, out.Path)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestExport_DefaultPathUsesDate(t *testing.T) {
	tmpDir := t.TempDir()
	r := repo.New(kv.NewMemoryStore())

	out, err := Export(r, ExportInput{BaseDir: tmpDir})
	require.NoError(t, err)

	wantName := "就活管理_" + time.Now().Format("2006-01-02") + ".csv"
	require.Equal(t, wantName, filepath.Base(out.Path))
}
