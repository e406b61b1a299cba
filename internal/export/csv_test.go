package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ayumik/jobtrack/internal/company"
)

func TestCompaniesCSV_BOMAndHeader(t *testing.T) {
	got := CompaniesCSV(nil)

	if !strings.HasPrefix(got, "\uFEFF") {
		t.Error("CSV should start with a UTF-8 BOM")
	}

	want := "\uFEFF" + `"企業名","業界","志望度","選考ステータス","面接日程","メモ","登録日"`
	if got != want {
		t.Errorf("empty export = %q, want %q", got, want)
	}
}

func TestCompaniesCSV_QuotesAndNewlines(t *testing.T) {
	companies := []company.Company{
		{
			Name:          `He said "hi"`,
			Industry:      "IT",
			Priority:      company.PriorityA,
			Status:        company.StatusFirstInterview,
			InterviewDate: "2026-07-01",
			Memo:          "line one\nline two\r\nline three",
			CreatedAt:     "2026-06-15T10:00:00+09:00",
		},
	}

	got := CompaniesCSV(companies)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2 (memo newlines must be flattened)", len(lines))
	}

	row := lines[1]
	if !strings.Contains(row, `"He said ""hi"""`) {
		t.Errorf("quotes should be doubled, row = %q", row)
	}
	if !strings.Contains(row, `"line one line two line three"`) {
		t.Errorf("memo newlines should become spaces, row = %q", row)
	}
	if !strings.Contains(row, `"2026/07/01"`) && !strings.Contains(row, `"2026-07-01"`) {
		t.Errorf("interview date missing from row = %q", row)
	}
	if !strings.Contains(row, `"2026/06/15"`) {
		t.Errorf("created date should render as 2026/06/15, row = %q", row)
	}
}

func TestCompaniesCSV_RowOrder(t *testing.T) {
	companies := []company.Company{
		{Name: "一社目", CreatedAt: "2026-01-01T00:00:00+09:00"},
		{Name: "二社目", CreatedAt: "2026-01-02T00:00:00+09:00"},
	}

	lines := strings.Split(CompaniesCSV(companies), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[1], `"一社目"`) {
		t.Errorf("row 1 = %q, want 一社目 first", lines[1])
	}
	if !strings.HasPrefix(lines[2], `"二社目"`) {
		t.Errorf("row 2 = %q, want 二社目 second", lines[2])
	}
}

func TestDisplayDate_PassthroughOnUnparseable(t *testing.T) {
	companies := []company.Company{
		{Name: "社", CreatedAt: "not-a-timestamp"},
	}
	got := CompaniesCSV(companies)
	if !strings.Contains(got, `"not-a-timestamp"`) {
		t.Errorf("unparseable createdAt should pass through, got %q", got)
	}
}

func TestDefaultPath(t *testing.T) {
	now := time.Date(2026, 7, 1, 9, 0, 0, 0, time.Local)
	got := DefaultPath("/home/u/.jobtrack", now)
	want := filepath.Join("/home/u/.jobtrack", "exports", "就活管理_2026-07-01.csv")
	if got != want {
		t.Errorf("DefaultPath = %q, want %q", got, want)
	}
}

func TestWrite_CreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "exports", "out.csv")

	companies := []company.Company{
		{Name: "書込社", Priority: company.PriorityB, Status: company.StatusOffer, CreatedAt: "2026-06-01T00:00:00+09:00"},
	}
	if err := Write(path, companies); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "\uFEFF") {
		t.Error("written file should start with a UTF-8 BOM")
	}
	if !strings.Contains(string(data), "書込社") {
		t.Error("written file should contain the company row")
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestWrite_OverwritesExisting(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.csv")

	if err := Write(path, []company.Company{{Name: "旧"}}); err != nil {
		t.Fatalf("first Write failed: %v", err)
	}
	if err := Write(path, []company.Company{{Name: "新"}}); err != nil {
		t.Fatalf("second Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if strings.Contains(string(data), "旧") {
		t.Error("old content should be replaced")
	}
	if !strings.Contains(string(data), "新") {
		t.Error("new content should be present")
	}
}
