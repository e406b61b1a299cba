// Package export serializes the company collection to CSV.
package export

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ayumik/jobtrack/internal/company"
	"github.com/ayumik/jobtrack/internal/errors"
)

// bom is prefixed to the CSV text so spreadsheet tools detect UTF-8.
const bom = "\uFEFF"

// header is the fixed CSV header row, in field order.
var header = []string{"企業名", "業界", "志望度", "選考ステータス", "面接日程", "メモ", "登録日"}

// CompaniesCSV renders the collection as CSV text: BOM, header row, one row
// per company in collection order. Every field is double-quoted with inner
// quotes doubled; memo newlines are collapsed to single spaces.
func CompaniesCSV(companies []company.Company) string {
	rows := make([]string, 0, len(companies)+1)
	rows = append(rows, encodeRow(header))

	for _, c := range companies {
		rows = append(rows, encodeRow([]string{
			c.Name,
			c.Industry,
			string(c.Priority),
			string(c.Status),
			c.InterviewDate,
			flattenMemo(c.Memo),
			displayDate(c.CreatedAt),
		}))
	}

	return bom + strings.Join(rows, "\n")
}

// encodeRow quotes and joins one CSV row.
func encodeRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

// flattenMemo collapses newlines so a memo stays a single CSV field line.
func flattenMemo(memo string) string {
	memo = strings.ReplaceAll(memo, "\r\n", " ")
	memo = strings.ReplaceAll(memo, "\n", " ")
	return memo
}

// displayDate formats an RFC 3339 creation timestamp as 2006/01/02.
// Unparseable input is passed through unchanged.
func displayDate(createdAt string) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	return t.Local().Format("2006/01/02")
}

// DefaultPath returns the default export file path under baseDir/exports,
// named 就活管理_<ISO-date>.csv.
func DefaultPath(baseDir string, now time.Time) string {
	filename := fmt.Sprintf("就活管理_%s.csv", now.Format("2006-01-02"))
	return filepath.Join(baseDir, "exports", filename)
}

// Write serializes the collection to path. The file is written to a temp
// name first and renamed into place, so a failing write leaves any existing
// file intact.
func Write(path string, companies []company.Company) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return errors.NewInternal(fmt.Errorf("failed to create export directory: %w", err))
	}

	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return errors.NewInternal(fmt.Errorf("failed to generate temp file name: %w", err))
	}
	tempPath := path + "." + hex.EncodeToString(randBytes) + ".tmp"

	if err := os.WriteFile(tempPath, []byte(CompaniesCSV(companies)), 0600); err != nil {
		return errors.NewInternal(fmt.Errorf("failed to write export file: %w", err))
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return errors.NewInternal(fmt.Errorf("failed to finalize export: %w", err))
	}
	return nil
}
