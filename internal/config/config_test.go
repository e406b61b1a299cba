package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ReminderWindowDays != 3 {
		t.Errorf("ReminderWindowDays = %d, want 3", cfg.ReminderWindowDays)
	}
	if cfg.ChatReplyDelayMS != 800 {
		t.Errorf("ChatReplyDelayMS = %d, want 800", cfg.ChatReplyDelayMS)
	}
}

func TestLoad_FileOverridesScalars(t *testing.T) {
	tmpDir := t.TempDir()
	content := `{"reminder_window_days": 7, "disabled_tools": ["chat_send"]}`
	if err := os.WriteFile(filepath.Join(tmpDir, "config.json"), []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ReminderWindowDays != 7 {
		t.Errorf("ReminderWindowDays = %d, want 7", cfg.ReminderWindowDays)
	}
	if cfg.ChatReplyDelayMS != 800 {
		t.Errorf("ChatReplyDelayMS = %d, want default 800", cfg.ChatReplyDelayMS)
	}
	if len(cfg.DisabledTools) != 1 || cfg.DisabledTools[0] != "chat_send" {
		t.Errorf("DisabledTools = %v, want [chat_send]", cfg.DisabledTools)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "config.json"), []byte("{broken"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := Load(tmpDir)
	if err == nil {
		t.Error("Load should fail on invalid JSON")
	}
}

func TestMerge_OverlayWins(t *testing.T) {
	base := &Config{ReminderWindowDays: 3, ChatReplyDelayMS: 800}
	overlay := &Config{ReminderWindowDays: 14}

	merged := Merge(base, overlay)
	if merged.ReminderWindowDays != 14 {
		t.Errorf("ReminderWindowDays = %d, want 14", merged.ReminderWindowDays)
	}
	if merged.ChatReplyDelayMS != 800 {
		t.Errorf("ChatReplyDelayMS = %d, want base value 800", merged.ChatReplyDelayMS)
	}
}

func TestMerge_DedupesDisabledTools(t *testing.T) {
	base := &Config{DisabledTools: []string{"a", "b"}}
	overlay := &Config{DisabledTools: []string{"b", "c"}}

	merged := Merge(base, overlay)
	if len(merged.DisabledTools) != 3 {
		t.Errorf("DisabledTools = %v, want 3 deduplicated entries", merged.DisabledTools)
	}
}
