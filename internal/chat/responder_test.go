package chat

import (
	"strings"
	"testing"
)

func TestMockResponder_KeywordMatch(t *testing.T) {
	r := MockResponder{}

	tests := []struct {
		input        string
		wantContains string
	}{
		{"面接対策を教えて", "面接対策のポイント"},
		{"明日面接があります", "面接対策のポイント"},
		{"自己PRの書き方は？", "結論 → 根拠エピソード"},
		{"逆質問は何を聞けばいい？", "逆質問のおすすめ"},
		{"志望動機がまとまりません", "なぜこの業界か"},
		{"ESの添削をお願いします", "エントリーシートで意識したい"},
		{"エントリーシートが不安です", "エントリーシートで意識したい"},
	}

	for _, tt := range tests {
		got := r.Reply(tt.input)
		if !strings.Contains(got, tt.wantContains) {
			t.Errorf("Reply(%q) = %q, want to contain %q", tt.input, got, tt.wantContains)
		}
	}
}

func TestMockResponder_DefaultReply(t *testing.T) {
	r := MockResponder{}
	got := r.Reply("こんにちは")
	if !strings.Contains(got, "ご相談ありがとうございます") {
		t.Errorf("Reply(unmatched) = %q, want the default reply", got)
	}
}

func TestMockResponder_Deterministic(t *testing.T) {
	r := MockResponder{}
	first := r.Reply("面接について")
	for i := 0; i < 5; i++ {
		if got := r.Reply("面接について"); got != first {
			t.Fatal("same input should always yield the same reply")
		}
	}
}

func TestMockResponder_FirstRuleWins(t *testing.T) {
	r := MockResponder{}
	// Both 面接 and 志望動機 appear; the 面接 rule comes first.
	got := r.Reply("面接で志望動機を聞かれたら")
	if !strings.Contains(got, "面接対策のポイント") {
		t.Errorf("Reply = %q, want the earlier rule's reply", got)
	}
}
