package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0.0s"},
		{500 * time.Millisecond, "0.5s"},
		{1200 * time.Millisecond, "1.2s"},
		{65 * time.Second, "1m5s"},
		{time.Hour + time.Minute + 40*time.Second, "1h1m"},
	}

	for _, tt := range tests {
		if got := formatElapsed(tt.d); got != tt.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestTruncTag(t *testing.T) {
	tests := []struct {
		s      string
		maxLen int
		want   string
	}{
		{"#short", 10, "#short"},
		{"#exact", 6, "#exact"},
		{"#abcdefghi", 7, "#a...hi"},
		{"#hello world", 9, "#he...rld"},
		{"#ab", 3, "#ab"},
		{"#abc", 3, "#ab"},
		{"#мирмирмир", 7, "#м...ир"},
	}

	for _, tt := range tests {
		got := truncTag(tt.s, tt.maxLen)
		if got != tt.want {
			t.Errorf("truncTag(%q, %d) = %q, want %q", tt.s, tt.maxLen, got, tt.want)
		}
		if n := utf8.RuneCountInString(got); n > tt.maxLen {
			t.Errorf("truncTag(%q, %d) length %d exceeds max", tt.s, tt.maxLen, n)
		}
	}
}

func TestProgressBar(t *testing.T) {
	if got := progressBar(0, 4); !strings.HasPrefix(got, "["+strings.Repeat(" ", barLength)+"]") {
		t.Errorf("empty bar = %q", got)
	}
	if got := progressBar(2, 4); !strings.Contains(got, strings.Repeat("=", barLength/2)+strings.Repeat(" ", barLength/2)) || !strings.HasSuffix(got, " 50.00%") {
		t.Errorf("half bar = %q", got)
	}
	if got := progressBar(4, 4); !strings.Contains(got, strings.Repeat("=", barLength)) || !strings.HasSuffix(got, "100.00%") {
		t.Errorf("full bar = %q", got)
	}
}

func TestProgress_EndsWithNewline(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(&buf, 2)
	p.advance("one")
	if strings.Contains(buf.String(), "\n") {
		t.Error("newline before last step")
	}
	p.advance("two")
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("missing newline after last step")
	}
}
