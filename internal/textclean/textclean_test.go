package textclean

import (
	"os"
	"path/filepath"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestClean_NilAndEmpty(t *testing.T) {
	c := Default()
	if got := c.Clean(nil); got != "" {
		t.Errorf("nil input: got %q", got)
	}
	if got := c.Clean(strPtr("")); got != "" {
		t.Errorf("empty input: got %q", got)
	}
}

func TestClean(t *testing.T) {
	c := Default()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tags urls and digits", "Check http://x.co @bob #news 42!!", "check"},
		{"only removable tokens", "http://x.co @bob #news 42!! the", ""},
		{"stop words case-insensitive", "The Quick brown fox 99 jumps", "quick brown fox jumps"},
		{"non-ascii runs", "Café déjà vu", "caf dj vu"},
		{"apostrophes stripped before stop words", "I can't believe it's 2018!!!", "cant believe"},
		{"retweet prefix", "RT @user: hello #tag", "rt hello"},
		{"digits inside word", "abc123def", "abcdef"},
		{"https scheme", "read https://example.com/a?b=1 later", "read later"},
		{"collapsed whitespace", "  many\t\tspaces\n here ", "many spaces"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.CleanString(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	c := Default()
	inputs := []string{
		"Check http://x.co @bob #news 42!!",
		"MAKE AMERICA GREAT AGAIN #MAGA https://t.co/xyz",
		"abc 1the the1 x2y",
		"Привет мир hello world",
		"we're going to the store @mom, 100% sure!",
		"",
	}
	for _, in := range inputs {
		once := c.CleanString(in)
		twice := c.CleanString(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestClean_NoStopwords(t *testing.T) {
	c := New(nil)
	if got := c.CleanString("The fox"); got != "the fox" {
		t.Errorf("got %q, want %q", got, "the fox")
	}
}

func TestStopwords_Contains(t *testing.T) {
	s := English()
	if !s.Contains("THE") {
		t.Error("expected THE to be a stop word")
	}
	if s.Contains("election") {
		t.Error("election should not be a stop word")
	}
	var empty Stopwords
	if empty.Contains("the") {
		t.Error("nil set should contain nothing")
	}
}

func TestLoadStopwords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	body := "# custom list\nRT\n\namp\n  via  \n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadStopwords(path)
	if err != nil {
		t.Fatalf("LoadStopwords: %v", err)
	}
	if len(s) != 3 {
		t.Errorf("expected 3 words, got %d", len(s))
	}
	for _, w := range []string{"rt", "AMP", "via"} {
		if !s.Contains(w) {
			t.Errorf("expected %q to be loaded", w)
		}
	}
	if got := New(s).CleanString("RT via the wire"); got != "the wire" {
		t.Errorf("got %q, want %q", got, "the wire")
	}
}

func TestLoadStopwords_MissingFile(t *testing.T) {
	if _, err := LoadStopwords(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
