package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"42", 42},
		{"0.5", 0.5},
		{"True", 1},
		{"False", 0},
		{"1", 1},
	}
	for _, tt := range tests {
		got, err := ParseNumber(tt.in)
		if err != nil {
			t.Errorf("ParseNumber(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseNumber("many"); err == nil {
		t.Error("expected error for non-numeric cell")
	}
}

func TestRecordSet_NullCells(t *testing.T) {
	var r Record
	for _, raw := range []string{"", "NaN", "  ", "None"} {
		if err := r.Set(WordCount, raw); err != nil {
			t.Fatalf("Set(%q) unexpected error: %v", raw, err)
		}
		if err := r.Set(Hashtags, raw); err != nil {
			t.Fatalf("Set(%q) unexpected error: %v", raw, err)
		}
	}
	if r.Float(WordCount) != nil {
		t.Error("null numeric cell should stay nil")
	}
	if r.String(Hashtags) != nil {
		t.Error("null text cell should stay nil")
	}
}

func TestRecordSet_TypedValues(t *testing.T) {
	var r Record
	if err := r.Set(StartsWithHashtag, "True"); err != nil {
		t.Fatal(err)
	}
	if err := r.Set(Content, "hello world"); err != nil {
		t.Fatal(err)
	}
	if got := r.Float(StartsWithHashtag); got == nil || *got != 1 {
		t.Errorf("expected starts_with_hashtag=1, got %v", got)
	}
	if got := r.String(Content); got == nil || *got != "hello world" {
		t.Errorf("expected content, got %v", got)
	}
	if err := r.Set(Followers, "lots"); err == nil {
		t.Error("expected parse error for numeric column")
	}
}

func TestTableView_MissingRequired(t *testing.T) {
	table := NewTable([]Column{Hashtags}, []Record{{}})
	_, err := table.View(Requirements{Required: []Column{Content}})
	var mce *MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("expected MissingColumnError, got %v", err)
	}
	if mce.Column != Content {
		t.Errorf("expected column content, got %s", mce.Column)
	}
}

func TestTableView_OptionalColumns(t *testing.T) {
	recs := []Record{
		{Text: map[Column]string{Hashtags: "#a"}, Num: map[Column]float64{WordCount: 3}},
		{Num: map[Column]float64{WordCount: 5}},
	}
	table := NewTable([]Column{Hashtags, WordCount, Column("bogus")}, recs)
	view, err := table.View(Requirements{Optional: []Column{Hashtags, Mentions, WordCount}})
	if err != nil {
		t.Fatal(err)
	}
	if !view.Has(Hashtags) || view.Has(Mentions) {
		t.Errorf("unexpected presence: hashtags=%v mentions=%v", view.Has(Hashtags), view.Has(Mentions))
	}
	if view.Strings(Mentions) != nil {
		t.Error("absent column should return nil slice")
	}
	tags := view.Strings(Hashtags)
	if len(tags) != 2 || tags[0] == nil || *tags[0] != "#a" || tags[1] != nil {
		t.Errorf("unexpected hashtags column: %v", tags)
	}
	if got := view.NonNull(WordCount); len(got) != 2 || got[0] != 3 || got[1] != 5 {
		t.Errorf("unexpected word_count values: %v", got)
	}
	if cols := table.Columns(); len(cols) != 2 {
		t.Errorf("unknown column should be ignored, got %v", cols)
	}
}

func TestLoadCSV_MergesRawAndDerived(t *testing.T) {
	dir := t.TempDir()
	raw1 := writeFile(t, dir, "1_trimmed.csv", "content,region,hashtags\n\"hi, there\",US,\"#a, #b\"\nbye,RU,\n")
	raw2 := writeFile(t, dir, "2_trimmed.csv", "content,region,hashtags\nmore,UK,#c\n")
	der1 := writeFile(t, dir, "1_derived.csv", "region,word_count,all_words_caps\nXX,2,False\nXX,1,True\n")
	der2 := writeFile(t, dir, "2_derived.csv", "region,word_count,all_words_caps\nXX,1,False\n")

	table, err := LoadCSV([]string{raw1, raw2}, []string{der1, der2})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", table.Len())
	}
	if !table.Has(WordCount) || !table.Has(Content) || table.Has(Mentions) {
		t.Errorf("unexpected columns: %v", table.Columns())
	}
	first := table.Records()[0]
	if got := first.String(Region); got == nil || *got != "US" {
		t.Errorf("raw region should win over derived duplicate, got %v", got)
	}
	if got := first.String(Content); got == nil || *got != "hi, there" {
		t.Errorf("quoted content not preserved, got %v", got)
	}
	if got := table.Records()[1].Float(AllWordsCaps); got == nil || *got != 1 {
		t.Errorf("expected all_words_caps=1 on row 2, got %v", got)
	}
	if got := table.Records()[1].String(Hashtags); got != nil {
		t.Errorf("empty hashtags cell should be null, got %q", *got)
	}
}

func TestLoadCSV_RowMismatch(t *testing.T) {
	dir := t.TempDir()
	raw := writeFile(t, dir, "raw.csv", "content\na\nb\n")
	der := writeFile(t, dir, "der.csv", "word_count\n1\n")
	if _, err := LoadCSV([]string{raw}, []string{der}); err == nil {
		t.Fatal("expected row count mismatch error")
	}
}

func TestLoadCSV_NoFiles(t *testing.T) {
	if _, err := LoadCSV(nil, nil); err == nil {
		t.Fatal("expected error without input files")
	}
}
