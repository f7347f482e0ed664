package cmd

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// formatElapsed formats a duration compactly.
//
//	<1s  -> "0.Xs"
//	<1m  -> "X.Xs"
//	<1h  -> "XmYs"
//	else -> "XhYm"
func formatElapsed(d time.Duration) string {
	ms := d.Milliseconds()
	switch {
	case ms < 1000:
		return fmt.Sprintf("0.%ds", ms/100)
	case ms < 60000:
		return fmt.Sprintf("%d.%ds", ms/1000, (ms%1000)/100)
	case ms < 3600000:
		return fmt.Sprintf("%dm%ds", ms/60000, (ms%60000)/1000)
	default:
		return fmt.Sprintf("%dh%dm", ms/3600000, (ms%3600000)/60000)
	}
}

// truncTag shortens a tag to maxLen runes by replacing its middle with "..."
func truncTag(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	available := maxLen - 3
	first := (available + 1) / 2
	last := available / 2
	return string(runes[:first]) + "..." + string(runes[len(runes)-last:])
}

const barLength = 40

// progressBar renders "[=====     ]  50.00%" for step current of total
func progressBar(current, total int) string {
	if total <= 0 {
		total = 1
	}
	percent := float64(current) * 100 / float64(total)
	filled := int(percent / 100 * barLength)
	if filled > barLength {
		filled = barLength
	}
	return fmt.Sprintf("[%s%s] %6.2f%%", strings.Repeat("=", filled), strings.Repeat(" ", barLength-filled), percent)
}

// progress prints step updates on one terminal line. advance is safe for
// concurrent use.
type progress struct {
	mu    sync.Mutex
	w     io.Writer
	total int
	step  int
	start time.Time
}

func newProgress(w io.Writer, total int) *progress {
	return &progress{w: w, total: total, start: time.Now()}
}

func (p *progress) advance(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.step++
	fmt.Fprintf(p.w, "\rProgress: %s %-24s", progressBar(p.step, p.total), label)
	if p.step >= p.total {
		fmt.Fprintf(p.w, "\n")
	}
}

func (p *progress) elapsed() string {
	return formatElapsed(time.Since(p.start))
}

// padRunes pads s with spaces to width runes
func padRunes(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
