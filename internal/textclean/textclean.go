// Package textclean normalizes tweet text for lexicon scoring.
//
// Clean strips URLs, mentions, hashtags, non-ASCII runs, special characters,
// digits and stop words, and lowercases what remains. The removal order is
// fixed: tag tokens go before the generic special-character pass so their
// text does not survive as plain words.
package textclean

import (
	"regexp"
	"strings"
)

var (
	urlPattern     = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+.-]*://\S+`)
	mentionPattern = regexp.MustCompile(`@\S+`)
	hashtagPattern = regexp.MustCompile(`#\S+`)
	nonASCII       = regexp.MustCompile(`[^\x00-\x7F]+`)
	specialChars   = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespace     = regexp.MustCompile(`\s+`)
	digits         = regexp.MustCompile(`\d+`)
)

const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Cleaner removes noise and stop words from text
type Cleaner struct {
	stopwords Stopwords
}

// New returns a Cleaner using the given stop words. A nil set disables
// stop-word removal.
func New(stopwords Stopwords) *Cleaner {
	return &Cleaner{stopwords: stopwords}
}

// Default returns a Cleaner with the English stop-word list
func Default() *Cleaner {
	return New(English())
}

// Clean applies the full cleaning pipeline. A nil or empty input yields "".
func (c *Cleaner) Clean(text *string) string {
	if text == nil || *text == "" {
		return ""
	}
	s := *text
	s = urlPattern.ReplaceAllString(s, "")
	s = mentionPattern.ReplaceAllString(s, "")
	s = hashtagPattern.ReplaceAllString(s, "")
	s = nonASCII.ReplaceAllString(s, "")
	s = specialChars.ReplaceAllString(s, "")
	s = strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
	s = digits.ReplaceAllString(s, "")

	words := strings.Fields(s)
	kept := words[:0]
	for _, w := range words {
		if c.stopwords.Contains(w) || isPunctuation(w) {
			continue
		}
		kept = append(kept, w)
	}
	return strings.ToLower(strings.Join(kept, " "))
}

// CleanString is Clean for a non-nullable string
func (c *Cleaner) CleanString(text string) string {
	return c.Clean(&text)
}

func isPunctuation(w string) bool {
	return len(w) == 1 && strings.Contains(punctuation, w)
}
