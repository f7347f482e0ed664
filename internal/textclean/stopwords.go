package textclean

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Stopwords is a lowercase word set. Lookups are case-insensitive.
type Stopwords map[string]struct{}

// Contains reports whether w is a stop word
func (s Stopwords) Contains(w string) bool {
	if s == nil {
		return false
	}
	_, ok := s[strings.ToLower(w)]
	return ok
}

// Add inserts words into the set
func (s Stopwords) Add(words ...string) {
	for _, w := range words {
		s[strings.ToLower(w)] = struct{}{}
	}
}

// englishList is the NLTK English stop-word corpus
var englishList = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're",
	"you've", "you'll", "you'd", "your", "yours", "yourself", "yourselves", "he",
	"him", "his", "himself", "she", "she's", "her", "hers", "herself", "it", "it's",
	"its", "itself", "they", "them", "their", "theirs", "themselves", "what", "which",
	"who", "whom", "this", "that", "that'll", "these", "those", "am", "is", "are",
	"was", "were", "be", "been", "being", "have", "has", "had", "having", "do",
	"does", "did", "doing", "a", "an", "the", "and", "but", "if", "or", "because",
	"as", "until", "while", "of", "at", "by", "for", "with", "about", "against",
	"between", "into", "through", "during", "before", "after", "above", "below",
	"to", "from", "up", "down", "in", "out", "on", "off", "over", "under", "again",
	"further", "then", "once", "here", "there", "when", "where", "why", "how", "all",
	"any", "both", "each", "few", "more", "most", "other", "some", "such", "no",
	"nor", "not", "only", "own", "same", "so", "than", "too", "very", "s", "t",
	"can", "will", "just", "don", "don't", "should", "should've", "now", "d", "ll",
	"m", "o", "re", "ve", "y", "ain", "aren", "aren't", "couldn", "couldn't",
	"didn", "didn't", "doesn", "doesn't", "hadn", "hadn't", "hasn", "hasn't",
	"haven", "haven't", "isn", "isn't", "ma", "mightn", "mightn't", "mustn",
	"mustn't", "needn", "needn't", "shan", "shan't", "shouldn", "shouldn't", "wasn",
	"wasn't", "weren", "weren't", "won", "won't", "wouldn", "wouldn't",
}

// English returns a fresh copy of the English stop-word set
func English() Stopwords {
	s := make(Stopwords, len(englishList))
	s.Add(englishList...)
	return s
}

// LoadStopwords reads one word per line. Blank lines and lines starting
// with # are skipped.
func LoadStopwords(path string) (Stopwords, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stopwords file %s: %w", path, err)
	}
	defer file.Close()

	s := make(Stopwords)
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.Add(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stopwords file %s at line %d: %w", path, lineNum, err)
	}
	return s, nil
}
