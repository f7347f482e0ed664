package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Column names a field of the tweet dataset
type Column string

const (
	Content         Column = "content"
	Hashtags        Column = "hashtags"
	Mentions        Column = "mentions"
	AccountCategory Column = "account_category"
	Region          Column = "region"
	Language        Column = "language"
	AccountType     Column = "account_type"
	PublishDate     Column = "publish_date"

	Following                 Column = "following"
	Followers                 Column = "followers"
	Updates                   Column = "updates"
	FollowersToFollowingRatio Column = "followers_to_following_ratio"
	CountHashtags             Column = "count_hashtags"
	CountMentions             Column = "count_mentions"
	WordCount                 Column = "word_count"
	TextLength                Column = "text_length"
	CountEmojis               Column = "count_emojis"
	CountSpecialCharacters    Column = "count_special_characters"
	HourOfDay                 Column = "hour_of_day"
	DayOfWeek                 Column = "day_of_week"

	// Boolean-like flags, stored as 1/0
	AllWordsCaps      Column = "all_words_caps"
	StartsWithHashtag Column = "starts_with_hashtag"
	StartsWithMention Column = "starts_with_mention"
	Retweet           Column = "retweet"
)

// TextColumns lists the string-valued columns in storage order
var TextColumns = []Column{
	Content, Hashtags, Mentions, AccountCategory, Region, Language, AccountType, PublishDate,
}

// NumericColumns lists the number-valued columns in storage order
var NumericColumns = []Column{
	Following, Followers, Updates, FollowersToFollowingRatio,
	CountHashtags, CountMentions, WordCount, TextLength, CountEmojis, CountSpecialCharacters,
	HourOfDay, DayOfWeek,
	AllWordsCaps, StartsWithHashtag, StartsWithMention, Retweet,
}

// CategoricalColumns are the text columns analysed as categories
var CategoricalColumns = []Column{Region, Language, AccountType, AccountCategory}

// NLPFeatures are the derived numeric features used for correlation analysis
var NLPFeatures = []Column{
	CountHashtags, CountMentions, WordCount, TextLength, CountEmojis,
	CountSpecialCharacters, AllWordsCaps, StartsWithHashtag, StartsWithMention,
}

// AllColumns returns every known column, text first
func AllColumns() []Column {
	cols := make([]Column, 0, len(TextColumns)+len(NumericColumns))
	cols = append(cols, TextColumns...)
	return append(cols, NumericColumns...)
}

// IsNumeric reports whether the column holds numbers
func (c Column) IsNumeric() bool {
	for _, n := range NumericColumns {
		if n == c {
			return true
		}
	}
	return false
}

// Known reports whether c is one of the dataset columns
func (c Column) Known() bool {
	for _, k := range AllColumns() {
		if k == c {
			return true
		}
	}
	return false
}

// Record is one row of the dataset. Every field is nullable.
type Record struct {
	Text map[Column]string
	Num  map[Column]float64
}

// String returns the text value of col, or nil when null
func (r Record) String(col Column) *string {
	v, ok := r.Text[col]
	if !ok {
		return nil
	}
	return &v
}

// Float returns the numeric value of col, or nil when null
func (r Record) Float(col Column) *float64 {
	v, ok := r.Num[col]
	if !ok {
		return nil
	}
	return &v
}

// Set stores a raw cell value, parsing it for numeric columns.
// Empty and NaN-like cells are left null.
func (r *Record) Set(col Column, raw string) error {
	raw = strings.TrimSpace(raw)
	if isNullCell(raw) {
		return nil
	}
	if !col.IsNumeric() {
		if r.Text == nil {
			r.Text = make(map[Column]string)
		}
		r.Text[col] = raw
		return nil
	}
	v, err := ParseNumber(raw)
	if err != nil {
		return fmt.Errorf("column %s: %w", col, err)
	}
	if r.Num == nil {
		r.Num = make(map[Column]float64)
	}
	r.Num[col] = v
	return nil
}

// ParseNumber parses a numeric or boolean-like cell ("True"/"False" become 1/0)
func ParseNumber(raw string) (float64, error) {
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v, nil
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		if b {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("not a number: %q", raw)
}

func isNullCell(raw string) bool {
	switch raw {
	case "", "NaN", "nan", "NA", "<nil>", "None", "null":
		return true
	}
	return false
}
