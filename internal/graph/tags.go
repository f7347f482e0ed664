package graph

import "strings"

// DefaultDelimiter separates tags inside a hashtags or mentions cell
const DefaultDelimiter = ","

// ExtractTags splits a delimited tag field into trimmed, non-empty tokens.
// Repeated tags are kept; a nil or empty field yields no tags.
func ExtractTags(field *string, delimiter string) []string {
	if field == nil || *field == "" {
		return nil
	}
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	var tags []string
	for _, piece := range strings.Split(*field, delimiter) {
		if tag := strings.TrimSpace(piece); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
