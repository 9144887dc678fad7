package extract

import (
	"regexp"
	"strings"

	"studenthub-core/internal/domain/entity"
)

const maxRelatedQueries = 5

var (
	imageURL       = regexp.MustCompile(`https?://\S+\.(?:jpg|jpeg|png|webp|gif)`)
	relatedHeading = regexp.MustCompile(`Related Queries[*:]*[ \t]*\r?\n`)
	nextSection    = regexp.MustCompile(`\n[A-Z#]`)
	boldMarker     = regexp.MustCompile(`\*\*(.*?)\*\*`)
	headingMarker  = regexp.MustCompile(`##+`)
)

// FreeText builds a search result from one raw answer.
func FreeText(text string) entity.SearchResult {
	return entity.SearchResult{
		Response:       Clean(text),
		RelatedQueries: RelatedQueries(text),
		Images:         Images(text),
	}
}

// Images returns every image URL in text, in order of appearance. The count is not capped.
func Images(text string) []string {
	urls := imageURL.FindAllString(text, -1)
	if urls == nil {
		return []string{}
	}
	return urls
}

// RelatedQueries returns up to five entries listed under a "Related Queries" heading.
// The section ends at the next line starting with a capital letter or '#'.
func RelatedQueries(text string) []string {
	queries := []string{}

	loc := relatedHeading.FindStringIndex(text)
	if loc == nil {
		return queries
	}
	section := text[loc[1]:]
	if end := nextSection.FindStringIndex(section); end != nil {
		section = section[:end[0]]
	}

	for _, line := range strings.Split(section, "\n") {
		q := strings.Trim(line, "- *\t\r")
		if q == "" {
			continue
		}
		queries = append(queries, q)
		if len(queries) == maxRelatedQueries {
			break
		}
	}
	return queries
}

// Clean strips markdown bold and heading markers.
func Clean(text string) string {
	text = boldMarker.ReplaceAllString(text, "$1")
	text = headingMarker.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
