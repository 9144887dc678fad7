// Package extract recovers structured data from free-form completion text.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"studenthub-core/internal/domain/entity"
)

// Policy selects which fallbacks Structured may use after a direct parse fails.
type Policy struct {
	// FencedBlock looks for a ```json [...] ``` code block.
	FencedBlock bool
	// BracketScan looks for the first [{...}] span anywhere in the text.
	BracketScan bool
	// RepairTrailingComma retries each candidate with ",]" and ",}" collapsed.
	RepairTrailingComma bool
}

var (
	fencedArray   = regexp.MustCompile("(?s)```json\\s*(\\[.*?\\])\\s*```")
	bracketArray  = regexp.MustCompile(`(?s)\[\s*\{.*?\}\s*\]`)
	trailingComma = regexp.MustCompile(`,\s*([\]}])`)
)

// Structured returns the JSON array carried by text. It never guesses: if no candidate
// parses as a whole array, it fails with entity.ErrExtractionFailed.
// Whatever the policy, a balanced scan of every '[' in text is the last resort.
func Structured(text string, p Policy) ([]any, error) {
	if items, ok := parseArray(text); ok {
		return items, nil
	}

	var candidates []string
	if p.FencedBlock {
		if m := fencedArray.FindStringSubmatch(text); m != nil {
			candidates = append(candidates, m[1])
		}
	}
	if p.BracketScan {
		if m := bracketArray.FindString(text); m != "" {
			candidates = append(candidates, m)
		}
	}

	for _, c := range candidates {
		if items, ok := parseArray(c); ok {
			return items, nil
		}
		if p.RepairTrailingComma {
			if items, ok := parseArray(trailingComma.ReplaceAllString(c, "$1")); ok {
				return items, nil
			}
		}
	}

	if items, ok := scanArray(text); ok {
		return items, nil
	}
	if p.RepairTrailingComma {
		if items, ok := scanArray(trailingComma.ReplaceAllString(text, "$1")); ok {
			return items, nil
		}
	}
	return nil, entity.ErrExtractionFailed
}

// scanArray decodes one JSON value from each '[' in turn and keeps the first array that
// holds an object. Failing that, it returns the first array that decoded at all.
func scanArray(text string) ([]any, bool) {
	var first []any
	for i := strings.IndexByte(text, '['); i >= 0; {
		var items []any
		if err := json.NewDecoder(strings.NewReader(text[i:])).Decode(&items); err == nil && items != nil {
			if hasObject(items) {
				return items, true
			}
			if first == nil {
				first = items
			}
		}
		next := strings.IndexByte(text[i+1:], '[')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return first, first != nil
}

func hasObject(items []any) bool {
	for _, it := range items {
		if _, ok := it.(map[string]any); ok {
			return true
		}
	}
	return false
}

func parseArray(s string) ([]any, bool) {
	var items []any
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &items); err != nil {
		return nil, false
	}
	// "null" decodes without error
	if items == nil {
		return nil, false
	}
	return items, true
}
