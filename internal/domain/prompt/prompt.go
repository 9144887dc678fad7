// Package prompt holds the fixed instruction/prompt pairs sent to the completion service,
// one per category, together with the limits and extraction rules that go with them.
package prompt

import (
	"studenthub-core/internal/domain/entity"
	"studenthub-core/internal/domain/extract"
)

const (
	structuredMaxTokens = 3000
	searchMaxTokens     = 1500
)

// Template is everything needed to ask about, and parse the answer for, one category.
type Template struct {
	Category     entity.Category
	Instructions string
	Prompt       string
	MaxTokens    int
	Policy       extract.Policy
	// Schema is a JSON schema every extracted record must satisfy.
	Schema string
}

// Request turns the template into a completion request. An empty query keeps the
// template's own prompt.
func (t Template) Request(query string) entity.CompletionRequest {
	p := t.Prompt
	if query != "" {
		p = query
	}
	return entity.CompletionRequest{
		Instructions: t.Instructions,
		Prompt:       p,
		MaxTokens:    t.MaxTokens,
	}
}

// Endpoint groups. HTTP handlers validate the category query parameter against these.
var (
	AlertCategories = []entity.Category{
		entity.CategoryExamAlerts,
		entity.CategoryCollegeAlerts,
		entity.CategoryAdmissionAlerts,
	}
	InsightCategories = []entity.Category{
		entity.CategoryHighestPackages,
		entity.CategoryTrendingCourses,
		entity.CategoryTrendingColleges,
	}
)

var (
	listPolicy    = extract.Policy{FencedBlock: true}
	newsPolicy    = extract.Policy{FencedBlock: true, RepairTrailingComma: true}
	bracketPolicy = extract.Policy{BracketScan: true}
)

var templates = map[entity.Category]Template{
	entity.CategoryColleges: {
		Instructions: collegesInstructions,
		Prompt:       "List the top 10 engineering colleges in India.",
		Policy:       listPolicy,
		Schema:       collegeSchema,
	},
	entity.CategoryPrivateColleges: {
		Instructions: privateCollegesInstructions,
		Prompt:       "List top 10 private engineering colleges in India with the highest placements (excluding IITs and NITs).",
		Policy:       listPolicy,
		Schema:       collegeSchema,
	},
	entity.CategoryEducationNews: {
		Instructions: newsInstructions,
		Prompt:       "Give me the latest educational news from India.",
		Policy:       newsPolicy,
		Schema:       titledSchema,
	},
	entity.CategoryExamAlerts: {
		Instructions: alertsInstructions,
		Prompt:       "List the latest upcoming entrance exams in India with details.",
		Policy:       bracketPolicy,
		Schema:       titledSchema,
	},
	entity.CategoryCollegeAlerts: {
		Instructions: alertsInstructions,
		Prompt:       "List recent college updates in India, including new courses and announcements.",
		Policy:       bracketPolicy,
		Schema:       titledSchema,
	},
	entity.CategoryAdmissionAlerts: {
		Instructions: alertsInstructions,
		Prompt:       "List ongoing and upcoming college admissions in India.",
		Policy:       bracketPolicy,
		Schema:       titledSchema,
	},
	entity.CategoryHighestPackages: {
		Instructions: insightsInstructions,
		Prompt:       "List the top 10 colleges in India with the highest placement packages",
		Policy:       bracketPolicy,
		Schema:       objectSchema,
	},
	entity.CategoryTrendingCourses: {
		Instructions: insightsInstructions,
		Prompt:       "List the top 10 trending and in-demand courses in India.",
		Policy:       bracketPolicy,
		Schema:       objectSchema,
	},
	entity.CategoryTrendingColleges: {
		Instructions: insightsInstructions,
		Prompt:       "List the most popular and trending 10 colleges in India based on recent rankings.",
		Policy:       bracketPolicy,
		Schema:       objectSchema,
	},
	entity.CategoryGeneralNews: {
		Instructions: alertsInstructions,
		Prompt:       "Provide general education news.",
		Policy:       bracketPolicy,
		Schema:       objectSchema,
	},
	entity.CategoryGeneralInsights: {
		Instructions: insightsInstructions,
		Prompt:       "Provide general education insights.",
		Policy:       bracketPolicy,
		Schema:       objectSchema,
	},
	entity.CategorySearch: {
		Instructions: searchInstructions,
		Prompt:       "Give an overview of higher education options in India.",
		MaxTokens:    searchMaxTokens,
	},
}

// Build returns the template for c. Unknown categories get the generic insights template
// instead of an error.
func Build(c entity.Category) Template {
	t, ok := templates[c]
	if !ok {
		t = templates[entity.CategoryGeneralInsights]
	}
	t.Category = c
	if t.MaxTokens == 0 {
		t.MaxTokens = structuredMaxTokens
	}
	return t
}

// Known reports whether c has a dedicated template.
func Known(c entity.Category) bool {
	_, ok := templates[c]
	return ok
}

// In reports whether c is one of group.
func In(c entity.Category, group []entity.Category) bool {
	for _, g := range group {
		if g == c {
			return true
		}
	}
	return false
}
