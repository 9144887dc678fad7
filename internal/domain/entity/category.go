package entity

// Category selects a fixed prompt template.
type Category string

const (
	CategoryColleges         Category = "colleges"
	CategoryPrivateColleges  Category = "private_colleges"
	CategoryEducationNews    Category = "education_news"
	CategoryExamAlerts       Category = "exam_alerts"
	CategoryCollegeAlerts    Category = "college_alerts"
	CategoryAdmissionAlerts  Category = "admission_alerts"
	CategoryHighestPackages  Category = "highest_packages"
	CategoryTrendingCourses  Category = "trending_courses"
	CategoryTrendingColleges Category = "trending_colleges"
	CategorySearch           Category = "search"

	// Generic categories used when a caller gives no category.
	CategoryGeneralNews     Category = "general_news"
	CategoryGeneralInsights Category = "general_insights"
)

// Record is one item of a structured AI answer (one college, one news item, ...).
// Its shape is defined by the prompt example, not by a Go type.
type Record = map[string]any
