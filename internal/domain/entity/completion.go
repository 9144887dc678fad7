package entity

// CompletionRequest is one system+user exchange sent to the completion endpoint.
type CompletionRequest struct {
	Instructions string
	Prompt       string
	MaxTokens    int
}

type Completion struct {
	Content    string `json:"content"`
	Model      string `json:"model"`
	TokenCount int    `json:"token_count"`
	Latency    int64  `json:"latency_ms"`
}
