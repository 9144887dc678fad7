package client

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const intentJudgeInstruction = `You compare two questions asked to an Indian higher-education search assistant.
Answer ONLY "YES" if both ask for the same information (same college, exam, course, year and detail),
even when worded differently. Answer ONLY "NO" if they differ in any of these.`

// GeminiEvaluator confirms that a cached search answer really fits a new query.
type GeminiEvaluator struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func NewGeminiEvaluator(client *genai.Client, model string, logger *zap.Logger) *GeminiEvaluator {
	return &GeminiEvaluator{
		client: client,
		model:  model,
		logger: logger.With(zap.String("component", "intent_matcher")),
	}
}

func (e *GeminiEvaluator) IsMatch(ctx context.Context, userPrompt, cachedPrompt string) bool {
	prompt := fmt.Sprintf("%s\n\nQuery 1: %s\nQuery 2: %s", intentJudgeInstruction, userPrompt, cachedPrompt)

	resp, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), nil)
	if err != nil {
		// no match on error
		e.logger.Warn("intent check failed", zap.Error(err))
		return false
	}

	return strings.Contains(strings.ToUpper(resp.Text()), "YES")
}
