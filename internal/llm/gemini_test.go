package llm

import (
	"context"
	"testing"
	"time"

	"design-service/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFailsFastWithoutKey(t *testing.T) {
	client := NewGeminiClient(&config.GeminiConfig{
		Model:   "gemini-2.0-flash",
		Timeout: time.Second,
	})

	_, err := client.Generate(context.Background(), "describe a kitchen")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing Gemini API key")
}

func TestGenerateRejectsEmptyPrompt(t *testing.T) {
	client := NewGeminiClient(&config.GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.0-flash",
		Timeout: time.Second,
	})

	_, err := client.Generate(context.Background(), "")

	require.Error(t, err)
}
