package openAi

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/y-okubo/llmstxt/domain/external/openAi"
)

func TestOpenAIClient_SendMessage_Integration(t *testing.T) {
	t.Skip()

	_, currentFile, _, _ := runtime.Caller(0)
	currentDir := filepath.Dir(currentFile)
	envPath := filepath.Join(currentDir, "..", "..", "..", ".env")
	err := godotenv.Load(envPath)
	assert.NoError(t, err)

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Fatal("OPENAI_API_KEY is not set")
	}

	messages := []openAi.Message{
		{Role: "user", Content: "Summarize this code: def add(a, b): return a + b"},
	}
	model := "gpt-4o-mini"

	client := NewOpenAIClient()
	result, err := client.SendMessage(messages, model)

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Content)
	assert.NotEmpty(t, result.TerminationReason)
}
