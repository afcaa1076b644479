package mock

import (
	"strings"

	"github.com/y-okubo/llmstxt/domain/model/chat"
)

// MockChat returns canned responses without calling any API. It is used as
// the fallback driver when no API key is configured, and in tests.
type MockChat struct {
	history []chat.Message
}

func NewMockChat() *MockChat {
	return &MockChat{
		history: []chat.Message{},
	}
}

func (c *MockChat) Send(prompt string, model string) (chat.SendResult, error) {
	c.history = append(c.history, chat.Message{Role: "user", Content: prompt})

	content := responseFor(prompt)
	c.history = append(c.history, chat.Message{Role: "assistant", Content: content})

	return chat.SendResult{
		Content:      content,
		FinishReason: "stop",
	}, nil
}

func (c *MockChat) GetHistory() []chat.Message {
	return c.history
}

func responseFor(prompt string) string {
	switch {
	case strings.Contains(prompt, "Markdown documentation"):
		return "This is a mock summary of Markdown documentation."
	case strings.Contains(prompt, "Python code"):
		return "This is a mock summary of Python code with identified functions and classes."
	case strings.Contains(prompt, "JavaScript/TypeScript code"):
		return "This is a mock summary of JavaScript/TypeScript code."
	case strings.Contains(prompt, "Repository content summaries"):
		return "This is a mock high-level summary of the entire repository."
	default:
		return "This is a generic mock response for testing purposes."
	}
}
