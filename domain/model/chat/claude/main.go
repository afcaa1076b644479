package claude

import (
	"github.com/y-okubo/llmstxt/domain/external/claude"
	"github.com/y-okubo/llmstxt/domain/model/chat"
)

type ClaudeChat struct {
	client  claude.Client
	history []chat.Message
}

func NewClaudeChat(client claude.Client) *ClaudeChat {
	return &ClaudeChat{
		client:  client,
		history: []chat.Message{},
	}
}

func (c *ClaudeChat) Send(prompt string, model string) (chat.SendResult, error) {
	c.history = append(c.history, chat.Message{Role: "user", Content: prompt})

	claudeMessages := make([]claude.Message, len(c.history))
	for i, msg := range c.history {
		claudeMessages[i] = claude.NewMessage(msg.Role, msg.Content)
	}

	response, err := c.client.SendMessage(claudeMessages, model)
	if err != nil {
		return chat.SendResult{}, err
	}

	c.history = append(c.history, chat.Message{Role: "assistant", Content: response.Content})

	return chat.SendResult{
		Content:      response.Content,
		FinishReason: response.TerminationReason,
	}, nil
}

func (c *ClaudeChat) GetHistory() []chat.Message {
	return c.history
}
