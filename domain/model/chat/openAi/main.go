package openAi

import (
	"github.com/y-okubo/llmstxt/domain/external/openAi"
	"github.com/y-okubo/llmstxt/domain/model/chat"
)

type OpenAiChat struct {
	client  openAi.Client
	history []chat.Message
}

func NewOpenAiChat(client openAi.Client) *OpenAiChat {
	return &OpenAiChat{
		client:  client,
		history: []chat.Message{},
	}
}

func (c *OpenAiChat) Send(prompt string, model string) (chat.SendResult, error) {
	c.history = append(c.history, chat.Message{Role: "user", Content: prompt})

	apiMessages := make([]openAi.Message, len(c.history))
	for i, msg := range c.history {
		apiMessages[i] = openAi.NewMessage(msg.Role, msg.Content)
	}

	response, err := c.client.SendMessage(apiMessages, model)
	if err != nil {
		return chat.SendResult{}, err
	}

	c.history = append(c.history, chat.Message{Role: "assistant", Content: response.Content})

	return chat.SendResult{
		Content:      response.Content,
		FinishReason: response.TerminationReason,
	}, nil
}

func (c *OpenAiChat) GetHistory() []chat.Message {
	return c.history
}
