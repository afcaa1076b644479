package claude

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
	domainClaude "github.com/y-okubo/llmstxt/domain/external/claude"
)

const apiURL = "https://api.anthropic.com/v1/messages"

type ClaudeClient struct {
	apiKey string
}

func NewClaudeClient() *ClaudeClient {
	return &ClaudeClient{apiKey: os.Getenv("ANTHROPIC_API_KEY")}
}

func (c *ClaudeClient) SendMessage(messages []domainClaude.Message, model string) (domainClaude.GenerationResult, error) {
	client := resty.New()

	requestBody := claudeRequest{
		Model:     model,
		MaxTokens: 8192,
		Messages:  convertMessages(messages),
		Stream:    true,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return domainClaude.GenerationResult{}, err
	}

	resp, err := client.R().
		SetHeader("x-api-key", c.apiKey).
		SetHeader("anthropic-version", "2023-06-01").
		SetHeader("Content-Type", "application/json").
		SetBody(jsonBody).
		SetDoNotParseResponse(true).
		Post(apiURL)

	if err != nil {
		return domainClaude.GenerationResult{}, err
	}
	defer resp.RawBody().Close()

	if resp.StatusCode() != 200 {
		bodyBytes, _ := io.ReadAll(resp.RawBody())
		return domainClaude.GenerationResult{}, fmt.Errorf("API request failed with status code %d and response: %s", resp.StatusCode(), string(bodyBytes))
	}

	return processStreamResponse(resp.RawBody())
}

func convertMessages(messages []domainClaude.Message) []message {
	converted := make([]message, len(messages))
	for i, msg := range messages {
		converted[i] = message{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}
	return converted
}

func processStreamResponse(body io.ReadCloser) (domainClaude.GenerationResult, error) {
	reader := bufio.NewReader(body)
	var fullResponse strings.Builder
	var terminationReason string

	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				break
			}
			return domainClaude.GenerationResult{}, err
		}

		line = bytes.TrimSpace(line)
		if !bytes.HasPrefix(line, []byte("data: ")) {
			continue
		}

		data := bytes.TrimPrefix(line, []byte("data: "))
		if len(data) == 0 {
			continue
		}

		var streamResp streamResponse
		if err := json.Unmarshal(data, &streamResp); err != nil {
			return domainClaude.GenerationResult{}, err
		}

		switch streamResp.Type {
		case "content_block_delta":
			fullResponse.WriteString(streamResp.Delta.Text)
		case "message_delta":
			if streamResp.Delta.StopReason != "" {
				terminationReason = streamResp.Delta.StopReason
			}
		}
	}

	return domainClaude.GenerationResult{
		Content:           fullResponse.String(),
		TerminationReason: terminationReason,
	}, nil
}

type claudeRequest struct {
	Model     string    `json:"model"`
	Messages  []message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
	Stream    bool      `json:"stream"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type streamResponse struct {
	Type  string `json:"type"`
	Delta struct {
		Type       string `json:"type"`
		Text       string `json:"text"`
		StopReason string `json:"stop_reason"`
	} `json:"delta"`
}
