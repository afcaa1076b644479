package chatFactory

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/y-okubo/llmstxt/domain/external/claude"
	"github.com/y-okubo/llmstxt/domain/external/openAi"
	"github.com/y-okubo/llmstxt/domain/model/chat"
	modelClaude "github.com/y-okubo/llmstxt/domain/model/chat/claude"
	"github.com/y-okubo/llmstxt/domain/model/chat/mock"
	modelOpenAi "github.com/y-okubo/llmstxt/domain/model/chat/openAi"
	"github.com/y-okubo/llmstxt/domain/repository/config"
	"github.com/y-okubo/llmstxt/domain/system/logger"
)

type ChatFactory struct {
	openAiClient openAi.Client
	claudeClient claude.Client
	logger       logger.ILogger
}

func NewChatFactory(openAiClient openAi.Client, claudeClient claude.Client, logger logger.ILogger) *ChatFactory {
	return &ChatFactory{
		openAiClient: openAiClient,
		claudeClient: claudeClient,
		logger:       logger,
	}
}

// Make builds a chat for the configured driver. Drivers that need an API
// key fall back to the mock driver when the key is absent, so the tool
// stays usable in offline runs.
func (s *ChatFactory) Make(cfg *config.Config) (chat.Chat, error) {
	switch cfg.LLM.Driver {
	case "open-ai":
		if os.Getenv("OPENAI_API_KEY") == "" {
			s.logger.Warnf("OPENAI_API_KEY not set, falling back to mock LLM driver")
			return mock.NewMockChat(), nil
		}
		return modelOpenAi.NewOpenAiChat(s.openAiClient), nil
	case "anthropic":
		if os.Getenv("ANTHROPIC_API_KEY") == "" {
			s.logger.Warnf("ANTHROPIC_API_KEY not set, falling back to mock LLM driver")
			return mock.NewMockChat(), nil
		}
		return modelClaude.NewClaudeChat(s.claudeClient), nil
	case "mock":
		return mock.NewMockChat(), nil
	default:
		return nil, eris.Errorf("unsupported LLM driver: %s", cfg.LLM.Driver)
	}
}
