package chatFactory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/y-okubo/llmstxt/domain/external/claude"
	"github.com/y-okubo/llmstxt/domain/external/openAi"
	"github.com/y-okubo/llmstxt/domain/model/chat/mock"
	modelOpenAi "github.com/y-okubo/llmstxt/domain/model/chat/openAi"
	"github.com/y-okubo/llmstxt/domain/repository/config"
	"github.com/y-okubo/llmstxt/infrastructure/system/logger"
	"go.uber.org/mock/gomock"
)

func TestChatFactory_Make(t *testing.T) {
	t.Run("mockドライバでモックチャットが生成されること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		factory := NewChatFactory(openAi.NewMockClient(mockCtrl), claude.NewMockClient(mockCtrl), logger.NewNop())

		cfg := config.Default()
		cfg.LLM.Driver = "mock"

		c, err := factory.Make(cfg)
		assert.NoError(t, err)
		assert.IsType(t, &mock.MockChat{}, c)
	})

	t.Run("APIキーが無い場合はモックにフォールバックすること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		t.Setenv("OPENAI_API_KEY", "")

		factory := NewChatFactory(openAi.NewMockClient(mockCtrl), claude.NewMockClient(mockCtrl), logger.NewNop())

		c, err := factory.Make(config.Default())
		assert.NoError(t, err)
		assert.IsType(t, &mock.MockChat{}, c)
	})

	t.Run("APIキーがある場合は本来のドライバが使われること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		t.Setenv("OPENAI_API_KEY", "test-key")

		factory := NewChatFactory(openAi.NewMockClient(mockCtrl), claude.NewMockClient(mockCtrl), logger.NewNop())

		c, err := factory.Make(config.Default())
		assert.NoError(t, err)
		assert.IsType(t, &modelOpenAi.OpenAiChat{}, c)
	})

	t.Run("未知のドライバがエラーになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		factory := NewChatFactory(openAi.NewMockClient(mockCtrl), claude.NewMockClient(mockCtrl), logger.NewNop())

		cfg := config.Default()
		cfg.LLM.Driver = "unknown"

		_, err := factory.Make(cfg)
		assert.Error(t, err)
	})
}
