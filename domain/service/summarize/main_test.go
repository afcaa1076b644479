package summarize

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/y-okubo/llmstxt/domain/model/chat"
	"github.com/y-okubo/llmstxt/domain/model/chat/mock"
	"github.com/y-okubo/llmstxt/domain/service/projectScan"
	"github.com/y-okubo/llmstxt/infrastructure/system/logger"
	"go.uber.org/mock/gomock"
)

func TestSummarizeService_SummarizeFile(t *testing.T) {
	t.Run("ファイル種別に応じたプロンプトが使われること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		mockChat := chat.NewMockChat(mockCtrl)
		mockChat.EXPECT().Send(gomock.Any(), "gpt-4o-mini").DoAndReturn(func(prompt, model string) (chat.SendResult, error) {
			assert.Contains(t, prompt, "Python code")
			assert.Contains(t, prompt, "print('hi')")
			return chat.SendResult{Content: "a python summary", FinishReason: "stop"}, nil
		}).Times(1)

		service := NewSummarizeService(mockChat, logger.NewNop())
		section := service.SummarizeFile(projectScan.Document{
			RelPath: "src/main.py",
			Content: "print('hi')\n",
		}, "gpt-4o-mini")

		assert.True(t, strings.HasPrefix(section, "### Summary of src/main.py\n\n"))
		assert.Contains(t, section, "a python summary")
	})

	t.Run("失敗してもエラーマーカー付きセクションが返ること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		mockChat := chat.NewMockChat(mockCtrl)
		mockChat.EXPECT().Send(gomock.Any(), gomock.Any()).Return(chat.SendResult{}, errors.New("boom")).Times(1)

		service := NewSummarizeService(mockChat, logger.NewNop())
		section := service.SummarizeFile(projectScan.Document{
			RelPath: "main.go",
			Content: "package main\n",
		}, "gpt-4o-mini")

		assert.Contains(t, section, "### Summary of main.go")
		assert.Contains(t, section, "*Error generating summary: boom*")
	})

	t.Run("モックドライバが種別ごとの固定応答を返すこと", func(t *testing.T) {
		service := NewSummarizeService(mock.NewMockChat(), logger.NewNop())

		section := service.SummarizeFile(projectScan.Document{
			RelPath: "README.md",
			Content: "# readme\n",
		}, "gpt-4o-mini")
		assert.Contains(t, section, "This is a mock summary of Markdown documentation.")

		section = service.SummarizeFile(projectScan.Document{
			RelPath: "app.ts",
			Content: "const a = 1\n",
		}, "gpt-4o-mini")
		assert.Contains(t, section, "JavaScript/TypeScript")
	})
}

func TestSummarizeService_SummarizeRepository(t *testing.T) {
	t.Run("上限を超えた入力が切り詰められること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		long := strings.Repeat("a", 100)

		mockChat := chat.NewMockChat(mockCtrl)
		mockChat.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(prompt, model string) (chat.SendResult, error) {
			assert.Contains(t, prompt, strings.Repeat("a", 10))
			assert.NotContains(t, prompt, strings.Repeat("a", 11))
			return chat.SendResult{Content: "overall", FinishReason: "stop"}, nil
		}).Times(1)

		service := NewSummarizeService(mockChat, logger.NewNop())
		summary := service.SummarizeRepository(long, 10, "gpt-4o-mini")

		assert.Equal(t, "# Repository Summary\n\noverall\n", summary)
	})

	t.Run("失敗時はエラーマーカーが返ること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		mockChat := chat.NewMockChat(mockCtrl)
		mockChat.EXPECT().Send(gomock.Any(), gomock.Any()).Return(chat.SendResult{}, errors.New("boom")).Times(1)

		service := NewSummarizeService(mockChat, logger.NewNop())
		summary := service.SummarizeRepository("content", 1000, "gpt-4o-mini")

		assert.Equal(t, "# Repository Summary\n\n*Error generating summary*\n", summary)
	})
}
