package outputGenerate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	fileRepo "github.com/y-okubo/llmstxt/infrastructure/repository/file"
	"github.com/y-okubo/llmstxt/infrastructure/system/logger"
	"github.com/y-okubo/llmstxt/testUtil"
)

func TestOutputGenerateService(t *testing.T) {
	t.Run("詳細レポートのヘッダとセクションが結合されること", func(t *testing.T) {
		service := NewOutputGenerateService(fileRepo.NewFileRepository(), logger.NewNop())

		content := service.BuildFullContent([]string{
			"### Summary of a.py\n\nfirst\n\n",
			"### Summary of b.py\n\nsecond\n\n",
		})

		assert.Equal(t, "# Repository Analysis - Detailed Report\n\n## File Summaries\n\n### Summary of a.py\n\nfirst\n\n### Summary of b.py\n\nsecond\n\n", content)
	})

	t.Run("出力ファイルが書き込まれること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		service := NewOutputGenerateService(fileRepo.NewFileRepository(), logger.NewNop())
		outDir := filepath.Join(space.Dir, "out")

		fullPath, summaryPath, err := service.WriteOutputFiles(outDir, "full content", "summary content")
		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(outDir, "llms-full.txt"), fullPath)
		assert.Equal(t, filepath.Join(outDir, "llms.txt"), summaryPath)

		space.AssertFile("out/llms-full.txt", func(actual []byte) {
			assert.Equal(t, "full content", string(actual))
		})
		space.AssertFile("out/llms.txt", func(actual []byte) {
			assert.Equal(t, "summary content", string(actual))
		})
	})

	t.Run("既存のサマリが上書きできること", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("llms.txt", []byte("old summary"))

		service := NewOutputGenerateService(fileRepo.NewFileRepository(), logger.NewNop())
		_, _, err := service.WriteOutputFiles(space.Dir, "new full", "new summary")
		assert.NoError(t, err)

		space.AssertFile("llms.txt", func(actual []byte) {
			assert.Equal(t, "new summary", string(actual))
		})
	})
}
