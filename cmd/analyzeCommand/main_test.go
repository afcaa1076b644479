package analyzeCommand

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/y-okubo/llmstxt/domain/external/claude"
	"github.com/y-okubo/llmstxt/domain/external/openAi"
	"github.com/y-okubo/llmstxt/domain/repository/file"
	"github.com/y-okubo/llmstxt/domain/service/chatFactory"
	"github.com/y-okubo/llmstxt/domain/service/configFindService"
	"github.com/y-okubo/llmstxt/domain/service/gitignoreScan"
	"github.com/y-okubo/llmstxt/domain/service/outputGenerate"
	"github.com/y-okubo/llmstxt/domain/service/projectScan"
	"github.com/y-okubo/llmstxt/domain/service/repoAcquire"
	"github.com/y-okubo/llmstxt/domain/system/ksuid"
	"github.com/y-okubo/llmstxt/domain/system/timer"
	configRepoImpl "github.com/y-okubo/llmstxt/infrastructure/repository/config"
	fileRepoImpl "github.com/y-okubo/llmstxt/infrastructure/repository/file"
	"github.com/y-okubo/llmstxt/infrastructure/system/logger"
	"github.com/y-okubo/llmstxt/testUtil"
	"go.uber.org/mock/gomock"
)

func newFileRepoMock(mockCtrl *gomock.Controller, wd string) *file.MockRepository {
	real := fileRepoImpl.NewFileRepository()

	mock := file.NewMockRepository(mockCtrl)
	mock.EXPECT().Getwd().Return(wd, nil).AnyTimes()
	mock.EXPECT().Exists(gomock.Any()).DoAndReturn(real.Exists).AnyTimes()
	mock.EXPECT().Read(gomock.Any()).DoAndReturn(real.Read).AnyTimes()
	mock.EXPECT().Write(gomock.Any(), gomock.Any()).DoAndReturn(real.Write).AnyTimes()
	mock.EXPECT().MkdirAll(gomock.Any()).DoAndReturn(real.MkdirAll).AnyTimes()
	return mock
}

func TestAnalyzeCommand(t *testing.T) {
	t.Run("モックドライバでリポジトリ解析が完走すること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("llmstxt.yml", []byte("llm:\n    driver: mock\n"))
		space.WriteFile("repo/main.py", []byte("print('hi')\n"))
		space.WriteFile("repo/README.md", []byte("# readme\n"))
		space.WriteFile("repo/.gitignore", []byte("*.log\n"))
		space.WriteFile("repo/debug.log", []byte("noise\n"))

		log := logger.NewNop()
		fileRepo := newFileRepoMock(mockCtrl, space.Dir)

		mockTimer := timer.NewMockITimer(mockCtrl)
		mockTimer.EXPECT().Now().Return(time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)).AnyTimes()

		mockKsuid := ksuid.NewMockIKsuid(mockCtrl)
		mockKsuid.EXPECT().New().Return("2TESTKSUID").AnyTimes()

		command := NewAnalyzeCommand(
			chatFactory.NewChatFactory(openAi.NewMockClient(mockCtrl), claude.NewMockClient(mockCtrl), log),
			configFindService.NewConfigFindService(fileRepo),
			configRepoImpl.NewConfigRepository(),
			fileRepo,
			gitignoreScan.NewGitignoreScanService(log),
			projectScan.NewProjectScanService(log),
			repoAcquire.NewRepoAcquireService(log),
			outputGenerate.NewOutputGenerateService(fileRepo, log),
			mockTimer,
			mockKsuid,
			log,
		)

		outDir := filepath.Join(space.Dir, "out")
		command.CobraCommand.SetArgs([]string{filepath.Join(space.Dir, "repo"), "--output-dir", outDir})

		err := command.CobraCommand.Execute()
		assert.NoError(t, err)

		space.AssertFile("out/llms-full.txt", func(actual []byte) {
			content := string(actual)
			assert.Contains(t, content, "# Repository Analysis - Detailed Report")
			assert.Contains(t, content, "### Summary of main.py")
			assert.Contains(t, content, "This is a mock summary of Python code with identified functions and classes.")
			assert.Contains(t, content, "### Summary of README.md")
			assert.Contains(t, content, "This is a mock summary of Markdown documentation.")
			assert.NotContains(t, content, "debug.log")
		})

		space.AssertFile("out/llms.txt", func(actual []byte) {
			content := string(actual)
			assert.Contains(t, content, "# Repository Summary")
			assert.Contains(t, content, "This is a mock high-level summary of the entire repository.")
		})

		space.AssertExistPath(filepath.Join("out", ".llmstxt", "history", "2TESTKSUID"))
		space.AssertExistPath(filepath.Join("out", ".llmstxt", "history", "2TESTKSUID", "2024-07-01T12:00:00"))
	})

	t.Run("解析対象が無い場合はエラーになること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("repo/notes.txt", []byte("not analyzable\n"))

		log := logger.NewNop()
		fileRepo := newFileRepoMock(mockCtrl, space.Dir)

		command := NewAnalyzeCommand(
			chatFactory.NewChatFactory(openAi.NewMockClient(mockCtrl), claude.NewMockClient(mockCtrl), log),
			configFindService.NewConfigFindService(fileRepo),
			configRepoImpl.NewConfigRepository(),
			fileRepo,
			gitignoreScan.NewGitignoreScanService(log),
			projectScan.NewProjectScanService(log),
			repoAcquire.NewRepoAcquireService(log),
			outputGenerate.NewOutputGenerateService(fileRepo, log),
			timer.NewMockITimer(mockCtrl),
			ksuid.NewMockIKsuid(mockCtrl),
			log,
		)

		command.CobraCommand.SetArgs([]string{filepath.Join(space.Dir, "repo"), "--driver", "mock"})

		err := command.CobraCommand.Execute()
		assert.Error(t, err)
	})

	t.Run("gitignore無効フラグで除外が解除されること", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("repo/.gitignore", []byte("ignored/\n"))
		space.WriteFile("repo/ignored/hidden.py", []byte("print('hidden')\n"))
		space.WriteFile("repo/main.py", []byte("print('hi')\n"))

		log := logger.NewNop()
		fileRepo := newFileRepoMock(mockCtrl, space.Dir)

		mockTimer := timer.NewMockITimer(mockCtrl)
		mockTimer.EXPECT().Now().Return(time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)).AnyTimes()

		mockKsuid := ksuid.NewMockIKsuid(mockCtrl)
		mockKsuid.EXPECT().New().Return("2TESTKSUID").AnyTimes()

		command := NewAnalyzeCommand(
			chatFactory.NewChatFactory(openAi.NewMockClient(mockCtrl), claude.NewMockClient(mockCtrl), log),
			configFindService.NewConfigFindService(fileRepo),
			configRepoImpl.NewConfigRepository(),
			fileRepo,
			gitignoreScan.NewGitignoreScanService(log),
			projectScan.NewProjectScanService(log),
			repoAcquire.NewRepoAcquireService(log),
			outputGenerate.NewOutputGenerateService(fileRepo, log),
			mockTimer,
			mockKsuid,
			log,
		)

		outDir := filepath.Join(space.Dir, "out")
		command.CobraCommand.SetArgs([]string{filepath.Join(space.Dir, "repo"), "--output-dir", outDir, "--driver", "mock", "--no-gitignore"})

		err := command.CobraCommand.Execute()
		assert.NoError(t, err)

		space.AssertFile("out/llms-full.txt", func(actual []byte) {
			assert.Contains(t, string(actual), "### Summary of ignored/hidden.py")
		})
	})
}
