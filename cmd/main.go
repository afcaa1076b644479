package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/y-okubo/llmstxt/cmd/analyzeCommand"
	"github.com/y-okubo/llmstxt/cmd/initCommand"
	"github.com/y-okubo/llmstxt/cmd/versionCommand"
	"github.com/y-okubo/llmstxt/domain/service/chatFactory"
	"github.com/y-okubo/llmstxt/domain/service/configFindService"
	"github.com/y-okubo/llmstxt/domain/service/gitignoreScan"
	"github.com/y-okubo/llmstxt/domain/service/outputGenerate"
	"github.com/y-okubo/llmstxt/domain/service/projectScan"
	"github.com/y-okubo/llmstxt/domain/service/repoAcquire"
	"github.com/y-okubo/llmstxt/infrastructure/external/claude"
	"github.com/y-okubo/llmstxt/infrastructure/external/openAi"
	configRepo "github.com/y-okubo/llmstxt/infrastructure/repository/config"
	fileRepo "github.com/y-okubo/llmstxt/infrastructure/repository/file"
	ksuidGen "github.com/y-okubo/llmstxt/infrastructure/system/ksuid"
	"github.com/y-okubo/llmstxt/infrastructure/system/logger"
	"github.com/y-okubo/llmstxt/infrastructure/system/timer"
)

type RootCommand struct {
	CobraCommand *cobra.Command
}

func NewRootCommand() *RootCommand {
	cmd := &cobra.Command{
		Use:   "llmstxt",
		Short: "AI-powered repository analyzer",
		Long:  `llmstxt analyzes a code repository with an LLM and generates llms.txt and llms-full.txt summaries.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}

	logLevel := os.Getenv("LLMSTXT_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	log := logger.New(logLevel)

	claudeClient := claude.NewClaudeClient()
	openAiClient := openAi.NewOpenAIClient()
	fileRepository := fileRepo.NewFileRepository()
	configRepository := configRepo.NewConfigRepository()
	systemTimer := timer.NewTimer()
	ksuidGenerator := ksuidGen.NewKsuidGenerator()

	configFindSrv := configFindService.NewConfigFindService(fileRepository)
	chatFactorySrv := chatFactory.NewChatFactory(openAiClient, claudeClient, log)
	gitignoreScanSrv := gitignoreScan.NewGitignoreScanService(log)
	projectScanSrv := projectScan.NewProjectScanService(log)
	repoAcquireSrv := repoAcquire.NewRepoAcquireService(log)
	outputGenerateSrv := outputGenerate.NewOutputGenerateService(fileRepository, log)

	cmd.AddCommand(initCommand.NewInitCommand(configRepository, fileRepository).CobraCommand)
	cmd.AddCommand(analyzeCommand.NewAnalyzeCommand(
		chatFactorySrv,
		configFindSrv,
		configRepository,
		fileRepository,
		gitignoreScanSrv,
		projectScanSrv,
		repoAcquireSrv,
		outputGenerateSrv,
		systemTimer,
		ksuidGenerator,
		log,
	).CobraCommand)
	cmd.AddCommand(versionCommand.NewVersionCommand().CobraCommand)

	return &RootCommand{
		CobraCommand: cmd,
	}
}
