package analyzeCommand

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	externalClaude "github.com/y-okubo/llmstxt/domain/external/claude"
	externalOpenAi "github.com/y-okubo/llmstxt/domain/external/openAi"
	"github.com/y-okubo/llmstxt/domain/repository/config"
	"github.com/y-okubo/llmstxt/domain/repository/file"
	"github.com/y-okubo/llmstxt/domain/service/chatFactory"
	"github.com/y-okubo/llmstxt/domain/service/configFindService"
	"github.com/y-okubo/llmstxt/domain/service/gitignoreScan"
	"github.com/y-okubo/llmstxt/domain/service/outputGenerate"
	"github.com/y-okubo/llmstxt/domain/service/projectScan"
	"github.com/y-okubo/llmstxt/domain/service/repoAcquire"
	"github.com/y-okubo/llmstxt/domain/service/summarize"
	"github.com/y-okubo/llmstxt/domain/system/ksuid"
	"github.com/y-okubo/llmstxt/domain/system/logger"
	"github.com/y-okubo/llmstxt/domain/system/timer"
)

type AnalyzeCommand struct {
	CobraCommand *cobra.Command
}

func NewAnalyzeCommand(
	chatFactory *chatFactory.ChatFactory,
	configFindService *configFindService.ConfigFindService,
	configRepository config.Repository,
	fileRepository file.Repository,
	gitignoreScanService *gitignoreScan.GitignoreScanService,
	projectScanService *projectScan.ProjectScanService,
	repoAcquireService *repoAcquire.RepoAcquireService,
	outputGenerateService *outputGenerate.OutputGenerateService,
	timer timer.ITimer,
	ksuidGenerator ksuid.IKsuid,
	log logger.ILogger,
) *AnalyzeCommand {
	var outputDirFlag string
	var modelFlag string
	var driverFlag string
	var extensionsFlag string
	var maxFileSizeFlag int
	var maxSummaryCharsFlag int
	var noGitignoreFlag bool

	cmd := &cobra.Command{
		Use:   "analyze [repository]",
		Short: "Analyze a repository and generate llms.txt files",
		Long:  `Analyze a local repository or a remote URL and generate llms.txt and llms-full.txt summaries using an LLM.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(configFindService, configRepository, log)

			if modelFlag != "" {
				cfg.LLM.Model = modelFlag
			}
			if driverFlag != "" {
				cfg.LLM.Driver = driverFlag
			}
			if extensionsFlag != "" {
				cfg.Analyze.CodeExtensions = splitExtensions(extensionsFlag)
			}
			if maxFileSizeFlag > 0 {
				cfg.Analyze.MaxFileSizeKB = maxFileSizeFlag
			}
			if maxSummaryCharsFlag > 0 {
				cfg.Analyze.MaxSummaryInputChars = maxSummaryCharsFlag
			}
			if noGitignoreFlag {
				cfg.Analyze.RespectGitignore = false
			}
			warnUnknownModel(cfg, log)

			acquisition, err := repoAcquireService.Acquire(args[0])
			if err != nil {
				return err
			}
			defer acquisition.Cleanup()

			handler, err := gitignoreScanService.Load(acquisition.Path, cfg.Analyze.RespectGitignore)
			if err != nil {
				return err
			}

			documents, err := projectScanService.Scan(acquisition.Path, &cfg.Analyze, handler)
			if err != nil {
				return err
			}
			if len(documents) == 0 {
				return errors.New("no analyzable files found in repository")
			}

			chat, err := chatFactory.Make(cfg)
			if err != nil {
				return err
			}
			summarizeService := summarize.NewSummarizeService(chat, log)

			summaries := make([]string, 0, len(documents))
			for _, doc := range documents {
				summaries = append(summaries, summarizeService.SummarizeFile(doc, cfg.LLM.Model))
			}

			fullContent := outputGenerateService.BuildFullContent(summaries)
			summaryContent := summarizeService.SummarizeRepository(fullContent, cfg.Analyze.MaxSummaryInputChars, cfg.LLM.Model)

			fullPath, summaryPath, err := outputGenerateService.WriteOutputFiles(outputDirFlag, fullContent, summaryContent)
			if err != nil {
				return err
			}

			if err := saveHistory(fileRepository, timer, ksuidGenerator, outputDirFlag, fullContent, summaryContent); err != nil {
				log.Warnf("failed to save analysis history: %v", err)
			}

			fmt.Printf("Analyzed %d file(s)\n", len(documents))
			fmt.Printf("Detailed report: %s\n", fullPath)
			fmt.Printf("Summary: %s\n", summaryPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDirFlag, "output-dir", "o", ".", "Directory to write llms.txt and llms-full.txt")
	cmd.Flags().StringVarP(&modelFlag, "model", "m", "", "LLM model name (overrides config)")
	cmd.Flags().StringVar(&driverFlag, "driver", "", "LLM driver: open-ai, anthropic or mock (overrides config)")
	cmd.Flags().StringVar(&extensionsFlag, "extensions", "", "Comma-separated list of file extensions to analyze")
	cmd.Flags().IntVar(&maxFileSizeFlag, "max-file-size", 0, "Maximum file size in KB to analyze")
	cmd.Flags().IntVar(&maxSummaryCharsFlag, "max-summary-chars", 0, "Max characters from the detailed report used for the final summary")
	cmd.Flags().BoolVar(&noGitignoreFlag, "no-gitignore", false, "Do not honor .gitignore files")

	return &AnalyzeCommand{
		CobraCommand: cmd,
	}
}

// loadConfig looks for llmstxt.yml upward from the working directory and
// falls back to defaults when none exists.
func loadConfig(configFindService *configFindService.ConfigFindService, configRepository config.Repository, log logger.ILogger) *config.Config {
	configPath, err := configFindService.FindConfig()
	if err != nil {
		log.Infof("no llmstxt.yml found, using default configuration")
		return config.Default()
	}

	cfg, err := configRepository.Read(configPath)
	if err != nil {
		log.Warnf("failed to read %s, using default configuration: %v", configPath, err)
		return config.Default()
	}

	log.Infof("loaded configuration from %s", configPath)
	return cfg
}

// warnUnknownModel flags model names the active driver does not list. The
// name is still sent as-is, so newer models keep working.
func warnUnknownModel(cfg *config.Config, log logger.ILogger) {
	switch cfg.LLM.Driver {
	case "open-ai":
		if !externalOpenAi.ValidateModel(cfg.LLM.Model) {
			log.Warnf("model %q is not a known OpenAI model, sending it unvalidated", cfg.LLM.Model)
		}
	case "anthropic":
		if !externalClaude.ValidateModel(cfg.LLM.Model) {
			log.Warnf("model %q is not a known Anthropic model, sending it unvalidated", cfg.LLM.Model)
		}
	}
}

func splitExtensions(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.HasPrefix(part, ".") {
			part = "." + part
		}
		out = append(out, part)
	}
	return out
}

// saveHistory records each run under .llmstxt/history so past reports can
// be compared later.
func saveHistory(fileRepository file.Repository, t timer.ITimer, ksuidGenerator ksuid.IKsuid, outputDir string, fullContent string, summaryContent string) error {
	historyDir := filepath.Join(outputDir, ".llmstxt", "history", ksuidGenerator.New())
	if err := fileRepository.MkdirAll(historyDir); err != nil {
		return err
	}

	timeFile := filepath.Join(historyDir, t.Now().Format("2006-01-02T15:04:05"))
	if err := fileRepository.Write(timeFile, []byte{}); err != nil {
		return err
	}

	if err := fileRepository.Write(filepath.Join(historyDir, "llms-full.txt"), []byte(fullContent)); err != nil {
		return err
	}
	return fileRepository.Write(filepath.Join(historyDir, "llms.txt"), []byte(summaryContent))
}
