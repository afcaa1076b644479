package initCommand

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/y-okubo/llmstxt/domain/repository/config"
	"github.com/y-okubo/llmstxt/domain/repository/file"
)

type InitCommand struct {
	CobraCommand *cobra.Command
}

func NewInitCommand(configRepository config.Repository, fileRepository file.Repository) *InitCommand {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize an llmstxt project",
		Long:  `Initialize an llmstxt project by creating an llmstxt.yml configuration file in the current directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			currentDir, err := fileRepository.Getwd()
			if err != nil {
				return err
			}

			configPath := filepath.Join(currentDir, "llmstxt.yml")
			if fileRepository.Exists(configPath) {
				return fmt.Errorf("llmstxt.yml already exists in the current directory")
			}

			if err := configRepository.Write(configPath, config.Default()); err != nil {
				return err
			}

			if err := fileRepository.MkdirAll(filepath.Join(currentDir, ".llmstxt", "history")); err != nil {
				return err
			}

			if err := addGitignoreEntries(fileRepository, currentDir); err != nil {
				return err
			}

			fmt.Println("Initialized llmstxt project. Created llmstxt.yml in the current directory.")
			return nil
		},
	}

	return &InitCommand{
		CobraCommand: cmd,
	}
}

// addGitignoreEntries keeps generated artifacts out of version control.
func addGitignoreEntries(fileRepository file.Repository, dir string) error {
	gitignorePath := filepath.Join(dir, ".gitignore")
	entries := []string{"/.llmstxt", "/llms.txt", "/llms-full.txt"}

	var content string
	if fileRepository.Exists(gitignorePath) {
		data, err := fileRepository.Read(gitignorePath)
		if err != nil {
			return err
		}
		content = string(data)
	}

	var missing []string
	for _, entry := range entries {
		if !containsLine(content, entry) {
			missing = append(missing, entry)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += strings.Join(missing, "\n") + "\n"

	return fileRepository.Write(gitignorePath, []byte(content))
}

func containsLine(content string, line string) bool {
	for _, l := range strings.Split(content, "\n") {
		if strings.TrimSpace(l) == line {
			return true
		}
	}
	return false
}
