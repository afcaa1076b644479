//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package config

type Config struct {
	Lang    string        `yaml:"lang"`
	LLM     LLMConfig     `yaml:"llm"`
	Analyze AnalyzeConfig `yaml:"analyze"`
}

type LLMConfig struct {
	Driver string `yaml:"driver"`
	Model  string `yaml:"model"`
}

type AnalyzeConfig struct {
	CodeExtensions       []string `yaml:"codeExtensions"`
	Exclusions           []string `yaml:"exclusions"`
	MaxFileSizeKB        int      `yaml:"maxFileSizeKB"`
	MaxSummaryInputChars int      `yaml:"maxSummaryInputChars"`
	RespectGitignore     bool     `yaml:"respectGitignore"`
}

// Default returns the configuration used when no llmstxt.yml is found.
func Default() *Config {
	return &Config{
		Lang: "en",
		LLM: LLMConfig{
			Driver: "open-ai",
			Model:  "gpt-4o-mini",
		},
		Analyze: AnalyzeConfig{
			CodeExtensions: []string{
				".py", ".js", ".ts", ".java", ".go", ".rb", ".php", ".cs",
				".c", ".cpp", ".h", ".hpp", ".rs", ".kt", ".scala", ".md",
			},
			Exclusions: []string{
				"**/.*",
				"**/node_modules/**",
				"**/venv/**",
				"**/__pycache__/**",
				"**/build/**",
				"**/dist/**",
				"**/target/**",
				"**/*.lock",
				"**/*.log",
			},
			MaxFileSizeKB:        256,
			MaxSummaryInputChars: 150000,
			RespectGitignore:     true,
		},
	}
}

type Repository interface {
	Read(path string) (*Config, error)
	Write(path string, cfg *Config) error
}
