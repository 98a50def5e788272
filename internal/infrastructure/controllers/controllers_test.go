//go:build unit

package controllers_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/readmegen/internal/domain/commands"
	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/infrastructure/controllers"
	"github.com/rios0rios0/readmegen/test/domain/commanddoubles"
	"github.com/rios0rios0/readmegen/test/domain/entitybuilders"
)

// run wires controller into a throwaway cobra command and executes it with args.
func run(t *testing.T, controller entities.Controller, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:           controller.GetBind().Use,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return controller.Execute(command, arguments)
		},
	}
	controllers.AddGlobalFlags(cmd)
	controller.AddFlags(cmd)
	cmd.SetOut(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "readmegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGenerateController(t *testing.T) {
	t.Parallel()

	t.Run("should build the configuration from flags and print a preview", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubGenerateCommand{
			Result: &commands.GenerateResult{OutputPath: "OUT.md", Content: "# Widget\n"},
		}
		controller := controllers.NewGenerateController(stub)
		config := writeConfig(t, "top_files: 7\n")

		// when
		out, err := run(t, controller,
			"https://github.com/org/widget.git",
			"--config", config,
			"--out", "OUT.md",
			"--use-llm",
			"--provider", "deepseek",
			"--max-tokens", "900",
		)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, stub.ExecuteCallCount)
		cfg := stub.LastConfig
		assert.Equal(t, "https://github.com/org/widget.git", cfg.RepoAddress)
		assert.Equal(t, "OUT.md", cfg.OutputPath)
		assert.True(t, cfg.UseGenerator)
		assert.Equal(t, "deepseek", cfg.Provider)
		assert.Equal(t, 900, cfg.MaxOutputTokens)
		assert.Equal(t, 7, cfg.TopFiles)
		assert.Contains(t, out, "OUT.md")
		assert.Contains(t, out, "# Widget")
	})

	t.Run("should let explicit flags win over the config file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubGenerateCommand{Result: &commands.GenerateResult{}}
		controller := controllers.NewGenerateController(stub)
		config := writeConfig(t, "output: from-config.md\ngenerator:\n  provider: gemini\n  enabled: true\n")

		// when
		_, err := run(t, controller, ".", "--config", config, "--provider", "openai")

		// then
		require.NoError(t, err)
		assert.Equal(t, "from-config.md", stub.LastConfig.OutputPath)
		assert.Equal(t, "openai", stub.LastConfig.Provider)
		assert.True(t, stub.LastConfig.UseGenerator)
		require.NotNil(t, stub.LastSettings)
	})

	t.Run("should fail with ErrNotFound for a missing config file", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubGenerateCommand{}
		controller := controllers.NewGenerateController(stub)
		missing := filepath.Join(t.TempDir(), "missing.yaml")

		// when
		_, err := run(t, controller, ".", "--config", missing)

		// then
		require.ErrorIs(t, err, entities.ErrNotFound)
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should reject a non-positive top files count", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubGenerateCommand{}
		controller := controllers.NewGenerateController(stub)
		config := writeConfig(t, "{}\n")

		// when
		_, err := run(t, controller, ".", "--config", config, "--top-files", "0")

		// then
		require.Error(t, err)
		assert.Zero(t, stub.ExecuteCallCount)
	})
}

func TestPreview(t *testing.T) {
	t.Parallel()

	t.Run("should keep short documents intact", func(t *testing.T) {
		t.Parallel()

		// given
		content := "# Widget"

		// when
		preview := controllers.Preview(content)

		// then
		assert.Equal(t, content, preview)
	})

	t.Run("should cut long documents at 1000 characters", func(t *testing.T) {
		t.Parallel()

		// given
		content := strings.Repeat("ü", 1200)

		// when
		preview := controllers.Preview(content)

		// then
		assert.Equal(t, strings.Repeat("ü", 1000), preview)
	})
}

func TestAnalyzeController(t *testing.T) {
	t.Parallel()

	t.Run("should print the metadata as YAML", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubAnalyzeCommand{
			Metadata: entitybuilders.NewRepoMetadataBuilder().WithName("widget").BuildRepoMetadata(),
		}
		controller := controllers.NewAnalyzeController(stub)
		config := writeConfig(t, "{}\n")

		// when
		out, err := run(t, controller, "./widget", "--config", config, "--respect-gitignore")

		// then
		require.NoError(t, err)
		assert.Contains(t, out, "name: widget")
		assert.Contains(t, out, "license: MIT")
		assert.True(t, stub.LastConfig.RespectGitignore)
	})
}

func TestPromptController(t *testing.T) {
	t.Parallel()

	t.Run("should print the prompt for the requested mode", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPromptCommand{Prompt: "composed prompt"}
		controller := controllers.NewPromptController(stub)
		config := writeConfig(t, "{}\n")

		// when
		out, err := run(t, controller, ".", "--config", config, "--mode", "short")

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ModeShortSummary, stub.LastMode)
		assert.Equal(t, "composed prompt\n", out)
	})

	t.Run("should reject unknown modes", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPromptCommand{}
		controller := controllers.NewPromptController(stub)

		// when
		_, err := run(t, controller, ".", "--mode", "poem")

		// then
		require.Error(t, err)
	})
}
