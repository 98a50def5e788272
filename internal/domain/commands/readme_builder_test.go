//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/readmegen/internal/domain/commands"
	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/readmegen/internal/infrastructure/repositories/templates"
	"github.com/rios0rios0/readmegen/test/domain/entitybuilders"
	"github.com/rios0rios0/readmegen/test/infrastructure/repositorydoubles"
)

func newBuilder(fs afero.Fs) *commands.ReadmeBuilder {
	return commands.NewReadmeBuilder(
		templates.NewTemplateRepository(fs),
		filesystem.NewDocumentRepository(fs),
	)
}

func generatorConfiguration() entities.RunConfiguration {
	cfg := entities.NewRunConfiguration("https://github.com/org/sample.git")
	cfg.OutputPath = "/out/README.md"
	cfg.UseGenerator = true
	return cfg
}

func TestReadmeBuilder(t *testing.T) {
	t.Parallel()

	t.Run("should fall back to the template when the generator fails", func(t *testing.T) {
		t.Parallel()

		// given
		metadata := entitybuilders.NewRepoMetadataBuilder().BuildRepoMetadata()
		cfg := generatorConfiguration()
		templateCfg := cfg
		templateCfg.UseGenerator = false
		generator := &repositorydoubles.SpyGeneratorRepository{GenerateErr: errors.New("boom")}

		// when
		content, err := newBuilder(afero.NewMemMapFs()).Render(context.Background(), metadata, cfg, generator)
		expected, expectedErr := newBuilder(afero.NewMemMapFs()).Render(context.Background(), metadata, templateCfg, nil)

		// then
		require.NoError(t, err)
		require.NoError(t, expectedErr)
		assert.Equal(t, expected, content)
		assert.Len(t, generator.GenerateCalls, 1)
	})

	t.Run("should send the full prompt with bounded options", func(t *testing.T) {
		t.Parallel()

		// given
		metadata := entitybuilders.NewRepoMetadataBuilder().BuildRepoMetadata()
		cfg := generatorConfiguration()
		generator := &repositorydoubles.SpyGeneratorRepository{Content: "# Generated"}

		// when
		_, err := newBuilder(afero.NewMemMapFs()).Render(context.Background(), metadata, cfg, generator)

		// then
		require.NoError(t, err)
		require.Len(t, generator.GenerateCalls, 1)
		call := generator.GenerateCalls[0]
		assert.Equal(t, entities.ComposePrompt(metadata, cfg, entities.ModeFullReadme), call.Prompt)
		assert.Equal(t, 1500, call.Opts.MaxOutputTokens)
		require.NotNil(t, call.Opts.Temperature)
		assert.InDelta(t, 0.2, *call.Opts.Temperature, 1e-9)
	})

	t.Run("should persist the generated document verbatim", func(t *testing.T) {
		t.Parallel()

		// given
		fs := afero.NewMemMapFs()
		metadata := entitybuilders.NewRepoMetadataBuilder().BuildRepoMetadata()
		cfg := generatorConfiguration()
		generator := &repositorydoubles.SpyGeneratorRepository{Content: "# Generated\n\nBody."}

		// when
		content, err := newBuilder(fs).Render(context.Background(), metadata, cfg, generator)

		// then
		require.NoError(t, err)
		assert.Equal(t, "# Generated\n\nBody.", content)
		data, readErr := afero.ReadFile(fs, "/out/README.md")
		require.NoError(t, readErr)
		assert.Equal(t, content, string(data))
	})

	t.Run("should never call the generator when generation is disabled", func(t *testing.T) {
		t.Parallel()

		// given
		metadata := entitybuilders.NewRepoMetadataBuilder().WithName("widget").BuildRepoMetadata()
		cfg := generatorConfiguration()
		cfg.UseGenerator = false
		generator := &repositorydoubles.SpyGeneratorRepository{Content: "unused"}

		// when
		content, err := newBuilder(afero.NewMemMapFs()).Render(context.Background(), metadata, cfg, generator)

		// then
		require.NoError(t, err)
		assert.Empty(t, generator.GenerateCalls)
		assert.Contains(t, content, "# widget")
	})

	t.Run("should fall back when the generator returns blank text", func(t *testing.T) {
		t.Parallel()

		// given
		metadata := entitybuilders.NewRepoMetadataBuilder().WithName("widget").BuildRepoMetadata()
		generator := &repositorydoubles.SpyGeneratorRepository{Content: "  \n"}

		// when
		content, err := newBuilder(afero.NewMemMapFs()).Render(
			context.Background(), metadata, generatorConfiguration(), generator,
		)

		// then
		require.NoError(t, err)
		assert.Contains(t, content, "# widget")
	})

	t.Run("should use the template when no generator is supplied", func(t *testing.T) {
		t.Parallel()

		// given
		metadata := entitybuilders.NewRepoMetadataBuilder().WithName("widget").BuildRepoMetadata()

		// when
		content, err := newBuilder(afero.NewMemMapFs()).Render(
			context.Background(), metadata, generatorConfiguration(), nil,
		)

		// then
		require.NoError(t, err)
		assert.Contains(t, content, "# widget")
	})

	t.Run("should surface persistence failures", func(t *testing.T) {
		t.Parallel()

		// given
		metadata := entitybuilders.NewRepoMetadataBuilder().BuildRepoMetadata()
		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
		cfg := generatorConfiguration()
		cfg.UseGenerator = false

		// when
		_, err := newBuilder(fs).Render(context.Background(), metadata, cfg, nil)

		// then
		require.Error(t, err)
	})

	t.Run("should surface template failures", func(t *testing.T) {
		t.Parallel()

		// given
		metadata := entitybuilders.NewRepoMetadataBuilder().BuildRepoMetadata()
		cfg := generatorConfiguration()
		cfg.UseGenerator = false
		cfg.TemplatePath = "/missing.tmpl"

		// when
		_, err := newBuilder(afero.NewMemMapFs()).Render(context.Background(), metadata, cfg, nil)

		// then
		require.Error(t, err)
	})
}
