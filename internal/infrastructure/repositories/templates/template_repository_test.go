//go:build unit

package templates_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/readmegen/internal/domain/entities"
	"github.com/rios0rios0/readmegen/internal/infrastructure/repositories/templates"
	"github.com/rios0rios0/readmegen/test/domain/entitybuilders"
)

func TestTemplateRepository(t *testing.T) {
	t.Parallel()

	t.Run("should render every section of the built-in template", func(t *testing.T) {
		t.Parallel()

		// given
		metadata := entitybuilders.NewRepoMetadataBuilder().WithName("widget").WithTests(true).BuildRepoMetadata()
		ctx := entities.NewTemplateContext(metadata, entities.NewRunConfiguration("https://github.com/org/widget.git"))
		repo := templates.NewTemplateRepository(afero.NewMemMapFs())

		// when
		content, err := repo.Render("", ctx)

		// then
		require.NoError(t, err)
		assert.Contains(t, content, "# widget")
		assert.Contains(t, content, "A sample project.")
		for _, section := range []string{"## Overview", "## Installation", "## Usage", "## Project Structure", "## Testing", "## License"} {
			assert.Contains(t, content, section)
		}
		assert.Contains(t, content, "- Python (2 files)")
		assert.Contains(t, content, "git clone https://github.com/org/widget.git")
		assert.Contains(t, content, "- python: requirements.txt")
		assert.Contains(t, content, "pip install -r requirements.txt")
		assert.Contains(t, content, "- `main.py`")
		assert.Contains(t, content, "This project includes tests.")
		assert.Contains(t, content, "MIT")
	})

	t.Run("should render placeholders for an empty repository", func(t *testing.T) {
		t.Parallel()

		// given
		metadata := entitybuilders.NewRepoMetadataBuilder().
			WithDescription("").
			WithLanguages().
			WithTopFiles().
			WithDependencies().
			WithLicense("").
			BuildRepoMetadata()
		ctx := entities.NewTemplateContext(metadata, entities.NewRunConfiguration("."))
		repo := templates.NewTemplateRepository(afero.NewMemMapFs())

		// when
		content, err := repo.Render("", ctx)

		// then
		require.NoError(t, err)
		assert.Contains(t, content, "No recognized source languages were detected.")
		assert.Contains(t, content, "No dependency manifests were detected.")
		assert.Contains(t, content, "The repository is empty.")
		assert.Contains(t, content, "No tests were detected.")
		assert.Contains(t, content, "Unspecified")
		assert.NotContains(t, content, "git clone")
	})

	t.Run("should render a user template from the filesystem", func(t *testing.T) {
		t.Parallel()

		// given
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/tpl/custom.tmpl", []byte("{{ upper .Name }} - {{ .License }}"), 0o644))
		metadata := entitybuilders.NewRepoMetadataBuilder().WithName("widget").BuildRepoMetadata()
		ctx := entities.NewTemplateContext(metadata, entities.NewRunConfiguration("."))

		// when
		content, err := templates.NewTemplateRepository(fs).Render("/tpl/custom.tmpl", ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, "WIDGET - MIT", content)
	})

	t.Run("should fail when the user template is missing", func(t *testing.T) {
		t.Parallel()

		// given
		repo := templates.NewTemplateRepository(afero.NewMemMapFs())

		// when
		_, err := repo.Render("/tpl/missing.tmpl", entities.TemplateContext{})

		// then
		require.Error(t, err)
	})

	t.Run("should fail on unknown fields", func(t *testing.T) {
		t.Parallel()

		// given
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/tpl/bad.tmpl", []byte("{{ .Nope }}"), 0o644))

		// when
		_, err := templates.NewTemplateRepository(fs).Render("/tpl/bad.tmpl", entities.TemplateContext{})

		// then
		require.Error(t, err)
	})
}
