package validator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardforge/internal/validator"
)

func writeChecklist(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keywords.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidator_Validate(t *testing.T) {
	t.Run("valid checklist", func(t *testing.T) {
		path := writeChecklist(t, `
[[group]]
name = "Keywords"
  [[group.keyword]]
  name = "Taunt"
  status = "done"
  [[group.keyword]]
  name = "Magnetic"
  status = "todo"
  note = "Needs left placement."
`)

		results, err := validator.NewValidator(path).Validate()
		require.NoError(t, err)
		assert.Empty(t, results.Errors)
		assert.Empty(t, results.Warnings)
	})

	t.Run("reports content problems", func(t *testing.T) {
		path := writeChecklist(t, `
[[group]]
name = ""
  [[group.keyword]]
  name = "Taunt"
  status = "finished"
  [[group.keyword]]
  name = ""
  status = "done"
  [[group.keyword]]
  name = "Rush"
`)

		results, err := validator.NewValidator(path).Validate()
		require.NoError(t, err)
		assert.Contains(t, results.Errors, "group 1: name is required")
		assert.Contains(t, results.Errors, `keyword "Taunt": unknown status "finished" (expected done, wip or todo)`)
		assert.Contains(t, results.Errors, `group "", keyword 2: name is required`)
		assert.Contains(t, results.Errors, `keyword "Rush": status is required`)
	})

	t.Run("warns about duplicates, notes and unknown keys", func(t *testing.T) {
		path := writeChecklist(t, `
[[group]]
name = "Easy"
  [[group.keyword]]
  name = "Adapt"
  status = "todo"
  owner = "me"

[[group]]
name = "Hard"
  [[group.keyword]]
  name = "adapt"
  status = "done"

[[group]]
name = "Empty"
`)

		results, err := validator.NewValidator(path).Validate()
		require.NoError(t, err)
		assert.Empty(t, results.Errors)
		assert.Contains(t, results.Warnings, `keyword "Adapt" is not done and has no note`)
		assert.Contains(t, results.Warnings, `keyword "adapt" is listed in both "Easy" and "Hard"`)
		assert.Contains(t, results.Warnings, `group "Empty" has no keywords`)
		assert.Contains(t, results.Warnings, "unknown key: group.keyword.owner")
	})

	t.Run("empty checklist", func(t *testing.T) {
		results, err := validator.NewValidator(writeChecklist(t, "")).Validate()
		require.NoError(t, err)
		assert.Equal(t, []string{"checklist has no groups"}, results.Errors)
	})

	t.Run("unparsable file", func(t *testing.T) {
		_, err := validator.NewValidator(writeChecklist(t, "[[group")).Validate()
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := validator.NewValidator(filepath.Join(t.TempDir(), "none.toml")).Validate()
		assert.Error(t, err)
	})
}
