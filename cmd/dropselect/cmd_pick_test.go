package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/ruminaider/dropselect/internal/config"
	"github.com/ruminaider/dropselect/pkg/dropdown"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var picked = []dropdown.Option[string]{
	{Value: "1", Label: "Apple"},
	{Value: "2", Label: "Banana"},
}

func TestWriteSelection_Lines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSelection(&buf, picked, false))
	assert.Equal(t, "Apple\nBanana\n", buf.String())
}

func TestWriteSelection_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSelection(&buf, picked, true))
	out := buf.String()
	assert.Contains(t, out, `value: "1"`)
	assert.Contains(t, out, "label: Apple")
	assert.Contains(t, out, "label: Banana")
}

func TestWriteSelection_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSelection(&buf, nil, false))
	assert.Empty(t, buf.String())
}

func TestApplyPickFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "pick"}
	addPickFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--single", "--filter", "fuzzy", "--z-index", "100"}))

	base := config.Config{
		Portal:  true,
		Options: []config.OptionEntry{{Value: "a"}},
	}
	got := applyPickFlags(cmd, base)
	assert.False(t, got.IsMultiple())
	assert.True(t, got.IsSearchable(), "unset flags keep the file's value")
	assert.True(t, got.Portal)
	assert.Equal(t, "fuzzy", got.Filter)
	require.NotNil(t, got.ZIndex)
	assert.Equal(t, 100, *got.ZIndex)
}

func TestDescribeConfig(t *testing.T) {
	cfg := config.Config{
		Multiple: config.Bool(false),
		Options:  []config.OptionEntry{{Value: "a"}, {Value: "b"}},
	}
	assert.Equal(t, "✓ opts.yaml: 2 options (single, search, filter highlight)", describeConfig("opts.yaml", cfg))
}

func TestValidateCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opts.yaml")
	require.NoError(t, config.Save(path, config.Config{Options: []config.OptionEntry{{Value: "a", Label: "A"}}}))

	var out bytes.Buffer
	validateCmd.SetOut(&out)
	require.NoError(t, validateCmd.RunE(validateCmd, []string{path}))
	assert.Contains(t, out.String(), "1 options")
}
