package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tinne26/unitext/fit"
	"github.com/tinne26/unitext/font"
)

const buttonsDocument = `
boxes:
  - name: ok
    text: OK
    width: 120
    height: 40
  - name: cancel
    text: Cancel
    width: 120
    height: 40
  - name: apply
    text: Apply changes
    width: 120
    height: 40
`

const titleDocument = `
min: 10
max: 30
boxes:
  - name: title
    text: Settings
    width: 400
    height: 200
`

// Runs the CLI with the given args and returns its standard output.
func run(t *testing.T, args ...string) (*app, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) // ignore any real user config
	a := newApp()
	var out bytes.Buffer
	a.root.SetOut(&out)
	a.root.SetErr(&out)
	a.root.SetArgs(args)
	err := a.root.Execute()
	return a, out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSettingsPrecedence(t *testing.T) {
	a, _, err := run(t, "fit", "--width", "100", "--height", "30", "defaults")
	require.NoError(t, err)
	assert.Equal(t, Settings{MinSize: 8, MaxSize: 72, Wrap: true, CacheEntries: 256}, a.settings)

	configPath := writeFile(t, "config.yaml", "sizes:\n  min: 6\n  max: 40\nfit:\n  wrap: false\n  cache: 16\n")
	a, _, err = run(t, "--config", configPath, "fit", "--width", "100", "--height", "30", "config")
	require.NoError(t, err)
	assert.Equal(t, Settings{MinSize: 6, MaxSize: 40, Wrap: false, CacheEntries: 16}, a.settings)

	t.Setenv("UNITEXT_SIZES_MAX", "50")
	a, _, err = run(t, "--config", configPath, "fit", "--width", "100", "--height", "30", "env")
	require.NoError(t, err)
	assert.Equal(t, 50, a.settings.MaxSize)

	a, _, err = run(t, "--config", configPath, "--max", "60", "--min", "9", "fit", "--wrap=true", "--width", "100", "--height", "30", "flags")
	require.NoError(t, err)
	assert.Equal(t, 9, a.settings.MinSize)
	assert.Equal(t, 60, a.settings.MaxSize)
	assert.True(t, a.settings.Wrap)
}

func TestSettingsErrors(t *testing.T) {
	_, _, err := run(t, "--min", "50", "--max", "10", "fit", "--width", "100", "--height", "30", "text")
	require.Error(t, err)

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "fit", "--width", "1", "--height", "1", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")

	_, _, err = run(t, "--font", "missing.ttf", "fit", "--width", "1", "--height", "1", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load font")
}

func TestFitCommand(t *testing.T) {
	_, out, err := run(t, "fit", "--width", "200", "--height", "40", "Hello", "world")
	require.NoError(t, err)

	fitter, err := fit.NewFitter(0)
	require.NoError(t, err)
	expected := fitter.NaturalSize(fit.Request{
		Font: font.Default(), Text: "Hello world",
		Width: 200, Height: 40, Lower: 8, Upper: 72, Wrap: true,
	})
	assert.Equal(t, strconv.Itoa(expected), strings.TrimSpace(out))

	_, _, err = run(t, "fit", "--height", "40", "no width")
	require.Error(t, err)
	_, _, err = run(t, "fit", "--width", "0", "--height", "40", "zero")
	require.Error(t, err)
}

func TestPlanDocument(t *testing.T) {
	path := writeFile(t, "buttons.yaml", buttonsDocument)
	settings := Settings{MinSize: 8, MaxSize: 72, CacheEntries: 32}

	for _, deferred := range []bool{false, true} {
		report, err := planDocument(path, font.Default(), settings, deferred, zap.NewNop())
		require.NoError(t, err)
		require.Len(t, report.Boxes, 3)

		smallest := report.MaxSize
		for _, box := range report.Boxes {
			smallest = min(smallest, box.Natural)
		}
		assert.Equal(t, smallest, report.UnifiedSize, "deferred = %v", deferred)
		for _, box := range report.Boxes {
			assert.Equal(t, report.UnifiedSize, box.Fitted, "box %s, deferred = %v", box.Name, deferred)
		}
		assert.Equal(t, report.Boxes[2].Natural, report.UnifiedSize, "longest text sets the size")
	}
}

func TestPlanCommand(t *testing.T) {
	buttons := writeFile(t, "buttons.yaml", buttonsDocument)
	title := writeFile(t, "title.yaml", titleDocument)

	_, out, err := run(t, "plan", title, buttons)
	require.NoError(t, err)

	titleAt := strings.Index(out, title+": unified size 30 (range [10, 30], 1 boxes)")
	buttonsAt := strings.Index(out, buttons+": unified size")
	require.NotEqual(t, -1, titleAt, out)
	require.NotEqual(t, -1, buttonsAt, out)
	assert.Less(t, titleAt, buttonsAt, "reports must follow argument order")
	assert.Contains(t, out, "NATURAL")
	assert.Contains(t, out, "apply")

	_, _, err = run(t, "plan", "--deferred", buttons, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")

	_, _, err = run(t, "plan")
	require.Error(t, err)
}

func TestPlanDocumentsCancelled(t *testing.T) {
	path := writeFile(t, "buttons.yaml", buttonsDocument)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := planDocuments(ctx, []string{path}, font.Default(), Settings{MinSize: 8, MaxSize: 72}, false, zap.NewNop())
	require.ErrorIs(t, err, context.Canceled)
}
