package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"TADA_THEME", "TADA_LOCALE", "TADA_DEBUG", "TADA_ALT_SCREEN", "TADA_TITLE_CHAR_LIMIT", "TADA_LOG_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestConfigCommand(t *testing.T) {
	isolate(t)
	var out bytes.Buffer
	root := NewRootCommand(strings.NewReader(""), &out)
	root.SetOut(&out)
	root.SetArgs([]string{"config", "--theme", "neon", "--locale", "pt-BR"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "theme: neon")
	assert.Contains(t, out.String(), "locale: pt-BR")
}

func TestConfigCommand_BadTheme(t *testing.T) {
	isolate(t)
	var out bytes.Buffer
	root := NewRootCommand(strings.NewReader(""), &out)
	root.SetOut(&out)
	root.SetArgs([]string{"config", "--theme", "sepia"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}

func TestConfigCommand_BadLocale(t *testing.T) {
	isolate(t)
	var out bytes.Buffer
	root := NewRootCommand(strings.NewReader(""), &out)
	root.SetOut(&out)
	root.SetArgs([]string{"config", "--locale", "ja"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported locale")
	assert.Contains(t, err.Error(), "en, pt-BR")
}

func TestRootCommand_LocaleFlagUsage(t *testing.T) {
	root := NewRootCommand(strings.NewReader(""), &bytes.Buffer{})
	fl := root.PersistentFlags().Lookup("locale")
	require.NotNil(t, fl)
	assert.Contains(t, fl.Usage, "en, pt-BR")
}

func TestConfigCommand_File(t *testing.T) {
	isolate(t)
	p := filepath.Join(t.TempDir(), "tada.yaml")
	require.NoError(t, os.WriteFile(p, []byte("theme: mono\ntitle_char_limit: 64\n"), 0o644))

	var out bytes.Buffer
	root := NewRootCommand(strings.NewReader(""), &out)
	root.SetOut(&out)
	root.SetArgs([]string{"config", "--config", p})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "theme: mono")
	assert.Contains(t, out.String(), "title_char_limit: 64")
}

func TestRootCommand_RunsScreenUntilQuit(t *testing.T) {
	isolate(t)
	t.Setenv("TADA_ALT_SCREEN", "false")

	var out bytes.Buffer
	root := NewRootCommand(strings.NewReader("q"), &out)
	root.SetArgs([]string{"--theme", "mono"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "0 done, 0 pending")
}

func TestRun_ExitCodes(t *testing.T) {
	isolate(t)
	assert.Equal(t, 1, Run([]string{"config", "--config", filepath.Join(t.TempDir(), "missing.yaml")}))
	assert.Equal(t, 1, Run([]string{"nope"}))
}
