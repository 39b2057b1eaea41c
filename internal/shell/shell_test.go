package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	for _, name := range []string{"bash", "zsh", "fish"} {
		sh := Get(name)
		require.NotNil(t, sh, name)
		assert.Equal(t, name, sh.Name())
	}
	assert.Nil(t, Get("tcsh"))
	assert.Nil(t, Get(""))
}

func TestDetect(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/zsh")
	sh := Detect()
	require.NotNil(t, sh)
	assert.Equal(t, "zsh", sh.Name())

	t.Setenv("SHELL", "/bin/tcsh")
	assert.Nil(t, Detect())

	t.Setenv("SHELL", "")
	assert.Nil(t, Detect())
}

func TestSupported(t *testing.T) {
	assert.Equal(t, []string{"bash", "fish", "zsh"}, Supported())
	assert.True(t, IsSupported("bash"))
	assert.False(t, IsSupported("powershell"))
}

func TestConfigPath(t *testing.T) {
	home := "/home/dev"
	assert.Equal(t, filepath.Join(home, ".bashrc"), NewBashShell().ConfigPath(home))
	assert.Equal(t, filepath.Join(home, ".zshrc"), NewZshShell().ConfigPath(home))
	assert.Equal(t, filepath.Join(home, ".config", "fish", "config.fish"), NewFishShell().ConfigPath(home))
}

func TestInstallAppendsAlias(t *testing.T) {
	home := t.TempDir()
	rc := filepath.Join(home, ".bashrc")
	require.NoError(t, os.WriteFile(rc, []byte("export PATH=$PATH:~/bin\n"), 0644))

	res, err := Install(NewBashShell(), home)

	require.NoError(t, err)
	assert.False(t, res.Already)
	assert.Equal(t, rc, res.Path)

	content, err := os.ReadFile(rc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "export PATH"), "existing content must survive")
	assert.Contains(t, string(content), "# Added by lazycommit")
	assert.Contains(t, string(content), AliasLine)
}

func TestInstallCreatesMissingConfig(t *testing.T) {
	home := t.TempDir()

	res, err := Install(NewFishShell(), home)

	require.NoError(t, err)
	assert.False(t, res.Already)

	content, err := os.ReadFile(filepath.Join(home, ".config", "fish", "config.fish"))
	require.NoError(t, err)
	assert.Contains(t, string(content), AliasLine)
}

func TestInstallIsIdempotent(t *testing.T) {
	home := t.TempDir()

	first, err := Install(NewZshShell(), home)
	require.NoError(t, err)
	require.False(t, first.Already)

	before, err := os.ReadFile(first.Path)
	require.NoError(t, err)

	second, err := Install(NewZshShell(), home)
	require.NoError(t, err)
	assert.True(t, second.Already)

	after, err := os.ReadFile(first.Path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestInstallRespectsHandWrittenAlias(t *testing.T) {
	home := t.TempDir()
	rc := filepath.Join(home, ".bashrc")
	require.NoError(t, os.WriteFile(rc, []byte("alias lc='lazycommit --force'\n"), 0644))

	res, err := Install(NewBashShell(), home)

	require.NoError(t, err)
	assert.True(t, res.Already)
}

func TestInstalled(t *testing.T) {
	home := t.TempDir()

	installed, err := Installed(NewBashShell(), home)
	require.NoError(t, err)
	assert.False(t, installed, "missing config file means not installed")

	_, err = Install(NewBashShell(), home)
	require.NoError(t, err)

	installed, err = Installed(NewBashShell(), home)
	require.NoError(t, err)
	assert.True(t, installed)

	installed, err = Installed(NewZshShell(), home)
	require.NoError(t, err)
	assert.False(t, installed, "other shells stay untouched")
}
