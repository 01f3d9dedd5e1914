package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datepicker/internal/config"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr bool
	}{
		{"Defaults", nil, options{}, false},
		{"Version", []string{"-version"}, options{version: true}, false},
		{"Debug and date", []string{"-debug", "-date", "8/6/2001"}, options{debug: true, date: "8/6/2001"}, false},
		{"Unknown flag", []string{"-port", "80"}, options{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckInitialDate(t *testing.T) {
	assert.True(t, checkInitialDate(""))
	assert.True(t, checkInitialDate("8/6/2001"))
	assert.True(t, checkInitialDate("8/6/2001 "))
	assert.False(t, checkInitialDate("garbage"))
	assert.False(t, checkInitialDate("8/x/2001"))
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	printVersion(&buf)
	assert.Contains(t, buf.String(), config.AppName)
	assert.Contains(t, buf.String(), config.Version)
	assert.Contains(t, buf.String(), runtime.GOOS)
}

func TestLogFilePath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CACHE_HOME only drives os.UserCacheDir on Linux")
	}
	cache := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cache)

	path, err := logFilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cache, config.AppID, config.LogFileName), path)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, config.DirPermUserRWX, info.Mode().Perm())
}
