package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, SourceStatic, cfg.Dashboard.Source)
	assert.Equal(t, 300*time.Millisecond, cfg.Dashboard.Debounce)
	assert.Equal(t, 8, cfg.Dashboard.ListLimit)
	assert.Equal(t, 13, cfg.Dashboard.CameraZoom)
	assert.Equal(t, "Pacific/Auckland", cfg.Dashboard.TimeZone)
	assert.Equal(t, 5*time.Minute, cfg.Cache.DatasetTTL)
	assert.False(t, cfg.Cache.Enabled)
}

func TestLoadFile_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "API_PORT=9090\nDASHBOARD_SOURCE=postgres\nDASHBOARD_DEBOUNCE_MS=150\nCORS_ALLOWED_ORIGINS=http://a.test, http://b.test\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("DASHBOARD_LIST_LIMIT", "20")
	t.Setenv("API_PORT", "7070")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port, "environment wins over file")
	assert.Equal(t, SourcePostgres, cfg.Dashboard.Source)
	assert.Equal(t, 150*time.Millisecond, cfg.Dashboard.Debounce)
	assert.Equal(t, 20, cfg.Dashboard.ListLimit)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, ":7070", cfg.GetServerAddr())
}

func TestLoadFile_UnknownSource(t *testing.T) {
	t.Setenv("DASHBOARD_SOURCE", "kafka")

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestParseList(t *testing.T) {
	assert.Nil(t, parseList(""))
	assert.Equal(t, []string{"a", "b"}, parseList(" a, ,b "))
}
