package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
services:
  - name: journald
    path: /sbin/journald.elf
  - name: login
    path: /sbin/login.elf
    deps: [journald]
    restart_on_crash: true
`)
	m, err := Parse(data, ".yaml")
	require.NoError(t, err)
	require.Len(t, m.Services, 2)

	assert.Equal(t, "journald", m.Services[0].Name)
	assert.Empty(t, m.Services[0].Deps)
	assert.Equal(t, "login", m.Services[1].Name)
	assert.Equal(t, []string{"journald"}, m.Services[1].Deps)
	assert.True(t, m.Services[1].RestartOnCrash)
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
[[services]]
name = "journald"
path = "/sbin/journald.elf"

[[services]]
name = "login"
path = "/sbin/login.elf"
deps = ["journald"]
`)
	m, err := Parse(data, ".toml")
	require.NoError(t, err)
	require.Len(t, m.Services, 2)
	assert.Equal(t, []string{"journald"}, m.Services[1].Deps)
}

func TestParseJSON(t *testing.T) {
	data := []byte(`{"services":[{"name":"journald","path":"/sbin/journald.elf"}]}`)
	m, err := Parse(data, ".json")
	require.NoError(t, err)
	require.Len(t, m.Services, 1)
	assert.Equal(t, "/sbin/journald.elf", m.Services[0].Path)
}

func TestParseRejectsBadManifests(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"empty name", `{"services":[{"name":"","path":"/x"}]}`},
		{"empty path", `{"services":[{"name":"x","path":""}]}`},
		{"duplicate name", `{"services":[{"name":"x","path":"/a"},{"name":"x","path":"/b"}]}`},
		{"too many deps", `{"services":[{"name":"x","path":"/a","deps":["a","b","c","d","e","f","g","h","i"]}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data), ".json")
			assert.Error(t, err)
		})
	}
}

func TestParseUnsupportedFormat(t *testing.T) {
	_, err := Parse([]byte("services: []"), ".ini")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "services.yaml")
	require.NoError(t, os.WriteFile(path, []byte("services:\n  - name: a\n    path: /a.elf\n"), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, m.Services, 1)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
