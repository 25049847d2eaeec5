package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, baseURL string) (cfgFile, dataDir string) {
	t.Helper()
	dir := t.TempDir()
	dataDir = filepath.Join(dir, "data")
	cfgFile = filepath.Join(dir, "config.yml")
	yml := fmt.Sprintf(`http:
  base_url: %s
  retry:
    max_retries: 0
logging:
  level: disabled
data_dir: %s
`, baseURL, dataDir)
	require.NoError(t, os.WriteFile(cfgFile, []byte(yml), 0o600))
	return cfgFile, dataDir
}

func TestRun_Version(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"version"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	var info map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Contains(t, info, "version")
}

func TestRun_UnknownCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"nope"}, &out, &errOut)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut.String(), `unknown command "nope"`)
}

func TestRun_NoCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	assert.Equal(t, 2, run(context.Background(), nil, &out, &errOut))
	assert.Contains(t, errOut.String(), "usage:")
}

func TestRun_UsageHidesPassphrase(t *testing.T) {
	const secret = "hunter2-secret"
	t.Setenv(passphraseEnv, secret)

	for _, args := range [][]string{nil, {"nope"}, {"--help"}, {"--bogus"}} {
		var out, errOut bytes.Buffer
		run(context.Background(), args, &out, &errOut)
		assert.NotContains(t, errOut.String(), secret, "args %q", args)
		assert.NotContains(t, out.String(), secret, "args %q", args)
	}
}

func TestRun_LoginPersistsToken(t *testing.T) {
	var authSeen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authSeen = append(authSeen, r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/auth/sign-in":
			_, _ = io.WriteString(w, `{"code":200,"message":"success","data":{"token":"tok-1"}}`)
		case "/categories":
			_, _ = io.WriteString(w, `{"code":200,"data":{"categories":[{"title":"A","isWeb":false,"link":"","thumb":{"fileServer":"","path":"","originalName":""}}]}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()
	cfgFile, dataDir := writeConfig(t, srv.URL)

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"--config", cfgFile, "login", "--email", "a@b.c", "--password", "pw"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	raw, err := os.ReadFile(filepath.Join(dataDir, "config.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"tok-1"`)

	out.Reset()
	code = run(context.Background(), []string{"--config", cfgFile, "categories"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), `"title": "A"`)
	assert.Equal(t, "tok-1", authSeen[len(authSeen)-1])
}

func TestRun_ServerRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"code":401,"error":"1005","message":"unauthorized"}`)
	}))
	defer srv.Close()
	cfgFile, _ := writeConfig(t, srv.URL)

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"--config", cfgFile, "profile"}, &out, &errOut)
	assert.Equal(t, 1, code)
	assert.True(t, strings.Contains(errOut.String(), "unauthorized"), errOut.String())
}

func TestRun_InfoNeedsID(t *testing.T) {
	cfgFile, _ := writeConfig(t, "http://127.0.0.1:1")

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"--config", cfgFile, "info"}, &out, &errOut)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut.String(), "usage: picacg info")
}

func TestRun_StatusAnonymous(t *testing.T) {
	cfgFile, _ := writeConfig(t, "http://127.0.0.1:1")

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"--config", cfgFile, "status"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	var st map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &st))
	assert.Equal(t, false, st["authenticated"])
	assert.NotContains(t, st, "expires_at")
}

func TestRun_ErrorReport(t *testing.T) {
	cfgFile, _ := writeConfig(t, "http://127.0.0.1:1")

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"--config", cfgFile, "comics", "--page", "0"}, &out, &errOut)
	require.Equal(t, 1, code)

	var report struct {
		Error struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &report))
	assert.Equal(t, "PARAMETER_ERROR", report.Error.Kind)
}
