package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { outputFormat = "table" })

	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "EcoShare CLI v"+version+"\n", run(t, "version"))
}

func TestRoutes(t *testing.T) {
	out := run(t, "routes", "--format", "table")

	assert.Contains(t, out, "PATH")
	assert.Contains(t, out, "/login")
	assert.Contains(t, out, "/dashboard")
	assert.Regexp(t, `/\s+-\s+/login`, out, "the root redirects to the login screen")
}

func TestTiles_JSON(t *testing.T) {
	out := run(t, "tiles", "--format", "json")

	var decoded struct {
		Tiles []map[string]string `json:"tiles"`
		Count int                 `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 6, decoded.Count)
	assert.Equal(t, "Resource Exchange", decoded.Tiles[0]["title"])
	assert.Equal(t, "/global", decoded.Tiles[5]["path"])
}

func TestTopics(t *testing.T) {
	out := run(t, "topics")

	assert.Contains(t, out, "auth.login.succeeded")
	assert.Contains(t, out, "account.registered")
	assert.Contains(t, out, "auth.submission.failed")
	assert.Contains(t, out, "LoginSucceeded")
}

func TestUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"routes", "--format", "xml"})
	t.Cleanup(func() { outputFormat = "table" })

	assert.Error(t, rootCmd.Execute())
}
