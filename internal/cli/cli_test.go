package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dmitrymomot/useragentkit/internal/cli"
	"github.com/dmitrymomot/useragentkit/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	exampleUA = "iOS Example/1.0.0 (org.alamofire.iOS-Example; build:1; iOS 13.0.0) Alamofire/5.0.0"
	unknownUA = "Unknown/Unknown (Unknown; build:Unknown; Unknown 13.0.0) Alamofire/5.0.0"
)

func run(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = cli.Execute(t.Context(), args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestParse_Text(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := run(t, "", "parse", strings.Replace(exampleUA, "build:1;", "build:1.0.0;", 1))

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, exampleUA+"\n", stdout)
	assert.Empty(t, stderr)
}

func TestParse_JSONFromStdin(t *testing.T) {
	t.Parallel()

	stdin := exampleUA + "\r\n\n" + unknownUA + "\n"
	code, stdout, stderr := run(t, stdin, "parse", "-o", "json")
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)

	var first map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, map[string]string{
		"signature":       exampleUA,
		"executable":      "iOS Example",
		"app_version":     "1.0.0",
		"bundle":          "org.alamofire.iOS-Example",
		"app_build":       "1",
		"os_name":         "iOS",
		"os_version":      "13.0.0",
		"library_version": "5.0.0",
	}, first)

	var second map[string]string
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, map[string]string{
		"signature":       unknownUA,
		"os_version":      "13.0.0",
		"library_version": "5.0.0",
	}, second)
}

func TestParse_YAML(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := run(t, "", "parse", "--output", "yaml", exampleUA)
	require.Equal(t, 0, code, stderr)

	var doc map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "iOS", doc["os_name"])
	assert.Equal(t, "1", doc["app_build"])
	assert.Equal(t, exampleUA, doc["signature"])
}

func TestParse_Rejected(t *testing.T) {
	t.Parallel()

	browser := "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	code, stdout, stderr := run(t, "", "parse", exampleUA, browser)

	assert.Equal(t, 1, code)
	assert.Equal(t, exampleUA+"\n", stdout, "valid inputs are still written")
	assert.Contains(t, stderr, "signature rejected")
	assert.Contains(t, stderr, "line=2")
	assert.Contains(t, stderr, "app_version")
	assert.Contains(t, stderr, "Error: signatures rejected: 1 of 2")
}

func TestParse_UnsupportedOutput(t *testing.T) {
	t.Parallel()

	code, _, stderr := run(t, "", "parse", "-o", "xml", exampleUA)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `unsupported output format "xml"`)
}

func TestParse_DebugLogsAccepted(t *testing.T) {
	t.Parallel()

	code, _, stderr := run(t, "", "--debug", "parse", exampleUA)
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "signature accepted")
	assert.Contains(t, stderr, "component=uasig")
}

// format reads the shared config cache, so these tests run sequentially.
func TestFormat(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		code, stdout, stderr := run(t, "", "format")
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, "Unknown/Unknown (Unknown; build:Unknown; Unknown 0.0.0) Alamofire/5.6.4\n", stdout)
	})

	t.Run("flags", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		code, stdout, stderr := run(t, "", "format",
			"--executable", "iOS Example",
			"--app-version", "1.0.0",
			"--bundle", "org.alamofire.iOS-Example",
			"--app-build", "1.0",
			"--os-name", "iOS",
			"--os-version", "13.0.0",
			"--library-version", "5.0.0",
		)
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, exampleUA+"\n", stdout)
	})

	t.Run("flags override environment", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)
		t.Setenv("USERAGENT_EXECUTABLE", "From Env")
		t.Setenv("USERAGENT_OS_NAME", "Linux")

		code, stdout, stderr := run(t, "", "format", "--executable", "From Flag", "-o", "json")
		require.Equal(t, 0, code, stderr)

		var doc map[string]string
		require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
		assert.Equal(t, "From Flag", doc["executable"])
		assert.Equal(t, "Linux", doc["os_name"])
	})

	t.Run("invalid field", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		code, stdout, stderr := run(t, "", "format", "--os-name", "Android")
		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "os_name")
	})

	t.Run("missing env file", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		code, _, stderr := run(t, "", "format", "--env-file", t.TempDir()+"/missing.env")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "Error:")
	})
}

func TestServe(t *testing.T) {
	t.Run("invalid address", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		code, _, stderr := run(t, "", "serve", "--addr", ":invalid")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "failed to start HTTP server")
	})

	t.Run("invalid log format", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		code, _, stderr := run(t, "", "serve", "--log-format", "xml")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, `unsupported log format "xml"`)
	})

	t.Run("stops with context", func(t *testing.T) {
		config.ResetCache()
		t.Cleanup(config.ResetCache)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		var out, errOut bytes.Buffer
		code := cli.Execute(ctx, []string{"serve", "--addr", "127.0.0.1:0", "--log-format", "text"}, strings.NewReader(""), &out, &errOut)
		assert.Equal(t, 0, code, errOut.String())
		assert.Contains(t, errOut.String(), "inspector listening")
		assert.Contains(t, errOut.String(), "inspector stopped")
	})
}
