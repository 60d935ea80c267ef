package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Makepad-fr/docpanels/internal/catalog"
)

type result struct {
	code           int
	stdout, stderr string
}

func execute(t *testing.T, args ...string) result {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DOCPANELS_CONFIG", "")

	var out, errOut bytes.Buffer
	a := &app{stdout: &out, stderr: &errOut, logger: zap.NewNop()}
	code := run(a, append([]string{"--theme", "mono"}, args...))
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func TestShowAllSectionsInOrder(t *testing.T) {
	r := execute(t, "show")
	require.Equal(t, ExitOK, r.code, r.stderr)

	last := -1
	for _, a := range []string{"#overview", "#features", "#tech-stack", "#security"} {
		i := strings.Index(r.stdout, a)
		require.GreaterOrEqual(t, i, 0, a)
		assert.Greater(t, i, last)
		last = i
	}
}

func TestShowSelectedSection(t *testing.T) {
	r := execute(t, "show", "security")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "#security")
	assert.NotContains(t, r.stdout, "#features")
}

func TestShowFormats(t *testing.T) {
	r := execute(t, "show", "--format", "markdown", "tech-stack")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, `<a id="tech-stack"></a>`)
	assert.Contains(t, r.stdout, "### Database")

	r = execute(t, "show", "-f", "html", "features")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, `<section id="features" class="panel">`)
	assert.Contains(t, r.stdout, `href="#features"`)
}

func TestShowUsageErrors(t *testing.T) {
	r := execute(t, "show", "pricing")
	assert.Equal(t, ExitUsage, r.code)
	assert.Contains(t, r.stderr, `unknown section "pricing"`)

	r = execute(t, "show", "--format", "pdf")
	assert.Equal(t, ExitUsage, r.code)
	assert.Contains(t, r.stderr, `unknown format "pdf"`)

	r = execute(t, "show", "--bogus")
	assert.Equal(t, ExitUsage, r.code)
}

func TestUnknownCommandAndTheme(t *testing.T) {
	r := execute(t, "frobnicate")
	assert.Equal(t, ExitUsage, r.code)

	var out, errOut bytes.Buffer
	t.Setenv("HOME", t.TempDir())
	code := run(&app{stdout: &out, stderr: &errOut, logger: zap.NewNop()}, []string{"--theme", "solarized", "check"})
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut.String(), `unknown theme "solarized"`)
}

func TestNoSubcommandIsUsage(t *testing.T) {
	r := execute(t)
	assert.Equal(t, ExitUsage, r.code)
	assert.Contains(t, r.stderr, "missing subcommand")
}

func TestSections(t *testing.T) {
	r := execute(t, "sections")
	require.Equal(t, ExitOK, r.code, r.stderr)
	lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[2], "tech-stack"))
	assert.Contains(t, lines[1], "(6)")

	r = execute(t, "sections", "extra")
	assert.Equal(t, ExitUsage, r.code)
}

func TestCheck(t *testing.T) {
	r := execute(t, "check")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "catalog valid: 6 features, 6 tech categories, 6 security measures")
}

func TestExport(t *testing.T) {
	r := execute(t, "export")
	require.Equal(t, ExitOK, r.code, r.stderr)
	var snap catalog.Snapshot
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &snap))
	assert.Equal(t, catalog.Current(), snap)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	r = execute(t, "export", "--format", "yaml", "-o", path)
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stderr, "exported to")
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Redis (Upstash)")

	r = execute(t, "export", "--format", "toml")
	assert.Equal(t, ExitUsage, r.code)
}

func TestBrowseRejectsUnknownSection(t *testing.T) {
	r := execute(t, "browse", "pricing")
	assert.Equal(t, ExitUsage, r.code)
}

func TestConfigFileSetsFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  format: markdown\n"), 0o644))

	r := execute(t, "--config", path, "show", "overview")
	require.Equal(t, ExitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, `<a id="overview"></a>`)
	assert.Contains(t, r.stdout, "1. Clone the repository")
}
