package argparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteUsage(t *testing.T) {
	p := newTestParser()
	p.Description = "does test things"
	var (
		verbose bool
		dryRun  bool
		count   int
		name    string
	)
	require.NoError(t, p.AddFlag("--verbose", &verbose))
	require.NoError(t, p.AddFlag("--dry-run", &dryRun))
	require.NoError(t, AddOption(p, "--count", &count, Int))
	require.NoError(t, AddPositional(p, "name", &name, String))

	usage := p.UsageString()
	assert.Contains(t, usage, "does test things")
	assert.Contains(t, usage, "USAGE:\n    test [OPTIONS] <name>")
	assert.Contains(t, usage, "OPTIONS:")
	assert.Contains(t, usage, "--verbose")
	assert.Contains(t, usage, "--dry-run")
	assert.Contains(t, usage, "--count <COUNT>")
	assert.Contains(t, usage, "ARGUMENTS:")

	// Flags take no value, so no placeholder follows them.
	assert.NotContains(t, usage, "--verbose <")
}

func TestWriteUsageNoRegistrations(t *testing.T) {
	p := newTestParser()
	usage := p.UsageString()
	assert.Contains(t, usage, "USAGE:\n    test")
	assert.NotContains(t, usage, "[OPTIONS]")
	assert.NotContains(t, usage, "ARGUMENTS:")
}

func TestWriteUsagePlaceholderDerivation(t *testing.T) {
	p := newTestParser()
	var d string
	require.NoError(t, AddOption(p, "--output-dir", &d, String))

	assert.Contains(t, p.UsageString(), "--output-dir <OUTPUT_DIR>")
}

func TestWriteUsageWriter(t *testing.T) {
	p := newTestParser()
	b := &strings.Builder{}
	p.WriteUsage(b)
	assert.NotEmpty(t, b.String())
}
