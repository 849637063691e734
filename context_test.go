package argparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextErrWriter(t *testing.T) {
	b := &strings.Builder{}
	ctx := Context{ErrWriter: b}

	p := ctx.New("myprog", "")
	var name string
	require.NoError(t, AddPositional(p, "name", &name, String))

	require.Error(t, p.ParseArgs([]string{}))
	assert.Contains(t, b.String(), "myprog: error:")
}

func TestDefaultContextNew(t *testing.T) {
	p := New("myprog", "my program")
	assert.Equal(t, "myprog", p.Name)
	assert.Equal(t, "my program", p.Description)
}
