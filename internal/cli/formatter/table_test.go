package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "Name"},
		[][]string{
			{"1", "short"},
			{"22", "a much longer name"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4, "header, separator, two rows")
	assert.Contains(t, lines[2], "short")
	assert.Contains(t, lines[3], "a much longer name")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTable_ShortRowsPad(t *testing.T) {
	out := RenderTable([]string{"A", "B", "C"}, [][]string{{"only"}})
	assert.Contains(t, out, "only")
}
