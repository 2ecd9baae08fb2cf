package main

import (
	"strings"
	"testing"

	"github.com/henderiw/iterrange/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"part", "values"}, [][]string{
		{"0", "[1 3]"},
		{"1", "[5]"},
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[1]), "0"))
	assert.Contains(t, lines[1], "[1 3]")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[2]), "1"))
	assert.NotContains(t, out, "│")
}

func TestRun(t *testing.T) {
	cfg := config.Default()
	cfg.Pool = "10.0.0.0/30"
	assert.NoError(t, run(cfg))

	cfg.Pool = "not-a-range"
	assert.Error(t, run(cfg))
}
