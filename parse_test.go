package colfmt_test

import (
	"testing"

	"github.com/bjaus/colfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplateEmpty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, colfmt.ParseTemplate(""))
}

func TestParseTemplateNoTokens(t *testing.T) {
	t.Parallel()
	assert.Empty(t, colfmt.ParseTemplate("just some text"))
}

func TestParseTemplateModes(t *testing.T) {
	t.Parallel()
	cols := colfmt.ParseTemplate("{} | {:?} | {:#?}")
	require.Len(t, cols, 3)
	assert.Equal(t, colfmt.Display, cols[0].Mode)
	assert.Equal(t, colfmt.Debug, cols[1].Mode)
	assert.Equal(t, colfmt.PrettyDebug, cols[2].Mode)
}

func TestParseTemplateSeparators(t *testing.T) {
	t.Parallel()
	cols := colfmt.ParseTemplate("{} -> {:?} => {:#?}")
	require.Len(t, cols, 3)
	assert.Equal(t, " -> ", cols[0].Sep)
	assert.Equal(t, " => ", cols[1].Sep)
	assert.Empty(t, cols[2].Sep)
}

func TestParseTemplateAdjacentTokens(t *testing.T) {
	t.Parallel()
	cols := colfmt.ParseTemplate("{}{}{}")
	require.Len(t, cols, 3)
	for _, col := range cols {
		assert.Empty(t, col.Sep)
		assert.Equal(t, colfmt.Display, col.Mode)
		assert.Zero(t, col.Width)
	}
}

func TestParseTemplateBoundaryTextNotAttached(t *testing.T) {
	t.Parallel()
	cols := colfmt.ParseTemplate("pre {}, mid {} post")
	require.Len(t, cols, 2)
	assert.Equal(t, ", mid ", cols[0].Sep)
	assert.Empty(t, cols[1].Sep, "trailing text must not become the last column's separator")
}

func TestParseTemplateWidths(t *testing.T) {
	t.Parallel()
	cols := colfmt.ParseTemplate("{:80} | {:?:60} | {:#?:100}")
	require.Len(t, cols, 3)
	assert.Equal(t, 80, cols[0].Width)
	assert.Equal(t, colfmt.Display, cols[0].Mode)
	assert.Equal(t, 60, cols[1].Width)
	assert.Equal(t, colfmt.Debug, cols[1].Mode)
	assert.Equal(t, 100, cols[2].Width)
	assert.Equal(t, colfmt.PrettyDebug, cols[2].Mode)
}

func TestParseTemplateWidthSuffixNotSeparator(t *testing.T) {
	t.Parallel()
	cols := colfmt.ParseTemplate("{:?}:12|{}")
	require.Len(t, cols, 2)
	assert.Equal(t, 12, cols[0].Width)
	assert.Equal(t, "|", cols[0].Sep, "digits of the width suffix must not leak into the separator")
}

func TestParseTemplateInnerWidth(t *testing.T) {
	t.Parallel()
	cols := colfmt.ParseTemplate("{:5} | {}")
	require.Len(t, cols, 2)
	assert.Equal(t, 5, cols[0].Width)
	assert.Equal(t, colfmt.Display, cols[0].Mode)
	assert.Zero(t, cols[1].Width)
}

func TestParseTemplateOuterWidthWins(t *testing.T) {
	t.Parallel()
	cols := colfmt.ParseTemplate("{:?:60}:80")
	require.Len(t, cols, 1)
	assert.Equal(t, 80, cols[0].Width)
}

func TestParseTemplateEmptyWidthSuffix(t *testing.T) {
	t.Parallel()
	// The colon is consumed even when no digits follow; the width stays
	// auto and the colon never shows up as separator text.
	cols := colfmt.ParseTemplate("{}:{}")
	require.Len(t, cols, 2)
	assert.Zero(t, cols[0].Width)
	assert.Empty(t, cols[0].Sep)
}

func TestParseTemplateContainmentQuirk(t *testing.T) {
	t.Parallel()
	// Mode detection is substring containment, not strict grammar.
	cols := colfmt.ParseTemplate("{name:?age} {x:#?y}")
	require.Len(t, cols, 2)
	assert.Equal(t, colfmt.Debug, cols[0].Mode)
	assert.Equal(t, colfmt.PrettyDebug, cols[1].Mode)
}

func TestParseTemplateUnterminatedBrace(t *testing.T) {
	t.Parallel()
	cols := colfmt.ParseTemplate("{} | {unclosed")
	require.Len(t, cols, 1)
	assert.Equal(t, " | ", cols[0].Sep,
		"text before a dead brace is still the preceding token's separator")
}

func TestParseTemplateUnterminatedTailAdjacent(t *testing.T) {
	t.Parallel()
	// A dead brace directly after a token leaves its whole tail as that
	// token's separator.
	cols := colfmt.ParseTemplate("{}{oops")
	require.Len(t, cols, 1)
	assert.Equal(t, "{oops", cols[0].Sep)
}

func TestParseTemplateOnlyUnterminatedBrace(t *testing.T) {
	t.Parallel()
	assert.Empty(t, colfmt.ParseTemplate("{never closed"))
}

func TestParseTemplateMultiByteSeparator(t *testing.T) {
	t.Parallel()
	cols := colfmt.ParseTemplate("{} → {:?}")
	require.Len(t, cols, 2)
	assert.Equal(t, " → ", cols[0].Sep)
}

func TestParseTemplateHugeWidthOverflow(t *testing.T) {
	t.Parallel()
	// A digit run too large for int parses as no width at all.
	cols := colfmt.ParseTemplate("{:99999999999999999999999999}")
	require.Len(t, cols, 1)
	assert.Zero(t, cols[0].Width)
}

func TestModeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "display", colfmt.Display.String())
	assert.Equal(t, "debug", colfmt.Debug.String())
	assert.Equal(t, "pretty-debug", colfmt.PrettyDebug.String())
}
