package driver_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"arraylint/internal/driver"
)

func TestLintContentUsesDefaultRules(t *testing.T) {
	res, err := driver.LintContent(context.Background(), "a.php", []byte(dirtySrc), driver.Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"SpaceInEmptyArray"}, codeNames(res.Bag.Items()))
	require.Nil(t, res.Timing)
	require.NotNil(t, res.Stream)
	require.Equal(t, "a.php", res.File.Path)
}

func TestLintContentClean(t *testing.T) {
	res, err := driver.LintContent(context.Background(), "a.php", []byte(cleanSrc), driver.Options{})
	require.NoError(t, err)
	require.Zero(t, res.Bag.Len())
}

func TestLintTimings(t *testing.T) {
	res, err := driver.LintContent(context.Background(), "a.php", []byte(cleanSrc), driver.Options{EnableTimings: true})
	require.NoError(t, err)
	require.NotNil(t, res.Timing)
	require.Len(t, res.Timing.Phases, 2)
	require.Equal(t, "tokenize", res.Timing.Phases[0].Name)
	require.Equal(t, "rules", res.Timing.Phases[1].Name)
}

func TestLintCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := driver.LintContent(ctx, "a.php", []byte(cleanSrc), driver.Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestLintFileMissing(t *testing.T) {
	_, err := driver.LintFile(context.Background(), filepath.Join(t.TempDir(), "nope.php"), driver.Options{})
	require.Error(t, err)
}

func TestLintFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.php", dirtySrc)
	res, err := driver.LintFile(context.Background(), path, driver.Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"SpaceInEmptyArray"}, codeNames(res.Bag.Items()))
}

func TestLexicalErrorsAreReported(t *testing.T) {
	res, err := driver.LintContent(context.Background(), "a.php", []byte("<?php\n$a = 'open;\n"), driver.Options{})
	require.NoError(t, err)
	require.True(t, res.Bag.HasErrors())
	require.True(t, res.Bag.Items()[0].Code.Lexical())
}
