package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/count/internal/drill"
	"github.com/abhisek/count/internal/store"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func seed(t *testing.T, path string, kv map[string]string) {
	t.Helper()
	st, err := store.Open(path)
	require.NoError(t, err)
	defer st.Close()
	for k, v := range kv {
		require.NoError(t, st.Settings().Set(context.Background(), k, v))
	}
}

func TestStatsEmptyDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "count.db")

	out := execute(t, "stats", "--db", path)

	assert.Contains(t, out, "correct:  0")
	assert.Contains(t, out, "language: ру")
}

func TestStatsStoredValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "count.db")
	seed(t, path, map[string]string{drill.KeyCorrect: "4", drill.KeyLanguage: "en"})

	out := execute(t, "stats", "--db", path)

	assert.Contains(t, out, "correct:  4")
	assert.Contains(t, out, "language: en")
}

func TestResetKeepsLanguage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "count.db")
	seed(t, path, map[string]string{drill.KeyCorrect: "4", drill.KeyLanguage: "en"})

	execute(t, "reset", "--db", path, "--all=false")
	out := execute(t, "stats", "--db", path)

	assert.Contains(t, out, "correct:  0")
	assert.Contains(t, out, "language: en")
}

func TestResetAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "count.db")
	seed(t, path, map[string]string{drill.KeyCorrect: "4", drill.KeyLanguage: "en"})

	execute(t, "reset", "--db", path, "--all")
	out := execute(t, "stats", "--db", path)

	assert.Contains(t, out, "correct:  0")
	assert.Contains(t, out, "language: ру")
}

func TestVersion(t *testing.T) {
	assert.Contains(t, execute(t, "version"), "count")
}
