package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	app := newApp()
	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"phonemescape", "--log-level", "error"}, args...))
	return out.String(), errOut.String(), err
}

func TestGlobalFlags(t *testing.T) {
	app := newApp()

	t.Run("log-level defaults to info", func(t *testing.T) {
		var levelFlag *cli.StringFlag
		for _, flag := range app.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "log-level" {
				levelFlag = f
				break
			}
		}
		require.NotNil(t, levelFlag)
		assert.Equal(t, "info", levelFlag.Value)
	})

	t.Run("invalid log level", func(t *testing.T) {
		app := newApp()
		app.Writer = &bytes.Buffer{}
		err := app.Run([]string{"phonemescape", "--log-level", "loud", "info", "p"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("feature is required for find", func(t *testing.T) {
		_, _, err := runApp(t, "find")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "feature")
	})
}

func TestInfoCommand(t *testing.T) {
	out, _, err := runApp(t, "info", "p", "i")
	require.NoError(t, err)
	assert.Contains(t, out, "Voiceless bilabial plosive")
	assert.Contains(t, out, "type:        consonant")
	assert.Contains(t, out, "place:")
	assert.Contains(t, out, "Close front unrounded vowel")

	_, _, err = runApp(t, "info", "Q")
	require.Error(t, err)

	_, _, err = runApp(t, "info")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage")
}

func TestCompareCommand(t *testing.T) {
	out, _, err := runApp(t, "compare", "p", "b")
	require.NoError(t, err)
	assert.Contains(t, out, "similarity:            0.8929")
	assert.Contains(t, out, "distance:              0.1000")

	out, _, err = runApp(t, "compare", "p", "i")
	require.NoError(t, err)
	assert.Contains(t, out, "similarity:            0.0000")
	assert.Contains(t, out, "incomparable")

	_, _, err = runApp(t, "compare", "p")
	require.Error(t, err)
}

func TestSimilarCommand(t *testing.T) {
	out, _, err := runApp(t, "similar", "--type", "vowel", "--top", "3", "i")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "ɪ")
	assert.Contains(t, lines[1], "y")

	_, _, err = runApp(t, "similar", "--type", "tone", "i")
	require.Error(t, err)
}

func TestMatrixCommand(t *testing.T) {
	out, _, err := runApp(t, "matrix", "p", "b", "i")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "1.000")
	assert.Contains(t, lines[1], "0.893")
	assert.Contains(t, lines[3], "0.000")
}

func TestClusterCommand(t *testing.T) {
	out, errOut, err := runApp(t, "cluster", "--clusters", "2", "--verbose", "p", "b", "k", "g")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "cluster 0: p"))
	assert.Contains(t, errOut, "clustering 4 phonemes into 2 groups")
	assert.Contains(t, errOut, "converged after")

	_, _, err = runApp(t, "cluster", "--clusters", "5", "p", "b")
	require.Error(t, err)
}

func TestAnalyzeCommand(t *testing.T) {
	out, _, err := runApp(t, "analyze", "pa")
	require.NoError(t, err)
	assert.Contains(t, out, "phonemes:           p a")
	assert.Contains(t, out, "vowels/consonants:  1/1")
	assert.Contains(t, out, "average similarity: 0.0000")

	out, _, err = runApp(t, "analyze", "pQ")
	require.NoError(t, err)
	assert.Contains(t, out, "unknown:            Q")
}

func TestFindCommand(t *testing.T) {
	out, _, err := runApp(t, "find",
		"--feature", "type=consonant",
		"--feature", "place=bilabial",
		"--feature", "voicing=voiced")
	require.NoError(t, err)
	symbols := strings.Fields(out)
	assert.ElementsMatch(t, []string{"b", "m", "ʙ", "β"}, symbols)

	_, _, err = runApp(t, "find", "--feature", "bilabial")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name=value")

	_, _, err = runApp(t, "find", "--feature", "colour=red")
	require.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	out, _, err := runApp(t, "export", "--format", "csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Type,Symbol,X,Y,Feature1,Feature2,Feature3,Description\n"))

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	out, _, err = runApp(t, "export", "--format", "yaml", "--output", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "vowels:")

	_, _, err = runApp(t, "export", "--format", "xml")
	require.Error(t, err)
}

func TestSeedCommand(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "small.csv")
	small := "Type,Symbol,X,Y,Feature1,Feature2,Feature3,Description\n" +
		"vowel,i,0,0,close,front,unrounded,Close front unrounded vowel\n" +
		"vowel,a,0,3,open,front,unrounded,Open front unrounded vowel\n" +
		"consonant,p,0,0,plosive,bilabial,voiceless,Voiceless bilabial plosive\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(small), 0644))

	dbPath := filepath.Join(dir, "catalog.db")
	_, errOut, err := runApp(t, "--backend", "sqlite", "--db", dbPath, "seed", "--file", csvPath)
	require.NoError(t, err)
	assert.Contains(t, errOut, "Stored 3 phonemes (2 vowels, 1 consonants)")

	out, _, err := runApp(t, "--backend", "sqlite", "--db", dbPath, "export", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, small, out)

	_, _, err = runApp(t, "--backend", "sqlite", "--db", dbPath, "info", "b")
	require.Error(t, err)
}

func TestDBFlagSelectsBadger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "badger")
	out, _, err := runApp(t, "--db", dir, "compare", "s", "ʃ")
	require.NoError(t, err)
	assert.Contains(t, out, "similarity:")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "phonemescape.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: memory\ncluster_seed: 7\n"), 0644))

	out, _, err := runApp(t, "--config", path, "info", "p")
	require.NoError(t, err)
	assert.Contains(t, out, "Voiceless bilabial plosive")

	_, _, err = runApp(t, "--config", filepath.Join(dir, "missing.yaml"), "info", "p")
	require.Error(t, err)
}

func TestReportCommand(t *testing.T) {
	out, errOut, err := runApp(t, "report", "--report-interval", "50")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "symbol\tnearest\tsimilarity", lines[0])
	assert.Contains(t, out, "p\tb\t0.8929\n")
	assert.Contains(t, errOut, "Progress:")
}
