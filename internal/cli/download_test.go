package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytestashy/bytestashy/internal/logging"
	"github.com/bytestashy/bytestashy/internal/models"
)

func downloadApp(t *testing.T, prompt *scriptedPrompter) (*App, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out := &bytes.Buffer{}
	return &App{prompt: prompt, out: out, log: logging.Discard()}, out
}

func TestWriteFragments_WritesFilesInOrder(t *testing.T) {
	app, out := downloadApp(t, &scriptedPrompter{})

	sn := &models.Snippet{ID: 7, Fragments: []models.Fragment{
		{FileName: "main.go", Code: "package main", Position: 0},
		{FileName: "util.go", Code: "package main // util", Position: 1},
	}}
	require.NoError(t, app.writeFragments(sn))

	data, err := os.ReadFile("main.go")
	require.NoError(t, err)
	assert.Equal(t, "package main", string(data))
	assert.FileExists(t, "util.go")
	assert.Contains(t, out.String(), "Wrote main.go")
}

func TestWriteFragments_OverwriteDeclined(t *testing.T) {
	prompt := &scriptedPrompter{ConfirmAnswers: []bool{false}}
	app, out := downloadApp(t, prompt)
	require.NoError(t, os.WriteFile("main.go", []byte("old"), 0o644))

	sn := &models.Snippet{ID: 7, Fragments: []models.Fragment{
		{FileName: "main.go", Code: "new", Position: 0},
	}}
	require.NoError(t, app.writeFragments(sn))

	data, err := os.ReadFile("main.go")
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
	assert.Contains(t, out.String(), "Skipped main.go")
}

func TestWriteFragments_OverwriteAccepted(t *testing.T) {
	prompt := &scriptedPrompter{ConfirmAnswers: []bool{true}}
	app, _ := downloadApp(t, prompt)
	require.NoError(t, os.WriteFile("main.go", []byte("old"), 0o644))

	sn := &models.Snippet{ID: 7, Fragments: []models.Fragment{
		{FileName: "main.go", Code: "new", Position: 0},
	}}
	require.NoError(t, app.writeFragments(sn))

	data, err := os.ReadFile("main.go")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteFragments_HostileNamesReducedToBase(t *testing.T) {
	app, _ := downloadApp(t, &scriptedPrompter{})

	sn := &models.Snippet{ID: 9, Fragments: []models.Fragment{
		{FileName: "../../evil.sh", Code: "x", Position: 0},
		{FileName: "", Code: "y", Position: 1},
	}}
	require.NoError(t, app.writeFragments(sn))

	assert.FileExists(t, "evil.sh")
	assert.NoFileExists(t, filepath.Join("..", "..", "evil.sh"))
	assert.FileExists(t, "snippet_9_1")
}

func TestFragmentFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"main.go", "main.go"},
		{"dir/main.go", "main.go"},
		{"../escape.txt", "escape.txt"},
		{"..", "snippet_3_2"},
		{"", "snippet_3_2"},
		{".", "snippet_3_2"},
	}
	for _, tc := range tests {
		got := fragmentFileName(models.Fragment{FileName: tc.in, Position: 2}, 3)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}
