package api

import (
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytestashy/bytestashy/internal/common"
	"github.com/bytestashy/bytestashy/internal/models"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// readForm drains a built form through the stdlib multipart reader and
// returns scalar fields plus (filename, content) pairs in arrival order.
func readForm(t *testing.T, form *uploadForm) (map[string]string, [][2]string) {
	t.Helper()
	_, params, err := mime.ParseMediaType(form.contentType)
	require.NoError(t, err)
	mr := multipart.NewReader(form.body, params["boundary"])

	fields := map[string]string{}
	var files [][2]string
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		if part.FileName() != "" {
			files = append(files, [2]string{part.FileName(), string(data)})
		} else {
			fields[part.FormName()] = string(data)
		}
	}
	return fields, files
}

func TestNewUploadForm_FieldsOnly(t *testing.T) {
	form, err := newUploadForm(models.UploadRequest{
		Title:       "my snippet",
		Description: "desc",
		IsPublic:    true,
		Categories:  "go,cli",
	})
	require.NoError(t, err)

	fields, files := readForm(t, form)
	assert.Equal(t, map[string]string{
		"title":       "my snippet",
		"description": "desc",
		"is_public":   "true",
		"categories":  "go,cli",
	}, fields)
	assert.Empty(t, files)
}

func TestNewUploadForm_IsPublicFalseSerialized(t *testing.T) {
	form, err := newUploadForm(models.UploadRequest{Title: "t"})
	require.NoError(t, err)
	fields, _ := readForm(t, form)
	assert.Equal(t, "false", fields["is_public"])
}

func TestNewUploadForm_FilesPreserveOrderAndNames(t *testing.T) {
	a := writeTempFile(t, "a.py", "print('a')")
	b := writeTempFile(t, "b.py", "print('b')")

	form, err := newUploadForm(models.UploadRequest{Title: "t", Files: []string{a, b}})
	require.NoError(t, err)

	_, files := readForm(t, form)
	require.Len(t, files, 2)
	assert.Equal(t, [2]string{"a.py", "print('a')"}, files[0])
	assert.Equal(t, [2]string{"b.py", "print('b')"}, files[1])
}

func TestNewUploadForm_MissingFileFailsNamingPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")
	_, err := newUploadForm(models.UploadRequest{Title: "t", Files: []string{missing}})

	var fileErr *common.FileOperationError
	require.ErrorAs(t, err, &fileErr)
	assert.Equal(t, missing, fileErr.Path)
}

func TestNewUploadForm_DirectoryRejected(t *testing.T) {
	dir := t.TempDir()
	_, err := newUploadForm(models.UploadRequest{Title: "t", Files: []string{dir}})

	var fileErr *common.FileOperationError
	assert.ErrorAs(t, err, &fileErr)
}

func TestUploadFileName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.py", "a.py"},
		{"/tmp/dir/b.go", "b.go"},
		{"/", "unknown"},
		{".", "unknown"},
		{"", "unknown"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, uploadFileName(tc.path), "path %q", tc.path)
	}
}

func TestValidateUploadPaths(t *testing.T) {
	assert.NoError(t, validateUploadPaths([]string{"a.py"}))

	var inputErr *common.InvalidInputError
	require.ErrorAs(t, validateUploadPaths(nil), &inputErr)
	assert.Contains(t, inputErr.Message, "at least one file")

	err := validateUploadPaths([]string{"../../../etc/passwd"})
	require.ErrorAs(t, err, &inputErr)
	assert.Contains(t, inputErr.Message, "..")

	// ".." inside a file name is not traversal
	assert.NoError(t, validateUploadPaths([]string{"notes..txt"}))
}
