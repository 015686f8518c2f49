package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bytestashy/bytestashy/internal/common"
	"github.com/bytestashy/bytestashy/internal/models"
)

// uploadForm is a streaming multipart body for create/update. The scalar
// fields come first, then one "files" part per path in the order given.
type uploadForm struct {
	contentType string
	body        io.ReadCloser
}

// newUploadForm verifies every path up front and returns a form whose body
// streams file contents one at a time. The preflight check guarantees that an
// unreadable path fails before any bytes go on the wire; a partial multipart
// body is never sent.
func newUploadForm(req models.UploadRequest) (*uploadForm, error) {
	for _, path := range req.Files {
		if err := checkReadable(path); err != nil {
			return nil, err
		}
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		if err := writeForm(mw, req); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	return &uploadForm{contentType: mw.FormDataContentType(), body: pr}, nil
}

func writeForm(mw *multipart.Writer, req models.UploadRequest) error {
	fields := []struct{ name, value string }{
		{"title", req.Title},
		{"description", req.Description},
		{"is_public", strconv.FormatBool(req.IsPublic)},
		{"categories", req.Categories},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return fmt.Errorf("writing field %s: %w", f.name, err)
		}
	}

	for _, path := range req.Files {
		part, err := mw.CreateFormFile("files", uploadFileName(path))
		if err != nil {
			return fmt.Errorf("creating file part: %w", err)
		}
		f, err := os.Open(path)
		if err != nil {
			return &common.FileOperationError{Path: path, Err: err}
		}
		_, err = io.Copy(part, f)
		f.Close()
		if err != nil {
			return &common.FileOperationError{Path: path, Err: err}
		}
	}
	return nil
}

// checkReadable opens and closes the file to prove it can be streamed later.
// Directories are rejected here rather than failing mid-stream.
func checkReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &common.FileOperationError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return &common.FileOperationError{Path: path, Err: err}
	}
	if info.IsDir() {
		return &common.FileOperationError{Path: path, Err: fmt.Errorf("is a directory")}
	}
	return nil
}

// uploadFileName extracts the final path component as the uploaded file name,
// falling back to "unknown" when no name can be derived.
func uploadFileName(path string) string {
	name := filepath.Base(path)
	if name == "" || name == "." || name == ".." || name == "/" || name == string(filepath.Separator) {
		return "unknown"
	}
	return name
}

// validateUploadPaths rejects doomed requests before anything touches the
// network: an empty file list and path traversal components are both local
// input errors.
func validateUploadPaths(paths []string) error {
	if len(paths) == 0 {
		return &common.InvalidInputError{Message: "provide at least one file"}
	}
	for _, p := range paths {
		for _, seg := range strings.Split(filepath.ToSlash(p), "/") {
			if seg == ".." {
				return &common.InvalidInputError{Message: fmt.Sprintf("path %q contains '..'", p)}
			}
		}
	}
	return nil
}
