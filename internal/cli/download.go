package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytestashy/bytestashy/internal/common"
	"github.com/bytestashy/bytestashy/internal/models"
)

// writeFragments writes each fragment of a snippet into the current
// directory. Existing files are only overwritten after confirmation.
func (a *App) writeFragments(sn *models.Snippet) error {
	for _, fr := range sn.Fragments {
		name := fragmentFileName(fr, sn.ID)

		if _, err := os.Stat(name); err == nil {
			ok, err := a.prompt.Confirm(fmt.Sprintf("File %s exists, overwrite?", name), false)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(a.out, "Skipped %s\n", name)
				continue
			}
		}

		if err := os.WriteFile(name, []byte(fr.Code), 0o644); err != nil {
			return &common.FileOperationError{Path: name, Err: err}
		}
		fmt.Fprintf(a.out, "Wrote %s\n", name)
	}
	return nil
}

// fragmentFileName reduces a server-supplied file name to a safe base name so
// a hostile snippet cannot write outside the current directory. Unusable
// names fall back to a generated one.
func fragmentFileName(fr models.Fragment, snippetID int) string {
	base := filepath.Base(fr.FileName)
	if base == "" || base == "." || base == ".." || base == "/" || base == string(filepath.Separator) {
		return fmt.Sprintf("snippet_%d_%d", snippetID, fr.Position)
	}
	return base
}
