package cli

import (
	"fmt"
	"strconv"

	ucli "github.com/urfave/cli/v2"

	"github.com/bytestashy/bytestashy/internal/api"
	"github.com/bytestashy/bytestashy/internal/common"
	"github.com/bytestashy/bytestashy/internal/models"
)

func (a *App) createAction(c *ucli.Context) error {
	files := c.Args().Slice()
	if len(files) == 0 {
		return &common.InvalidInputError{Message: "provide at least one file"}
	}

	svc, err := a.requireService()
	if err != nil {
		return err
	}
	req, err := a.promptUpload(files)
	if err != nil {
		return err
	}

	sn, err := svc.Create(c.Context, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created snippet #%d: %s\n", sn.ID, sn.Title)
	return nil
}

func (a *App) getAction(c *ucli.Context) error {
	id, err := parseID(c.Args().First())
	if err != nil {
		return err
	}
	svc, err := a.requireService()
	if err != nil {
		return err
	}

	sn, err := svc.Get(c.Context, id)
	if err != nil {
		return err
	}
	a.printSnippet(sn)
	return a.writeFragments(sn)
}

func (a *App) updateAction(c *ucli.Context) error {
	if c.NArg() < 2 {
		return &common.InvalidInputError{Message: "usage: bytestashy update <id> <file>..."}
	}
	id, err := parseID(c.Args().First())
	if err != nil {
		return err
	}
	files := c.Args().Tail()

	svc, err := a.requireService()
	if err != nil {
		return err
	}
	req, err := a.promptUpload(files)
	if err != nil {
		return err
	}

	sn, err := svc.Update(c.Context, id, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated snippet #%d: %s\n", sn.ID, sn.Title)
	return nil
}

func (a *App) deleteAction(c *ucli.Context) error {
	id, err := parseID(c.Args().First())
	if err != nil {
		return err
	}

	if !c.Bool("force") {
		ok, err := a.prompt.Confirm(fmt.Sprintf("Delete snippet #%d?", id), false)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, "Aborted.")
			return nil
		}
	}

	svc, err := a.requireService()
	if err != nil {
		return err
	}
	if err := svc.Delete(c.Context, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted snippet #%d\n", id)
	return nil
}

func (a *App) listAction(c *ucli.Context) error {
	svc, err := a.requireService()
	if err != nil {
		return err
	}
	snippets, err := svc.List(c.Context)
	if err != nil {
		return err
	}

	if c.Bool("all") {
		a.printSnippetList(snippets)
		return nil
	}

	page, size := c.Int("page"), c.Int("number")
	if page < 1 || size < 1 {
		return &common.InvalidInputError{Message: "page and page size must be positive"}
	}
	a.printSnippetList(paginate(snippets, page, size))
	fmt.Fprintf(a.out, "Page %d of %d (%d snippets)\n", page, pageCount(len(snippets), size), len(snippets))
	return nil
}

func (a *App) searchAction(c *ucli.Context) error {
	if c.NArg() != 1 {
		return &common.InvalidInputError{Message: "usage: bytestashy search [options] <query>"}
	}

	svc, err := a.requireService()
	if err != nil {
		return err
	}
	snippets, err := svc.Search(c.Context, c.Args().First(), api.SearchOptions{
		Sort:       c.String("sort"),
		SearchCode: c.Bool("search-code"),
	})
	if err != nil {
		return err
	}
	if len(snippets) == 0 {
		fmt.Fprintln(a.out, "No snippets found.")
		return nil
	}
	a.printSnippetList(snippets)
	return nil
}

// promptUpload collects the snippet metadata interactively. The file list
// comes from the command line; everything else is asked for, matching the
// upload dialog of the original tool.
func (a *App) promptUpload(files []string) (models.UploadRequest, error) {
	var req models.UploadRequest

	title, err := a.prompt.Text("Snippet title")
	if err != nil {
		return req, err
	}
	if title == "" {
		return req, &common.InvalidInputError{Message: "title must not be empty"}
	}
	description, err := a.prompt.Text("Description (optional)")
	if err != nil {
		return req, err
	}
	isPublic, err := a.prompt.Confirm("Make the snippet public?", false)
	if err != nil {
		return req, err
	}
	categories, err := a.prompt.Text("Categories (comma-separated, optional)")
	if err != nil {
		return req, err
	}

	req = models.UploadRequest{
		Title:       title,
		Description: description,
		IsPublic:    isPublic,
		Categories:  categories,
		Files:       files,
	}
	return req, nil
}

func parseID(arg string) (int, error) {
	if arg == "" {
		return 0, &common.InvalidInputError{Message: "snippet id is required"}
	}
	id, err := strconv.Atoi(arg)
	if err != nil || id < 0 {
		return 0, &common.InvalidInputError{Message: fmt.Sprintf("invalid snippet id %q", arg)}
	}
	return id, nil
}
