// Package cli wires the bytestashy commands: argument definitions, prompts,
// rendering, and the mapping of core errors onto process exit codes.
package cli

import (
	"context"
	"io"
	"os"

	ucli "github.com/urfave/cli/v2"

	"github.com/bytestashy/bytestashy/internal/api"
	"github.com/bytestashy/bytestashy/internal/config"
	"github.com/bytestashy/bytestashy/internal/logging"
)

// CredentialStore is the persistence surface the commands need. Satisfied by
// *config.Store; tests substitute an in-memory fake.
type CredentialStore interface {
	Load() (*config.Credential, error)
	Save(config.Credential) error
}

// serviceFactory builds an API client for an endpoint/key pair. Tests swap
// it for a factory returning a fake Service.
type serviceFactory func(endpoint, apiKey string, log logging.Logger) (api.Service, error)

// App owns the command tree and the injected collaborators.
type App struct {
	version    string
	store      CredentialStore
	prompt     Prompter
	log        logging.Logger
	out        io.Writer
	newService serviceFactory
}

// NewApp builds the production App: real credential store, terminal prompts,
// HTTP service factory, stderr logging.
func NewApp(version string) (*App, error) {
	store, err := config.NewStore()
	if err != nil {
		return nil, err
	}
	return &App{
		version: version,
		store:   store,
		prompt:  NewTerminalPrompter(os.Stdin, os.Stdout),
		log:     logging.New(os.Stderr, false),
		out:     os.Stdout,
		newService: func(endpoint, apiKey string, log logging.Logger) (api.Service, error) {
			return api.NewClient(endpoint, apiKey, log)
		},
	}, nil
}

// Run executes one command invocation.
func (a *App) Run(ctx context.Context, args []string) error {
	return a.command().RunContext(ctx, args)
}

func (a *App) command() *ucli.App {
	return &ucli.App{
		Name:                 "bytestashy",
		Usage:                "CLI to push snippets to ByteStash",
		Version:              a.version,
		EnableBashCompletion: true,
		Writer:               a.out,
		Flags: []ucli.Flag{
			&ucli.BoolFlag{Name: "verbose", Usage: "enable debug logging"},
		},
		Before: func(c *ucli.Context) error {
			if c.Bool("verbose") {
				a.log = logging.New(os.Stderr, true)
			}
			return nil
		},
		Commands: []*ucli.Command{
			{
				Name:      "login",
				Usage:     "Authenticate with your ByteStash API",
				UsageText: "bytestashy login <api-url>",
				Description: "Logs in with username and password, generates an API key " +
					"and stores it in the system keyring.",
				Action: a.loginAction,
			},
			{
				Name:      "create",
				Usage:     "Create a new snippet",
				UsageText: "bytestashy create <file>...",
				Action:    a.createAction,
			},
			{
				Name:      "get",
				Usage:     "Retrieve a snippet by ID and write its files",
				UsageText: "bytestashy get <id>",
				Action:    a.getAction,
			},
			{
				Name:      "update",
				Usage:     "Update an existing snippet",
				UsageText: "bytestashy update <id> <file>...",
				Description: "Replaces the snippet wholesale: the supplied files become " +
					"its fragments.",
				Action: a.updateAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete a snippet by ID",
				UsageText: "bytestashy delete [-f] <id>",
				Flags: []ucli.Flag{
					&ucli.BoolFlag{Name: "force", Aliases: []string{"f"}, Usage: "skip confirmation dialog"},
				},
				Action: a.deleteAction,
			},
			{
				Name:  "list",
				Usage: "Show a paginated list of snippets",
				Flags: []ucli.Flag{
					&ucli.BoolFlag{Name: "all", Aliases: []string{"a"}, Usage: "display every snippet, not just one page"},
					&ucli.IntFlag{Name: "number", Aliases: []string{"n"}, Value: defaultPageSize, Usage: "page size"},
					&ucli.IntFlag{Name: "page", Aliases: []string{"p"}, Value: 1, Usage: "page number to display (starting at 1)"},
				},
				Action: a.listAction,
			},
			{
				Name:      "search",
				Usage:     "Search snippets",
				UsageText: "bytestashy search [options] <query>",
				Flags: []ucli.Flag{
					&ucli.StringFlag{Name: "sort", Aliases: []string{"s"}, Usage: "sort order: newest, oldest, alpha-asc, alpha-desc"},
					&ucli.BoolFlag{Name: "search-code", Usage: "search within code fragments"},
				},
				Action: a.searchAction,
			},
		},
	}
}
