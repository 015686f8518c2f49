package cli

import (
	"errors"
	"fmt"

	ucli "github.com/urfave/cli/v2"

	"github.com/bytestashy/bytestashy/internal/api"
	"github.com/bytestashy/bytestashy/internal/common"
	"github.com/bytestashy/bytestashy/internal/config"
)

const defaultKeyName = "bytestashy"

func (a *App) loginAction(c *ucli.Context) error {
	if c.NArg() != 1 {
		return &common.InvalidInputError{Message: "usage: bytestashy login <api-url>"}
	}
	endpoint, err := api.NormalizeEndpoint(c.Args().First())
	if err != nil {
		return err
	}

	svc, err := a.newService(endpoint, "", a.log)
	if err != nil {
		return err
	}

	username, err := a.prompt.Text("Username")
	if err != nil {
		return err
	}
	password, err := a.prompt.Password("Password")
	if err != nil {
		return err
	}

	token, err := svc.Login(c.Context, username, password)
	if err != nil {
		return err
	}

	keyName, err := a.prompt.TextDefault("Name of the api key to generate", defaultKeyName)
	if err != nil {
		return err
	}
	key, err := svc.CreateAPIKey(c.Context, token, keyName)
	if err != nil {
		return err
	}

	if err := a.store.Save(config.Credential{Endpoint: endpoint, APIKey: key}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Login successful, api key saved to keyring")
	return nil
}

// requireService loads the stored credential and builds a client for it.
// Absence of a credential is an error at this level: every command besides
// login needs one.
func (a *App) requireService() (api.Service, error) {
	cred, err := a.store.Load()
	if err != nil {
		return nil, err
	}
	if !cred.Usable() {
		return nil, errors.New("no saved api key found, run 'bytestashy login <api-url>' first")
	}
	return a.newService(cred.Endpoint, cred.APIKey, a.log)
}
