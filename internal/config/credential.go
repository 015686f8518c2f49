// Package config persists the bytestashy credential: the server URL in a
// per-user JSON config file, and the API key in the platform keyring. The key
// never lands on disk in clear text.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zalando/go-keyring"

	"github.com/bytestashy/bytestashy/internal/common"
)

const (
	keyringService = "bytestashy"
	keyringAccount = "api_key"
	configFileName = "config.json"
	appDirName     = "bytestashy"
)

// Credential pairs a server endpoint with the API key issued for it.
type Credential struct {
	Endpoint string
	APIKey   string
}

// Usable reports whether the credential can authenticate requests. Both
// halves must be present.
func (c *Credential) Usable() bool {
	return c != nil && c.Endpoint != "" && c.APIKey != ""
}

// fileConfig is the on-disk shape. Only the endpoint is written; the API key
// lives in the keyring.
type fileConfig struct {
	APIURL string `json:"api_url"`
}

// Store reads and writes the single stored credential. The zero directory is
// not valid; construct via NewStore or NewStoreAt.
type Store struct {
	dir string
}

// NewStore places the config file under the platform per-user config
// directory (e.g. ~/.config/bytestashy on Linux).
func NewStore() (*Store, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolving user config dir: %w", err)
	}
	return &Store{dir: filepath.Join(base, appDirName)}, nil
}

// NewStoreAt uses an explicit config directory. Intended for tests.
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// Load reconstructs the credential. A missing config file means no credential
// was ever saved and returns (nil, nil). A config file without a matching
// keyring entry is partial state and fails with CredentialError rather than
// being downgraded to absent.
func (s *Store) Load() (*Credential, error) {
	path := filepath.Join(s.dir, configFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, &common.CredentialError{Err: fmt.Errorf("parsing %s: %w", path, err)}
	}

	secret, err := keyring.Get(keyringService, keyringAccount)
	if err != nil {
		return nil, &common.CredentialError{Err: fmt.Errorf("reading api key from keyring: %w", err)}
	}
	return &Credential{Endpoint: fc.APIURL, APIKey: secret}, nil
}

// Save writes the secret to the keyring first, then the endpoint to the
// config file with owner-only permissions. If the file write fails after the
// keyring write succeeded, the keyring entry is left in place: the next
// successful login overwrites it, and rolling it back could destroy a
// previously working credential.
func (s *Store) Save(cred Credential) error {
	if err := keyring.Set(keyringService, keyringAccount, cred.APIKey); err != nil {
		return &common.CredentialError{Err: fmt.Errorf("writing api key to keyring: %w", err)}
	}

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("creating config dir %s: %w", s.dir, err)
	}
	data, err := json.MarshalIndent(fileConfig{APIURL: cred.Endpoint}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	path := filepath.Join(s.dir, configFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
