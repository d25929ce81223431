package session

import (
	"encoding/json"
	"os"
	"path"

	"github.com/pkg/errors"
)

const (
	sessionFileName = "session"
	tokenFileName   = "token"
)

// fileStore persists the session as a JSON document in a directory of its
// own, alongside a flat file holding only the bearer token.
type fileStore struct {
	dir string
}

// NewFileStore returns a Store that persists sessions beneath dir.
func NewFileStore(dir string) Store {
	return &fileStore{dir: dir}
}

func (f *fileStore) Load() (*PersistedSession, error) {
	sessionBytes, err := os.ReadFile(path.Join(f.dir, sessionFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(
			err,
			"error reading session file in %s",
			f.dir,
		)
	}
	persisted := &PersistedSession{}
	if err := json.Unmarshal(sessionBytes, persisted); err != nil {
		return nil, errors.Wrapf(
			err,
			"error parsing session file in %s",
			f.dir,
		)
	}
	return persisted, nil
}

func (f *fileStore) Save(persisted PersistedSession) error {
	if _, err := os.Stat(f.dir); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(
				err,
				"error checking for existence of %s",
				f.dir,
			)
		}
		// The directory doesn't exist-- create it
		if err := os.MkdirAll(f.dir, 0755); err != nil {
			return errors.Wrapf(err, "error creating %s", f.dir)
		}
	}
	sessionBytes, err := json.Marshal(persisted)
	if err != nil {
		return errors.Wrap(err, "error marshaling session")
	}
	sessionFile := path.Join(f.dir, sessionFileName)
	if err := os.WriteFile(sessionFile, sessionBytes, 0600); err != nil {
		return errors.Wrapf(err, "error writing to %s", sessionFile)
	}
	// Mirror the bare token for consumers that only need the credential.
	tokenFile := path.Join(f.dir, tokenFileName)
	if err :=
		os.WriteFile(tokenFile, []byte(persisted.AccessToken), 0600); err != nil {
		return errors.Wrapf(err, "error writing to %s", tokenFile)
	}
	return nil
}

func (f *fileStore) Clear() error {
	for _, name := range []string{sessionFileName, tokenFileName} {
		if err := os.Remove(path.Join(f.dir, name)); err != nil &&
			!os.IsNotExist(err) {
			return errors.Wrapf(err, "error deleting %s", name)
		}
	}
	return nil
}
