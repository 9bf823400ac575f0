package users

import (
	"io"
	"os"

	json "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

type record struct {
	Account  string `json:"account"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// Decode reads a JSON array of {"account", "password", "email"} objects with plaintext
// passwords and returns the users with hashed ones.
func Decode(r io.Reader, cost int) ([]User, error) {
	var records []record
	if err := json.ConfigCompatibleWithStandardLibrary.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.Wrap(err, "decoding users")
	}

	users := make([]User, 0, len(records))
	for i, rec := range records {
		if len(rec.Account) == 0 || len(rec.Password) == 0 {
			return nil, errors.Errorf("user #%d: account and password are required", i)
		}

		user, err := NewUser(rec.Account, rec.Password, rec.Email, cost)
		if err != nil {
			return nil, errors.Wrapf(err, "user %s", rec.Account)
		}

		users = append(users, user)
	}

	return users, nil
}

// LoadFile decodes the users file at path.
func LoadFile(path string, cost int) ([]User, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening users file")
	}

	defer fd.Close()

	return Decode(fd, cost)
}
