package users

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// User is a registered account. The password is kept as a bcrypt hash only.
type User struct {
	Account      string
	Email        string
	PasswordHash []byte
}

// NewUser hashes the password with the given bcrypt cost.
func NewUser(account, password, email string, cost int) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return User{}, errors.Wrap(err, "hashing password")
	}

	return User{
		Account:      account,
		Email:        email,
		PasswordHash: hash,
	}, nil
}

// CheckPassword reports whether the candidate matches the stored password.
func (u User) CheckPassword(candidate string) bool {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(candidate)) == nil
}

func (u User) String() string {
	return u.Account
}
