package users

import (
	"sync"

	"github.com/indigo-web/coyote/http/status"
)

var ErrAuthenticationFailed = status.NewError(status.Unauthorized, "authentication failed")

// Repository is the credential store.
type Repository interface {
	FindByAccount(account string) (User, bool)
	// Save stores the user, replacing an existing user of the same account.
	Save(user User)
}

// Authenticate looks the account up and checks the password. A missing account and a
// password mismatch are indistinguishable: both result in ErrAuthenticationFailed.
func Authenticate(repo Repository, account, password string) (User, error) {
	user, found := repo.FindByAccount(account)
	if !found || !user.CheckPassword(password) {
		return User{}, ErrAuthenticationFailed
	}

	return user, nil
}

// Memory is an in-memory Repository, safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemory(users ...User) *Memory {
	m := &Memory{users: make(map[string]User, len(users))}
	for _, user := range users {
		m.users[user.Account] = user
	}

	return m
}

func (m *Memory) FindByAccount(account string) (User, bool) {
	m.mu.RLock()
	user, found := m.users[account]
	m.mu.RUnlock()

	return user, found
}

func (m *Memory) Save(user User) {
	m.mu.Lock()
	m.users[user.Account] = user
	m.mu.Unlock()
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.users)
}
