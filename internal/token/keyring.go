package token

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "doorspital-admin"
	keyringUser    = "admin-token"
)

// KeyringStore keeps the token in the OS keyring (Keychain, Secret Service,
// Windows Credential Manager).
type KeyringStore struct {
	service string
	user    string
}

func NewKeyringStore() *KeyringStore {
	return &KeyringStore{service: keyringService, user: keyringUser}
}

func (s *KeyringStore) Get() (string, error) {
	v, err := keyring.Get(s.service, s.user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read token from keyring: %w", err)
	}
	return v, nil
}

func (s *KeyringStore) Set(token string) error {
	if token == "" {
		return s.Clear()
	}
	if err := keyring.Set(s.service, s.user, token); err != nil {
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}
	return nil
}

func (s *KeyringStore) Clear() error {
	if err := keyring.Delete(s.service, s.user); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to remove token from keyring: %w", err)
	}
	return nil
}
