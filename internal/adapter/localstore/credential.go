package localstore

import "fmt"

// DefaultCredentialKey is the storage key the bearer token lives under.
const DefaultCredentialKey = "@AGEI:token"

// Credential reads and writes the bearer token in a Storage under one
// fixed key.
type Credential struct {
	storage Storage
	key     string
}

// NewCredential binds a Storage to the credential key.
// An empty key falls back to DefaultCredentialKey.
func NewCredential(storage Storage, key string) *Credential {
	if key == "" {
		key = DefaultCredentialKey
	}
	return &Credential{storage: storage, key: key}
}

// Key returns the storage key in use.
func (c *Credential) Key() string { return c.key }

// Token returns the stored token. ok is false when none is stored or the
// stored value is empty.
func (c *Credential) Token() (token string, ok bool, err error) {
	v, ok, err := c.storage.Get(c.key)
	if err != nil {
		return "", false, fmt.Errorf("credential: %w", err)
	}
	if !ok || v == "" {
		return "", false, nil
	}
	return v, true, nil
}

// Save stores token, replacing any previous one.
func (c *Credential) Save(token string) error {
	if err := c.storage.Set(c.key, token); err != nil {
		return fmt.Errorf("credential: %w", err)
	}
	return nil
}

// Clear removes the stored token. Clearing an absent token is not an error.
func (c *Credential) Clear() error {
	if err := c.storage.Remove(c.key); err != nil {
		return fmt.Errorf("credential: %w", err)
	}
	return nil
}
