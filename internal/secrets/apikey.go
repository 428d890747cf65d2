// Package secrets resolves the RapidAPI key for the live job source.
// The environment wins; the OS keychain is the fallback. A missing key is
// a valid state; the engine then serves curated results only.
package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service groups this app's secrets in the OS keychain.
	KeyringService = "yelvantix"

	KeyringAccount = "rapidapi"

	EnvAPIKey = "RAPIDAPI_KEY"
)

// RapidAPIKey returns the configured key, or "" when none is set anywhere.
func RapidAPIKey() string {
	if k := strings.TrimSpace(os.Getenv(EnvAPIKey)); k != "" {
		return k
	}
	k, err := keyring.Get(KeyringService, KeyringAccount)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(k)
}

// SetRapidAPIKey stores the key in the OS keychain.
func SetRapidAPIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("API key is empty")
	}
	return keyring.Set(KeyringService, KeyringAccount, key)
}

// DeleteRapidAPIKey removes the key from the OS keychain.
func DeleteRapidAPIKey() error {
	return keyring.Delete(KeyringService, KeyringAccount)
}
