// Package identity supplies the active user id and premium flag. The habit
// store consumes these as read-only inputs; account management itself is an
// external concern.
package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/evanfuller/habitgrid/internal/constants"
)

// ErrKeyringUnavailable is returned when the OS keyring cannot be reached
var ErrKeyringUnavailable = errors.New("OS keyring is not available")

// Provider supplies the current user id and premium state
type Provider interface {
	UserID() string
	Premium() bool
}

// Manager reads the active profile from the OS keyring. The user id lives
// under the "user" account and the premium license key under "license";
// missing entries fall back to the local free-tier profile.
type Manager struct{}

// NewManager creates a keyring-backed identity manager
func NewManager() *Manager {
	return &Manager{}
}

// UserID returns the active user id, or the local default when none is set
func (m *Manager) UserID() string {
	id, err := keyring.Get(constants.AppName, constants.KeyringUserAccount)
	if err != nil || strings.TrimSpace(id) == "" {
		return constants.DefaultUserID
	}
	return id
}

// Premium reports whether a license key is stored for this profile
func (m *Manager) Premium() bool {
	key, err := keyring.Get(constants.AppName, constants.KeyringLicenseAccount)
	return err == nil && strings.TrimSpace(key) != ""
}

// SetUserID stores the active user id
func (m *Manager) SetUserID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("user id cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.KeyringUserAccount, id); err != nil {
		return fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return nil
}

// SetLicense stores a premium license key
func (m *Manager) SetLicense(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("license key cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.KeyringLicenseAccount, key); err != nil {
		return fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return nil
}

// ClearLicense removes the premium license key, reverting to the free tier
func (m *Manager) ClearLicense() error {
	err := keyring.Delete(constants.AppName, constants.KeyringLicenseAccount)
	if err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return nil
}

// KeyringAvailable is a best-effort check used by the doctor command
func KeyringAvailable() bool {
	_, err := keyring.Get(constants.AppName, "availability-probe")
	return err == nil || err == keyring.ErrNotFound
}

// Static is a fixed identity for tests and non-interactive tooling
type Static struct {
	ID        string
	IsPremium bool
}

func (s Static) UserID() string {
	if s.ID == "" {
		return constants.DefaultUserID
	}
	return s.ID
}

func (s Static) Premium() bool { return s.IsPremium }
