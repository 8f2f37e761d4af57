package auth

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"nicaris/backoffice/internal/models"
)

// ErrInvalidCredentials is returned for every failed login. The caller
// must not be able to tell a wrong password from an unknown email.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Account is one entry of the credential directory.
type Account struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Verifier checks a credential pair and returns the matching user.
type Verifier interface {
	Verify(email, password string) (*models.Session, error)
}

// Directory is an in-memory credential directory, loaded from a JSON file
// or seeded programmatically. Email lookup is case-insensitive.
type Directory struct {
	mu       sync.RWMutex
	accounts map[string]Account
	logger   *logrus.Logger
}

// NewDirectory builds a directory from the given accounts.
func NewDirectory(accounts []Account, logger *logrus.Logger) *Directory {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	d := &Directory{
		accounts: make(map[string]Account, len(accounts)),
		logger:   logger,
	}
	for _, a := range accounts {
		d.accounts[strings.ToLower(a.Email)] = a
	}
	return d
}

// LoadDirectory reads the credential file and builds a directory from it.
func LoadDirectory(path string, logger *logrus.Logger) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read users file %s: %w", path, err)
	}

	var accounts []Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("failed to parse users file %s: %w", path, err)
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("users file %s holds no accounts", path)
	}

	d := NewDirectory(accounts, logger)
	d.logger.WithFields(logrus.Fields{
		"file":     path,
		"accounts": len(accounts),
	}).Info("Loaded credential directory")
	return d, nil
}

// Add inserts or replaces an account.
func (d *Directory) Add(a Account) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.accounts[strings.ToLower(a.Email)] = a
}

// Verify checks the credential pair against the directory. Both a wrong
// password and an unknown email return ErrInvalidCredentials.
func (d *Directory) Verify(email, password string) (*models.Session, error) {
	d.mu.RLock()
	account, ok := d.accounts[strings.ToLower(strings.TrimSpace(email))]
	d.mu.RUnlock()

	if !ok {
		// Burn a comparison so the miss path costs the same.
		subtle.ConstantTimeCompare([]byte(password), []byte(password))
		return nil, ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(account.Password)) != 1 {
		return nil, ErrInvalidCredentials
	}

	return &models.Session{
		ID:    strings.ToLower(account.Email),
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	}, nil
}
