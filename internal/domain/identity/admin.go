// Package identity contains the Identity bounded context.
package identity

import (
	"regexp"
	"strings"
	"sync"

	"github.com/inventorydb/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

// bcrypt ignores everything past 72 bytes, so longer passwords are rejected.
const maxPasswordBytes = 72

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ErrInvalidCredentials is returned by login for an unknown email and for a
// wrong password alike.
var ErrInvalidCredentials = shared.NewDomainError(shared.CodeUnauthorized, "Incorrect Username and/or Password")

// ErrIncorrectOldPassword is returned by ChangePassword.
var ErrIncorrectOldPassword = shared.NewDomainError(shared.CodeUnauthorized, "Old password is incorrect")

// Admin is an administrator account. The email is the login identifier;
// the password is only ever held as a bcrypt hash.
type Admin struct {
	shared.BaseEntity
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
}

// NewAdmin creates an administrator and hashes the supplied password
func NewAdmin(email, password, firstName, lastName string) (*Admin, error) {
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, shared.NewValidationError("First name and last name are required")
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	return &Admin{
		BaseEntity:   shared.NewBaseEntity(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
	}, nil
}

// VerifyPassword checks password against the stored hash
func (a *Admin) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
	return err == nil
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// VerifyDummyPassword compares password against a throwaway hash of the same
// cost as real accounts and always reports false. Login runs it for unknown
// emails so both failure paths take as long.
func VerifyDummyPassword(password string) bool {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("unknown-account"), bcryptCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
	return false
}

// UpdateInfo overwrites the non-empty fields only. It reports whether any
// field changed; the update timestamp moves either way.
func (a *Admin) UpdateInfo(firstName, lastName string) bool {
	changed := false
	if v := strings.TrimSpace(firstName); v != "" && v != a.FirstName {
		a.FirstName = v
		changed = true
	}
	if v := strings.TrimSpace(lastName); v != "" && v != a.LastName {
		a.LastName = v
		changed = true
	}
	a.Touch()
	return changed
}

// ChangePassword replaces the hash after verifying the old password
func (a *Admin) ChangePassword(oldPassword, newPassword string) error {
	if !a.VerifyPassword(oldPassword) {
		return ErrIncorrectOldPassword
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	a.Touch()
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewValidationError("Email is required")
	}
	if len(email) > 254 {
		return shared.NewValidationError("Email cannot exceed 254 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewValidationError("Invalid email format")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewValidationError("Password is required")
	}
	if len(password) > maxPasswordBytes {
		return shared.NewValidationError("Password cannot exceed 72 bytes")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", shared.NewDomainError(shared.CodeInternal, "Failed to hash password")
	}
	return string(hash), nil
}

// NormalizeEmail lower-cases and trims an email the same way registration does,
// so lookups by a login name match the stored value.
func NormalizeEmail(email string) string {
	return normalizeEmail(email)
}
