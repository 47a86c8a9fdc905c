package staff

import (
	"errors"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// Domain errors for staff operations.
var (
	// ErrStaffIsNotConstructed is returned when using an improperly initialized Staff.
	ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff constructor")
	// ErrPasswordMismatch is returned when a presented password does not match the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")
)

// Staff is a restaurant employee account. It owns the credential hash and
// the role that gates access to the waiter, kitchen and management surfaces.
//
// Accounts start active and can be deactivated instead of deleted, so
// comandas keep a valid reference to whoever created them.
type Staff struct {
	id           kernel.UUID
	username     string
	displayName  string
	passwordHash string
	role         Role
	active       bool
	createdAt    time.Time

	isConstructed bool
}

// NewStaff creates an active staff account, hashing the plain password
// with bcrypt. The plain password is never retained.
func NewStaff(
	id kernel.UUID,
	username, displayName, password string,
	role Role,
	now time.Time,
) (*Staff, error) {
	s := &Staff{
		active:        true,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setUsername(username),
		s.setDisplayName(displayName),
		s.setRole(role),
	); err != nil {
		return nil, err
	}

	if err := s.setPassword(password); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStaff rehydrates a Staff account from persistence. The hash is
// taken as stored and the password length rule is not re-checked.
func RestoreStaff(
	id kernel.UUID,
	username, displayName, passwordHash string,
	role Role,
	active bool,
	createdAt time.Time,
) (*Staff, error) {
	s := &Staff{
		active:        active,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setUsername(username),
		s.setDisplayName(displayName),
		s.setRole(role),
	); err != nil {
		return nil, err
	}

	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}
	s.passwordHash = passwordHash

	return s, nil
}

// Validate ensures the Staff was properly constructed.
func (s *Staff) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStaffIsNotConstructed
	}
	return nil
}

// ID returns the account's unique identifier.
func (s *Staff) ID() kernel.UUID {
	return s.id
}

// Username returns the login name.
func (s *Staff) Username() string {
	return s.username
}

// DisplayName returns the name shown on comandas and reports.
func (s *Staff) DisplayName() string {
	return s.displayName
}

// PasswordHash returns the stored bcrypt hash for persistence.
func (s *Staff) PasswordHash() string {
	return s.passwordHash
}

// Role returns the account's role.
func (s *Staff) Role() Role {
	return s.role
}

// IsActive reports whether the account may log in.
func (s *Staff) IsActive() bool {
	return s.active
}

// CreatedAt returns the account creation instant.
func (s *Staff) CreatedAt() time.Time {
	return s.createdAt
}

// CheckPassword compares a presented plain password against the stored
// hash. It returns ErrPasswordMismatch on any mismatch.
func (s *Staff) CheckPassword(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// ChangePassword replaces the credential with a hash of the new password.
func (s *Staff) ChangePassword(password string) error {
	return s.setPassword(password)
}

// Deactivate blocks the account from logging in without deleting it.
func (s *Staff) Deactivate() {
	s.active = false
}

// Activate re-enables a deactivated account.
func (s *Staff) Activate() {
	s.active = true
}

func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Staff) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	s.username = username
	return nil
}

func (s *Staff) setDisplayName(displayName string) error {
	if displayName == "" {
		return errs.NewValueIsRequiredError("displayName")
	}
	s.displayName = displayName
	return nil
}

func (s *Staff) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}

func (s *Staff) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, 72)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.passwordHash = string(hash)
	return nil
}
