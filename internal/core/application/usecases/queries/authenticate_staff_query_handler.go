package queries

import (
	"context"
	"errors"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/staff"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
)

// ErrInvalidCredentials is returned for any failed login attempt.
// Unknown username, wrong password and deactivated account are not
// distinguished to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

// StaffReadRepository is the narrow read surface the login check needs.
type StaffReadRepository interface {
	GetByUsername(ctx context.Context, username string) (*staff.Staff, error)
}

// AuthenticateStaffQueryHandler verifies credentials against stored staff.
// Goes through the repository instead of raw SQL because the password
// check lives on the domain model.
type AuthenticateStaffQueryHandler struct {
	staffRepository StaffReadRepository
}

// NewAuthenticateStaffQueryHandler creates a handler for login checks.
func NewAuthenticateStaffQueryHandler(staffRepository StaffReadRepository) (AuthenticateStaffQueryHandler, error) {
	if staffRepository == nil {
		return AuthenticateStaffQueryHandler{}, errs.NewValueIsRequiredError("staffRepository")
	}

	return AuthenticateStaffQueryHandler{staffRepository: staffRepository}, nil
}

// Handle verifies the credentials and returns the staff member's identity.
// Returns ErrInvalidCredentials on any failure to authenticate.
func (h AuthenticateStaffQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateStaffQuery,
) (AuthenticateStaffQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateStaffQueryResponse{}, err
	}

	member, err := h.staffRepository.GetByUsername(ctx, query.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return AuthenticateStaffQueryResponse{}, ErrInvalidCredentials
		}

		return AuthenticateStaffQueryResponse{}, err
	}

	if !member.IsActive() {
		return AuthenticateStaffQueryResponse{}, ErrInvalidCredentials
	}

	if err = member.CheckPassword(query.Password()); err != nil {
		return AuthenticateStaffQueryResponse{}, ErrInvalidCredentials
	}

	return AuthenticateStaffQueryResponse{
		ID:          member.ID().String(),
		Username:    member.Username(),
		DisplayName: member.DisplayName(),
		Role:        member.Role().String(),
	}, nil
}
