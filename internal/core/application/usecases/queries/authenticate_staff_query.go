package queries

import (
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/guard"
)

// AuthenticateStaffQuery verifies a staff member's credentials.
//
//nolint:recvcheck //using for validation
type AuthenticateStaffQuery struct {
	guard.ConstructorGuard

	username string
	password string
}

func NewAuthenticateStaffQuery(username string, password string) (AuthenticateStaffQuery, error) {
	if username == "" {
		return AuthenticateStaffQuery{}, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return AuthenticateStaffQuery{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateStaffQuery{
		ConstructorGuard: guard.NewConstructorGuard(),
		username:         username,
		password:         password,
	}, nil
}

func (q AuthenticateStaffQuery) Username() string {
	return q.username
}

func (q AuthenticateStaffQuery) Password() string {
	return q.password
}

func (q AuthenticateStaffQuery) Validate() error {
	return q.ConstructorGuard.Validate(errs.NewValueIsRequiredError("AuthenticateStaffQuery"))
}

// AuthenticateStaffQueryResponse identifies the verified staff member.
// Token issuing happens at the transport layer.
type AuthenticateStaffQueryResponse struct {
	ID          string
	Username    string
	DisplayName string
	Role        string
}
