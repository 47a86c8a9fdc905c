package staff

import (
	"fmt"

	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"
)

// Role determines which parts of the service a staff member may use.
// Waiters open and edit comandas, kitchen staff work the queue, management
// maintains the catalog and reads reports, and admins can do everything.
type Role int

const (
	// RoleUnspecified represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnspecified Role = iota

	// RoleWaiter can open drafts, edit lines and submit comandas.
	RoleWaiter

	// RoleKitchen can list the kitchen queue and mark comandas ready or void.
	RoleKitchen

	// RoleManagement can maintain the catalog, change prices and read reports.
	RoleManagement

	// RoleAdmin has every permission, including staff administration.
	RoleAdmin
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnspecified: "Unspecified",
		RoleWaiter:      "Waiter",
		RoleKitchen:     "Kitchen",
		RoleManagement:  "Management",
		RoleAdmin:       "Admin",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	return map[Role]string{
		RoleWaiter:     "Waiter",
		RoleKitchen:    "Kitchen",
		RoleManagement: "Management",
		RoleAdmin:      "Admin",
	}
}

// ParseRole converts a stored or transmitted role name into a Role.
// Names are matched exactly as produced by String.
func ParseRole(name string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == name {
			return role, nil
		}
	}
	return RoleUnspecified, errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", name))
}

// Validate checks if the Role value is valid.
// RoleUnspecified (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// It is safe to call on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unspecified"
}

// CanServe reports whether the role may run the waiter workflow.
func (r Role) CanServe() bool {
	return r == RoleWaiter || r == RoleAdmin
}

// CanCook reports whether the role may run the kitchen workflow.
func (r Role) CanCook() bool {
	return r == RoleKitchen || r == RoleAdmin
}

// CanManage reports whether the role may use the management surface.
func (r Role) CanManage() bool {
	return r == RoleManagement || r == RoleAdmin
}
