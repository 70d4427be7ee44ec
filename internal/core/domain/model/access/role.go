package access

import (
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// Role is the platform role carried by an authenticated identity.
type Role int

const (
	UnknownRole Role = iota
	Admin
	FactoryManager
	FactoryEmployee
	StoreManager
	StoreEmployee
	Driver
)

func getRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Admin:           "admin",
		FactoryManager:  "factory_manager",
		FactoryEmployee: "factory_employee",
		StoreManager:    "store_manager",
		StoreEmployee:   "store_employee",
		Driver:          "driver",
	}
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ParseRole rejects anything outside the closed set of roles.
func ParseRole(s string) (Role, error) {
	token := kernel.NormalizeToken(s)
	for role, name := range getRoleStrings() {
		if name == token {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}

// IsPrivileged reports whether the role may act across franchises.
func (r Role) IsPrivileged() bool {
	return r == Admin || r == FactoryManager
}
