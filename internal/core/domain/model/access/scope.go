package access

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ReasonNoFranchiseAssignment is reported when a franchise-bound role has no franchise.
const ReasonNoFranchiseAssignment = "no_franchise_assignment"

var ErrAccessDenied = errors.New("access denied")

// ScopeError means the caller cannot be given any tenant scope.
type ScopeError struct {
	Reason string
}

func NewScopeError(reason string) *ScopeError {
	return &ScopeError{Reason: reason}
}

func (e *ScopeError) Error() string {
	return ErrAccessDenied.Error() + ": " + e.Reason
}

func (e *ScopeError) Unwrap() error {
	return ErrAccessDenied
}

// Identity is the authenticated caller. TenantID is zero for users that are not
// assigned to a franchise.
type Identity struct {
	UserID   string
	Role     Role
	TenantID kernel.TenantID
}

// NewIdentity validates the decoded token claims. An empty tenant is allowed
// here; Resolve decides whether the role needs one.
func NewIdentity(userID string, role Role, tenant string) (Identity, error) {
	var userErr error
	userID = strings.TrimSpace(userID)
	if userID == "" {
		userErr = errs.NewValueIsRequiredError("userId")
	}

	var (
		tenantID  kernel.TenantID
		tenantErr error
	)
	if strings.TrimSpace(tenant) != "" {
		tenantID, tenantErr = kernel.NewTenantID(tenant)
	}

	if err := errors.Join(userErr, role.Validate(), tenantErr); err != nil {
		return Identity{}, err
	}
	return Identity{UserID: userID, Role: role, TenantID: tenantID}, nil
}

// Scope is the set of tenants a request may read or write: either every tenant
// or exactly one.
type Scope struct {
	all    bool
	tenant kernel.TenantID
}

func AllTenants() Scope {
	return Scope{all: true}
}

func SingleTenant(tenant kernel.TenantID) Scope {
	return Scope{tenant: tenant}
}

// Resolve narrows identity to the tenants it may touch. requested is the
// optional caller-supplied tenant (zero when absent); it only narrows
// privileged roles and is ignored for everyone else.
func Resolve(identity Identity, requested kernel.TenantID) (Scope, error) {
	if err := identity.Role.Validate(); err != nil {
		return Scope{}, err
	}

	if identity.Role.IsPrivileged() {
		if !requested.IsZero() {
			return SingleTenant(requested), nil
		}
		return AllTenants(), nil
	}

	if identity.TenantID.IsZero() {
		return Scope{}, NewScopeError(ReasonNoFranchiseAssignment)
	}
	return SingleTenant(identity.TenantID), nil
}

// IsAll reports whether the scope spans every tenant.
func (s Scope) IsAll() bool {
	return s.all
}

// Tenant returns the single tenant of the scope; ok is false for AllTenants.
func (s Scope) Tenant() (tenant kernel.TenantID, ok bool) {
	if s.all {
		return kernel.TenantID{}, false
	}
	return s.tenant, true
}

// Allows reports whether tenant falls within the scope.
func (s Scope) Allows(tenant kernel.TenantID) bool {
	return s.all || s.tenant.IsEqual(tenant)
}

// TargetTenant is the tenant new records are written under. A scope spanning
// every tenant has no target, so privileged callers must narrow it first.
func (s Scope) TargetTenant() (kernel.TenantID, error) {
	if s.all {
		return kernel.TenantID{}, errs.NewValueIsRequiredError("franchiseId")
	}
	return s.tenant, nil
}

func (s Scope) Validate() error {
	if !s.all && s.tenant.IsZero() {
		return errs.NewValueIsRequiredError("scope")
	}
	return nil
}
