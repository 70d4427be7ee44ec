package kernel

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

const maxTenantIDLength = 64

// ErrTenantIDIsNotConstructed is returned when validating a zero-value TenantID.
var ErrTenantIDIsNotConstructed = errs.NewValueIsRequiredError("TenantID must be created via NewTenantID")

// TenantID identifies a franchise. It is opaque to the coordinator: the value
// issued by the franchise directory is carried around verbatim (after trimming).
type TenantID struct {
	value string
}

// NewTenantID trims s and rejects empty or oversized identifiers.
func NewTenantID(s string) (TenantID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TenantID{}, errs.NewValueIsRequiredError("tenantId")
	}
	if len(s) > maxTenantIDLength {
		return TenantID{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"tenantId length", len(s), 1, maxTenantIDLength,
			fmt.Errorf("tenant id %q is too long", s[:16]+"..."),
		)
	}
	return TenantID{value: s}, nil
}

// MustTenantID is NewTenantID for literals known to be valid; it panics otherwise.
func MustTenantID(s string) TenantID {
	id, err := NewTenantID(s)
	if err != nil {
		panic(err)
	}
	return id
}

func (t TenantID) String() string {
	return t.value
}

func (t TenantID) IsZero() bool {
	return t.value == ""
}

func (t TenantID) IsEqual(other TenantID) bool {
	return t.value == other.value
}

func (t TenantID) Validate() error {
	if t.value == "" {
		return ErrTenantIDIsNotConstructed
	}
	return nil
}
