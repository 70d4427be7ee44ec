package transit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"logistics/internal/pkg/errs"
)

const (
	idPrefix         = "TRN-"
	sequencesPerPage = 999
	pageLetters      = 26

	// MaxSequenceCounter is the number of ids available per tenant, year and movement type.
	MaxSequenceCounter = sequencesPerPage * pageLetters
)

var (
	branchCodePattern = regexp.MustCompile(`^[A-Z0-9]{2,6}$`)
	idPattern         = regexp.MustCompile(`^TRN-(\d{4})([A-Z0-9]{2,6})(\d{3})([A-Z])-([FS])$`)
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("transit ID must be created via NewID or ParseID")

// ID is the human-readable transit batch identifier
//
//	TRN-<year><branch><seq><letter>-<suffix>    e.g. TRN-2025POL001A-F
//
// seq is 001..999 and letter A..Z; together they encode a per
// (tenant, year, movement) counter n as seq = (n-1)%999+1, letter = 'A'+(n-1)/999.
type ID struct {
	value    string
	year     int
	branch   string
	counter  int
	movement MovementType
}

// NormalizeBranchCode upper-cases code and checks it is 2-6 alphanumerics.
func NormalizeBranchCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !branchCodePattern.MatchString(code) {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"branch code is invalid",
			fmt.Errorf("%q must be 2 to 6 letters or digits", code),
		)
	}
	return code, nil
}

// NewID formats the id for the counter value n (1-based).
func NewID(year int, branchCode string, counter int, movement MovementType) (ID, error) {
	if year < 2000 || year > 9999 {
		return ID{}, errs.NewValueIsOutOfRangeError("year", year, 2000, 9999)
	}
	branch, err := NormalizeBranchCode(branchCode)
	if err != nil {
		return ID{}, err
	}
	if err = movement.Validate(); err != nil {
		return ID{}, err
	}
	if counter < 1 {
		return ID{}, errs.NewValueIsOutOfRangeError("sequence counter", counter, 1, MaxSequenceCounter)
	}
	if counter > MaxSequenceCounter {
		return ID{}, fmt.Errorf("%w: %s %d %s reached %d batches",
			ErrSequenceExhausted, branch, year, movement, MaxSequenceCounter)
	}

	seq := (counter-1)%sequencesPerPage + 1
	letter := byte('A' + (counter-1)/sequencesPerPage)

	return ID{
		value:    fmt.Sprintf("%s%04d%s%03d%c-%c", idPrefix, year, branch, seq, letter, movement.Suffix()),
		year:     year,
		branch:   branch,
		counter:  counter,
		movement: movement,
	}, nil
}

// ParseID validates and decomposes an id previously produced by NewID.
func ParseID(s string) (ID, error) {
	m := idPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause(
			"transit id is invalid",
			fmt.Errorf("%q does not match TRN-<year><branch><seq><letter>-<F|S>", s),
		)
	}

	year, _ := strconv.Atoi(m[1])
	seq, _ := strconv.Atoi(m[3])
	if seq == 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("transit id is invalid", fmt.Errorf("%q has sequence 000", s))
	}
	counter := int(m[4][0]-'A')*sequencesPerPage + seq

	return NewID(year, m[2], counter, movementFromSuffix(m[5][0]))
}

func (id ID) String() string {
	return id.value
}

func (id ID) Year() int {
	return id.year
}

func (id ID) BranchCode() string {
	return id.branch
}

// Counter returns the per-key counter value the id encodes.
func (id ID) Counter() int {
	return id.counter
}

func (id ID) MovementType() MovementType {
	return id.movement
}

func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

func (id ID) Validate() error {
	if id.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
