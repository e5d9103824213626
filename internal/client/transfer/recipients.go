package transfer

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// emailPattern is a syntactic check only: local part, "@", domain, ".", TLD.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// IsValidEmail reports whether the normalized form of raw looks like an
// email address.
func IsValidEmail(raw string) bool {
	s := NormalizeEmail(raw)
	return s != "" && emailPattern.MatchString(s)
}

// RecipientList keeps recipients in insertion order with set membership.
// The zero value is ready to use. It is not safe for concurrent use.
type RecipientList struct {
	items []string
	err   error
}

// NewRecipientList adds every address in order and stops at the first one
// that is rejected.
func NewRecipientList(raw ...string) (*RecipientList, error) {
	l := &RecipientList{}
	for _, r := range raw {
		if err := l.Add(r); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Add normalizes raw and appends it. It returns ErrInvalidEmail for
// malformed input and ErrDuplicateRecipient when the address is already in
// the list. The outcome is remembered for Err.
func (l *RecipientList) Add(raw string) error {
	l.err = nil
	email := NormalizeEmail(raw)

	if !IsValidEmail(email) {
		l.err = fmt.Errorf("%w: %q", ErrInvalidEmail, email)
		return l.err
	}
	if l.Contains(email) {
		l.err = fmt.Errorf("%w: %s", ErrDuplicateRecipient, email)
		return l.err
	}

	l.items = append(l.items, email)
	return nil
}

// Remove deletes the recipient at index and clears the pending validation
// error.
func (l *RecipientList) Remove(index int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	l.items = slices.Delete(l.items, index, index+1)
	l.err = nil
	return nil
}

// Contains reports membership, case-insensitively.
func (l *RecipientList) Contains(raw string) bool {
	return slices.Contains(l.items, NormalizeEmail(raw))
}

// List returns a copy of the recipients in insertion order.
func (l *RecipientList) List() []string {
	return slices.Clone(l.items)
}

func (l *RecipientList) Len() int {
	return len(l.items)
}

// Err returns the error of the last Add, or nil once it was cleared by a
// successful Add or a Remove.
func (l *RecipientList) Err() error {
	return l.err
}

// Clear drops all recipients.
func (l *RecipientList) Clear() {
	l.items = nil
	l.err = nil
}
