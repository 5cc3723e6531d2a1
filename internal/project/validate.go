package project

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/mintapp-labs/mintapp/internal/branding"
)

// Name validation failures. ErrEmptyName and ErrNameWhitespace are sentinel
// values; a denylist hit carries the full denylist for the diagnostic.
var (
	ErrEmptyName      = errors.New("project name must not be empty")
	ErrNameWhitespace = errors.New("project name must be a single word (no whitespace)")
)

// ReservedNameError reports a project name that collides with one of the
// packages the generated project will depend on.
type ReservedNameError struct {
	Name     string
	Denylist []string
}

func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("project name %q is reserved: it collides with a dependency of the generated project (%s)",
		e.Name, strings.Join(e.Denylist, ", "))
}

// ValidateName checks a candidate project name against the syntax rule and
// the dependency denylist. The denylist match is case-sensitive, matching
// npm's own case-sensitive package namespace.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return ErrNameWhitespace
	}

	denylist := branding.DependencyDenylist()
	for _, reserved := range denylist {
		if name == reserved {
			return &ReservedNameError{Name: name, Denylist: denylist}
		}
	}
	return nil
}
