package project

import "fmt"

// Kind identifies the flavor of project the user asked for.
type Kind int

const (
	// KindFrontendWeb is a browser-facing web application.
	KindFrontendWeb Kind = iota

	// KindBackendService is a server-side service. Accepted by the prompt
	// layer but not yet supported by the bootstrap flow.
	KindBackendService
)

// String returns the human-readable label shown in prompts and diagnostics.
func (k Kind) String() string {
	switch k {
	case KindFrontendWeb:
		return "frontend web app"
	case KindBackendService:
		return "backend service"
	default:
		return fmt.Sprintf("unknown kind (%d)", int(k))
	}
}

// Kinds lists the selectable project kinds in prompt order.
func Kinds() []Kind {
	return []Kind{KindFrontendWeb, KindBackendService}
}

// Request is a validated project request. Construct via NewRequest only;
// a zero Request has not passed name validation.
type Request struct {
	Name string
	Kind Kind
}

// NewRequest validates the candidate name and returns an immutable Request.
// Validation performs no filesystem access and has no side effects.
func NewRequest(name string, kind Kind) (Request, error) {
	if err := ValidateName(name); err != nil {
		return Request{}, err
	}
	return Request{Name: name, Kind: kind}, nil
}

// TargetDirectory is the filesystem location being initialized.
type TargetDirectory struct {
	// AbsolutePath is the resolved project root.
	AbsolutePath string

	// Preexisting is true when the directory already existed (and passed
	// the safety check) rather than being created fresh.
	Preexisting bool
}
