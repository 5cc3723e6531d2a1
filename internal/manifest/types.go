package manifest

// Delegate holds the fields of the delegate package's package.json that the
// launcher consumes. Anything else in the manifest belongs to npm and the
// delegate itself.
type Delegate struct {
	Name    string            `json:"name"`
	Version string            `json:"version"`
	Private bool              `json:"private,omitempty"`
	Engines map[string]string `json:"engines,omitempty"`
}

// NodeRange returns the declared Node.js version-range constraint, or the
// empty string when the delegate declares none (in which case any runtime
// is acceptable).
func (d *Delegate) NodeRange() string {
	if d.Engines == nil {
		return ""
	}
	return d.Engines["node"]
}
