package bootstrap

// State identifies a stage of the bootstrap flow. The flow only ever moves
// forward; the two terminal states are StateDelegated (control handed to the
// delegate) and StateAborted (a failure ended the process).
type State int

const (
	StateShowingIntro State = iota
	StateCollectingAnswers
	StateValidatingInput
	StateInitializing
	StateInstalling
	StateGatingVersion
	StateInvoking
	StateDelegated
	StateAborted
)

var stateNames = map[State]string{
	StateShowingIntro:      "showing-intro",
	StateCollectingAnswers: "collecting-answers",
	StateValidatingInput:   "validating-input",
	StateInitializing:      "initializing",
	StateInstalling:        "installing",
	StateGatingVersion:     "gating-version",
	StateInvoking:          "invoking",
	StateDelegated:         "delegated",
	StateAborted:           "aborted",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether the flow ends in this state.
func (s State) Terminal() bool {
	return s == StateDelegated || s == StateAborted
}
