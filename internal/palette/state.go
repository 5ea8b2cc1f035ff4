package palette

// State identifies one of the interactive element states a palette covers.
type State string

// The fixed set of states. Correction and reporting always walk them in the
// order States returns; the set is never extended at runtime.
const (
	StateDefault  State = "default"
	StateHover    State = "hover"
	StateFocused  State = "focused"
	StateActive   State = "active"
	StateDisabled State = "disabled"
)

// States returns the interactive states in their declared order.
func States() []State {
	return []State{StateDefault, StateHover, StateFocused, StateActive, StateDisabled}
}

// Valid reports whether s is one of the declared states.
func (s State) Valid() bool {
	switch s {
	case StateDefault, StateHover, StateFocused, StateActive, StateDisabled:
		return true
	}
	return false
}

// Description returns the label used when previewing a state as a button.
func (s State) Description() string {
	switch s {
	case StateDefault:
		return "Button Default"
	case StateHover:
		return "Button Hover"
	case StateFocused:
		return "Button Focused"
	case StateActive:
		return "Button Active"
	case StateDisabled:
		return "Button Disabled"
	}
	return string(s)
}
