package file

// Document is the content of a declaration file.
// It uses "mapstructure" tags to match the YAML keys.
type Document struct {
	Name        string            `json:"name" mapstructure:"name"`
	Transitions []TransitionEntry `json:"transitions" mapstructure:"transitions"`

	// State accepts a single entry, a list (first wins) or a bare field name.
	State []StateEntry `json:"state" mapstructure:"state"`
}

// TransitionEntry names a handler method and, optionally, the state it handles.
// A bare string is read as the method name.
type TransitionEntry struct {
	Method string `json:"method" mapstructure:"method"`
	State  string `json:"state,omitempty" mapstructure:"state"`
}

// StateEntry names the current-state field.
type StateEntry struct {
	Field string `json:"field" mapstructure:"field"`
}
