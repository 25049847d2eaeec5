package errors

// Report is the JSON shape used to hand an error across a process or UI
// boundary.
type Report struct {
	Kind    string         `json:"kind"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ToReport converts the error into its boundary representation.
func (e *Error) ToReport() Report {
	return Report{
		Kind:    e.Kind.String(),
		Message: e.Message,
		Details: e.Details,
	}
}
