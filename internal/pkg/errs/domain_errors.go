package errs

// Error taxonomy shared by the usecase and handler layers.
// Usecase sentinels are marked with exactly one of these so that handlers
// can map an error to a response by category only.
var (
	ErrValidation         = New("validation error")
	ErrNotFound           = New("not found")
	ErrSlotConflict       = New("slot conflict")
	ErrState              = New("illegal state transition")
	ErrExternalDependency = New("external dependency failure")
	ErrForbidden          = New("forbidden")
)

// IsAny reports whether err carries any of the given markers.
func IsAny(err error, markers ...error) bool {
	for _, m := range markers {
		if Is(err, m) {
			return true
		}
	}
	return false
}
