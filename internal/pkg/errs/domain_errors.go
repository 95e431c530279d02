package errs

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Table errors
	ErrTableNotFound = New("table not found")

	// Request errors
	ErrMissingRequiredFields = New("missing required fields")
	ErrInvalidRequestFormat  = New("invalid request format")
)
