package employee

import "errors"

// ErrInvalidInput marks validation failures on construction, mutation, and
// pay calculation. Match with errors.Is.
var ErrInvalidInput = errors.New("invalid input")
