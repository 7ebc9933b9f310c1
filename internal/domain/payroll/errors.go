package payroll

import "errors"

// ErrMissingHours reports an hourly employee absent from the period-hours
// map handed to a run.
var ErrMissingHours = errors.New("missing period hours for hourly employee")
