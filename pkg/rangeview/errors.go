package rangeview

import "github.com/pkg/errors"

// ErrInvalidDivisor is returned when a range is divided into less than one part.
var ErrInvalidDivisor = errors.New("divisor must be greater than zero")
