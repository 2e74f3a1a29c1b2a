package lazy

import "errors"

var (
	ErrZeroStep = errors.New("step must be positive")
	ErrZeroSize = errors.New("size must be positive")
)
