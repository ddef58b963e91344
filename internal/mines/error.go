package mines

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds          = errors.New("coordinate out of bounds")
	ErrUnknownDifficulty    = errors.New("unknown difficulty")
)
