package mines

import "errors"

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidParams     = errors.New("invalid game params")
	ErrNoHint            = errors.New("no tile left to hint")
)
