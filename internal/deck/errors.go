package deck

import "errors"

var (
	ErrInsufficientCards = errors.New("not enough cards in deck")
	ErrUnknownVariant    = errors.New("unknown deck variant")
)
