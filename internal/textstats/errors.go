package textstats

import "errors"

// ErrEmptyInput is returned when an entry point receives empty or
// whitespace-only text.
var ErrEmptyInput = errors.New("input text is empty")

// ErrInvalidParameter is returned when a count or ratio argument is out of
// range (topN <= 0, or ratio outside (0, 1]).
var ErrInvalidParameter = errors.New("invalid parameter")
