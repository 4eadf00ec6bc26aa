package errors

type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Field + ": " + e.Message
}

// ErrInvalidState reports a caller programming error, such as reading
// closing balances before they have been computed. It is never used for
// bad data; missing market data degrades values instead.
type ErrInvalidState struct {
	Op      string
	Message string
}

func (e *ErrInvalidState) Error() string {
	return e.Op + ": " + e.Message
}
