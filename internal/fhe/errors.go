package fhe

import "errors"

var (
	ErrUnsupportedWidth = errors.New("unsupported domain width")
	ErrInvalidOperands  = errors.New("invalid operands")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrTypeMismatch     = errors.New("operand types differ")
	ErrCorruptValue     = errors.New("stored ciphertext is corrupt")
)
