package fhe

import "fmt"

// operand is a resolved Arg: handles carry their decrypted value inside the
// engine, scalars and cast targets carry themselves.
type operand struct {
	kind  argKind
	typ   Type
	value uint64
}

func boolValue(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// apply evaluates op over plaintext operands. It is only ever called inside
// the engine, on values opened from sealed ciphertexts.
func apply(op Op, in []operand) (uint64, Type, error) {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpLt, OpLe, OpGt, OpGe:
		a, b, err := binaryOperands(op, in)
		if err != nil {
			return 0, 0, err
		}
		if a.typ == Bool {
			return 0, 0, fmt.Errorf("%w: %s on %s", ErrInvalidOperands, op, a.typ)
		}
		return arithmetic(op, a, b)

	case OpEq, OpAnd, OpOr:
		a, b, err := binaryOperands(op, in)
		if err != nil {
			return 0, 0, err
		}
		switch op {
		case OpEq:
			return boolValue(a.value == b.value), Bool, nil
		case OpAnd:
			return a.value & b.value, a.typ, nil
		default:
			return a.value | b.value, a.typ, nil
		}

	case OpNot:
		if len(in) != 1 || in[0].kind != argHandle {
			return 0, 0, fmt.Errorf("%w: not takes one ciphertext", ErrInvalidOperands)
		}
		return ^in[0].value & in[0].typ.Max(), in[0].typ, nil

	case OpSelect:
		if len(in) != 3 || in[0].kind != argHandle || in[1].kind != argHandle || in[2].kind != argHandle {
			return 0, 0, fmt.Errorf("%w: select takes three ciphertexts", ErrInvalidOperands)
		}
		if in[0].typ != Bool {
			return 0, 0, fmt.Errorf("%w: select condition is %s", ErrInvalidOperands, in[0].typ)
		}
		if in[1].typ != in[2].typ {
			return 0, 0, fmt.Errorf("%w: select branches %s and %s", ErrTypeMismatch, in[1].typ, in[2].typ)
		}
		if in[0].value == 1 {
			return in[1].value, in[1].typ, nil
		}
		return in[2].value, in[2].typ, nil

	case OpCast:
		if len(in) != 2 || in[0].kind != argHandle || in[1].kind != argType {
			return 0, 0, fmt.Errorf("%w: cast takes a ciphertext and a target type", ErrInvalidOperands)
		}
		target := Type(in[1].value)
		if !target.Valid() {
			return 0, 0, fmt.Errorf("%w: cast to %s", ErrInvalidOperands, target)
		}
		if target == Bool {
			return boolValue(in[0].value != 0), Bool, nil
		}
		return in[0].value & target.Max(), target, nil
	}

	return 0, 0, fmt.Errorf("%w: unknown operator %s", ErrInvalidOperands, op)
}

func arithmetic(op Op, a, b operand) (uint64, Type, error) {
	mask := a.typ.Max()

	switch op {
	case OpAdd:
		return (a.value + b.value) & mask, a.typ, nil
	case OpSub:
		return (a.value - b.value) & mask, a.typ, nil
	case OpMul:
		return (a.value * b.value) & mask, a.typ, nil
	case OpDiv:
		if b.kind != argScalar {
			return 0, 0, fmt.Errorf("%w: divisor must be plaintext", ErrInvalidOperands)
		}
		if b.value == 0 {
			return 0, 0, ErrDivisionByZero
		}
		return a.value / b.value, a.typ, nil
	case OpLt:
		return boolValue(a.value < b.value), Bool, nil
	case OpLe:
		return boolValue(a.value <= b.value), Bool, nil
	case OpGt:
		return boolValue(a.value > b.value), Bool, nil
	default:
		return boolValue(a.value >= b.value), Bool, nil
	}
}

// binaryOperands checks the ciphertext-first, same-type rule shared by every
// two-operand operator. A scalar right operand takes the left operand's type
// and must fit in it.
func binaryOperands(op Op, in []operand) (operand, operand, error) {
	if len(in) != 2 || in[0].kind != argHandle {
		return operand{}, operand{}, fmt.Errorf("%w: %s takes a ciphertext and one more operand", ErrInvalidOperands, op)
	}
	a, b := in[0], in[1]

	switch b.kind {
	case argHandle:
		if a.typ != b.typ {
			return operand{}, operand{}, fmt.Errorf("%w: %s on %s and %s", ErrTypeMismatch, op, a.typ, b.typ)
		}
	case argScalar:
		if b.value > a.typ.Max() {
			return operand{}, operand{}, fmt.Errorf("%w: scalar %d does not fit %s", ErrInvalidOperands, b.value, a.typ)
		}
		b.typ = a.typ
	default:
		return operand{}, operand{}, fmt.Errorf("%w: %s right operand", ErrInvalidOperands, op)
	}

	return a, b, nil
}
