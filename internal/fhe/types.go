package fhe

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Handle is an opaque 32-byte reference to an encrypted value. Byte 30
// carries the value type and byte 31 the handle version; the rest is a digest.
type Handle = common.Hash

// HandleVersion is stamped into byte 31 of every handle this engine issues.
const HandleVersion byte = 0

// Type is the plaintext domain of a ciphertext.
type Type uint8

const (
	Bool   Type = 0
	Uint8  Type = 2
	Uint16 Type = 3
)

func (t Type) Valid() bool {
	switch t {
	case Bool, Uint8, Uint16:
		return true
	}
	return false
}

// Bits is the domain width.
func (t Type) Bits() uint8 {
	switch t {
	case Bool:
		return 1
	case Uint8:
		return 8
	case Uint16:
		return 16
	}
	return 0
}

// Max is the largest plaintext value representable by t.
func (t Type) Max() uint64 {
	return 1<<t.Bits() - 1
}

func (t Type) String() string {
	switch t {
	case Bool:
		return "ebool"
	case Uint8:
		return "euint8"
	case Uint16:
		return "euint16"
	}
	return fmt.Sprintf("unknown(%d)", uint8(t))
}

// TypeForBits maps an input domain width to a ciphertext type.
func TypeForBits(bits uint8) (Type, error) {
	switch bits {
	case 1:
		return Bool, nil
	case 8:
		return Uint8, nil
	case 16:
		return Uint16, nil
	}
	return 0, fmt.Errorf("%w: %d bits", ErrUnsupportedWidth, bits)
}

// TypeOf reads the type byte of h.
func TypeOf(h Handle) Type {
	return Type(h[30])
}

func stamp(digest common.Hash, t Type) Handle {
	digest[30] = byte(t)
	digest[31] = HandleVersion
	return digest
}

// Op is a homomorphic operator.
type Op uint8

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
	OpLt
	OpLe
	OpGt
	OpGe
	OpEq
	OpAnd
	OpOr
	OpNot
	OpSelect
	OpCast
)

var opNames = map[Op]string{
	OpAdd: "add", OpSub: "sub", OpMul: "mul", OpDiv: "div",
	OpLt: "lt", OpLe: "le", OpGt: "gt", OpGe: "ge", OpEq: "eq",
	OpAnd: "and", OpOr: "or", OpNot: "not", OpSelect: "select", OpCast: "cast",
}

func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

type argKind uint8

const (
	argHandle argKind = iota + 1
	argScalar
	argType
)

// Arg is one operand of Eval: a handle, a plaintext scalar, or a cast target.
type Arg struct {
	kind   argKind
	handle Handle
	scalar uint64
}

// H wraps a ciphertext operand.
func H(h Handle) Arg { return Arg{kind: argHandle, handle: h} }

// S wraps a plaintext scalar operand.
func S(v uint64) Arg { return Arg{kind: argScalar, scalar: v} }

// To names the target type of OpCast.
func To(t Type) Arg { return Arg{kind: argType, scalar: uint64(t)} }

// Ciphertext is the at-rest form of one value.
type Ciphertext struct {
	Handle Handle
	Type   Type
	Sealed []byte
}

// Grant gives Account the right to have Handle decrypted for it.
type Grant struct {
	Handle  Handle
	Account common.Address
}

// InputBatch is the result of encrypting client inputs: one handle per value
// and a single proof covering all of them.
type InputBatch struct {
	Handles []Handle
	Proof   []byte
}
