package fhe

import "context"

// Program chains Eval calls against one engine. After the first failure
// every further step is skipped and returns the zero handle; Err reports
// that failure.
type Program struct {
	ctx     context.Context
	engine  Engine
	err     error
	touched []Handle
}

func NewProgram(ctx context.Context, engine Engine) *Program {
	return &Program{ctx: ctx, engine: engine}
}

func (p *Program) Eval(op Op, args ...Arg) Handle {
	if p.err != nil {
		return Handle{}
	}
	h, err := p.engine.Eval(p.ctx, op, args...)
	if err != nil {
		p.err = err
		return Handle{}
	}
	p.touched = append(p.touched, h)
	return h
}

// Const encrypts a public constant.
func (p *Program) Const(v uint64, t Type) Handle {
	if p.err != nil {
		return Handle{}
	}
	h, err := p.engine.TrivialEncrypt(p.ctx, v, t)
	if err != nil {
		p.err = err
		return Handle{}
	}
	p.touched = append(p.touched, h)
	return h
}

// Select picks a if cond else b.
func (p *Program) Select(cond, a, b Handle) Handle {
	return p.Eval(OpSelect, H(cond), H(a), H(b))
}

func (p *Program) Add(a, b Handle) Handle { return p.Eval(OpAdd, H(a), H(b)) }

func (p *Program) Lt(a Handle, v uint64) Handle { return p.Eval(OpLt, H(a), S(v)) }

func (p *Program) Cast(a Handle, t Type) Handle { return p.Eval(OpCast, H(a), To(t)) }

// Produced lists every handle the program created, in order.
func (p *Program) Produced() []Handle { return p.touched }

func (p *Program) Err() error { return p.err }
