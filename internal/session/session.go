// Package session ties in-flight client work to the identity that started
// it. When the wallet account or chain changes, everything started under the
// old identity is cancelled and its results are refused.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrStaleResult = errors.New("result belongs to a previous identity")
	ErrNoIdentity  = errors.New("no identity bound")
)

// Identity is the (chain, account) pair a session acts for.
type Identity struct {
	ChainID uint64
	Account common.Address
}

func (id Identity) String() string {
	return fmt.Sprintf("%s@%d", id.Account.Hex(), id.ChainID)
}

// Ticket identifies the identity epoch a piece of work was started in.
type Ticket struct {
	Identity Identity
	epoch    uint64
}

// Guard tracks the current identity. Every Switch starts a new epoch and
// cancels the context of the previous one.
type Guard struct {
	mu       sync.Mutex
	parent   context.Context
	identity Identity
	bound    bool
	epoch    uint64
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewGuard returns a guard with no identity. Contexts it hands out derive
// from parent.
func NewGuard(parent context.Context) *Guard {
	ctx, cancel := context.WithCancel(parent)
	cancel()
	return &Guard{parent: parent, ctx: ctx, cancel: cancel}
}

// Switch binds id and cancels work started under any previous identity.
// Switching to the identity already bound is a no-op.
func (g *Guard) Switch(id Identity) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.bound && g.identity == id {
		return
	}
	g.cancel()
	g.identity = id
	g.bound = true
	g.epoch++
	g.ctx, g.cancel = context.WithCancel(g.parent)
}

// Close cancels outstanding work and unbinds the identity.
func (g *Guard) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.cancel()
	g.bound = false
	g.epoch++
}

func (g *Guard) Identity() (Identity, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.identity, g.bound
}

// Begin returns a context for new work, cancelled when ctx is done or the
// identity changes, and a ticket to check the result against.
func (g *Guard) Begin(ctx context.Context) (context.Context, context.CancelFunc, Ticket, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.bound {
		return nil, nil, Ticket{}, ErrNoIdentity
	}

	work, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(g.ctx, cancel)
	return work, func() { stop(); cancel() }, Ticket{Identity: g.identity, epoch: g.epoch}, nil
}

// Apply refuses a result produced under an epoch that is no longer current.
func (g *Guard) Apply(t Ticket) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.bound || t.epoch != g.epoch {
		return fmt.Errorf("%w: started as %s", ErrStaleResult, t.Identity)
	}
	return nil
}

// Run executes fn under g and discards its result if the identity changed
// while it ran.
func Run[T any](ctx context.Context, g *Guard, fn func(ctx context.Context, id Identity) (T, error)) (T, error) {
	var zero T

	work, cancel, ticket, err := g.Begin(ctx)
	if err != nil {
		return zero, err
	}
	defer cancel()

	out, err := fn(work, ticket.Identity)
	if applyErr := g.Apply(ticket); applyErr != nil {
		return zero, applyErr
	}
	if err != nil {
		return zero, err
	}
	return out, nil
}
