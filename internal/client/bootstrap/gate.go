package bootstrap

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/odontofast/internal/logging"
)

// PrereqAuth is the prerequisite satisfied by SetDecision.
const PrereqAuth = "auth"

// Gate waits for every registered prerequisite before resolving.
// It is safe for concurrent use.
type Gate struct {
	log logging.Logger

	mu sync.Mutex
	// pending counts outstanding registrations per name.
	pending   map[string]int
	decision  *Decision
	resolved  bool
	callbacks []func(Decision)
	done      chan struct{}
}

// NewGate registers PrereqAuth plus the given external prerequisites. A name
// listed twice must be satisfied twice. PrereqAuth is reserved and ignored
// in external.
func NewGate(log logging.Logger, external ...string) *Gate {
	g := &Gate{
		log:     log,
		pending: map[string]int{PrereqAuth: 1},
		done:    make(chan struct{}),
	}
	for _, name := range external {
		if name == PrereqAuth {
			log.Warn(context.Background(), "auth prerequisite is reserved, ignoring external registration")
			continue
		}
		if _, dup := g.pending[name]; dup {
			log.Warn(context.Background(), "prerequisite registered more than once", "name", name)
		}
		g.pending[name]++
	}
	return g
}

// Satisfy marks one registration of an external prerequisite as done.
// Calls beyond the registered count and unknown names are ignored; the
// auth prerequisite can only be satisfied through SetDecision.
func (g *Gate) Satisfy(name string) {
	g.mu.Lock()
	if name == PrereqAuth {
		g.mu.Unlock()
		g.log.Warn(context.Background(), "auth prerequisite needs a decision, ignoring Satisfy")
		return
	}
	n, ok := g.pending[name]
	if !ok {
		g.mu.Unlock()
		g.log.Warn(context.Background(), "unknown prerequisite", "name", name)
		return
	}
	if n > 0 {
		g.pending[name] = n - 1
	}
	fire := g.tryResolveLocked()
	g.mu.Unlock()

	fire()
}

// SetDecision records the routing decision and satisfies PrereqAuth.
// Only the first decision counts.
func (g *Gate) SetDecision(d Decision) {
	g.mu.Lock()
	if g.decision == nil {
		g.decision = &d
	}
	g.pending[PrereqAuth] = 0
	fire := g.tryResolveLocked()
	g.mu.Unlock()

	fire()
}

// ForceResolve resolves the gate even though some prerequisites are still
// pending. The decision already recorded is kept; without one the gate
// resolves unauthenticated. No-op once resolved.
func (g *Gate) ForceResolve() {
	g.mu.Lock()
	if g.resolved {
		g.mu.Unlock()
		return
	}
	if g.decision == nil {
		d := Unauthenticated()
		g.decision = &d
	}
	fire := g.resolveLocked()
	g.mu.Unlock()

	fire()
}

// OnResolved registers fn to run once with the decision. If the gate has
// already resolved, fn runs immediately on the calling goroutine.
func (g *Gate) OnResolved(fn func(Decision)) {
	g.mu.Lock()
	if g.resolved {
		d := *g.decision
		g.mu.Unlock()
		fn(d)
		return
	}
	g.callbacks = append(g.callbacks, fn)
	g.mu.Unlock()
}

// Ready reports whether every prerequisite is satisfied.
func (g *Gate) Ready() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.allSatisfiedLocked()
}

// Pending lists the prerequisites not yet satisfied, sorted.
func (g *Gate) Pending() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out []string
	for name, n := range g.pending {
		if n > 0 {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

// Done is closed once the gate has resolved and OnResolved callbacks ran.
func (g *Gate) Done() <-chan struct{} {
	return g.done
}

// Decision returns the emitted decision; ok is false while pending.
func (g *Gate) Decision() (Decision, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.resolved {
		return Decision{}, false
	}
	return *g.decision, true
}

func (g *Gate) allSatisfiedLocked() bool {
	for _, n := range g.pending {
		if n > 0 {
			return false
		}
	}
	return true
}

// tryResolveLocked returns the callbacks to run after unlocking.
func (g *Gate) tryResolveLocked() func() {
	if g.resolved || g.decision == nil || !g.allSatisfiedLocked() {
		return func() {}
	}
	return g.resolveLocked()
}

// Done is closed only after the callbacks have returned, so a receiver on
// Done observes their effects.
func (g *Gate) resolveLocked() func() {
	g.resolved = true
	d := *g.decision
	callbacks := g.callbacks
	g.callbacks = nil
	return func() {
		for _, fn := range callbacks {
			fn(d)
		}
		close(g.done)
	}
}
