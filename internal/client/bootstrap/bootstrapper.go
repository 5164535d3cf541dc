package bootstrap

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/odontofast/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Prerequisite is an externally owned startup step. A failing Load is
// logged and still counts as satisfied.
type Prerequisite struct {
	Name string
	Load func(ctx context.Context) error
}

// Consumer receives the gate output. HideLoading is called once all
// prerequisites are satisfied (or on timeout), followed by ShowRoute.
type Consumer interface {
	HideLoading()
	ShowRoute(d Decision)
}

type Option func(*Bootstrapper)

// WithTimeout bounds the wait for prerequisites. Zero waits indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(b *Bootstrapper) { b.timeout = d }
}

// Bootstrapper drives one Gate per process.
type Bootstrapper struct {
	auth    Authenticator
	log     logging.Logger
	timeout time.Duration

	once     sync.Once
	decision Decision
}

func New(auth Authenticator, log logging.Logger, opts ...Option) *Bootstrapper {
	b := &Bootstrapper{auth: auth, log: log}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Run starts auth resolution and every prerequisite concurrently and blocks
// until the gate resolves. The consumer is notified exactly once; later
// calls return the first decision without notifying again.
func (b *Bootstrapper) Run(ctx context.Context, c Consumer, prereqs ...Prerequisite) Decision {
	b.once.Do(func() {
		b.decision = b.run(ctx, c, prereqs)
	})
	return b.decision
}

func (b *Bootstrapper) run(ctx context.Context, c Consumer, prereqs []Prerequisite) Decision {
	names := make([]string, 0, len(prereqs))
	accepted := make([]Prerequisite, 0, len(prereqs))
	for _, p := range prereqs {
		if p.Name == PrereqAuth {
			b.log.Error(ctx, "prerequisite name is reserved, skipping", "name", p.Name)
			continue
		}
		names = append(names, p.Name)
		accepted = append(accepted, p)
	}

	gate := NewGate(b.log, names...)
	if c != nil {
		gate.OnResolved(func(d Decision) {
			c.HideLoading()
			c.ShowRoute(d)
		})
	}

	// no derived context: one failing prerequisite must not cancel the rest
	var g errgroup.Group

	g.Go(func() error {
		gate.SetDecision(ResolveAuth(ctx, b.auth, b.log))
		return nil
	})

	for _, p := range accepted {
		g.Go(func() error {
			defer gate.Satisfy(p.Name)
			if err := load(ctx, p); err != nil {
				b.log.Warn(ctx, "prerequisite failed, continuing", "name", p.Name, "error", err)
				return err
			}
			b.log.Debug(ctx, "prerequisite satisfied", "name", p.Name)
			return nil
		})
	}

	var timeout <-chan time.Time
	if b.timeout > 0 {
		t := time.NewTimer(b.timeout)
		defer t.Stop()
		timeout = t.C
	}

	select {
	case <-gate.Done():
		if err := g.Wait(); err != nil {
			b.log.Info(ctx, "bootstrap finished with failed prerequisites", "error", err)
		}
	case <-timeout:
		b.log.Warn(ctx, "bootstrap timed out", "pending", gate.Pending())
		gate.ForceResolve()
	case <-ctx.Done():
		b.log.Warn(ctx, "bootstrap interrupted", "pending", gate.Pending())
		gate.ForceResolve()
	}

	// a concurrent Satisfy may still be notifying the consumer
	<-gate.Done()

	d, _ := gate.Decision()
	b.log.Info(ctx, "bootstrap resolved", "route", string(d.Route))
	return d
}

func load(ctx context.Context, p Prerequisite) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("prerequisite %s panicked: %v", p.Name, r)
		}
	}()
	if p.Load == nil {
		return nil
	}
	return p.Load(ctx)
}
