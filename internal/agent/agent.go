package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const inboxSize = 64

// Hook runs on the agent's goroutine at startup or on an interval.
type Hook func(ctx context.Context, actx *Context) error

type intervalHook struct {
	period time.Duration
	fn     Hook
}

// Agent is an addressable handler of protocol messages.
type Agent struct {
	name      string
	address   Address
	protocols []*Protocol
	routes    map[string]route
	startup   []Hook
	intervals []intervalHook
	inbox     chan Envelope
}

// New creates an agent whose address is derived from seed, or from name
// when seed is empty.
func New(name, seed string) *Agent {
	if seed == "" {
		seed = name
	}
	return &Agent{
		name:    name,
		address: AddressFromSeed(seed),
		routes:  make(map[string]route),
		inbox:   make(chan Envelope, inboxSize),
	}
}

func (a *Agent) Name() string           { return a.name }
func (a *Agent) Address() Address       { return a.address }
func (a *Agent) Protocols() []*Protocol { return a.protocols }

// Include attaches p. A schema already handled by another included
// protocol is an error.
func (a *Agent) Include(p *Protocol) error {
	if p == nil {
		return errors.New("agent: nil protocol")
	}
	for _, schema := range p.Schemas() {
		if _, dup := a.routes[schema]; dup {
			return fmt.Errorf("agent: %s already handles %s", a.name, schema)
		}
	}
	for schema, r := range p.routes {
		a.routes[schema] = r
	}
	a.protocols = append(a.protocols, p)
	return nil
}

func (a *Agent) OnStartup(fn Hook) {
	a.startup = append(a.startup, fn)
}

// OnInterval runs fn every period. Ticks that arrive while fn is still
// running are dropped.
func (a *Agent) OnInterval(period time.Duration, fn Hook) {
	a.intervals = append(a.intervals, intervalHook{period: period, fn: fn})
}

func (a *Agent) run(ctx context.Context, actx *Context) {
	logger := actx.Logger
	logger.Info("agent starting", "protocols", len(a.protocols))

	for _, fn := range a.startup {
		a.safely(actx, "startup", func() error { return fn(ctx, actx) })
	}

	ticks := make(chan int)
	for i, hook := range a.intervals {
		go tick(ctx, i, hook.period, ticks)
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("agent stopped")
			return
		case env := <-a.inbox:
			a.dispatch(ctx, actx, env)
		case i := <-ticks:
			fn := a.intervals[i].fn
			a.safely(actx, "interval", func() error { return fn(ctx, actx) })
		}
	}
}

func tick(ctx context.Context, i int, period time.Duration, out chan<- int) {
	t := time.NewTicker(period)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			select {
			case out <- i:
			default:
			}
		}
	}
}

func (a *Agent) dispatch(ctx context.Context, actx *Context, env Envelope) {
	r, ok := a.routes[env.Schema]
	if !ok {
		actx.Logger.Warn("no handler for message", "schema", env.Schema, "sender", env.Sender)
		return
	}
	a.safely(actx, env.Schema, func() error { return r.handler(ctx, actx, env) })
}

// safely runs fn, logging its error or panic without stopping the agent.
func (a *Agent) safely(actx *Context, what string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			actx.Logger.Error("handler panicked", "handler", what, "panic", r)
		}
	}()
	if err := fn(); err != nil {
		actx.Logger.Error("handler failed", "handler", what, "err", err)
	}
}

// Context is handed to handlers and hooks.
type Context struct {
	Address Address
	Name    string
	Logger  *slog.Logger
	deliver func(ctx context.Context, env Envelope) error
}

// Send delivers msg to the agent at to.
func (c *Context) Send(ctx context.Context, to Address, msg Message) error {
	env, err := NewEnvelope(c.Address, to, msg)
	if err != nil {
		return err
	}
	return c.deliver(ctx, env)
}
