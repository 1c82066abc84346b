package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrUnknownAddress is returned when no hosted agent has the target address.
var ErrUnknownAddress = errors.New("agent: unknown address")

// Bureau hosts agents in one process and routes envelopes between them.
type Bureau struct {
	mu      sync.RWMutex
	agents  map[Address]*Agent
	order   []*Agent
	logger  *slog.Logger
	running bool
}

func NewBureau(logger *slog.Logger) *Bureau {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bureau{agents: make(map[Address]*Agent), logger: logger}
}

// Add registers a. It must be called before Run.
func (b *Bureau) Add(a *Agent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.running {
		return errors.New("agent: bureau already running")
	}
	if _, dup := b.agents[a.address]; dup {
		return fmt.Errorf("agent: address %s already hosted", a.address)
	}
	b.agents[a.address] = a
	b.order = append(b.order, a)
	return nil
}

// Deliver queues env in the target agent's inbox, blocking while the
// inbox is full.
func (b *Bureau) Deliver(ctx context.Context, env Envelope) error {
	b.mu.RLock()
	target, ok := b.agents[env.Target]
	b.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAddress, env.Target)
	}
	select {
	case target.inbox <- env:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run starts every agent and blocks until ctx is cancelled and all agents
// have returned.
func (b *Bureau) Run(ctx context.Context) error {
	b.mu.Lock()
	if b.running {
		b.mu.Unlock()
		return errors.New("agent: bureau already running")
	}
	b.running = true
	agents := append([]*Agent(nil), b.order...)
	b.mu.Unlock()

	var wg sync.WaitGroup
	for _, a := range agents {
		actx := &Context{
			Address: a.address,
			Name:    a.name,
			Logger:  b.logger.With("agent", a.name, "address", string(a.address)),
			deliver: b.Deliver,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.run(ctx, actx)
		}()
	}
	b.logger.Info("bureau running", "agents", len(agents))
	wg.Wait()
	return nil
}
