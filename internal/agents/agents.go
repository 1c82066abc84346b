// Package agents hosts the study agents that answer requests over the
// agent runtime.
package agents

import (
	"context"
	"fmt"

	"studymate-agent/internal/agent"
	"studymate-agent/internal/domain"
)

const (
	NotesAgentName          = "notes_agent"
	QuestionsAgentName      = "questions_agent"
	CareerGuidanceAgentName = "career_guidance_agent"

	protocolVersion = "0.1.0"
)

// Generator turns a study request into the model's reply.
type Generator interface {
	Generate(ctx context.Context, req domain.Request) (string, error)
}

type studyMessage interface {
	agent.Message
	domain.Request
}

func NotesProtocol(gen Generator) *agent.Protocol {
	p := agent.NewProtocol("NotesAgentProtocol", protocolVersion)
	agent.On(p, answer[domain.NotesRequest](gen))
	return p
}

func QuestionsProtocol(gen Generator) *agent.Protocol {
	p := agent.NewProtocol("QuestionsAgentProtocol", protocolVersion)
	agent.On(p, answer[domain.QuestionsRequest](gen))
	return p
}

func CareerGuidanceProtocol(gen Generator) *agent.Protocol {
	p := agent.NewProtocol("CareerGuidanceAgentProtocol", protocolVersion)
	agent.On(p, answer[domain.CareerGuidanceRequest](gen))
	return p
}

// answer relays the request and sends one FINAL reply to the sender. On
// failure nothing is sent; the runtime logs the returned error.
func answer[T studyMessage](gen Generator) func(context.Context, *agent.Context, agent.Address, T) error {
	return func(ctx context.Context, actx *agent.Context, sender agent.Address, msg T) error {
		actx.Logger.Info("received request", "sender", sender, "schema", msg.Schema(), "payload", msg)
		text, err := gen.Generate(ctx, msg)
		if err != nil {
			return fmt.Errorf("agents: answer %s: %w", msg.Schema(), err)
		}
		return actx.Send(ctx, sender, domain.AgentResponse{Message: text, Type: domain.ResponseFinal})
	}
}

// New builds the three study agents. Each agent's address is derived from
// its name.
func New(gen Generator) ([]*agent.Agent, error) {
	specs := []struct {
		name     string
		protocol *agent.Protocol
	}{
		{NotesAgentName, NotesProtocol(gen)},
		{QuestionsAgentName, QuestionsProtocol(gen)},
		{CareerGuidanceAgentName, CareerGuidanceProtocol(gen)},
	}

	out := make([]*agent.Agent, 0, len(specs))
	for _, s := range specs {
		a := agent.New(s.name, "")
		if err := a.Include(s.protocol); err != nil {
			return nil, err
		}
		a.OnStartup(announce(a))
		out = append(out, a)
	}
	return out, nil
}

func announce(a *agent.Agent) agent.Hook {
	return func(_ context.Context, actx *agent.Context) error {
		actx.Logger.Info("agent address", "address", actx.Address)
		for _, p := range a.Protocols() {
			m, err := p.Manifest()
			if err != nil {
				return err
			}
			actx.Logger.Info("protocol manifest", "protocol", m.Name, "version", m.Version, "digest", m.Digest)
		}
		return nil
	}
}
