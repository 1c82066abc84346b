// Package harness drives the study agents with canned requests, one per
// tick, and logs their replies.
package harness

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"

	"studymate-agent/internal/agent"
	"studymate-agent/internal/agents"
	"studymate-agent/internal/domain"
)

const AgentName = "test_agent"

// Target is one scripted request.
type Target struct {
	Name    string
	Address agent.Address
	Request agent.Message
}

// Sender delivers a message to an address. *agent.Context satisfies it.
type Sender interface {
	Send(ctx context.Context, to agent.Address, msg agent.Message) error
}

// Driver walks its targets in order. It is not safe for concurrent use;
// the harness agent only touches it from its own goroutine.
type Driver struct {
	targets []Target
	cursor  int
}

func NewDriver(targets []Target) *Driver {
	return &Driver{targets: targets}
}

// Tick sends the request at the cursor and advances. Once every target has
// been sent it reports ok == false and does nothing. A failed send leaves
// the cursor in place so the next tick retries.
func (d *Driver) Tick(ctx context.Context, s Sender) (Target, bool, error) {
	if d.cursor >= len(d.targets) {
		return Target{}, false, nil
	}
	t := d.targets[d.cursor]
	if err := s.Send(ctx, t.Address, t.Request); err != nil {
		return t, false, fmt.Errorf("harness: send to %s: %w", t.Name, err)
	}
	d.cursor++
	return t, true, nil
}

// Done reports whether every target has been sent.
func (d *Driver) Done() bool { return d.cursor >= len(d.targets) }

// Label names the target whose address is sender, or "" if none matches.
func (d *Driver) Label(sender agent.Address) string {
	t, ok := lo.Find(d.targets, func(t Target) bool { return t.Address == sender })
	if !ok {
		return ""
	}
	return t.Name
}

// DefaultTargets addresses the three study agents with their sample requests.
func DefaultTargets() []Target {
	return []Target{
		{
			Name:    "Notes Agent",
			Address: agent.AddressFromSeed(agents.NotesAgentName),
			Request: domain.NotesRequest{
				Topic:                  domain.Text("Photosynthesis"),
				NotesStyle:             domain.NotesDetailed,
				ReferenceMaterial:      domain.Text("NCERT Textbook of Class Twelve"),
				AdditionalRequirements: domain.Text("Include detailed explanations of the Calvin cycle and the light-dependent reactions"),
			},
		},
		{
			Name:    "Questions Agent",
			Address: agent.AddressFromSeed(agents.QuestionsAgentName),
			Request: domain.QuestionsRequest{
				Topic:                  domain.Text("Data Analysis"),
				WithAnswers:            domain.AnswersYes,
				AdditionalRequirements: domain.Text("Include questions on statistical analysis and machine learning algorithms"),
			},
		},
		{
			Name:    "Career Guidance Agent",
			Address: agent.AddressFromSeed(agents.CareerGuidanceAgentName),
			Request: domain.CareerGuidanceRequest{
				EducationLevel:  domain.EducationCollege,
				DegreeOrClass:   domain.Text("Computer Science"),
				FieldOfInterest: domain.Text("Data Analysis"),
				FutureGoal:      domain.GoalEmployment,
			},
		},
	}
}

// NewAgent returns the harness agent: it ticks d every interval and logs
// every AgentResponse it receives.
func NewAgent(d *Driver, interval time.Duration) (*agent.Agent, error) {
	a := agent.New(AgentName, "")

	p := agent.NewProtocol("TestAgentProtocol", "0.1.0")
	agent.On(p, func(_ context.Context, actx *agent.Context, sender agent.Address, msg domain.AgentResponse) error {
		label := d.Label(sender)
		if label == "" {
			actx.Logger.Warn("response from unknown sender", "sender", sender)
		}
		actx.Logger.Info("received response", "from", label, "type", msg.Type, "message", msg.Message)
		return nil
	})
	if err := a.Include(p); err != nil {
		return nil, err
	}

	a.OnStartup(func(_ context.Context, actx *agent.Context) error {
		actx.Logger.Info("agent address", "address", actx.Address)
		return nil
	})
	a.OnInterval(interval, func(ctx context.Context, actx *agent.Context) error {
		t, sent, err := d.Tick(ctx, actx)
		if err != nil {
			return err
		}
		if sent {
			actx.Logger.Info("sent request", "to", t.Name)
		}
		return nil
	})
	return a, nil
}
