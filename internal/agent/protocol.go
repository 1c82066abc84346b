package agent

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
)

type handlerFunc func(ctx context.Context, actx *Context, env Envelope) error

type route struct {
	model   Message
	handler handlerFunc
}

// Protocol is a named, versioned set of message handlers.
type Protocol struct {
	name    string
	version string
	routes  map[string]route
}

func NewProtocol(name, version string) *Protocol {
	return &Protocol{name: name, version: version, routes: make(map[string]route)}
}

func (p *Protocol) Name() string    { return p.name }
func (p *Protocol) Version() string { return p.version }

// Schemas returns the handled message schemas in sorted order.
func (p *Protocol) Schemas() []string {
	schemas := lo.Keys(p.routes)
	sort.Strings(schemas)
	return schemas
}

// On registers fn for messages of type T. The payload is decoded with
// encoding/json, so T's own UnmarshalJSON runs before fn. It panics if a
// handler for T's schema is already registered.
func On[T Message](p *Protocol, fn func(ctx context.Context, actx *Context, sender Address, msg T) error) {
	var zero T
	schema := zero.Schema()
	if _, dup := p.routes[schema]; dup {
		panic(fmt.Sprintf("agent: protocol %s already handles %s", p.name, schema))
	}
	p.routes[schema] = route{
		model: zero,
		handler: func(ctx context.Context, actx *Context, env Envelope) error {
			var msg T
			if err := json.Unmarshal(env.Payload, &msg); err != nil {
				return fmt.Errorf("agent: decode %s: %w", schema, err)
			}
			return fn(ctx, actx, env.Sender, msg)
		},
	}
}

// ModelSchema pairs a message schema name with its JSON schema.
type ModelSchema struct {
	Schema     string             `json:"schema"`
	Definition *jsonschema.Schema `json:"definition"`
}

// Manifest describes a protocol to peers.
type Manifest struct {
	Name    string        `json:"name"`
	Version string        `json:"version"`
	Digest  string        `json:"digest"`
	Models  []ModelSchema `json:"models"`
}

// Manifest reflects the JSON schema of every handled model and digests
// the result.
func (p *Protocol) Manifest() (Manifest, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	models := lo.Map(p.Schemas(), func(schema string, _ int) ModelSchema {
		return ModelSchema{Schema: schema, Definition: reflector.Reflect(p.routes[schema].model)}
	})

	m := Manifest{Name: p.name, Version: p.version, Models: models}
	raw, err := json.Marshal(m)
	if err != nil {
		return Manifest{}, fmt.Errorf("agent: encode manifest %s: %w", p.name, err)
	}
	sum := sha256.Sum256(raw)
	m.Digest = "proto:" + hex.EncodeToString(sum[:])
	return m, nil
}
