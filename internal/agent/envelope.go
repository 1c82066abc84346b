package agent

import (
	"crypto/sha256"
	"encoding/base32"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const addressPrefix = "agent1"

// Address identifies an agent inside a bureau.
type Address string

var addressEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// AddressFromSeed derives a stable address from seed.
func AddressFromSeed(seed string) Address {
	sum := sha256.Sum256([]byte(seed))
	return Address(addressPrefix + strings.ToLower(addressEncoding.EncodeToString(sum[:])))
}

// Message is any payload an agent can send or handle.
type Message interface {
	Schema() string
}

// Envelope is the routed unit of delivery.
type Envelope struct {
	ID      uuid.UUID       `json:"id"`
	Sender  Address         `json:"sender"`
	Target  Address         `json:"target"`
	Schema  string          `json:"schema"`
	Payload json.RawMessage `json:"payload"`
	SentAt  time.Time       `json:"sent_at"`
}

// NewEnvelope encodes msg for delivery from sender to target.
func NewEnvelope(sender, target Address, msg Message) (Envelope, error) {
	if msg == nil {
		return Envelope{}, fmt.Errorf("agent: nil message")
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return Envelope{}, fmt.Errorf("agent: encode %s: %w", msg.Schema(), err)
	}
	return Envelope{
		ID:      uuid.New(),
		Sender:  sender,
		Target:  target,
		Schema:  msg.Schema(),
		Payload: payload,
		SentAt:  time.Now().UTC(),
	}, nil
}
