package domain

// ResponseType classifies an agent reply.
type ResponseType string

// ResponseFinal marks a complete answer; the agents never stream.
const ResponseFinal ResponseType = "FINAL"

// AgentResponse is the reply a study agent sends back to the requester.
type AgentResponse struct {
	Message string       `json:"message" jsonschema:"title=Message"`
	Type    ResponseType `json:"type" jsonschema:"title=Type,enum=FINAL"`
}

func (AgentResponse) Schema() string { return "AgentResponse" }
