package domain

import (
	"fmt"
	"strings"
)

const (
	reasonRequired  = "field required"
	reasonNotString = "must be a string"
)

// ValidationError reports a request field that violates its schema.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
	Reason  string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Allowed) > 0 {
		quoted := make([]string, len(e.Allowed))
		for i, a := range e.Allowed {
			quoted[i] = fmt.Sprintf("%q", a)
		}
		return fmt.Sprintf("domain: %s: value %q is not one of %s", e.Field, e.Value, strings.Join(quoted, ", "))
	}
	if e.Field == "" {
		return "domain: " + e.Reason
	}
	return fmt.Sprintf("domain: %s: %s", e.Field, e.Reason)
}
