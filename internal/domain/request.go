package domain

// NotApplicable is written into prompts in place of an absent free-text field.
const NotApplicable = "NA"

// Kind identifies one of the study capabilities.
type Kind string

const (
	KindNotes          Kind = "notes"
	KindQuestions      Kind = "questions"
	KindCareerGuidance Kind = "career_guidance"
)

// Field is a single labeled request value, in prompt order.
// Present is false when the caller never supplied the value.
type Field struct {
	Label   string
	Value   string
	Present bool
}

// Request is a validated study request that can be turned into a prompt.
type Request interface {
	Kind() Kind
	Fields() []Field
}

func optionalField(label string, v *string) Field {
	if v == nil {
		return Field{Label: label}
	}
	return Field{Label: label, Value: *v, Present: true}
}

func requiredField(label, v string) Field {
	return Field{Label: label, Value: v, Present: true}
}

// Text returns a pointer to s, for populating optional request fields.
func Text(s string) *string { return &s }
