package domain

// NotesStyle is the requested shape of generated notes.
type NotesStyle string

const (
	NotesShort              NotesStyle = "Short"
	NotesDetailed           NotesStyle = "Detailed"
	NotesLastMinuteRevision NotesStyle = "Last-Minute-Revision"
)

var notesStyles = []NotesStyle{NotesShort, NotesDetailed, NotesLastMinuteRevision}

// Older clients spell the revision style differently.
var notesStyleAliases = map[string]NotesStyle{
	"Last Minute Revision": NotesLastMinuteRevision,
	"Last-minute revision": NotesLastMinuteRevision,
}

// ParseNotesStyle validates s against the allowed notes styles.
func ParseNotesStyle(s string) (NotesStyle, error) {
	return parseEnum("notes_style", &s, NotesDetailed, notesStyles, notesStyleAliases)
}

// NotesRequest asks for study notes on a topic.
type NotesRequest struct {
	Topic                  *string    `json:"topic,omitempty" jsonschema:"title=Topic,example=Quantum Mechanics" jsonschema_description:"The specific topic on which notes are to be prepared."`
	NotesStyle             NotesStyle `json:"notes_style,omitempty" jsonschema:"title=Notes Style,enum=Short,enum=Detailed,enum=Last-Minute-Revision,default=Detailed" jsonschema_description:"Short for brief summaries; Detailed for comprehensive coverage; Last-Minute-Revision for key points and quick review."`
	ReferenceMaterial      *string    `json:"reference_material,omitempty" jsonschema:"title=Reference Material,example=Introduction to Quantum Mechanics by David J. Griffiths" jsonschema_description:"Textbooks, articles or lecture notes the notes should be prepared from."`
	AdditionalRequirements *string    `json:"additional_requirements,omitempty" jsonschema:"title=Additional Requirements,example=Include examples of wave function normalization" jsonschema_description:"Subtopics or specific focus areas for the notes."`

	// styleText is the caller's spelling when an alias was accepted.
	styleText string
}

// NewNotesRequest builds a NotesRequest from partial input. Missing fields
// are left absent, or take their default when they are enums.
func NewNotesRequest(in map[string]string) (NotesRequest, error) {
	style, err := parseEnum("notes_style", lookup(in, "notes_style"), NotesDetailed, notesStyles, notesStyleAliases)
	if err != nil {
		return NotesRequest{}, err
	}
	req := NotesRequest{
		Topic:                  lookup(in, "topic"),
		NotesStyle:             style,
		ReferenceMaterial:      lookup(in, "reference_material"),
		AdditionalRequirements: lookup(in, "additional_requirements"),
	}
	if raw, ok := in["notes_style"]; ok && raw != string(style) {
		req.styleText = raw
	}
	return req, nil
}

// DecodeNotesRequestStrict decodes a JSON body in which every field is mandatory.
func DecodeNotesRequestStrict(data []byte) (NotesRequest, error) {
	in, err := decodeFields(data)
	if err != nil {
		return NotesRequest{}, err
	}
	if err := requireKeys(in, "topic", "notes_style", "reference_material", "additional_requirements"); err != nil {
		return NotesRequest{}, err
	}
	return NewNotesRequest(in)
}

func (r *NotesRequest) UnmarshalJSON(data []byte) error {
	in, err := decodeFields(data)
	if err != nil {
		return err
	}
	req, err := NewNotesRequest(in)
	if err != nil {
		return err
	}
	*r = req
	return nil
}

func (NotesRequest) Schema() string { return "NotesRequest" }

func (NotesRequest) Kind() Kind { return KindNotes }

// styleLabel renders the style as the caller wrote it.
func (r NotesRequest) styleLabel() string {
	if r.styleText != "" {
		return r.styleText
	}
	return string(r.NotesStyle)
}

func (r NotesRequest) Fields() []Field {
	return []Field{
		optionalField("Topic", r.Topic),
		requiredField("Notes Style", r.styleLabel()),
		optionalField("Reference Material", r.ReferenceMaterial),
		optionalField("Additional Requirements", r.AdditionalRequirements),
	}
}
