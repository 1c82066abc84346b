package domain

// WithAnswers selects whether practice questions come with answers.
type WithAnswers string

const (
	AnswersYes WithAnswers = "Yes"
	AnswersNo  WithAnswers = "No"
)

var withAnswersValues = []WithAnswers{AnswersYes, AnswersNo}

// QuestionsRequest asks for practice questions on a topic.
type QuestionsRequest struct {
	Topic                  *string     `json:"topic,omitempty" jsonschema:"title=Topic,example=Algebra" jsonschema_description:"The topic for which practice questions are requested."`
	WithAnswers            WithAnswers `json:"with_answers,omitempty" jsonschema:"title=With Answers,enum=Yes,enum=No,default=Yes" jsonschema_description:"Yes to include answers with every question; No for questions only."`
	AdditionalRequirements *string     `json:"additional_requirements,omitempty" jsonschema:"title=Additional Requirements,example=Include questions on advanced topics" jsonschema_description:"Difficulty level or number of questions or other preferences."`
}

// NewQuestionsRequest builds a QuestionsRequest from partial input.
func NewQuestionsRequest(in map[string]string) (QuestionsRequest, error) {
	answers, err := parseEnum("with_answers", lookup(in, "with_answers"), AnswersYes, withAnswersValues, nil)
	if err != nil {
		return QuestionsRequest{}, err
	}
	return QuestionsRequest{
		Topic:                  lookup(in, "topic"),
		WithAnswers:            answers,
		AdditionalRequirements: lookup(in, "additional_requirements"),
	}, nil
}

// DecodeQuestionsRequestStrict decodes a JSON body in which every field is mandatory.
func DecodeQuestionsRequestStrict(data []byte) (QuestionsRequest, error) {
	in, err := decodeFields(data)
	if err != nil {
		return QuestionsRequest{}, err
	}
	if err := requireKeys(in, "topic", "with_answers", "additional_requirements"); err != nil {
		return QuestionsRequest{}, err
	}
	return NewQuestionsRequest(in)
}

func (r *QuestionsRequest) UnmarshalJSON(data []byte) error {
	in, err := decodeFields(data)
	if err != nil {
		return err
	}
	req, err := NewQuestionsRequest(in)
	if err != nil {
		return err
	}
	*r = req
	return nil
}

func (QuestionsRequest) Schema() string { return "QuestionsRequest" }

func (QuestionsRequest) Kind() Kind { return KindQuestions }

func (r QuestionsRequest) Fields() []Field {
	return []Field{
		optionalField("Topic", r.Topic),
		requiredField("With Answers", string(r.WithAnswers)),
		optionalField("Additional Requirements", r.AdditionalRequirements),
	}
}
