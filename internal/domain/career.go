package domain

// EducationLevel is where the student currently studies.
type EducationLevel string

const (
	EducationSchool  EducationLevel = "School"
	EducationCollege EducationLevel = "College"
)

var educationLevels = []EducationLevel{EducationSchool, EducationCollege}

// FutureGoal is what the student wants to do next.
type FutureGoal string

const (
	GoalFurtherStudies FutureGoal = "Further Studies"
	GoalEmployment     FutureGoal = "Employment"
)

var futureGoals = []FutureGoal{GoalFurtherStudies, GoalEmployment}

// CareerGuidanceRequest asks for career advice given a student's background.
type CareerGuidanceRequest struct {
	EducationLevel  EducationLevel `json:"education_level,omitempty" jsonschema:"title=Education Level,enum=School,enum=College,default=School" jsonschema_description:"Whether the student is currently in school or college."`
	DegreeOrClass   *string        `json:"degree_or_class,omitempty" jsonschema:"title=Degree/Class,example=Computer Science" jsonschema_description:"The student's degree (college) or class (school)."`
	FieldOfInterest *string        `json:"field_of_interest,omitempty" jsonschema:"title=Field of Interest,example=Data analysis" jsonschema_description:"The student's field of interest such as law or medicine."`
	FutureGoal      FutureGoal     `json:"future_goal,omitempty" jsonschema:"title=Future Goal,enum=Further Studies,enum=Employment,default=Employment" jsonschema_description:"Whether the student wants to pursue further studies or seek employment."`
}

// NewCareerGuidanceRequest builds a CareerGuidanceRequest from partial input.
func NewCareerGuidanceRequest(in map[string]string) (CareerGuidanceRequest, error) {
	level, err := parseEnum("education_level", lookup(in, "education_level"), EducationSchool, educationLevels, nil)
	if err != nil {
		return CareerGuidanceRequest{}, err
	}
	goal, err := parseEnum("future_goal", lookup(in, "future_goal"), GoalEmployment, futureGoals, nil)
	if err != nil {
		return CareerGuidanceRequest{}, err
	}
	return CareerGuidanceRequest{
		EducationLevel:  level,
		DegreeOrClass:   lookup(in, "degree_or_class"),
		FieldOfInterest: lookup(in, "field_of_interest"),
		FutureGoal:      goal,
	}, nil
}

func (r *CareerGuidanceRequest) UnmarshalJSON(data []byte) error {
	in, err := decodeFields(data)
	if err != nil {
		return err
	}
	req, err := NewCareerGuidanceRequest(in)
	if err != nil {
		return err
	}
	*r = req
	return nil
}

func (CareerGuidanceRequest) Schema() string { return "CareerGuidanceRequest" }

func (CareerGuidanceRequest) Kind() Kind { return KindCareerGuidance }

func (r CareerGuidanceRequest) Fields() []Field {
	return careerGuidanceFields(
		requiredField("", string(r.EducationLevel)),
		optionalField("", r.DegreeOrClass),
		optionalField("", r.FieldOfInterest),
		requiredField("", string(r.FutureGoal)),
	)
}

// FreeformCareerGuidance is the HTTP variant of a career guidance request:
// every field is mandatory and none is checked against an allowed set.
type FreeformCareerGuidance struct {
	EducationLevel  string `json:"education_level"`
	DegreeOrClass   string `json:"degree_or_class"`
	FieldOfInterest string `json:"field_of_interest"`
	FutureGoal      string `json:"future_goal"`
}

// DecodeFreeformCareerGuidance decodes a JSON body in which every field is mandatory.
func DecodeFreeformCareerGuidance(data []byte) (FreeformCareerGuidance, error) {
	in, err := decodeFields(data)
	if err != nil {
		return FreeformCareerGuidance{}, err
	}
	if err := requireKeys(in, "education_level", "degree_or_class", "field_of_interest", "future_goal"); err != nil {
		return FreeformCareerGuidance{}, err
	}
	return FreeformCareerGuidance{
		EducationLevel:  in["education_level"],
		DegreeOrClass:   in["degree_or_class"],
		FieldOfInterest: in["field_of_interest"],
		FutureGoal:      in["future_goal"],
	}, nil
}

func (FreeformCareerGuidance) Kind() Kind { return KindCareerGuidance }

func (r FreeformCareerGuidance) Fields() []Field {
	return careerGuidanceFields(
		requiredField("", r.EducationLevel),
		requiredField("", r.DegreeOrClass),
		requiredField("", r.FieldOfInterest),
		requiredField("", r.FutureGoal),
	)
}

func careerGuidanceFields(level, degree, interest, goal Field) []Field {
	level.Label = "Education Level"
	degree.Label = "Degree/Class"
	interest.Label = "Field of Interest"
	goal.Label = "Future Goal"
	return []Field{level, degree, interest, goal}
}
