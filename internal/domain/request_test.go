package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNotesRequest_Defaults(t *testing.T) {
	req, err := NewNotesRequest(nil)
	require.NoError(t, err)
	require.Equal(t, NotesDetailed, req.NotesStyle)
	require.Nil(t, req.Topic)
	require.Nil(t, req.ReferenceMaterial)
	require.Nil(t, req.AdditionalRequirements)

	for _, f := range req.Fields() {
		if f.Label == "Notes Style" {
			require.True(t, f.Present)
			continue
		}
		require.False(t, f.Present, "field %s", f.Label)
	}
}

func TestNewQuestionsRequest_Defaults(t *testing.T) {
	req, err := NewQuestionsRequest(map[string]string{"topic": "Algebra"})
	require.NoError(t, err)
	require.Equal(t, AnswersYes, req.WithAnswers)
	require.Equal(t, "Algebra", *req.Topic)
	require.Nil(t, req.AdditionalRequirements)
}

func TestNewCareerGuidanceRequest_Defaults(t *testing.T) {
	req, err := NewCareerGuidanceRequest(map[string]string{})
	require.NoError(t, err)
	require.Equal(t, EducationSchool, req.EducationLevel)
	require.Equal(t, GoalEmployment, req.FutureGoal)
	require.Nil(t, req.DegreeOrClass)
	require.Nil(t, req.FieldOfInterest)
}

func TestEnumViolations(t *testing.T) {
	cases := []struct {
		name  string
		build func() error
		field string
	}{
		{name: "notes style", field: "notes_style", build: func() error {
			_, err := NewNotesRequest(map[string]string{"notes_style": "Verbose"})
			return err
		}},
		{name: "with answers lowercase", field: "with_answers", build: func() error {
			_, err := NewQuestionsRequest(map[string]string{"with_answers": "yes"})
			return err
		}},
		{name: "education level", field: "education_level", build: func() error {
			_, err := NewCareerGuidanceRequest(map[string]string{"education_level": "University"})
			return err
		}},
		{name: "future goal", field: "future_goal", build: func() error {
			_, err := NewCareerGuidanceRequest(map[string]string{"future_goal": "Travel"})
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build()
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			require.Equal(t, tc.field, verr.Field)
			require.NotEmpty(t, verr.Allowed)
			require.Contains(t, err.Error(), "is not one of")
		})
	}
}

func TestParseNotesStyle_Aliases(t *testing.T) {
	for _, in := range []string{"Last-Minute-Revision", "Last Minute Revision", "Last-minute revision"} {
		style, err := ParseNotesStyle(in)
		require.NoError(t, err, in)
		require.Equal(t, NotesLastMinuteRevision, style)
	}
	_, err := ParseNotesStyle("last minute revision")
	require.Error(t, err)
}

func TestNotesRequest_UnmarshalJSON(t *testing.T) {
	var req NotesRequest
	require.NoError(t, json.Unmarshal([]byte(`{"topic":"Photosynthesis","extra":"ignored","reference_material":null}`), &req))
	require.Equal(t, "Photosynthesis", *req.Topic)
	require.Equal(t, NotesDetailed, req.NotesStyle)
	require.Nil(t, req.ReferenceMaterial)
}

func TestNotesRequest_UnmarshalJSON_NonString(t *testing.T) {
	var req NotesRequest
	err := json.Unmarshal([]byte(`{"topic":42}`), &req)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "topic", verr.Field)
	require.Equal(t, reasonNotString, verr.Reason)
}

func TestNotesRequest_AbsenceSurvivesMarshal(t *testing.T) {
	req, err := NewNotesRequest(map[string]string{"topic": "NA"})
	require.NoError(t, err)

	raw, err := json.Marshal(req)
	require.NoError(t, err)
	require.JSONEq(t, `{"topic":"NA","notes_style":"Detailed"}`, string(raw))

	var back NotesRequest
	require.NoError(t, json.Unmarshal(raw, &back))
	require.Equal(t, req, back)
	require.True(t, back.Fields()[0].Present)
	require.False(t, back.Fields()[2].Present)
}

func TestDecodeStrict_RequiresEveryKey(t *testing.T) {
	_, err := DecodeNotesRequestStrict([]byte(`{"topic":"x","notes_style":"Short","reference_material":"y"}`))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "additional_requirements", verr.Field)
	require.Equal(t, reasonRequired, verr.Reason)

	_, err = DecodeQuestionsRequestStrict([]byte(`{"topic":"x","additional_requirements":"y"}`))
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "with_answers", verr.Field)

	_, err = DecodeFreeformCareerGuidance([]byte(`{}`))
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "education_level", verr.Field)
}

func TestDecodeStrict_MalformedBody(t *testing.T) {
	for _, body := range []string{`not-json`, `[]`, `null`} {
		_, err := DecodeNotesRequestStrict([]byte(body))
		var verr *ValidationError
		require.True(t, errors.As(err, &verr), body)
		require.Empty(t, verr.Field)
	}
}

func TestDecodeFreeformCareerGuidance_NoEnumEnforcement(t *testing.T) {
	req, err := DecodeFreeformCareerGuidance([]byte(`{
		"education_level": "Bootcamp",
		"degree_or_class": "Web Development",
		"field_of_interest": "Frontend",
		"future_goal": "Freelancing"
	}`))
	require.NoError(t, err)
	require.Equal(t, KindCareerGuidance, req.Kind())

	fields := req.Fields()
	require.Len(t, fields, 4)
	require.Equal(t, Field{Label: "Education Level", Value: "Bootcamp", Present: true}, fields[0])
	require.Equal(t, Field{Label: "Future Goal", Value: "Freelancing", Present: true}, fields[3])
}

func TestCareerGuidanceFields_Order(t *testing.T) {
	req := CareerGuidanceRequest{
		EducationLevel:  EducationCollege,
		DegreeOrClass:   Text("Computer Science"),
		FieldOfInterest: Text("Data Analysis"),
		FutureGoal:      GoalEmployment,
	}
	var labels []string
	for _, f := range req.Fields() {
		labels = append(labels, f.Label)
	}
	require.Equal(t, []string{"Education Level", "Degree/Class", "Field of Interest", "Future Goal"}, labels)
}

func TestUnsetEnums_TakeDefaultsAfterRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		req   any
		check func(t *testing.T, raw []byte)
	}{
		{
			name: "notes",
			req:  NotesRequest{Topic: Text("Photosynthesis")},
			check: func(t *testing.T, raw []byte) {
				var back NotesRequest
				require.NoError(t, json.Unmarshal(raw, &back))
				require.Equal(t, NotesDetailed, back.NotesStyle)
			},
		},
		{
			name: "questions",
			req:  QuestionsRequest{Topic: Text("Data Analysis")},
			check: func(t *testing.T, raw []byte) {
				var back QuestionsRequest
				require.NoError(t, json.Unmarshal(raw, &back))
				require.Equal(t, AnswersYes, back.WithAnswers)
				require.Equal(t, "Data Analysis", *back.Topic)
			},
		},
		{
			name: "career guidance",
			req:  CareerGuidanceRequest{DegreeOrClass: Text("Class 10")},
			check: func(t *testing.T, raw []byte) {
				var back CareerGuidanceRequest
				require.NoError(t, json.Unmarshal(raw, &back))
				require.Equal(t, EducationSchool, back.EducationLevel)
				require.Equal(t, GoalEmployment, back.FutureGoal)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := json.Marshal(tc.req)
			require.NoError(t, err)
			require.NotContains(t, string(raw), `""`, "unset enums must be omitted")
			tc.check(t, raw)
		})
	}
}

func TestNotesRequest_AliasKeepsCallerSpelling(t *testing.T) {
	req, err := DecodeNotesRequestStrict([]byte(`{
		"topic": "Optics",
		"notes_style": "Last-minute revision",
		"reference_material": "NA",
		"additional_requirements": "NA"
	}`))
	require.NoError(t, err)
	require.Equal(t, NotesLastMinuteRevision, req.NotesStyle)
	require.Equal(t, Field{Label: "Notes Style", Value: "Last-minute revision", Present: true}, req.Fields()[1])

	canonical, err := NewNotesRequest(map[string]string{"notes_style": "Short"})
	require.NoError(t, err)
	require.Equal(t, "Short", canonical.Fields()[1].Value)

	raw, err := json.Marshal(req)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"notes_style":"Last-Minute-Revision"`)
}
