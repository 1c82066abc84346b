package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"studymate-agent/internal/domain"
)

func photosynthesisNotes() domain.NotesRequest {
	return domain.NotesRequest{
		Topic:                  domain.Text("Photosynthesis"),
		NotesStyle:             domain.NotesDetailed,
		ReferenceMaterial:      domain.Text("NCERT Textbook of Class Twelve"),
		AdditionalRequirements: domain.Text("Include detailed explanations of the Calvin cycle and the light-dependent reactions"),
	}
}

func TestBuildPrompt_NotesGolden(t *testing.T) {
	want := "You are acting as a tool that helps students prepare notes for various subjects and topics. " +
		"The user supplies specific details such as the topic they need notes on, the preferred style " +
		"of the notes (short, detailed, or last-minute revision), any reference material, and additional " +
		"requirements or focus areas for the notes. Based on this information, you generate concise and " +
		"tailored notes to assist students in studying effectively and efficiently.\n\n" +
		"Given the provided data for the Notes Agent, your task is to prepare notes on the following:\n\n" +
		"- Topic: Photosynthesis\n" +
		"- Notes Style: Detailed\n" +
		"- Reference Material: NCERT Textbook of Class Twelve\n" +
		"- Additional Requirements: Include detailed explanations of the Calvin cycle and the light-dependent reactions\n\n" +
		"Note: If any information is missing (marked as 'NA'), please use intelligent reasoning to generate the notes accordingly."

	require.Equal(t, want, BuildPrompt(photosynthesisNotes()))
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	reqs := []domain.Request{
		photosynthesisNotes(),
		domain.QuestionsRequest{Topic: domain.Text("Data Analysis"), WithAnswers: domain.AnswersNo},
		domain.CareerGuidanceRequest{EducationLevel: domain.EducationCollege, FutureGoal: domain.GoalFurtherStudies},
	}
	for _, req := range reqs {
		require.Equal(t, BuildPrompt(req), BuildPrompt(req))
	}
}

func TestBuildPrompt_ValuesInDeclaredOrder(t *testing.T) {
	cases := []struct {
		name   string
		req    domain.Request
		values []string
	}{
		{
			name:   "notes",
			req:    photosynthesisNotes(),
			values: []string{"Photosynthesis", "Detailed", "NCERT Textbook of Class Twelve", "Include detailed explanations"},
		},
		{
			name: "questions",
			req: domain.QuestionsRequest{
				Topic:                  domain.Text("Data Analysis"),
				WithAnswers:            domain.AnswersYes,
				AdditionalRequirements: domain.Text("Include questions on statistical analysis and machine learning algorithms"),
			},
			values: []string{"Data Analysis", "Yes", "Include questions on statistical analysis"},
		},
		{
			name: "career guidance",
			req: domain.CareerGuidanceRequest{
				EducationLevel:  domain.EducationCollege,
				DegreeOrClass:   domain.Text("Computer Science"),
				FieldOfInterest: domain.Text("Data Analysis"),
				FutureGoal:      domain.GoalEmployment,
			},
			values: []string{"College", "Computer Science", "Data Analysis", "Employment"},
		},
		{
			name: "freeform career guidance",
			req: domain.FreeformCareerGuidance{
				EducationLevel:  "Bootcamp",
				DegreeOrClass:   "Cohort 12",
				FieldOfInterest: "UX {design} & 100% <research>",
				FutureGoal:      "Freelancing",
			},
			values: []string{"Bootcamp", "Cohort 12", "UX {design} & 100% <research>", "Freelancing"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prompt := BuildPrompt(tc.req)
			pos := 0
			for _, v := range tc.values {
				idx := strings.Index(prompt[pos:], v)
				require.GreaterOrEqual(t, idx, 0, "value %q missing or out of order", v)
				pos += idx + len(v)
			}
		})
	}
}

func TestBuildPrompt_AbsentFieldsUseSentinel(t *testing.T) {
	req, err := domain.NewQuestionsRequest(nil)
	require.NoError(t, err)

	prompt := BuildPrompt(req)
	require.Contains(t, prompt, "- Topic: NA\n")
	require.Contains(t, prompt, "- With Answers: Yes\n")
	require.Contains(t, prompt, "- Additional Requirements: NA\n")
	require.True(t, strings.HasSuffix(prompt, "please use intelligent reasoning to generate the practice questions accordingly."))
}

func TestBuildPrompt_CareerGuidanceClosing(t *testing.T) {
	req, err := domain.NewCareerGuidanceRequest(map[string]string{"education_level": "College"})
	require.NoError(t, err)

	prompt := BuildPrompt(req)
	require.Contains(t, prompt, "Given the provided data for the Career Guidance Agent")
	require.Contains(t, prompt, "- Degree/Class: NA\n")
	require.True(t, strings.HasSuffix(prompt, "to provide career guidance accordingly."))
}
