package usecase

import (
	"strings"

	"studymate-agent/internal/domain"
)

type promptTemplate struct {
	role    string
	task    string
	closing string
}

var promptTemplates = map[domain.Kind]promptTemplate{
	domain.KindNotes: {
		role: "You are acting as a tool that helps students prepare notes for various subjects and topics. " +
			"The user supplies specific details such as the topic they need notes on, the preferred style " +
			"of the notes (short, detailed, or last-minute revision), any reference material, and additional " +
			"requirements or focus areas for the notes. Based on this information, you generate concise and " +
			"tailored notes to assist students in studying effectively and efficiently.",
		task:    "Given the provided data for the Notes Agent, your task is to prepare notes on the following:",
		closing: "generate the notes accordingly.",
	},
	domain.KindQuestions: {
		role: "You are acting as a tool that helps students prepare practice questions and answers for various subjects and topics. " +
			"The user specifies the topic for which they need practice questions, whether they require questions with or without answers, " +
			"and any additional requirements or preferences they may have. Based on this information, you generate appropriate practice " +
			"questions tailored to the student's needs to help them prepare effectively for exams and assessments.",
		task:    "Given the provided data for the Questions Agent, your task is to prepare practice questions on the following:",
		closing: "generate the practice questions accordingly.",
	},
	domain.KindCareerGuidance: {
		role: "You are acting as a career guidance tool that assists students in making informed decisions " +
			"about their education and future career paths. The user provides information about their current " +
			"education level, degree or class, field of interest, and future goals. Based on this information, " +
			"you provide personalized career guidance and advice to help students plan for their future.",
		task:    "Given the provided data for the Career Guidance Agent, your task is to provide guidance based on the following:",
		closing: "provide career guidance accordingly.",
	},
}

// BuildPrompt renders the instruction sent to the LLM for req. Absent
// free-text fields are written as domain.NotApplicable; present values are
// inserted verbatim.
func BuildPrompt(req domain.Request) string {
	tmpl := promptTemplates[req.Kind()]

	lines := make([]string, 0, 8)
	for _, f := range req.Fields() {
		lines = append(lines, "- "+f.Label+": "+fieldValue(f))
	}

	return strings.Join([]string{
		tmpl.role,
		"",
		tmpl.task,
		"",
		strings.Join(lines, "\n"),
		"",
		missingInfoNote(tmpl.closing),
	}, "\n")
}

func fieldValue(f domain.Field) string {
	if !f.Present {
		return domain.NotApplicable
	}
	return f.Value
}

func missingInfoNote(action string) string {
	return "Note: If any information is missing (marked as '" + domain.NotApplicable +
		"'), please use intelligent reasoning to " + action
}
