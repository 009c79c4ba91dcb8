package tutor

import (
	"fmt"
	"strings"
)

const adviceSystemPrompt = `You are a patient Python tutor helping a beginner through a coding exercise. The student's attempt failed and they need a short, focused nudge. Never write the full solution for them.`

func buildAdviceUserMessage(input AdviceInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Exercise: %s\n", input.LessonTitle))
	b.WriteString(fmt.Sprintf("Goal: %s\n", input.Goal))

	b.WriteString("\nStudent code:\n```python\n")
	b.WriteString(input.Source)
	if !strings.HasSuffix(input.Source, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("```\n")

	if input.Diagnostic != "" {
		b.WriteString(fmt.Sprintf("\nError or failure detail:\n%s\n", input.Diagnostic))
	}
	if input.Output != "" {
		b.WriteString(fmt.Sprintf("\nProgram output:\n%s\n", input.Output))
	}

	b.WriteString(`
Instructions:
1. Diagnose the problem in one or two plain sentences. Name the actual mistake, not a vague category.
2. Suggest one concrete next step. Point at the line or construct to change, but do not write the corrected code.
3. Name the single Python concept the student should review.
Use simple language for a beginner. Plain ASCII only.`)

	return b.String()
}
