package generator

import (
	"fmt"
	"strings"
)

func careerPrompt(in CareerInput) string {
	return fmt.Sprintf(`
You are a career counselor.
Your task is to recommend careers to a student based on their career goals, interests, and skills.

User Information:
Education Level: %s
Field of Study: %s

Career Goals:
%s

Interests:
%s

Skills:
%s

For each recommended career provide:

1. Title of the career
2. Description of the career
3. Skills required for the career

Recommend the 4 - 5 job opportunities closest to the user's career goals, interests, and skills.
`,
		in.EducationLevel,
		in.FieldOfStudy,
		in.CareerGoals,
		strings.Join(in.Interests, ", "),
		strings.Join(in.Skills, ", "),
	)
}

func skillsPrompt(jobTitle string) string {
	return fmt.Sprintf(`
You are a career counselor.
Your task is to lay out the pipeline of skills a person must learn for a given job.

Job Title: %s

For each skill in the pipeline provide:

1. Title of the skill
2. Description of the skill
3. Skills required for the skill
4. Daily duties that use the skill
`, jobTitle)
}

// agentInstruction is the standing instruction for the agent backend. The
// per-request schema is appended to each message.
func agentInstruction() string {
	return `
You are an expert AI career assistant for students.

Answer every request with data only.
Return only valid JSON that matches the schema given with the request.
Do not include explanations, markdown, or text before or after the JSON.
	`
}
