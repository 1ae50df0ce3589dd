package generator

import "google.golang.org/genai"

var careerSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":       {Type: genai.TypeString, Description: "Title of the career."},
		"description": {Type: genai.TypeString, Description: "What the career involves."},
		"skills":      {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "Skills required for the career."},
	},
	Required:         []string{"title", "description", "skills"},
	PropertyOrdering: []string{"title", "description", "skills"},
}

var careerListSchema = &genai.Schema{
	Type:        genai.TypeArray,
	Description: "Between 4 and 5 career recommendations, best match first.",
	Items:       careerSchema,
}

var skillSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"skill":        {Type: genai.TypeString, Description: "Title of the skill."},
		"description":  {Type: genai.TypeString, Description: "Description of the skill."},
		"skills":       {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "Sub-skills to learn for this skill."},
		"daily_duties": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "Daily duties that use this skill."},
	},
	Required:         []string{"skill", "description", "skills", "daily_duties"},
	PropertyOrdering: []string{"skill", "description", "skills", "daily_duties"},
}

var skillPipelineSchema = &genai.Schema{
	Type:        genai.TypeArray,
	Description: "Skills to learn for the job, in learning order.",
	Items:       skillSchema,
}
