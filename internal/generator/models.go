package generator

import (
	"encoding/json"
	"fmt"
	"strings"
)

type CareerInput struct {
	EducationLevel string
	FieldOfStudy   string
	CareerGoals    string
	Interests      []string
	Skills         []string
}

type CareerRecommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

type SkillPipelineEntry struct {
	Skill       string    `json:"skill"`
	Description string    `json:"description"`
	Skills      commaList `json:"skills"`
	DailyDuties commaList `json:"daily_duties"`
}

// SkillPipeline keeps entries in response order, keyed by skill name.
type SkillPipeline struct {
	JobTitle string
	entries  []SkillPipelineEntry
	index    map[string]int
}

func NewSkillPipeline(jobTitle string) *SkillPipeline {
	return &SkillPipeline{JobTitle: jobTitle, index: map[string]int{}}
}

// Put adds e, or replaces the entry already stored under e.Skill while
// keeping its original position.
func (p *SkillPipeline) Put(e SkillPipelineEntry) {
	if i, ok := p.index[e.Skill]; ok {
		p.entries[i] = e
		return
	}
	p.index[e.Skill] = len(p.entries)
	p.entries = append(p.entries, e)
}

func (p *SkillPipeline) Get(skill string) (SkillPipelineEntry, bool) {
	i, ok := p.index[skill]
	if !ok {
		return SkillPipelineEntry{}, false
	}
	return p.entries[i], true
}

func (p *SkillPipeline) Entries() []SkillPipelineEntry {
	out := make([]SkillPipelineEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

func (p *SkillPipeline) Len() int {
	return len(p.entries)
}

func (p *SkillPipeline) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		JobTitle string               `json:"job_title"`
		Skills   []SkillPipelineEntry `json:"skills"`
	}{JobTitle: p.JobTitle, Skills: p.entries})
}

// commaList decodes either a JSON array of strings or a single
// comma-joined string.
type commaList []string

func (l *commaList) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*l = trimAll(arr)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("expected string list or comma-separated string: %w", err)
	}
	*l = trimAll(strings.Split(s, ","))
	return nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
