package profile

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var EducationLevels = []string{
	"High School",
	"Associate's Degree",
	"Bachelor's Degree",
	"Master's Degree",
	"PhD",
	"Other",
}

var Interests = []string{
	"Technology",
	"Business",
	"Healthcare",
	"Arts & Design",
	"Engineering",
	"Education",
	"Science & Research",
	"Marketing",
	"Finance",
	"Other",
}

const MaxInterests = 5

var ErrInvalidProfile = errors.New("invalid profile")

// Form is a submitted profile. Skills arrive as one comma-separated string.
type Form struct {
	FirstName      string   `json:"first_name" validate:"required"`
	LastName       string   `json:"last_name" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	EducationLevel string   `json:"education_level" validate:"required,education_level"`
	FieldOfStudy   string   `json:"field_of_study" validate:"required"`
	Interests      []string `json:"interests" validate:"required,min=1,max=5,unique,dive,interest"`
	Skills         string   `json:"skills"`
	CareerGoals    string   `json:"career_goals"`
}

// ValidationError lists the offending fields by their JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidProfile
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("education_level", func(fl validator.FieldLevel) bool {
		return slices.Contains(EducationLevels, fl.Field().String())
	})
	_ = v.RegisterValidation("interest", func(fl validator.FieldLevel) bool {
		return slices.Contains(Interests, fl.Field().String())
	})
	return v
}

func (f *Form) normalize() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.EducationLevel = strings.TrimSpace(f.EducationLevel)
	f.FieldOfStudy = strings.TrimSpace(f.FieldOfStudy)
	f.CareerGoals = strings.TrimSpace(f.CareerGoals)
	for i := range f.Interests {
		f.Interests[i] = strings.TrimSpace(f.Interests[i])
	}
}

func validateForm(v *validator.Validate, f Form) error {
	err := v.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		name, _, _ := strings.Cut(fe.Field(), "[")
		if _, seen := out.Fields[name]; seen {
			continue
		}
		out.Fields[name] = describe(fe)
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "education_level":
		return "must be one of: " + strings.Join(EducationLevels, ", ")
	case "interest":
		return "must be chosen from: " + strings.Join(Interests, ", ")
	case "min":
		return "needs at least " + fe.Param()
	case "max":
		return fmt.Sprintf("allows at most %s", fe.Param())
	case "unique":
		return "must not repeat"
	default:
		return "is invalid"
	}
}

// ParseSkills splits a comma-separated skills field, dropping blanks.
func ParseSkills(raw string) []string {
	skills := []string{}
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}
