// Package profile defines the applicant profile records exchanged between
// the extraction strategies, the reconciler and the conversation engine.
package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Age and experience bounds. Values outside are dropped to unset.
const (
	MaxAge        = 120
	MaxExperience = 60
)

// OptionalInt is an integer that distinguishes "unset" from zero. It
// serializes as a bare number when set and as an empty string otherwise,
// matching the form payloads the intake UI produces.
type OptionalInt struct {
	Value int
	Set   bool
}

// Int returns a set OptionalInt.
func Int(v int) OptionalInt {
	return OptionalInt{Value: v, Set: true}
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte(`""`), nil
	}
	return []byte(strconv.Itoa(o.Value)), nil
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" || string(data) == `""` {
		*o = OptionalInt{}
		return nil
	}
	s := strings.Trim(string(data), `"`)
	parsed, ok := ParseInt(s)
	if !ok {
		*o = OptionalInt{}
		return nil
	}
	*o = parsed
	return nil
}

func (o OptionalInt) String() string {
	if !o.Set {
		return ""
	}
	return strconv.Itoa(o.Value)
}

// ParseInt parses an integer out of free text, accepting float renderings
// such as "28.0". A non-numeric value yields the unset state.
func ParseInt(s string) (OptionalInt, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return OptionalInt{}, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return OptionalInt{}, false
	}
	return Int(int(f)), true
}

// ValidAge reports whether n is inside the accepted age domain.
func ValidAge(n int) bool { return n > 0 && n < MaxAge }

// ValidExperience reports whether n is inside the accepted experience domain.
func ValidExperience(n int) bool { return n >= 0 && n < MaxExperience }

// Gender is a closed enum carried on the Persian wire values.
type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "مرد"
	GenderFemale Gender = "زن"
)

// KnownGender reports whether s is exactly one of the closed vocabulary values.
func KnownGender(s string) bool {
	g := Gender(strings.TrimSpace(s))
	return g == GenderMale || g == GenderFemale
}

// ParseGender maps keyword-bearing free text onto the gender enum. Anything
// without a recognizable keyword is unset.
func ParseGender(s string) Gender {
	s = strings.TrimSpace(s)
	switch {
	case strings.Contains(s, string(GenderMale)), strings.Contains(s, "آقا"), strings.Contains(s, "male") && !strings.Contains(s, "female"):
		return GenderMale
	case strings.Contains(s, string(GenderFemale)), strings.Contains(s, "خانم"), strings.Contains(s, "female"):
		return GenderFemale
	}
	return GenderUnset
}

// MilitaryStatus is a closed enum carried on the Persian wire values.
type MilitaryStatus string

const (
	MilitaryUnset        MilitaryStatus = ""
	MilitaryCompleted    MilitaryStatus = "دارد"
	MilitaryNotCompleted MilitaryStatus = "ندارد"
	MilitaryExempt       MilitaryStatus = "معاف"
	MilitaryInProgress   MilitaryStatus = "در حال خدمت"
)

// KnownMilitaryStatus reports whether s is exactly one of the closed
// vocabulary values.
func KnownMilitaryStatus(s string) bool {
	m := MilitaryStatus(strings.TrimSpace(s))
	switch m {
	case MilitaryCompleted, MilitaryNotCompleted, MilitaryExempt, MilitaryInProgress:
		return true
	}
	return false
}

// ParseMilitaryStatus maps keyword-bearing free text onto the military
// status enum. The negated form is checked before the positive one because
// the positive keyword is a substring of it.
func ParseMilitaryStatus(s string) MilitaryStatus {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return MilitaryUnset
	case strings.Contains(s, string(MilitaryNotCompleted)):
		return MilitaryNotCompleted
	case strings.Contains(s, string(MilitaryExempt)):
		return MilitaryExempt
	case strings.Contains(s, string(MilitaryCompleted)), strings.Contains(s, "پایان خدمت"):
		return MilitaryCompleted
	case strings.Contains(s, "خدمت"):
		return MilitaryInProgress
	}
	return MilitaryUnset
}

// Field names an applicant profile field. The constants double as JSON keys.
type Field string

const (
	FieldFirstName       Field = "first_name"
	FieldLastName        Field = "last_name"
	FieldAge             Field = "age"
	FieldGender          Field = "gender"
	FieldExperienceYears Field = "experience_years"
	FieldCity            Field = "city"
	FieldSkills          Field = "skills"
	FieldMilitaryStatus  Field = "military_status"
	FieldInterests       Field = "interests"
)

// RequiredFields is the fixed intake order. The conversation engine asks the
// questions in this order and ambiguous answers are attributed to fields in
// this order too.
func RequiredFields() []Field {
	return []Field{
		FieldFirstName,
		FieldLastName,
		FieldAge,
		FieldGender,
		FieldExperienceYears,
		FieldCity,
		FieldSkills,
		FieldMilitaryStatus,
		FieldInterests,
	}
}

// RawExtraction is the per-strategy intermediate result. It has the profile
// shape but carries whatever a single strategy managed to find; it is never
// handed to callers directly.
type RawExtraction struct {
	FirstName       string
	LastName        string
	Age             OptionalInt
	Gender          Gender
	ExperienceYears OptionalInt
	City            string
	MilitaryStatus  MilitaryStatus
	Skills          []string
	Interests       []string
}

// Has reports whether the extraction carries a usable value for the field.
func (r *RawExtraction) Has(f Field) bool {
	switch f {
	case FieldFirstName:
		return r.FirstName != ""
	case FieldLastName:
		return r.LastName != ""
	case FieldAge:
		return r.Age.Set
	case FieldGender:
		return r.Gender != GenderUnset
	case FieldExperienceYears:
		return r.ExperienceYears.Set
	case FieldCity:
		return r.City != ""
	case FieldSkills:
		return len(r.Skills) > 0
	case FieldMilitaryStatus:
		return r.MilitaryStatus != MilitaryUnset
	case FieldInterests:
		return len(r.Interests) > 0
	}
	return false
}

// Value returns the extraction's value for the field in its natural type.
func (r *RawExtraction) Value(f Field) any {
	switch f {
	case FieldFirstName:
		return r.FirstName
	case FieldLastName:
		return r.LastName
	case FieldAge:
		return r.Age
	case FieldGender:
		return r.Gender
	case FieldExperienceYears:
		return r.ExperienceYears
	case FieldCity:
		return r.City
	case FieldSkills:
		return r.Skills
	case FieldMilitaryStatus:
		return r.MilitaryStatus
	case FieldInterests:
		return r.Interests
	}
	return nil
}

// Merge copies the fields other has a value for into r, overwriting any
// previous value, and returns the fields that changed.
func (r *RawExtraction) Merge(other *RawExtraction) []Field {
	if other == nil {
		return nil
	}
	var updated []Field
	for _, f := range RequiredFields() {
		if !other.Has(f) {
			continue
		}
		switch f {
		case FieldFirstName:
			r.FirstName = other.FirstName
		case FieldLastName:
			r.LastName = other.LastName
		case FieldAge:
			r.Age = other.Age
		case FieldGender:
			r.Gender = other.Gender
		case FieldExperienceYears:
			r.ExperienceYears = other.ExperienceYears
		case FieldCity:
			r.City = other.City
		case FieldSkills:
			r.Skills = append([]string(nil), other.Skills...)
		case FieldMilitaryStatus:
			r.MilitaryStatus = other.MilitaryStatus
		case FieldInterests:
			r.Interests = append([]string(nil), other.Interests...)
		}
		updated = append(updated, f)
	}
	return updated
}

// ApplicantProfile is the reconciled, validated applicant record. Every
// field is always present with a defined empty/unset representation.
type ApplicantProfile struct {
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	Age             OptionalInt    `json:"age"`
	Gender          Gender         `json:"gender"`
	ExperienceYears OptionalInt    `json:"experience_years"`
	City            string         `json:"city"`
	MilitaryStatus  MilitaryStatus `json:"military_status"`
	Skills          []string       `json:"skills"`
	Interests       []string       `json:"interests"`
}

// New returns an empty profile with non-nil list fields, so that the JSON
// rendering always carries every key.
func New() ApplicantProfile {
	return ApplicantProfile{Skills: []string{}, Interests: []string{}}
}

// DisplayName joins the name parts for logs and generated prose.
func (p *ApplicantProfile) DisplayName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// JSON renders the profile with the fixed wire field names.
func (p ApplicantProfile) JSON() string {
	out, err := json.Marshal(p)
	if err != nil {
		return fmt.Sprintf("%+v", p)
	}
	return string(out)
}
