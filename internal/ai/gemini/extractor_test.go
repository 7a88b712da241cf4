package gemini

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/ai"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/profile"
)

type stubGenerator struct {
	completion string
	err        error

	lastSystem string
	lastUser   string
}

func (s *stubGenerator) Generate(_ context.Context, system, user string, _ float32) (string, error) {
	s.lastSystem = system
	s.lastUser = user
	return s.completion, s.err
}

func newStubExtractor(completion string, err error) (*Extractor, *stubGenerator) {
	gen := &stubGenerator{completion: completion, err: err}
	return &Extractor{gen: gen, logger: zap.NewNop()}, gen
}

func TestExtractProfileFencedJSON(t *testing.T) {
	e, _ := newStubExtractor("```json\n{\"first_name\": \"علی\", \"last_name\": \"رضایی\", \"age\": 28, \"gender\": \"مرد\", \"experience_years\": \"4\", \"city\": \"تهران\", \"military_status\": \"دارد\", \"skills\": [\"Python\", \"SQL\"], \"interests\": [\"هوش مصنوعی\"]}\n```", nil)

	raw, err := e.ExtractProfile(context.Background(), "متن")
	if err != nil {
		t.Fatalf("ExtractProfile: %v", err)
	}
	if raw.FirstName != "علی" || raw.LastName != "رضایی" {
		t.Fatalf("name = %q %q", raw.FirstName, raw.LastName)
	}
	if !raw.Age.Set || raw.Age.Value != 28 {
		t.Fatalf("age = %+v", raw.Age)
	}
	if !raw.ExperienceYears.Set || raw.ExperienceYears.Value != 4 {
		t.Fatalf("experience = %+v", raw.ExperienceYears)
	}
	if raw.Gender != profile.GenderMale {
		t.Fatalf("gender = %q", raw.Gender)
	}
	if raw.MilitaryStatus != profile.MilitaryCompleted {
		t.Fatalf("military = %q", raw.MilitaryStatus)
	}
	if len(raw.Skills) != 2 || raw.Skills[0] != "Python" {
		t.Fatalf("skills = %v", raw.Skills)
	}
}

func TestExtractProfileSurroundingProse(t *testing.T) {
	e, _ := newStubExtractor("حتما، این هم نتیجه:\n{\"first_name\": \"سارا\", \"skills\": []}\nامیدوارم مفید باشد.", nil)

	raw, err := e.ExtractProfile(context.Background(), "متن")
	if err != nil {
		t.Fatalf("ExtractProfile: %v", err)
	}
	if raw.FirstName != "سارا" {
		t.Fatalf("first name = %q", raw.FirstName)
	}
}

func TestExtractProfileDropsOutOfVocabulary(t *testing.T) {
	e, _ := newStubExtractor(`{"age": 200, "gender": "male", "military_status": "تمام شده", "experience_years": -3}`, nil)

	raw, err := e.ExtractProfile(context.Background(), "متن")
	if err != nil {
		t.Fatalf("ExtractProfile: %v", err)
	}
	if raw.Age.Set {
		t.Fatalf("age out of range kept: %+v", raw.Age)
	}
	if raw.Gender != profile.GenderUnset {
		t.Fatalf("gender = %q, want unset", raw.Gender)
	}
	if raw.MilitaryStatus != profile.MilitaryUnset {
		t.Fatalf("military = %q, want unset", raw.MilitaryStatus)
	}
	if raw.ExperienceYears.Set {
		t.Fatalf("negative experience kept: %+v", raw.ExperienceYears)
	}
}

func TestExtractProfileNoJSON(t *testing.T) {
	e, _ := newStubExtractor("متاسفم، نمی‌توانم کمکی کنم.", nil)

	if _, err := e.ExtractProfile(context.Background(), "متن"); !errors.Is(err, ai.ErrBadResponse) {
		t.Fatalf("err = %v, want ErrBadResponse", err)
	}
}

func TestExtractProfileGeneratorError(t *testing.T) {
	e, _ := newStubExtractor("", ai.ErrUnavailable)

	if _, err := e.ExtractProfile(context.Background(), "متن"); !errors.Is(err, ai.ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestExtractFieldAge(t *testing.T) {
	e, gen := newStubExtractor("28", nil)

	raw, err := e.ExtractField(context.Background(), profile.FieldAge, "بیست و هشت سالمه")
	if err != nil {
		t.Fatalf("ExtractField: %v", err)
	}
	if !raw.Age.Set || raw.Age.Value != 28 {
		t.Fatalf("age = %+v", raw.Age)
	}
	if raw.FirstName != "" || len(raw.Skills) != 0 {
		t.Fatalf("other fields populated: %+v", raw)
	}
	if gen.lastUser == "" {
		t.Fatal("no prompt sent")
	}
}

func TestExtractFieldGenderFreeForm(t *testing.T) {
	e, _ := newStubExtractor("من آقا هستم", nil)

	raw, err := e.ExtractField(context.Background(), profile.FieldGender, "آقام")
	if err != nil {
		t.Fatalf("ExtractField: %v", err)
	}
	if raw.Gender != profile.GenderMale {
		t.Fatalf("gender = %q", raw.Gender)
	}
}

func TestExtractFieldSkillsList(t *testing.T) {
	e, _ := newStubExtractor("Python، SQL و Docker", nil)

	raw, err := e.ExtractField(context.Background(), profile.FieldSkills, "پایتون و اس کیو ال و داکر")
	if err != nil {
		t.Fatalf("ExtractField: %v", err)
	}
	want := []string{"Python", "SQL", "Docker"}
	if len(raw.Skills) != len(want) {
		t.Fatalf("skills = %v, want %v", raw.Skills, want)
	}
	for i := range want {
		if raw.Skills[i] != want[i] {
			t.Fatalf("skills = %v, want %v", raw.Skills, want)
		}
	}
}

func TestExtractFieldUnknownAnswer(t *testing.T) {
	e, _ := newStubExtractor("نامشخص", nil)

	raw, err := e.ExtractField(context.Background(), profile.FieldCity, "چی؟")
	if err != nil {
		t.Fatalf("ExtractField: %v", err)
	}
	if raw.Has(profile.FieldCity) {
		t.Fatalf("city populated from نامشخص: %q", raw.City)
	}
}

func TestExtractFieldUnknownField(t *testing.T) {
	e, _ := newStubExtractor("x", nil)

	if _, err := e.ExtractField(context.Background(), profile.Field("salary"), "x"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestSuggestCapabilities(t *testing.T) {
	e, _ := newStubExtractor(`{"skills": ["Python", "Git"], "interests": ["هوش مصنوعی"]}`, nil)

	skills, interests, err := e.SuggestCapabilities(context.Background(), profile.New())
	if err != nil {
		t.Fatalf("SuggestCapabilities: %v", err)
	}
	if len(skills) != 2 || len(interests) != 1 {
		t.Fatalf("skills = %v, interests = %v", skills, interests)
	}
}

func TestFirstJSONObjectBalancesStrings(t *testing.T) {
	raw, ok := firstJSONObject(`noise {"a": "curly } inside", "b": {"c": 1}} tail`)
	if !ok {
		t.Fatal("no object found")
	}
	if raw != `{"a": "curly } inside", "b": {"c": 1}}` {
		t.Fatalf("object = %q", raw)
	}
}
