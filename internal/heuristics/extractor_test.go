package heuristics

import (
	"testing"
	"unicode/utf8"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/lexicon"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/profile"
)

func newExtractor() *Extractor {
	return New(lexicon.NewStore())
}

func TestExtractSelfIntroduction(t *testing.T) {
	raw := newExtractor().Extract("من علی رضایی ۲۸ سالمه، ۴ سال سابقه کار دارم، ساکن تهران. مهارت هام پایتون و SQL. علایق: هوش مصنوعی.")

	if raw.FirstName != "علی" || raw.LastName != "رضایی" {
		t.Fatalf("name = %q %q", raw.FirstName, raw.LastName)
	}
	if !raw.Age.Set || raw.Age.Value != 28 {
		t.Fatalf("age = %+v", raw.Age)
	}
	if !raw.ExperienceYears.Set || raw.ExperienceYears.Value != 4 {
		t.Fatalf("experience = %+v", raw.ExperienceYears)
	}
	if raw.City != "تهران" {
		t.Fatalf("city = %q", raw.City)
	}
	if raw.Gender != profile.GenderMale {
		t.Fatalf("gender = %q, want male from lexicon", raw.Gender)
	}
	if len(raw.Skills) < 2 || raw.Skills[0] != "پایتون" || raw.Skills[1] != "SQL" {
		t.Fatalf("skills = %v", raw.Skills)
	}
	if len(raw.Interests) != 1 || raw.Interests[0] != "هوش مصنوعی" {
		t.Fatalf("interests = %v", raw.Interests)
	}
}

func TestExtractNameMarkers(t *testing.T) {
	cases := []struct {
		text  string
		first string
		last  string
	}{
		{"نام خانوادگی من رضایی است", "", "رضایی"},
		{"اسم من علی رضایی است", "علی", "رضایی"},
		{"سارا محمدی هستم", "سارا", "محمدی"},
		{"نام من مریم است", "مریم", ""},
	}
	for _, c := range cases {
		raw := newExtractor().Extract(c.text)
		if raw.FirstName != c.first || raw.LastName != c.last {
			t.Fatalf("Extract(%q) name = %q %q, want %q %q",
				c.text, raw.FirstName, raw.LastName, c.first, c.last)
		}
	}
}

func TestExtractNamePositionalFallback(t *testing.T) {
	raw := newExtractor().Extract("علی رضایی، ساکن شیراز")
	if raw.FirstName != "علی" || raw.LastName != "رضایی" {
		t.Fatalf("name = %q %q", raw.FirstName, raw.LastName)
	}
}

func TestExtractAgeBounds(t *testing.T) {
	if raw := newExtractor().Extract("من 0 سالمه"); raw.Age.Set {
		t.Fatalf("age 0 accepted: %+v", raw.Age)
	}
	if raw := newExtractor().Extract("من 120 سالمه"); raw.Age.Set {
		t.Fatalf("age 120 accepted: %+v", raw.Age)
	}
	if raw := newExtractor().Extract("من 119 سالمه"); !raw.Age.Set || raw.Age.Value != 119 {
		t.Fatalf("age 119 rejected: %+v", raw.Age)
	}
}

func TestExtractExperienceVariants(t *testing.T) {
	cases := []string{
		"۴ سال سابقه کار دارم",
		"سابقه کاری من 4 سال است",
		"تجربه: 4 سال",
	}
	for _, text := range cases {
		raw := newExtractor().Extract(text)
		if !raw.ExperienceYears.Set || raw.ExperienceYears.Value != 4 {
			t.Fatalf("Extract(%q) experience = %+v", text, raw.ExperienceYears)
		}
	}
}

func TestExtractGenderExplicitBeatsLexicon(t *testing.T) {
	// مریم is a female name but the explicit address term wins.
	raw := newExtractor().Extract("اسم من مریم است ولی من مرد هستم")
	if raw.Gender != profile.GenderMale {
		t.Fatalf("gender = %q, want explicit male", raw.Gender)
	}
}

func TestExtractGenderNoSubstringHit(t *testing.T) {
	raw := newExtractor().Extract("وزن من هشتاد کیلو است")
	if raw.Gender != profile.GenderUnset {
		t.Fatalf("gender = %q, وزن matched as زن", raw.Gender)
	}
}

func TestExtractMilitaryNegativeBeforePositive(t *testing.T) {
	raw := newExtractor().Extract("سربازی نرفتم هنوز")
	if raw.MilitaryStatus != profile.MilitaryExempt {
		t.Fatalf("status = %q, want exempt", raw.MilitaryStatus)
	}

	raw = newExtractor().Extract("کارت پایان خدمت دارم")
	if raw.MilitaryStatus != profile.MilitaryCompleted {
		t.Fatalf("status = %q, want completed", raw.MilitaryStatus)
	}
}

func TestExtractSkillsDictionaryScanWithoutAnchor(t *testing.T) {
	raw := newExtractor().Extract("با جاوا و داکر کار کردم")
	found := map[string]bool{}
	for _, s := range raw.Skills {
		found[s] = true
	}
	if !found["Java"] || !found["Docker"] {
		t.Fatalf("skills = %v, want Java and Docker from the dictionary scan", raw.Skills)
	}
}

func TestExtractInterestsAnchorOnly(t *testing.T) {
	// Without an anchor phrase no interests are extracted, even when the
	// text mentions a known category keyword.
	raw := newExtractor().Extract("در حوزه امنیت کار کردم")
	if len(raw.Interests) != 0 {
		t.Fatalf("interests = %v, want none without an anchor", raw.Interests)
	}
}

func TestExtractAnchoredListLengthChangingLowercase(t *testing.T) {
	// Ⱥ grows and İ shrinks when lowercased; the anchor offset must survive
	// both without slicing out of range or mid-rune.
	raw := newExtractor().Extract("ȺȺȺȺȺȺȺȺ skills: Python")
	if len(raw.Skills) != 1 || raw.Skills[0] != "Python" {
		t.Fatalf("skills = %v, want [Python]", raw.Skills)
	}

	raw = newExtractor().Extract("İİİİİİİİ skills: Python، SQL")
	if len(raw.Skills) != 2 || raw.Skills[0] != "Python" || raw.Skills[1] != "SQL" {
		t.Fatalf("skills = %v, want [Python SQL]", raw.Skills)
	}
	for _, s := range raw.Skills {
		if !utf8.ValidString(s) {
			t.Fatalf("skill %q is not valid UTF-8", s)
		}
	}
}

func TestExtractNeverPanicsOnGarbage(t *testing.T) {
	inputs := []string{"", "    ", "۱۲۳۴", "!!!؟؟؟", "a", "و و و و"}
	for _, in := range inputs {
		raw := newExtractor().Extract(in)
		if raw.Skills == nil || raw.Interests == nil {
			t.Fatalf("Extract(%q) returned nil lists", in)
		}
	}
}
