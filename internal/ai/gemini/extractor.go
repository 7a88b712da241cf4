// Package gemini adapts the Google Gemini API to the extraction interfaces
// of the ai package. Prompts and vocabularies are Persian; the adapter never
// trusts the model output shape and coerces everything field by field.
package gemini

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/ai"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/logger"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/profile"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/textnorm"
)

//go:embed system_prompt.md
var profileSystemPrompt string

const (
	extractTemperature = 0.1
	suggestTemperature = 0.1

	defaultMaxLogLength = 200
)

// generator is the single-round-trip prompt surface the adapter builds on.
// *Generator satisfies it; tests substitute a canned implementation.
type generator interface {
	Generate(ctx context.Context, system, user string, temperature float32) (string, error)
}

// Extractor implements ai.Extractor on top of a Gemini generator.
type Extractor struct {
	gen    generator
	maxLog int
	logger *zap.Logger
}

// NewExtractor builds the adapter. maxLogLength bounds logged completion
// previews; zero or negative selects the default.
func NewExtractor(gen *Generator, maxLogLength int, logger *zap.Logger) *Extractor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{gen: gen, maxLog: maxLogLength, logger: logger}
}

// profileExamples is a small fixed set of input→output pairs shown to the
// model before the user text. They pin down the expected JSON shape better
// than the instructions alone.
const profileExamples = `مثال:
متن: «سلام، من علی رضایی هستم، ۲۸ سالمه و ۴ سال سابقه کار دارم. ساکن تهران. مهارت هام پایتون و SQL.»
خروجی: {"first_name": "علی", "last_name": "رضایی", "age": 28, "gender": "مرد", "experience_years": 4, "city": "تهران", "military_status": "", "skills": ["Python", "SQL"], "interests": []}

مثال:
متن: «مریم هستم، معاف از خدمت نیستم چون خانمم! به هوش مصنوعی علاقه دارم.»
خروجی: {"first_name": "مریم", "last_name": "", "age": "", "gender": "زن", "experience_years": "", "city": "", "military_status": "", "skills": [], "interests": ["هوش مصنوعی"]}
`

// ExtractProfile runs the model over a whole utterance and coerces the JSON
// answer into a typed extraction. Enum fields only accept the exact closed
// vocabulary; everything else is dropped to unset.
func (e *Extractor) ExtractProfile(ctx context.Context, text string) (profile.RawExtraction, error) {
	user := profileExamples + "\nمتن کاربر:\n" + strings.TrimSpace(text)

	completion, err := e.gen.Generate(ctx, profileSystemPrompt, user, extractTemperature)
	if err != nil {
		return profile.RawExtraction{}, err
	}

	obj, err := decodeObject(completion)
	if err != nil {
		e.logger.Warn("profile completion not parseable",
			zap.String("completion", logger.TruncateForLog(completion, e.logLimit())))
		return profile.RawExtraction{}, err
	}

	raw := profile.RawExtraction{
		FirstName:       coerceString(obj[string(profile.FieldFirstName)]),
		LastName:        coerceString(obj[string(profile.FieldLastName)]),
		Age:             coerceInt(obj[string(profile.FieldAge)], profile.ValidAge),
		Gender:          coerceGender(obj[string(profile.FieldGender)]),
		ExperienceYears: coerceInt(obj[string(profile.FieldExperienceYears)], profile.ValidExperience),
		City:            coerceString(obj[string(profile.FieldCity)]),
		MilitaryStatus:  coerceMilitaryStatus(obj[string(profile.FieldMilitaryStatus)]),
		Skills:          coerceStringList(obj[string(profile.FieldSkills)]),
		Interests:       coerceStringList(obj[string(profile.FieldInterests)]),
	}
	return raw, nil
}

const fieldSystemPrompt = `تو دستیار فرم استخدام هستی. به کاربر یک سوال مشخص پرسیده شده و او پاسخ داده است.
فقط مقدار خامِ پاسخ را برگردان؛ بدون جمله اضافه، بدون توضیح، بدون علامت نقل قول.
اگر پاسخ ربطی به سوال نداشت یا مقدار قابل استخراجی نداشت، فقط کلمه «نامشخص» را برگردان.`

// ExtractField runs the model in single-field mode and returns an extraction
// with only that field populated. The answer is a bare value, so each field
// kind has its own coercion path.
func (e *Extractor) ExtractField(ctx context.Context, field profile.Field, text string) (profile.RawExtraction, error) {
	if !field.Known() {
		return profile.RawExtraction{}, fmt.Errorf("unknown field %q", field)
	}

	user := fmt.Sprintf("سوال: %s\nپاسخ کاربر: %s", field.Question(), strings.TrimSpace(text))

	completion, err := e.gen.Generate(ctx, fieldSystemPrompt, user, extractTemperature)
	if err != nil {
		return profile.RawExtraction{}, err
	}

	answer := firstLine(stripCodeFence(completion))
	if answer == "" || answer == "نامشخص" {
		return profile.RawExtraction{}, nil
	}

	var raw profile.RawExtraction
	switch field {
	case profile.FieldFirstName:
		raw.FirstName = answer
	case profile.FieldLastName:
		raw.LastName = answer
	case profile.FieldAge:
		if n, ok := profile.ParseInt(answer); ok && profile.ValidAge(n.Value) {
			raw.Age = n
		}
	case profile.FieldGender:
		raw.Gender = profile.ParseGender(answer)
	case profile.FieldExperienceYears:
		if n, ok := profile.ParseInt(answer); ok && profile.ValidExperience(n.Value) {
			raw.ExperienceYears = n
		}
	case profile.FieldCity:
		raw.City = answer
	case profile.FieldSkills:
		raw.Skills = textnorm.SplitList(answer)
	case profile.FieldMilitaryStatus:
		raw.MilitaryStatus = profile.ParseMilitaryStatus(answer)
	case profile.FieldInterests:
		raw.Interests = textnorm.SplitList(answer)
	}
	return raw, nil
}

const suggestSystemPrompt = `بر اساس پروفایل شغلی زیر، مهارت‌ها و علایق حرفه‌ای محتمل فرد را حدس بزن.
فقط یک JSON با این شکل برگردان و هیچ متن دیگری ننویس:
{"skills": ["..."], "interests": ["..."]}`

// SuggestCapabilities asks the model to infer likely skills and interests
// from an otherwise resolved profile.
func (e *Extractor) SuggestCapabilities(ctx context.Context, p profile.ApplicantProfile) (skills, interests []string, err error) {
	completion, err := e.gen.Generate(ctx, suggestSystemPrompt, "پروفایل:\n"+p.JSON(), suggestTemperature)
	if err != nil {
		return nil, nil, err
	}

	obj, err := decodeObject(completion)
	if err != nil {
		return nil, nil, err
	}

	var caps struct {
		Skills    []string `mapstructure:"skills"`
		Interests []string `mapstructure:"interests"`
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &caps,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := dec.Decode(obj); err != nil {
		return nil, nil, fmt.Errorf("%w: decode capabilities: %v", ai.ErrBadResponse, err)
	}
	return cleanList(caps.Skills), cleanList(caps.Interests), nil
}

func (e *Extractor) logLimit() int {
	if e.maxLog <= 0 {
		return defaultMaxLogLength
	}
	return e.maxLog
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return strings.Trim(strings.TrimSpace(s), `"«»'`)
}
