package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/profile"
)

const (
	recommendTemperature = 0.7
	summaryTemperature   = 0.3
)

const recommendSystemPrompt = `تو یک مشاور شغلی حرفه‌ای هستی. بر اساس پروفایل متقاضی، سه تا پنج عنوان شغلی مناسب پیشنهاد بده.
برای هر عنوان یک خط توضیح کوتاه بنویس که چرا با مهارت‌ها و سابقه او جور است. به فارسی و خودمانی ولی حرفه‌ای بنویس.`

const summarySystemPrompt = `تو یک کارشناس جذب و استخدام هستی. از روی پروفایل متقاضی یک پاراگراف معرفی حرفه‌ای به فارسی بنویس؛
کوتاه، روان و مناسب ارسال برای کارفرما. چیزی که در پروفایل نیست از خودت اضافه نکن.`

// Advisor generates free-text career follow-ups for a completed profile.
type Advisor struct {
	gen generator
}

func NewAdvisor(gen *Generator) *Advisor {
	return &Advisor{gen: gen}
}

// RecommendJobs returns Persian prose suggesting job titles for the profile.
func (a *Advisor) RecommendJobs(ctx context.Context, p profile.ApplicantProfile) (string, error) {
	return a.gen.Generate(ctx, recommendSystemPrompt, "پروفایل متقاضی:\n"+p.JSON(), recommendTemperature)
}

// Summarize returns a short Persian introduction paragraph for the profile.
func (a *Advisor) Summarize(ctx context.Context, p profile.ApplicantProfile) (string, error) {
	return a.gen.Generate(ctx, summarySystemPrompt, "پروفایل متقاضی:\n"+p.JSON(), summaryTemperature)
}

const translateSystemPrompt = `متن کاربر را به فارسی روان ترجمه کن. فقط متن ترجمه‌شده را برگردان، بدون هیچ توضیحی.`

// Translator rewrites non-Persian input into Persian before extraction.
type Translator struct {
	gen generator
}

func NewTranslator(gen *Generator) *Translator {
	return &Translator{gen: gen}
}

func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	out, err := t.gen.Generate(ctx, translateSystemPrompt, text, summaryTemperature)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	return strings.TrimSpace(out), nil
}
