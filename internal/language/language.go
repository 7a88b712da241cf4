// Package language implements the optional pre-extraction language pass:
// detect whether the input is already Persian and, when it is not, rewrite
// it into Persian through the model translator.
package language

import (
	"context"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/ai"
)

// persianThreshold is the minimum share of Arabic-script letters for a text
// to count as Persian. Mixed texts with Latin skill names still pass easily.
const persianThreshold = 0.35

// Detector decides whether input needs translation before extraction. A nil
// Detector, or one without a translator, is a pass-through.
type Detector struct {
	translator ai.Translator
	logger     *zap.Logger
}

func New(translator ai.Translator, logger *zap.Logger) *Detector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{translator: translator, logger: logger}
}

// IsPersian reports whether the text is predominantly Arabic-script. Texts
// without any letters at all count as Persian so that pure-number answers
// are never sent to translation.
func IsPersian(text string) bool {
	letters, arabic := 0, 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.Is(unicode.Arabic, r) {
			arabic++
		}
	}
	if letters == 0 {
		return true
	}
	return float64(arabic)/float64(letters) >= persianThreshold
}

// EnsurePersian returns the text translated into Persian when it is not
// Persian already. Translation failures fall back to the original text; the
// pass never blocks extraction.
func (d *Detector) EnsurePersian(ctx context.Context, text string) string {
	if d == nil || d.translator == nil {
		return text
	}
	if strings.TrimSpace(text) == "" || IsPersian(text) {
		return text
	}

	translated, err := d.translator.Translate(ctx, text)
	if err != nil {
		d.logger.Warn("translation failed, using original text", zap.Error(err))
		return text
	}
	if strings.TrimSpace(translated) == "" {
		return text
	}
	return translated
}
