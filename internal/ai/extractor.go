// Package ai declares the contract between the extraction core and the
// generative-model adapters. Callers depend on these interfaces and
// sentinels only; the Gemini implementation lives in the gemini subpackage.
package ai

import (
	"context"
	"errors"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/profile"
)

var (
	// ErrUnavailable marks a model service that is not configured, not
	// reachable or timed out. Always recoverable: callers fall back to the
	// heuristic extraction.
	ErrUnavailable = errors.New("model service unavailable")

	// ErrBadResponse marks a model that answered but produced no parseable
	// JSON object or value. Treated as an empty extraction for the call.
	ErrBadResponse = errors.New("unparseable model response")
)

// Extractor is the full-profile extraction strategy backed by a generative
// model.
type Extractor interface {
	// ExtractProfile runs the model over a whole normalized utterance and
	// returns the coerced per-field result.
	ExtractProfile(ctx context.Context, text string) (profile.RawExtraction, error)

	// ExtractField runs the model in single-field mode: it sends the
	// field's question text, expects a bare value and returns an extraction
	// with only that field populated.
	ExtractField(ctx context.Context, field profile.Field, text string) (profile.RawExtraction, error)

	// SuggestCapabilities infers skills and interests from an otherwise
	// resolved profile. Best-effort: callers absorb failures silently.
	SuggestCapabilities(ctx context.Context, p profile.ApplicantProfile) (skills, interests []string, err error)
}

// Advisor generates free-text follow-ups for a completed profile.
type Advisor interface {
	RecommendJobs(ctx context.Context, p profile.ApplicantProfile) (string, error)
	Summarize(ctx context.Context, p profile.ApplicantProfile) (string, error)
}

// Translator rewrites non-Persian input into Persian before extraction. A
// pass-through implementation is a valid substitute.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}
