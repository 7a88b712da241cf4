// Package conversation implements the slot-filling intake dialogue: one
// Persian question per missing required field, answers interpreted by the
// model adapter in single-field mode.
package conversation

import (
	"context"

	"go.uber.org/zap"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/ai"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/canon"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/profile"
)

// CompletionMessage is returned for every turn on a completed session.
const CompletionMessage = "ممنون! اطلاعات شما کامل شد."

// Turn is the engine's answer to a start or respond call.
type Turn struct {
	Message   string                    `json:"message"`
	Completed bool                      `json:"completed"`
	Updated   []profile.Field           `json:"updated,omitempty"`
	Profile   *profile.ApplicantProfile `json:"profile,omitempty"`
}

// Engine drives the per-session state machine over a Store.
type Engine struct {
	store  Store
	model  ai.Extractor
	canon  *canon.Canonicalizer
	logger *zap.Logger
}

func NewEngine(store Store, model ai.Extractor, c *canon.Canonicalizer, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{store: store, model: model, canon: c, logger: logger}
}

// Start creates or overwrites the session and returns the first question.
// A restarted session loses everything collected before.
func (e *Engine) Start(sessionID string) Turn {
	s := &Session{ID: sessionID, Collected: profile.RawExtraction{}}
	e.store.Put(s)

	first := profile.RequiredFields()[0]
	return Turn{Message: first.Question()}
}

// Respond interprets the answer for the session's pending field and returns
// the next question. On a completed or unknown session it returns the
// completion message unconditionally. An adapter failure leaves the field
// unset and the same question is asked again.
func (e *Engine) Respond(ctx context.Context, sessionID, text string) Turn {
	s, ok := e.store.Get(sessionID)
	if !ok || s.Completed {
		return e.completedTurn(s)
	}

	pending, _ := firstMissing(&s.Collected)
	if e.model == nil {
		return Turn{Message: pending.Question()}
	}

	var updated []profile.Field
	raw, err := e.model.ExtractField(ctx, pending, text)
	if err != nil {
		e.logger.Warn("field extraction failed",
			zap.String("session", sessionID),
			zap.String("field", string(pending)),
			zap.Error(err))
	} else {
		updated = s.Collected.Merge(&raw)
	}

	next, missing := firstMissing(&s.Collected)
	if !missing {
		s.Completed = true
	}
	e.store.Put(s)

	if s.Completed {
		t := e.completedTurn(s)
		t.Updated = updated
		return t
	}
	return Turn{Message: next.Question(), Updated: updated}
}

// completedTurn renders the terminal state, including the finalized profile
// when the session is known.
func (e *Engine) completedTurn(s *Session) Turn {
	t := Turn{Message: CompletionMessage, Completed: true}
	if s != nil {
		p := e.finalize(&s.Collected)
		t.Profile = &p
	}
	return t
}

// finalize converts the collected fields into a canonicalized profile.
func (e *Engine) finalize(raw *profile.RawExtraction) profile.ApplicantProfile {
	p := profile.New()
	p.FirstName = raw.FirstName
	p.LastName = raw.LastName
	p.Age = raw.Age
	p.Gender = raw.Gender
	p.ExperienceYears = raw.ExperienceYears
	p.City = raw.City
	p.MilitaryStatus = raw.MilitaryStatus
	if e.canon != nil {
		p.Skills = e.canon.Canonicalize(raw.Skills)
		p.Interests = e.canon.Categorize(e.canon.Canonicalize(raw.Interests))
	} else {
		p.Skills = append(p.Skills, raw.Skills...)
		p.Interests = append(p.Interests, raw.Interests...)
	}
	return p
}

func firstMissing(raw *profile.RawExtraction) (profile.Field, bool) {
	for _, f := range profile.RequiredFields() {
		if !raw.Has(f) {
			return f, true
		}
	}
	return "", false
}
