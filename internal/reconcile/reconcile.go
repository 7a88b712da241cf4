// Package reconcile merges the heuristic and model extraction results into a
// single validated applicant profile.
package reconcile

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/canon"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/lexicon"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/profile"
)

// Suggester fills in skills and interests the extraction strategies missed.
// It is optional and strictly best-effort.
type Suggester interface {
	SuggestCapabilities(ctx context.Context, p profile.ApplicantProfile) (skills, interests []string, err error)
}

// Reconciler applies the precedence rules: the model wins on scalar fields
// it answered, the heuristics backfill the rest, and lists are the union
// with model items first.
type Reconciler struct {
	lex       *lexicon.Store
	canon     *canon.Canonicalizer
	suggester Suggester
	logger    *zap.Logger
}

func New(lex *lexicon.Store, c *canon.Canonicalizer, suggester Suggester, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{lex: lex, canon: c, suggester: suggester, logger: logger}
}

// Reconcile builds the final profile from the heuristic extraction and, when
// the model pass produced one, the model extraction. A nil model extraction
// means the model was unavailable; the result is then heuristic-only and the
// suggester is skipped.
func (r *Reconciler) Reconcile(ctx context.Context, heur profile.RawExtraction, model *profile.RawExtraction) profile.ApplicantProfile {
	modelRan := model != nil
	if model == nil {
		model = &profile.RawExtraction{}
	}

	p := profile.New()
	p.FirstName = pickString(model.FirstName, heur.FirstName)
	p.LastName = pickString(model.LastName, heur.LastName)
	p.Age = pickInt(model.Age, heur.Age)
	p.ExperienceYears = pickInt(model.ExperienceYears, heur.ExperienceYears)
	p.City = pickString(model.City, heur.City)
	p.MilitaryStatus = pickMilitary(model.MilitaryStatus, heur.MilitaryStatus)
	p.Gender = r.resolveGender(model.Gender, heur.Gender, p.FirstName)

	p.Skills = r.canon.Canonicalize(pickList(model.Skills, heur.Skills))
	p.Interests = r.canon.Categorize(r.canon.Canonicalize(pickList(model.Interests, heur.Interests)))

	if modelRan {
		r.suggest(ctx, &p)
	}
	return p
}

// resolveGender prefers an explicit statement from either strategy and only
// then consults the name lexicon.
func (r *Reconciler) resolveGender(model, heur profile.Gender, firstName string) profile.Gender {
	if model != profile.GenderUnset {
		return model
	}
	if heur != profile.GenderUnset {
		return heur
	}
	return r.lex.GenderForName(firstName)
}

// suggest backfills empty list fields from the suggester. Failures are
// logged and otherwise ignored.
func (r *Reconciler) suggest(ctx context.Context, p *profile.ApplicantProfile) {
	if r.suggester == nil || (len(p.Skills) > 0 && len(p.Interests) > 0) {
		return
	}

	skills, interests, err := r.suggester.SuggestCapabilities(ctx, *p)
	if err != nil {
		r.logger.Debug("capability suggestion failed", zap.Error(err))
		return
	}
	if len(p.Skills) == 0 && len(skills) > 0 {
		p.Skills = r.canon.Canonicalize(skills)
	}
	if len(p.Interests) == 0 && len(interests) > 0 {
		p.Interests = r.canon.Categorize(r.canon.Canonicalize(interests))
	}
}

func pickString(model, heur string) string {
	if model != "" {
		return model
	}
	return heur
}

func pickInt(model, heur profile.OptionalInt) profile.OptionalInt {
	if model.Set {
		return model
	}
	return heur
}

func pickMilitary(model, heur profile.MilitaryStatus) profile.MilitaryStatus {
	if model != profile.MilitaryUnset {
		return model
	}
	return heur
}

// pickList returns the model list when it carries any non-blank item,
// otherwise the heuristic list.
func pickList(model, heur []string) []string {
	for _, item := range model {
		if strings.TrimSpace(item) != "" {
			return model
		}
	}
	return heur
}
