package reconcile

import (
	"context"

	"go.uber.org/zap"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/ai"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/heuristics"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/language"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/profile"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/textnorm"
)

// Pipeline is the full-text extraction entry point: normalize, run the
// language pass, run both strategies and reconcile. The model side is
// optional and never fatal.
type Pipeline struct {
	heur       *heuristics.Extractor
	model      ai.Extractor
	detector   *language.Detector
	reconciler *Reconciler
	logger     *zap.Logger
}

func NewPipeline(heur *heuristics.Extractor, model ai.Extractor, detector *language.Detector, reconciler *Reconciler, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{heur: heur, model: model, detector: detector, reconciler: reconciler, logger: logger}
}

// Extract turns free text into a reconciled profile. The heuristic and model
// extractions run concurrently; a model failure downgrades the call to
// heuristic-only.
func (p *Pipeline) Extract(ctx context.Context, rawText string) profile.ApplicantProfile {
	text := textnorm.Normalize(rawText)
	text = p.detector.EnsurePersian(ctx, text)

	var (
		modelRaw profile.RawExtraction
		modelErr error
		done     = make(chan struct{})
	)
	if p.model != nil {
		go func() {
			defer close(done)
			modelRaw, modelErr = p.model.ExtractProfile(ctx, text)
		}()
	} else {
		close(done)
	}

	heurRaw := p.heur.Extract(text)
	<-done

	var model *profile.RawExtraction
	switch {
	case p.model == nil:
	case modelErr != nil:
		p.logger.Warn("model extraction failed, falling back to heuristics", zap.Error(modelErr))
	default:
		model = &modelRaw
	}

	return p.reconciler.Reconcile(ctx, heurRaw, model)
}
