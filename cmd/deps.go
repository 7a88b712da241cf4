package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/ai"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/ai/gemini"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/canon"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/conversation"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/heuristics"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/language"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/lexicon"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/logger"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/reconcile"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/secrets"
)

// core bundles the extraction components the commands share. The model side
// (extractor, advisor, detector's translator) is nil when AI is disabled or
// misconfigured; everything still works heuristic-only.
type core struct {
	lexicon    *lexicon.Store
	pipeline   *reconcile.Pipeline
	engine     *conversation.Engine
	advisor    ai.Advisor
	generator  *gemini.Generator
	modelExtra ai.Extractor
}

// buildCore wires the lexicon, the heuristics, the optional Gemini adapter
// and the reconciler into a ready pipeline and conversation engine.
func buildCore(ctx context.Context, config *Config, log *zap.Logger) (*core, error) {
	lex, err := loadLexicon(config, log)
	if err != nil {
		return nil, err
	}

	c := canon.New(lex)
	heur := heuristics.New(lex)

	out := &core{lexicon: lex}

	var translator ai.Translator
	if config.AI != nil && config.AI.Enabled {
		gen, err := newGenerator(ctx, config.AI, log)
		if err != nil {
			log.Warn("ai disabled, running heuristic-only", zap.Error(err))
		} else {
			out.generator = gen
			out.modelExtra = gemini.NewExtractor(gen, config.AI.Gemini.MaxLogLength, log)
			out.advisor = gemini.NewAdvisor(gen)
			if config.AI.Translate {
				translator = gemini.NewTranslator(gen)
			}
		}
	}

	var suggester reconcile.Suggester
	if out.modelExtra != nil {
		suggester = out.modelExtra
	}

	rec := reconcile.New(lex, c, suggester, log)
	detector := language.New(translator, log)

	out.pipeline = reconcile.NewPipeline(heur, out.modelExtra, detector, rec, log)
	out.engine = conversation.NewEngine(conversation.NewMemoryStore(), out.modelExtra, c, log)

	return out, nil
}

func loadLexicon(config *Config, log *zap.Logger) (*lexicon.Store, error) {
	if config.NamesFile == "" {
		return lexicon.NewStore(), nil
	}

	lex, err := lexicon.NewStoreFromFile(config.NamesFile)
	if err != nil {
		log.Warn("names file partially loaded", zap.String("file", config.NamesFile), zap.Error(err))
	}
	return lex, nil
}

func newGenerator(ctx context.Context, cfg *AIConfig, log *zap.Logger) (*gemini.Generator, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		cfg.Gemini = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	genLogger := logger.WithCommonFields(log, "gemini", cfg.Gemini.Model)

	timeout := time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second
	return gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, timeout, genLogger)
}
