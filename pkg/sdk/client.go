package msgcheck

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/kailas-cloud/msgcheck/internal/domain"
	"github.com/kailas-cloud/msgcheck/internal/repository/artifact"
	healthuc "github.com/kailas-cloud/msgcheck/internal/usecase/health"
	predictuc "github.com/kailas-cloud/msgcheck/internal/usecase/predict"
)

// predictUseCase is the internal interface for classification, replaceable in tests.
type predictUseCase interface {
	Predict(ctx context.Context, text string) (domain.Label, error)
	Classes() []domain.Label
}

// Client is the msgcheck SDK entry point.
type Client struct {
	predictSvc predictUseCase
	healthSvc  healthUseCase
	obs        *observer
}

// Result is the outcome of classifying one message of a batch.
type Result struct {
	Label Label
	Err   error
}

// New loads the artifacts and creates a Client.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.vectorizerPath == "" || cfg.classifierPath == "" {
		return nil, errors.New("msgcheck: artifact paths required (use WithArtifacts)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	model, err := artifact.New().
		WithMaxSize(cfg.maxArtifactSize).
		LoadModel(cfg.vectorizerPath, cfg.classifierPath)
	obs.observe("load", start, err, "vectorizer", cfg.vectorizerPath, "classifier", cfg.classifierPath)
	if err != nil {
		return nil, fmt.Errorf("msgcheck: %w", err)
	}

	svc, err := predictuc.New(model.Vectorizer, model.Classifier)
	if err != nil {
		return nil, fmt.Errorf("msgcheck: %w", err)
	}
	if cfg.maxMessageRunesSet {
		svc.WithMaxMessageRunes(cfg.maxMessageRunes)
	}

	return &Client{
		predictSvc: svc,
		healthSvc: healthuc.New(
			healthuc.CheckFunc(svc.CheckVectorizer),
			healthuc.CheckFunc(svc.CheckClassifier),
		),
		obs: obs,
	}, nil
}

// Predict classifies a single message. An empty message fails with ErrNoMessage.
func (c *Client) Predict(ctx context.Context, text string) (label Label, err error) {
	start := time.Now()
	defer func() {
		c.obs.observe("predict", start, err, "message_runes", utf8.RuneCountInString(text))
	}()

	return c.predictSvc.Predict(ctx, text)
}

// PredictAll classifies messages in order. It stops early when ctx is done,
// marking the remaining results with the context error.
func (c *Client) PredictAll(ctx context.Context, texts []string) []Result {
	results := make([]Result, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(texts); j++ {
				results[j].Err = err
			}
			break
		}
		results[i].Label, results[i].Err = c.Predict(ctx, text)
	}
	return results
}

// Classes returns every label Predict can return, in fitted order.
func (c *Client) Classes() []Label {
	classes := c.predictSvc.Classes()
	out := make([]Label, len(classes))
	copy(out, classes)
	return out
}
