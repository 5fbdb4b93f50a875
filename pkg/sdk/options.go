package msgcheck

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	vectorizerPath  string
	classifierPath  string
	maxArtifactSize int64

	maxMessageRunes    int
	maxMessageRunesSet bool

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithArtifacts sets the vectorizer and classifier artifact paths. Required.
func WithArtifacts(vectorizerPath, classifierPath string) Option {
	return optionFunc(func(c *clientConfig) {
		c.vectorizerPath = vectorizerPath
		c.classifierPath = classifierPath
	})
}

// WithMaxArtifactSize caps the decompressed size of each artifact in bytes.
// Default: 512 MiB.
func WithMaxArtifactSize(n int64) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxArtifactSize = n
	})
}

// WithMaxMessageRunes bounds the message length. Zero disables the bound.
// Default: 10000.
func WithMaxMessageRunes(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxMessageRunes = n
		c.maxMessageRunesSet = true
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
