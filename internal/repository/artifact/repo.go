// Package artifact loads fitted vectorizer and classifier artifacts from disk.
//
// An artifact is a JSON document, optionally gzip-compressed, whose "kind"
// and "version" fields select the decoder.
package artifact

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"github.com/kailas-cloud/msgcheck/internal/domain"
	"github.com/kailas-cloud/msgcheck/internal/model/linear"
	"github.com/kailas-cloud/msgcheck/internal/model/naivebayes"
	"github.com/kailas-cloud/msgcheck/internal/model/tfidf"
)

// DefaultMaxSize caps the decompressed size of a single artifact.
const DefaultMaxSize = 512 << 20

var gzipMagic = []byte{0x1f, 0x8b}

type decoder[T any] struct {
	version int
	decode  func(data []byte) (T, error)
}

var vectorizerDecoders = map[string]decoder[domain.Vectorizer]{
	tfidf.Kind: {
		version: tfidf.Version,
		decode: func(data []byte) (domain.Vectorizer, error) {
			var doc tfidfDoc
			if err := json.Unmarshal(data, &doc); err != nil {
				return nil, fmt.Errorf("%w: decode %s: %w", domain.ErrArtifact, tfidf.Kind, err)
			}
			m, err := tfidf.New(doc.params())
			if err != nil {
				return nil, err
			}
			return m, nil
		},
	},
}

var classifierDecoders = map[string]decoder[domain.Classifier]{
	linear.Kind: {
		version: linear.Version,
		decode: func(data []byte) (domain.Classifier, error) {
			var doc linearDoc
			if err := json.Unmarshal(data, &doc); err != nil {
				return nil, fmt.Errorf("%w: decode %s: %w", domain.ErrArtifact, linear.Kind, err)
			}
			m, err := linear.New(doc.params())
			if err != nil {
				return nil, err
			}
			return m, nil
		},
	},
	naivebayes.Kind: {
		version: naivebayes.Version,
		decode: func(data []byte) (domain.Classifier, error) {
			var doc naiveBayesDoc
			if err := json.Unmarshal(data, &doc); err != nil {
				return nil, fmt.Errorf("%w: decode %s: %w", domain.ErrArtifact, naivebayes.Kind, err)
			}
			m, err := naivebayes.New(doc.params())
			if err != nil {
				return nil, err
			}
			return m, nil
		},
	},
}

// Model is a vectorizer paired with a classifier that accepts its vectors.
type Model struct {
	Vectorizer domain.Vectorizer
	Classifier domain.Classifier
}

// Repo reads artifacts from the local filesystem.
type Repo struct {
	maxSize int64
}

// New creates an artifact repository.
func New() *Repo {
	return &Repo{maxSize: DefaultMaxSize}
}

// WithMaxSize overrides the decompressed size cap.
func (r *Repo) WithMaxSize(n int64) *Repo {
	if n > 0 {
		r.maxSize = n
	}
	return r
}

// LoadVectorizer reads and decodes a vectorizer artifact.
func (r *Repo) LoadVectorizer(path string) (domain.Vectorizer, error) {
	data, err := r.read(path)
	if err != nil {
		return nil, err
	}
	v, err := decode(data, vectorizerDecoders)
	if err != nil {
		return nil, fmt.Errorf("vectorizer %s: %w", path, err)
	}
	return v, nil
}

// LoadClassifier reads and decodes a classifier artifact.
func (r *Repo) LoadClassifier(path string) (domain.Classifier, error) {
	data, err := r.read(path)
	if err != nil {
		return nil, err
	}
	c, err := decode(data, classifierDecoders)
	if err != nil {
		return nil, fmt.Errorf("classifier %s: %w", path, err)
	}
	return c, nil
}

// LoadModel loads both artifacts and checks they agree on the feature count.
func (r *Repo) LoadModel(vectorizerPath, classifierPath string) (Model, error) {
	vec, err := r.LoadVectorizer(vectorizerPath)
	if err != nil {
		return Model{}, err
	}
	clf, err := r.LoadClassifier(classifierPath)
	if err != nil {
		return Model{}, err
	}
	if vec.Features() != clf.Features() {
		return Model{}, fmt.Errorf("%w: vectorizer produces %d features, classifier expects %d",
			domain.ErrArtifactShape, vec.Features(), clf.Features())
	}
	return Model{Vectorizer: vec, Classifier: clf}, nil
}

// read returns the artifact bytes, decompressing gzip transparently.
func (r *Repo) read(path string) ([]byte, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrArtifact, path, err)
	}
	defer func() { _ = f.Close() }()

	br := bufio.NewReader(f)
	var src io.Reader = br
	if head, _ := br.Peek(len(gzipMagic)); bytes.Equal(head, gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("%w: gzip %s: %w", domain.ErrArtifact, path, err)
		}
		defer func() { _ = zr.Close() }()
		src = zr
	}

	data, err := io.ReadAll(io.LimitReader(src, r.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrArtifact, path, err)
	}
	if int64(len(data)) > r.maxSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", domain.ErrArtifact, path, r.maxSize)
	}
	return data, nil
}

func decode[T any](data []byte, decoders map[string]decoder[T]) (T, error) {
	var zero T

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return zero, fmt.Errorf("%w: parse envelope: %w", domain.ErrArtifact, err)
	}

	d, ok := decoders[env.Kind]
	if !ok {
		return zero, fmt.Errorf("%w %q", domain.ErrUnknownArtifactKind, env.Kind)
	}
	if env.Version != d.version {
		return zero, fmt.Errorf("%w: %s artifact version %d, supported %d",
			domain.ErrArtifactVersion, env.Kind, env.Version, d.version)
	}

	v, err := d.decode(data)
	if err != nil {
		return zero, fmt.Errorf("%s v%d: %w", env.Kind, env.Version, err)
	}
	return v, nil
}
