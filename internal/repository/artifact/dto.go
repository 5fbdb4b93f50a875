package artifact

import (
	"github.com/kailas-cloud/msgcheck/internal/domain"
	"github.com/kailas-cloud/msgcheck/internal/model/linear"
	"github.com/kailas-cloud/msgcheck/internal/model/naivebayes"
	"github.com/kailas-cloud/msgcheck/internal/model/tfidf"
)

// envelope is the header shared by every artifact document.
type envelope struct {
	Kind    string `json:"kind"`
	Version int    `json:"version"`
}

// tfidfDoc is the on-disk form of a fitted TF-IDF vectorizer.
// Pointer fields distinguish "absent" from the zero value.
type tfidfDoc struct {
	Vocabulary   map[string]int `json:"vocabulary"`
	IDF          []float64      `json:"idf"`
	UseIDF       *bool          `json:"use_idf"`
	Lowercase    *bool          `json:"lowercase"`
	StripAccents string         `json:"strip_accents"`
	TokenPattern string         `json:"token_pattern"`
	NgramRange   []int          `json:"ngram_range"`
	StopWords    []string       `json:"stop_words"`
	Binary       bool           `json:"binary"`
	SublinearTF  bool           `json:"sublinear_tf"`
	Norm         *string        `json:"norm"`
}

func (d *tfidfDoc) params() tfidf.Params {
	p := tfidf.DefaultParams()
	p.Vocabulary = d.Vocabulary
	p.IDF = d.IDF
	if d.UseIDF != nil {
		p.UseIDF = *d.UseIDF
	}
	if d.Lowercase != nil {
		p.Lowercase = *d.Lowercase
	}
	p.StripAccents = tfidf.Accents(d.StripAccents)
	p.TokenPattern = d.TokenPattern
	if len(d.NgramRange) == 2 {
		p.NgramMin, p.NgramMax = d.NgramRange[0], d.NgramRange[1]
	} else if len(d.NgramRange) != 0 {
		// Rejected by tfidf.New.
		p.NgramMin, p.NgramMax = 0, 0
	}
	p.StopWords = d.StopWords
	p.Binary = d.Binary
	p.SublinearTF = d.SublinearTF
	if d.Norm != nil {
		switch *d.Norm {
		case "", "none":
			p.Norm = tfidf.NormNone
		default:
			p.Norm = tfidf.Norm(*d.Norm)
		}
	}
	return p
}

// linearDoc is the on-disk form of a linear classifier.
type linearDoc struct {
	Classes   []domain.Label `json:"classes"`
	Coef      [][]float64    `json:"coef"`
	Intercept []float64      `json:"intercept"`
}

func (d *linearDoc) params() linear.Params {
	return linear.Params{
		Classes:   d.Classes,
		Coef:      d.Coef,
		Intercept: d.Intercept,
	}
}

// naiveBayesDoc is the on-disk form of a multinomial naive Bayes classifier.
type naiveBayesDoc struct {
	Classes        []domain.Label `json:"classes"`
	ClassLogPrior  []float64      `json:"class_log_prior"`
	FeatureLogProb [][]float64    `json:"feature_log_prob"`
}

func (d *naiveBayesDoc) params() naivebayes.Params {
	return naivebayes.Params{
		Classes:        d.Classes,
		ClassLogPrior:  d.ClassLogPrior,
		FeatureLogProb: d.FeatureLogProb,
	}
}
