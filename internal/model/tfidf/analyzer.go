package tfidf

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultTokenPattern matches runs of two or more word characters.
const DefaultTokenPattern = `[\p{L}\p{N}_]{2,}`

// Accents selects accent stripping before tokenization.
type Accents string

const (
	// AccentsKeep leaves the text untouched.
	AccentsKeep Accents = ""
	// AccentsASCII decomposes and drops every non-ASCII rune.
	AccentsASCII Accents = "ascii"
	// AccentsUnicode decomposes and drops combining marks.
	AccentsUnicode Accents = "unicode"
)

// analyzer splits text into the terms looked up in the vocabulary.
type analyzer struct {
	lowercase bool
	accents   Accents
	pattern   *regexp.Regexp
	group     bool
	stopWords map[string]struct{}
	minN      int
	maxN      int
}

func newAnalyzer(p Params) (*analyzer, error) {
	pattern := p.TokenPattern
	if pattern == "" {
		pattern = DefaultTokenPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("token pattern %q: %w", pattern, err)
	}
	if re.NumSubexp() > 1 {
		return nil, fmt.Errorf("token pattern %q has %d capture groups, at most 1 allowed", pattern, re.NumSubexp())
	}

	switch p.StripAccents {
	case AccentsKeep, AccentsASCII, AccentsUnicode:
	default:
		return nil, fmt.Errorf("unknown strip_accents %q", p.StripAccents)
	}

	if p.NgramMin < 1 || p.NgramMax < p.NgramMin {
		return nil, fmt.Errorf("invalid ngram range [%d, %d]", p.NgramMin, p.NgramMax)
	}

	stop := make(map[string]struct{}, len(p.StopWords))
	for _, w := range p.StopWords {
		stop[w] = struct{}{}
	}

	return &analyzer{
		lowercase: p.Lowercase,
		accents:   p.StripAccents,
		pattern:   re,
		group:     re.NumSubexp() == 1,
		stopWords: stop,
		minN:      p.NgramMin,
		maxN:      p.NgramMax,
	}, nil
}

// analyze returns the terms of text in order, n-grams included.
func (a *analyzer) analyze(text string) []string {
	return a.ngrams(a.tokenize(a.preprocess(text)))
}

func (a *analyzer) preprocess(text string) string {
	if a.lowercase {
		text = strings.ToLower(text)
	}
	switch a.accents {
	case AccentsUnicode:
		// Transformers keep internal state, so each call builds its own chain.
		t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
		if out, _, err := transform.String(t, text); err == nil {
			text = out
		}
	case AccentsASCII:
		text = stripNonASCII(norm.NFKD.String(text))
	}
	return text
}

func stripNonASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (a *analyzer) tokenize(text string) []string {
	var tokens []string
	if a.group {
		for _, m := range a.pattern.FindAllStringSubmatch(text, -1) {
			tokens = append(tokens, m[1])
		}
	} else {
		tokens = a.pattern.FindAllString(text, -1)
	}
	if len(a.stopWords) == 0 {
		return tokens
	}
	kept := tokens[:0]
	for _, tok := range tokens {
		if _, stop := a.stopWords[tok]; !stop {
			kept = append(kept, tok)
		}
	}
	return kept
}

func (a *analyzer) ngrams(tokens []string) []string {
	if a.maxN == 1 {
		return tokens
	}

	var terms []string
	if a.minN == 1 {
		terms = append(terms, tokens...)
	}
	start := max(a.minN, 2)
	for n := start; n <= min(a.maxN, len(tokens)); n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}
