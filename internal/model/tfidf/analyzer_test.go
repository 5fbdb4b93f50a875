package tfidf

import (
	"slices"
	"testing"
)

func mustAnalyzer(t *testing.T, mutate func(*Params)) *analyzer {
	t.Helper()
	p := DefaultParams()
	if mutate != nil {
		mutate(&p)
	}
	a, err := newAnalyzer(p)
	if err != nil {
		t.Fatalf("newAnalyzer: %v", err)
	}
	return a
}

func TestAnalyzer_DefaultTokenization(t *testing.T) {
	a := mustAnalyzer(t, nil)

	got := a.analyze("Hey, are YOU free at 8pm?!")
	want := []string{"hey", "are", "you", "free", "at", "8pm"}
	if !slices.Equal(got, want) {
		t.Errorf("analyze() = %v, want %v", got, want)
	}
}

func TestAnalyzer_SingleCharTokensDropped(t *testing.T) {
	a := mustAnalyzer(t, nil)

	if got := a.analyze("I a u 2"); len(got) != 0 {
		t.Errorf("expected no tokens, got %v", got)
	}
}

func TestAnalyzer_KeepCase(t *testing.T) {
	a := mustAnalyzer(t, func(p *Params) { p.Lowercase = false })

	got := a.analyze("WIN Prize")
	if !slices.Equal(got, []string{"WIN", "Prize"}) {
		t.Errorf("analyze() = %v", got)
	}
}

func TestAnalyzer_StripAccents(t *testing.T) {
	tests := []struct {
		name    string
		accents Accents
		in      string
		want    []string
	}{
		{"keep", AccentsKeep, "café naïve", []string{"café", "naïve"}},
		{"unicode", AccentsUnicode, "café naïve", []string{"cafe", "naive"}},
		{"ascii", AccentsASCII, "résumé über", []string{"resume", "uber"}},
		{"ascii drops symbols", AccentsASCII, "prix 10€", []string{"prix", "10"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := mustAnalyzer(t, func(p *Params) { p.StripAccents = tc.accents })
			got := a.analyze(tc.in)
			if !slices.Equal(got, tc.want) {
				t.Errorf("analyze(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestAnalyzer_CaptureGroup(t *testing.T) {
	a := mustAnalyzer(t, func(p *Params) { p.TokenPattern = `#(\w+)` })

	got := a.analyze("#win big #prize")
	if !slices.Equal(got, []string{"win", "prize"}) {
		t.Errorf("analyze() = %v", got)
	}
}

func TestAnalyzer_StopWords(t *testing.T) {
	a := mustAnalyzer(t, func(p *Params) { p.StopWords = []string{"are", "you"} })

	got := a.analyze("are you free")
	if !slices.Equal(got, []string{"free"}) {
		t.Errorf("analyze() = %v", got)
	}
}

func TestAnalyzer_Ngrams(t *testing.T) {
	a := mustAnalyzer(t, func(p *Params) { p.NgramMax = 2 })

	got := a.analyze("free prize now")
	want := []string{"free", "prize", "now", "free prize", "prize now"}
	if !slices.Equal(got, want) {
		t.Errorf("analyze() = %v, want %v", got, want)
	}
}

func TestAnalyzer_BigramsOnly(t *testing.T) {
	a := mustAnalyzer(t, func(p *Params) {
		p.NgramMin = 2
		p.NgramMax = 3
	})

	if got := a.analyze("hello"); len(got) != 0 {
		t.Errorf("single token: expected no n-grams, got %v", got)
	}

	got := a.analyze("claim your prize")
	want := []string{"claim your", "your prize", "claim your prize"}
	if !slices.Equal(got, want) {
		t.Errorf("analyze() = %v, want %v", got, want)
	}
}

func TestNewAnalyzer_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"bad pattern", func(p *Params) { p.TokenPattern = `(` }},
		{"two groups", func(p *Params) { p.TokenPattern = `(\w)(\w)` }},
		{"unknown accents", func(p *Params) { p.StripAccents = "latin" }},
		{"zero ngram", func(p *Params) { p.NgramMin = 0 }},
		{"inverted ngram", func(p *Params) {
			p.NgramMin = 3
			p.NgramMax = 2
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			if _, err := newAnalyzer(p); err == nil {
				t.Error("expected error")
			}
		})
	}
}
