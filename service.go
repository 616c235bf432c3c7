package dentdown

import (
	"context"
	"fmt"

	"github.com/alnah/go-dentdown/internal/assets"
)

// StyleLoader resolves a named stylesheet to its CSS content.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}

// Service orchestrates the dentdown-to-HTML pipeline. A Service holds only
// read-only configuration: every Convert call builds its own parsing session
// (scope stack + output log), so one Service is safe for concurrent use.
type Service struct {
	preprocessor markupPreprocessor
	injector     cssInjector
	highlighter  Highlighter
	rules        *RuleSet
	spans        *SpanChain
	indentTags   []string
	styles       StyleLoader
}

// Option customizes a Service.
type Option func(*Service)

// WithRules replaces the default rule catalogue.
func WithRules(rs *RuleSet) Option {
	return func(s *Service) { s.rules = rs }
}

// WithSpanRules replaces the default inline substitution chain.
func WithSpanRules(c *SpanChain) Option {
	return func(s *Service) { s.spans = c }
}

// WithIndentTags sets the tags wrapped around indented scopes.
func WithIndentTags(tags ...string) Option {
	return func(s *Service) { s.indentTags = tags }
}

// WithHighlighter replaces the code-block highlighter used by the default
// rule catalogue. It has no effect when WithRules is also given.
func WithHighlighter(h Highlighter) Option {
	return func(s *Service) { s.highlighter = h }
}

// WithStyleLoader replaces the embedded stylesheet loader.
func WithStyleLoader(l StyleLoader) Option {
	return func(s *Service) { s.styles = l }
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithIndentTags).
func New(opts ...Option) *Service {
	s := &Service{
		preprocessor: &dentPreprocessor{},
		injector:     &cssInjection{},
		highlighter:  NewChromaHighlighter("github"),
		spans:        DefaultSpanRules(),
		indentTags:   DefaultIndentTags,
		styles:       assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Build the default catalogue late so WithHighlighter applies to it.
	if s.rules == nil {
		s.rules = DefaultRules(s.highlighter)
	}

	return s
}

// Convert runs the full pipeline and returns the HTML as a string: an
// indented fragment by default, or a full document when Standalone, CSS, or
// Style is set. The context is used for cancellation and timeout.
func (s *Service) Convert(ctx context.Context, input Input) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	content := s.preprocessor.Preprocess(ctx, input.Markup)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	fragment, err := s.render(ctx, content)
	if err != nil {
		return "", fmt.Errorf("rendering markup: %w", err)
	}

	if !input.Standalone && input.CSS == "" && input.Style == "" {
		return fragment, nil
	}

	cssContent := input.CSS
	if input.Style != "" {
		styleCSS, err := s.styles.LoadStyle(input.Style)
		if err != nil {
			return "", err
		}
		cssContent = styleCSS + cssContent
	}

	htmlContent := wrapDocument(fragment, input.Title)
	return s.injector.InjectCSS(ctx, htmlContent, cssContent), nil
}

// render parses the preprocessed content in a fresh session and serializes
// the result. Supports context cancellation via goroutine + select since
// parsing itself is synchronous.
func (s *Service) render(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		gen := NewGenerator()
		parser := NewParser(s.rules, s.spans, gen, s.indentTags...)
		if err := parser.Parse(content); err != nil {
			done <- result{err: err}
			return
		}
		done <- result{html: gen.Generate()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
