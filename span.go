package dentdown

import "regexp"

// spanRule is one inline rewrite: either a pattern with a literal replacement
// (supporting $1-style group references) or a pattern with a function of the
// submatch slice.
type spanRule struct {
	pattern     *regexp.Regexp
	replacement string
	fn          func(match []string) string
}

// SpanChain applies an ordered list of search/replace rules to a single line
// of leaf text. Rules run sequentially: each rule sees the output of the
// previous one, so a later rule can re-match text inserted by an earlier
// rule. Unmatched text passes through unchanged.
//
// Register all rules before parsing begins; a chain is shared read-only
// across sessions.
type SpanChain struct {
	rules []spanRule
}

// NewSpanChain creates an empty chain.
func NewSpanChain() *SpanChain {
	return &SpanChain{}
}

// On registers a pattern with a literal replacement. The pattern must be a
// valid regular expression; the replacement may reference capture groups
// ($1, $2, ...).
func (c *SpanChain) On(pattern, replacement string) {
	c.rules = append(c.rules, spanRule{
		pattern:     regexp.MustCompile(pattern),
		replacement: replacement,
	})
}

// OnFunc registers a pattern whose replacement is computed from the submatch
// slice (index 0 is the whole match).
func (c *SpanChain) OnFunc(pattern string, fn func(match []string) string) {
	c.rules = append(c.rules, spanRule{
		pattern: regexp.MustCompile(pattern),
		fn:      fn,
	})
}

// Apply runs every rule in registration order over text and returns the
// rewritten result.
func (c *SpanChain) Apply(text string) string {
	for _, r := range c.rules {
		if r.fn == nil {
			text = r.pattern.ReplaceAllString(text, r.replacement)
			continue
		}
		fn := r.fn
		pattern := r.pattern
		text = pattern.ReplaceAllStringFunc(text, func(s string) string {
			return fn(pattern.FindStringSubmatch(s))
		})
	}
	return text
}
