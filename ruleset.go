package dentdown

import "regexp"

// HandlerFunc reacts to a line whose content matched a rule's pattern. It
// receives the session and the submatch slice (index 0 is the whole match)
// and may write output, push or pop scopes, and re-dispatch captured text.
type HandlerFunc func(p *Parser, match []string) error

// BlockHandlerFunc reacts to a block rule: match is the submatch slice of the
// opening line, body holds the raw lines consumed up to (and excluding) the
// terminator, with the current scope's indentation prefix stripped.
type BlockHandlerFunc func(p *Parser, match []string, body []string) error

// rule pairs a pattern with its handler. Rules are immutable once parsing
// starts and are tried in registration order; the first match wins.
type rule struct {
	pattern *regexp.Regexp
	handler HandlerFunc
}

// RuleSet is the ordered dispatch table for line rules. Register every rule
// before constructing a session; a RuleSet is shared read-only across
// concurrent sessions.
type RuleSet struct {
	rules []rule
}

// NewRuleSet creates an empty rule table.
func NewRuleSet() *RuleSet {
	return &RuleSet{}
}

// AddRule registers a precompiled pattern with its handler.
func (rs *RuleSet) AddRule(pattern *regexp.Regexp, h HandlerFunc) {
	rs.rules = append(rs.rules, rule{pattern: pattern, handler: h})
}

// On registers a pattern (compiled with MustCompile) with its handler.
func (rs *RuleSet) On(pattern string, h HandlerFunc) {
	rs.AddRule(regexp.MustCompile(pattern), h)
}

// OnBlock registers a rule that, when its opening pattern matches, consumes
// subsequent raw lines until a line matches terminator, then invokes h with
// the captured body. Reaching end of input before the terminator is an
// ErrUnterminatedBlock failure. The wrapper keeps block rules plain functions
// over (session, lines) rather than stateful objects.
func (rs *RuleSet) OnBlock(pattern, terminator string, h BlockHandlerFunc) {
	term := regexp.MustCompile(terminator)
	rs.On(pattern, func(p *Parser, match []string) error {
		body, err := p.consumeBlock(term)
		if err != nil {
			return err
		}
		return h(p, match, body)
	})
}
