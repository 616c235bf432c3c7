package dentdown

import (
	"fmt"
	"regexp"
	"strings"
)

// Scope pairs an indentation threshold with the tag sequence active at that
// indentation. The bottom of the stack is a sentinel with empty indent and no
// tags; above it, indents are strictly increasing in length.
type Scope struct {
	Indent string
	Tags   []string
}

// Parser is one parsing session: it owns the scope stack and the queue of
// remaining lines, routes each line to the first matching rule, and writes
// through the span chain into the generator. A Parser processes exactly one
// document; build a fresh one per input. The rule table and span chain are
// shared read-only.
type Parser struct {
	rules      *RuleSet
	spans      *SpanChain
	gen        *Generator
	indentTags []string

	scopes     []Scope
	lines      []string
	lineIndent string
}

// entityEscaper rewrites & and < in one pass, so the inserted &amp; is not
// itself re-escaped.
var entityEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;")

// NewParser creates a session writing into gen. indentTags are appended to
// the inherited tag sequence whenever a deeper indentation opens a new scope
// (the implied wrapper for indented text, e.g. "blockquote").
func NewParser(rules *RuleSet, spans *SpanChain, gen *Generator, indentTags ...string) *Parser {
	return &Parser{
		rules:      rules,
		spans:      spans,
		gen:        gen,
		indentTags: indentTags,
		scopes:     []Scope{{}},
	}
}

// Parse consumes the whole document. Lines are separated by \n; trailing
// whitespace is trimmed before rule matching while leading indentation is
// taken from the untrimmed line. Lines matching no rule produce no output.
func (p *Parser) Parse(text string) error {
	p.lines = strings.Split(text, "\n")
	for len(p.lines) > 0 {
		line := p.lines[0]
		p.lines = p.lines[1:]
		if err := p.processLine(line); err != nil {
			return err
		}
	}
	return nil
}

// processLine adjusts the scope stack for the line's indentation, then
// dispatches its content. A whitespace-only line inherits the current scope's
// indentation so blank lines never pop scopes.
func (p *Parser) processLine(line string) error {
	trimmed := strings.TrimRight(line, " \t")
	if trimmed == "" {
		p.lineIndent = p.top().Indent
		return p.Dispatch("")
	}

	cut := strings.IndexFunc(trimmed, func(r rune) bool { return r != ' ' && r != '\t' })
	indent := trimmed[:cut]

	p.processIndent(indent)
	p.lineIndent = indent
	return p.Dispatch(trimmed[cut:])
}

// processIndent runs the scope transition for a line's indentation. The step
// order is load-bearing: widening the top scope on a deeper continuation must
// happen before the ordinary pop/push logic so hanging multi-line blocks stay
// in one scope.
func (p *Parser) processIndent(indent string) {
	if top := p.top(); top.Indent != "" {
		// An unindented line keeps the current scope.
		if indent == "" {
			return
		}
		below := p.scopes[len(p.scopes)-2]
		if len(indent) > len(below.Indent) {
			top.Indent = indent
		} else {
			p.PopScope()
		}
	}

	for len(p.top().Indent) > len(indent) {
		p.PopScope()
	}

	if len(indent) > len(p.top().Indent) {
		p.PushScope(indent, p.indentTags...)
	}
}

// Dispatch matches content against the rules in registration order and runs
// the first match's handler. Handlers may call Dispatch recursively on a
// captured substring.
func (p *Parser) Dispatch(content string) error {
	for _, r := range p.rules.rules {
		if m := r.pattern.FindStringSubmatch(content); m != nil {
			return r.handler(p, m)
		}
	}
	return nil
}

// Write applies the span chain to text, prepends the current scope's tags to
// tags, and appends the record to the generator.
func (p *Parser) Write(text string, tags ...string) {
	p.gen.Add(p.spans.Apply(text), p.path(tags))
}

// WriteRaw writes text without span substitution.
func (p *Parser) WriteRaw(text string, tags ...string) {
	p.gen.Add(text, p.path(tags))
}

// WriteEscaped HTML-escapes & and < in text, then writes it raw. Escaping
// runs first so later raw injection cannot be double-escaped.
func (p *Parser) WriteEscaped(text string, tags ...string) {
	p.gen.Add(entityEscaper.Replace(text), p.path(tags))
}

// Divider writes a null record: it closes the output block currently
// accumulating without contributing a tag or text.
func (p *Parser) Divider(tags ...string) {
	p.gen.AddDivider(p.path(tags))
}

// PushScope opens a nested scope whose tags are the current scope's tags
// followed by tags, with the given indentation threshold.
func (p *Parser) PushScope(indent string, tags ...string) {
	p.scopes = append(p.scopes, Scope{
		Indent: indent,
		Tags:   append(p.ScopeTags(), tags...),
	})
}

// PopScope closes the top scope. Popping the sentinel is an internal
// invariant violation and panics.
func (p *Parser) PopScope() {
	if len(p.scopes) == 1 {
		panic("dentdown: scope stack underflow")
	}
	p.scopes = p.scopes[:len(p.scopes)-1]
}

// ScopeTags returns a copy of the tag sequence active at the current scope.
func (p *Parser) ScopeTags() []string {
	top := p.top()
	out := make([]string, 0, len(top.Tags))
	return append(out, top.Tags...)
}

// LineIndent returns the indentation of the line being dispatched.
func (p *Parser) LineIndent() string {
	return p.lineIndent
}

// Depth returns the scope stack height, sentinel included.
func (p *Parser) Depth() int {
	return len(p.scopes)
}

func (p *Parser) top() *Scope {
	return &p.scopes[len(p.scopes)-1]
}

func (p *Parser) path(tags []string) []string {
	return append(p.ScopeTags(), tags...)
}

// consumeBlock pulls raw lines off the remaining-lines queue until one,
// stripped of the current indentation, matches term. Lines shorter than the
// indent truncate to empty rather than erroring.
func (p *Parser) consumeBlock(term *regexp.Regexp) ([]string, error) {
	indent := p.lineIndent
	body := []string{}
	for len(p.lines) > 0 {
		line := p.lines[0]
		p.lines = p.lines[1:]

		stripped := ""
		if len(line) > len(indent) {
			stripped = line[len(indent):]
		}
		if term.MatchString(stripped) {
			return body, nil
		}
		body = append(body, stripped)
	}
	return nil, fmt.Errorf("%w: missing terminator %q", ErrUnterminatedBlock, term.String())
}
