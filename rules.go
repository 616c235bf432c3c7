package dentdown

import (
	"fmt"
	"strings"
)

// DefaultIndentTags is the implied wrapper for text that is simply indented
// deeper without any marker.
var DefaultIndentTags = []string{"blockquote"}

// DefaultRules returns the standard dentdown rule catalogue. Rules are tried
// in this order; the first match wins, so the paragraph catch-all stays last.
func DefaultRules(hl Highlighter) *RuleSet {
	rs := NewRuleSet()

	// Blank line: close the paragraph accumulating in the current scope.
	rs.On(`^$`, func(p *Parser, _ []string) error {
		p.Divider("p")
		return nil
	})

	// Fenced code block. The body is consumed raw; highlighted HTML bypasses
	// both the span chain and the tag-path machinery.
	rs.OnBlock("^```(\\S*)\\s*$", "^```\\s*$", func(p *Parser, m []string, body []string) error {
		html, err := hl.Highlight(strings.Join(body, "\n"), m[1])
		if err != nil {
			return err
		}
		for _, line := range strings.Split(html, "\n") {
			p.WriteRaw(line)
		}
		return nil
	})

	// ATX headers, # through ######.
	rs.On(`^(#{1,6}) (.+)$`, func(p *Parser, m []string) error {
		p.Write(m[2], fmt.Sprintf("h%d", len(m[1])))
		return nil
	})

	// Horizontal rule.
	rs.On(`^(?:-{3,}|\*{3,})$`, func(p *Parser, _ []string) error {
		p.WriteRaw("<hr/>")
		return nil
	})

	// Quote. A bare ">" divides, so "> a\n>\n> b" becomes one blockquote
	// holding two paragraphs.
	rs.On(`^> ?(.*)$`, func(p *Parser, m []string) error {
		if strings.TrimSpace(m[1]) == "" {
			p.Divider("blockquote", "p")
			return nil
		}
		p.Write(m[1], "blockquote", "p")
		return nil
	})

	// List items. The first marker pushes a scope so continuation lines
	// indented under the item stay inside it; later markers at the same
	// level divide into a sibling item.
	rs.On(`^[-*+] (.+)$`, listItem("ul"))
	rs.On(`^\d+[.)] (.+)$`, listItem("ol"))

	// Paragraph catch-all.
	rs.On(`^(.+)$`, func(p *Parser, m []string) error {
		p.Write(m[1], "p")
		return nil
	})

	return rs
}

// listItem builds the handler for a list marker opening listTag. The pushed
// scope's indent covers the marker width, aligning with continuation lines.
func listItem(listTag string) HandlerFunc {
	return func(p *Parser, m []string) error {
		if scopeEndsWith(p.ScopeTags(), listTag, "li") {
			p.Divider("p")
		} else {
			marker := strings.Repeat(" ", len(m[0])-len(m[1]))
			p.PushScope(p.LineIndent()+marker, listTag, "li")
		}
		return p.Dispatch(m[1])
	}
}

func scopeEndsWith(tags []string, suffix ...string) bool {
	if len(tags) < len(suffix) {
		return false
	}
	offset := len(tags) - len(suffix)
	for i, s := range suffix {
		if tags[offset+i] != s {
			return false
		}
	}
	return true
}

// DefaultSpanRules returns the standard inline substitution chain. Entity
// escaping runs first so markup inserted by later rules survives; rules are
// sequential, each seeing the previous rule's output.
func DefaultSpanRules() *SpanChain {
	c := NewSpanChain()

	c.On(`&`, "&amp;")
	c.On(`<`, "&lt;")

	c.On("`(.+?)`", "<code>$1</code>")
	c.OnFunc(`!\[(.*?)\]\((.+?)\)`, func(m []string) string {
		return `<img src="` + m[2] + `" alt="` + m[1] + `"/>`
	})
	c.OnFunc(`\[(.+?)\]\((.+?)\)`, func(m []string) string {
		return `<a href="` + m[2] + `">` + m[1] + `</a>`
	})
	c.On(`\*\*(.+?)\*\*`, "<strong>$1</strong>")
	c.On(`\*(.+?)\*`, "<em>$1</em>")
	c.On(`==(.+?)==`, "<mark>$1</mark>")

	return c
}
