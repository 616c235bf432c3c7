package dentdown

import "strings"

// Generator accumulates (tag-path, text) write records and serializes them
// into nested, tab-indented HTML. Records are append-only; serialization is a
// pure function of the accumulated log, so Generate can be called repeatedly.
type Generator struct {
	entries []entry
}

// entry is one write record. A divider entry carries no text; it closes the
// block currently accumulating so that the surrounding records do not merge.
type entry struct {
	tags    []string
	text    string
	divider bool
}

// block is a maximal group of consecutive texts sharing one tag-path,
// bounded by dividers or by a tag-path change.
type block struct {
	tags  []string
	lines []string
}

// NewGenerator creates an empty Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Add appends a text record wrapped by the given tag-path (outermost first).
// The tag-path may be empty, in which case the text is emitted verbatim.
func (g *Generator) Add(text string, tags []string) {
	g.entries = append(g.entries, entry{tags: copyTags(tags), text: text})
}

// AddDivider appends a flush marker: the block accumulating at serialization
// time closes here even if the next record shares its tag-path. Consecutive
// dividers collapse to a single boundary.
func (g *Generator) AddDivider(tags []string) {
	g.entries = append(g.entries, entry{tags: copyTags(tags), divider: true})
}

// Len returns the number of accumulated records, dividers included.
func (g *Generator) Len() int {
	return len(g.entries)
}

// Generate serializes the accumulated log. Top-level blocks are separated by
// exactly one blank line; every tag is indented with one tab per nesting
// level. An empty log produces the empty string.
func (g *Generator) Generate() string {
	runs := coalesce(g.entries)

	var b strings.Builder
	for i, r := range runs {
		if i > 0 {
			b.WriteString("\n")
		}
		renderRun(&b, r)
	}
	return b.String()
}

// run is a sequence of divider-separated sibling blocks sharing one tag-path.
type run struct {
	tags   []string
	blocks []block
}

// coalesce folds the record log into runs. Texts merge into the current block
// while the tag-path is unchanged; a divider or a path change closes it.
// Adjacent blocks with an identical path of two or more tags (which can only
// arise from a divider) form one run so the outermost tag opens once; shorter
// paths stay separate, keeping divided paragraphs as distinct elements.
func coalesce(entries []entry) []run {
	var blocks []block
	var cur *block

	for _, e := range entries {
		if e.divider {
			cur = nil
			continue
		}
		if cur != nil && samePath(cur.tags, e.tags) {
			cur.lines = append(cur.lines, e.text)
			continue
		}
		blocks = append(blocks, block{tags: e.tags, lines: []string{e.text}})
		cur = &blocks[len(blocks)-1]
	}

	var runs []run
	for _, blk := range blocks {
		n := len(runs)
		if n > 0 && len(blk.tags) >= 2 && samePath(runs[n-1].tags, blk.tags) {
			runs[n-1].blocks = append(runs[n-1].blocks, blk)
			continue
		}
		runs = append(runs, run{tags: blk.tags, blocks: []block{blk}})
	}
	return runs
}

// renderRun writes one top-level run. A single-block run renders directly;
// multiple sibling blocks share one instance of the outermost tag and re-open
// the inner tags per block.
func renderRun(b *strings.Builder, r run) {
	if len(r.blocks) == 1 {
		renderBlock(b, r.tags, r.blocks[0].lines, 0)
		return
	}

	b.WriteString("<" + r.tags[0] + ">\n")
	for _, blk := range r.blocks {
		renderBlock(b, r.tags[1:], blk.lines, 1)
	}
	b.WriteString("</" + r.tags[0] + ">\n")
}

// renderBlock writes one block at the given depth. A block with exactly one
// text renders inline on a single line; two or more texts render each on its
// own line, one level deeper than the innermost tag.
func renderBlock(b *strings.Builder, tags, lines []string, depth int) {
	indent := strings.Repeat("\t", depth)

	if len(lines) == 1 {
		b.WriteString(indent)
		for _, t := range tags {
			b.WriteString("<" + t + ">")
		}
		b.WriteString(lines[0])
		for i := len(tags) - 1; i >= 0; i-- {
			b.WriteString("</" + tags[i] + ">")
		}
		b.WriteString("\n")
		return
	}

	for i, t := range tags {
		b.WriteString(strings.Repeat("\t", depth+i) + "<" + t + ">\n")
	}
	inner := strings.Repeat("\t", depth+len(tags))
	for _, line := range lines {
		b.WriteString(inner + line + "\n")
	}
	for i := len(tags) - 1; i >= 0; i-- {
		b.WriteString(strings.Repeat("\t", depth+i) + "</" + tags[i] + ">\n")
	}
}

func samePath(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func copyTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
