package markup

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// BlockKind is the type of a top-level block.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockList      BlockKind = "list"
	BlockCode      BlockKind = "code"
	BlockQuote     BlockKind = "quote"
	BlockTable     BlockKind = "table"
	BlockRule      BlockKind = "rule"
	BlockOther     BlockKind = "other"
)

// Block describes one top-level element of a post body. Only the fields
// relevant to Kind are set: Level and ID for headings, Ordered and Items for
// lists, Lang for code, Header and Rows (body rows) for tables.
type Block struct {
	Kind    BlockKind
	Text    string
	Level   int
	ID      string
	Ordered bool
	Items   int
	Lang    string
	Header  []string
	Rows    int
}

// Outline returns the top-level structure of body.
func (r *Renderer) Outline(body string) []Block {
	src := []byte(body)
	doc := r.md.Parser().Parse(text.NewReader(src), parser.WithContext(newParseContext()))

	var blocks []Block
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		blocks = append(blocks, describeBlock(n, src))
	}
	return blocks
}

// Headings filters the outline down to headings of at most maxLevel.
func Headings(blocks []Block, maxLevel int) []Block {
	var out []Block
	for _, b := range blocks {
		if b.Kind == BlockHeading && b.Level <= maxLevel {
			out = append(out, b)
		}
	}
	return out
}

func describeBlock(n ast.Node, src []byte) Block {
	switch v := n.(type) {
	case *ast.Heading:
		b := Block{Kind: BlockHeading, Level: v.Level, Text: plainText(v, src)}
		if id, ok := v.AttributeString("id"); ok {
			if raw, ok := id.([]byte); ok {
				b.ID = string(raw)
			}
		}
		return b
	case *ast.Paragraph:
		return Block{Kind: BlockParagraph, Text: plainText(v, src)}
	case *ast.List:
		return Block{Kind: BlockList, Ordered: v.IsOrdered(), Items: v.ChildCount()}
	case *ast.FencedCodeBlock:
		return Block{Kind: BlockCode, Lang: string(v.Language(src)), Text: lines(v, src)}
	case *ast.CodeBlock:
		return Block{Kind: BlockCode, Text: lines(v, src)}
	case *ast.Blockquote:
		return Block{Kind: BlockQuote, Text: plainText(v, src)}
	case *ast.ThematicBreak:
		return Block{Kind: BlockRule}
	case *east.Table:
		b := Block{Kind: BlockTable}
		for row := v.FirstChild(); row != nil; row = row.NextSibling() {
			if _, ok := row.(*east.TableHeader); ok {
				for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
					b.Header = append(b.Header, plainText(cell, src))
				}
				continue
			}
			b.Rows++
		}
		return b
	}
	return Block{Kind: BlockOther}
}

func plainText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

func lines(n ast.Node, src []byte) string {
	var sb strings.Builder
	segs := n.Lines()
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		sb.Write(seg.Value(src))
	}
	return sb.String()
}
