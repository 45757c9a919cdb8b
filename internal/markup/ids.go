package markup

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/util"
)

// HeadingPrefix starts every generated heading id so post headings never
// collide with the ids of the page sections.
const HeadingPrefix = "post-"

// prefixedIDs follows goldmark's default id scheme with HeadingPrefix added.
// One instance serves a single document.
type prefixedIDs struct {
	seen map[string]bool
}

var _ parser.IDs = (*prefixedIDs)(nil)

func (s *prefixedIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	value = util.TrimRightSpace(util.TrimLeftSpace(value))

	var sb strings.Builder
	sb.WriteString(HeadingPrefix)
	for _, v := range value {
		switch {
		case v >= 0x80:
			// non-ASCII
		case util.IsAlphaNumeric(v):
			if 'A' <= v && v <= 'Z' {
				v += 'a' - 'A'
			}
			sb.WriteByte(v)
		case util.IsSpace(v) || v == '-' || v == '_':
			sb.WriteByte('-')
		}
	}
	base := sb.String()
	if base == HeadingPrefix {
		base += "heading"
	}

	id := base
	for i := 1; s.seen[id]; i++ {
		id = base + "-" + strconv.Itoa(i)
	}
	s.seen[id] = true
	return []byte(id)
}

func (s *prefixedIDs) Put(value []byte) {
	s.seen[string(value)] = true
}

func newParseContext() parser.Context {
	return parser.NewContext(parser.WithIDs(&prefixedIDs{seen: map[string]bool{}}))
}
