package inline

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnmatchedDelimiter is returned when a plain run contains an odd
// number of occurrences of a style delimiter.
var ErrUnmatchedDelimiter = errors.New("unmatched delimiter")

var (
	imageRe = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^()]*)\)`)
	linkRe  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^()]*)\)`)
)

// Delimiter pairs a literal marker with the kind it produces.
type Delimiter struct {
	Marker string
	Kind   Kind
}

// Delimiters returns the emphasis delimiters in processing order.
// Bold must claim "**" before italic and code are considered.
func Delimiters() []Delimiter {
	return []Delimiter{
		{Marker: "**", Kind: Bold},
		{Marker: "_", Kind: Italic},
		{Marker: "`", Kind: Code},
	}
}

// TextToNodes splits a run of inline markdown into typed text nodes.
func TextToNodes(text string) ([]TextNode, error) {
	nodes := []TextNode{Text(text)}
	nodes = SplitImages(nodes)
	nodes = SplitLinks(nodes)

	for _, d := range Delimiters() {
		var err error
		nodes, err = SplitByDelimiter(nodes, d.Marker, d.Kind)
		if err != nil {
			return nil, err
		}
	}

	return nodes, nil
}

// SplitByDelimiter splits every Plain node on delimiter. Segments between
// a pair of delimiters become nodes of kind; the rest stay Plain. Nodes of
// any other kind pass through untouched.
func SplitByDelimiter(nodes []TextNode, delimiter string, kind Kind) ([]TextNode, error) {
	out := make([]TextNode, 0, len(nodes))
	for _, node := range nodes {
		if node.Kind != Plain {
			out = append(out, node)
			continue
		}

		if strings.Count(node.Text, delimiter)%2 != 0 {
			return nil, fmt.Errorf("%w %q in %q", ErrUnmatchedDelimiter, delimiter, node.Text)
		}

		for i, segment := range strings.Split(node.Text, delimiter) {
			if segment == "" {
				continue
			}
			if i%2 == 0 {
				out = append(out, Text(segment))
			} else {
				out = append(out, Styled(segment, kind))
			}
		}
	}

	return out, nil
}

// SplitImages extracts ![alt](url) spans from Plain nodes.
func SplitImages(nodes []TextNode) []TextNode {
	return splitMatches(nodes, func(text string) []span {
		var spans []span
		for _, m := range imageRe.FindAllStringSubmatchIndex(text, -1) {
			spans = append(spans, span{
				start: m[0],
				end:   m[1],
				node:  ImageOf(text[m[2]:m[3]], text[m[4]:m[5]]),
			})
		}
		return spans
	})
}

// SplitLinks extracts [label](url) spans from Plain nodes. A bracket
// preceded by "!" is image syntax and is left alone.
func SplitLinks(nodes []TextNode) []TextNode {
	return splitMatches(nodes, func(text string) []span {
		var spans []span
		for _, m := range linkRe.FindAllStringSubmatchIndex(text, -1) {
			if m[0] > 0 && text[m[0]-1] == '!' {
				continue
			}
			spans = append(spans, span{
				start: m[0],
				end:   m[1],
				node:  LinkTo(text[m[2]:m[3]], text[m[4]:m[5]]),
			})
		}
		return spans
	})
}

type span struct {
	start int
	end   int
	node  TextNode
}

func splitMatches(nodes []TextNode, find func(string) []span) []TextNode {
	out := make([]TextNode, 0, len(nodes))
	for _, node := range nodes {
		if node.Kind != Plain {
			out = append(out, node)
			continue
		}

		spans := find(node.Text)
		if len(spans) == 0 {
			out = append(out, node)
			continue
		}

		last := 0
		for _, s := range spans {
			if s.start > last {
				out = append(out, Text(node.Text[last:s.start]))
			}
			out = append(out, s.node)
			last = s.end
		}
		if last < len(node.Text) {
			out = append(out, Text(node.Text[last:]))
		}
	}

	return out
}
