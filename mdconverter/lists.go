package mdconverter

import (
	"strings"

	"github.com/rgonek/mdhtml/block"
	"github.com/rgonek/mdhtml/htmlnode"
)

func (s *state) convertUnorderedList(source string) (htmlnode.Node, error) {
	return s.convertList("ul", source, func(int) string { return "- " })
}

func (s *state) convertOrderedList(source string) (htmlnode.Node, error) {
	return s.convertList("ol", source, func(i int) string { return block.OrderedMarker(i + 1) })
}

// convertList converts each line into an li after removing the marker
// returned for its index.
func (s *state) convertList(tag, source string, marker func(int) string) (htmlnode.Node, error) {
	lines := strings.Split(source, "\n")
	items := make([]htmlnode.Node, 0, len(lines))
	for i, line := range lines {
		children, err := s.convertInline(strings.TrimPrefix(line, marker(i)))
		if err != nil {
			return nil, err
		}
		items = append(items, htmlnode.NewParent("li", children))
	}

	return htmlnode.NewParent(tag, items), nil
}
