package inline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitByDelimiter(t *testing.T) {
	tests := []struct {
		name      string
		input     []TextNode
		delimiter string
		kind      Kind
		want      []TextNode
	}{
		{
			name:      "code",
			input:     []TextNode{Text("This is text with a `code block` word")},
			delimiter: "`",
			kind:      Code,
			want: []TextNode{
				Text("This is text with a "),
				Styled("code block", Code),
				Text(" word"),
			},
		},
		{
			name:      "italic",
			input:     []TextNode{Text("This is text with an _italic_ word")},
			delimiter: "_",
			kind:      Italic,
			want: []TextNode{
				Text("This is text with an "),
				Styled("italic", Italic),
				Text(" word"),
			},
		},
		{
			name:      "bold",
			input:     []TextNode{Text("This is text with a **bold** word")},
			delimiter: "**",
			kind:      Bold,
			want: []TextNode{
				Text("This is text with a "),
				Styled("bold", Bold),
				Text(" word"),
			},
		},
		{
			name:      "non plain passes through",
			input:     []TextNode{Styled("This is an italic text block", Italic)},
			delimiter: "`",
			kind:      Code,
			want:      []TextNode{Styled("This is an italic text block", Italic)},
		},
		{
			name: "mixed nodes",
			input: []TextNode{
				Styled("This is an italic text block", Italic),
				Text("This is text with a **bold** word"),
			},
			delimiter: "**",
			kind:      Bold,
			want: []TextNode{
				Styled("This is an italic text block", Italic),
				Text("This is text with a "),
				Styled("bold", Bold),
				Text(" word"),
			},
		},
		{
			name:      "delimiter at start",
			input:     []TextNode{Text("**Bold** word is at start")},
			delimiter: "**",
			kind:      Bold,
			want: []TextNode{
				Styled("Bold", Bold),
				Text(" word is at start"),
			},
		},
		{
			name:      "delimiter at end",
			input:     []TextNode{Text("Italic word is at _end_")},
			delimiter: "_",
			kind:      Italic,
			want: []TextNode{
				Text("Italic word is at "),
				Styled("end", Italic),
			},
		},
		{
			name:      "no delimiter",
			input:     []TextNode{Text("nothing here")},
			delimiter: "**",
			kind:      Bold,
			want:      []TextNode{Text("nothing here")},
		},
		{
			name:      "empty pair dropped",
			input:     []TextNode{Text("a````b")},
			delimiter: "``",
			kind:      Code,
			want:      []TextNode{Text("a"), Text("b")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitByDelimiter(tt.input, tt.delimiter, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitByDelimiterChained(t *testing.T) {
	nodes, err := SplitByDelimiter([]TextNode{Text("This is text with a **bold** word, and an _italic_ word")}, "**", Bold)
	require.NoError(t, err)
	nodes, err = SplitByDelimiter(nodes, "_", Italic)
	require.NoError(t, err)

	assert.Equal(t, []TextNode{
		Text("This is text with a "),
		Styled("bold", Bold),
		Text(" word, and an "),
		Styled("italic", Italic),
		Text(" word"),
	}, nodes)
}

func TestSplitByDelimiterUnmatched(t *testing.T) {
	inputs := []string{
		"This is text missing a closing **bold delimiter",
		"**",
		"a ** b ** c **",
	}
	for _, input := range inputs {
		_, err := SplitByDelimiter([]TextNode{Text(input)}, "**", Bold)
		require.ErrorIs(t, err, ErrUnmatchedDelimiter, input)
	}

	for _, d := range Delimiters() {
		_, err := SplitByDelimiter([]TextNode{Text("odd " + d.Marker + " count")}, d.Marker, d.Kind)
		require.ErrorIs(t, err, ErrUnmatchedDelimiter, d.Marker)
	}
}

func TestSplitByDelimiterPreservesText(t *testing.T) {
	inputs := []string{
		"plain",
		"_a_ b _c_",
		"__",
		"x_y_z",
		"_lead and trail_",
		"mid _dle_ of text _ and _ more",
	}
	for _, input := range inputs {
		nodes, err := SplitByDelimiter([]TextNode{Text(input)}, "_", Italic)
		require.NoError(t, err, input)

		var sb strings.Builder
		for _, n := range nodes {
			sb.WriteString(n.Text)
		}
		assert.Equal(t, strings.ReplaceAll(input, "_", ""), sb.String(), input)
	}
}

func TestSplitImages(t *testing.T) {
	got := SplitImages([]TextNode{Text("This is text with an ![image](https://i.imgur.com/zjjcJKZ.png) and another ![second image](https://i.imgur.com/3elNhQu.png)")})
	assert.Equal(t, []TextNode{
		Text("This is text with an "),
		ImageOf("image", "https://i.imgur.com/zjjcJKZ.png"),
		Text(" and another "),
		ImageOf("second image", "https://i.imgur.com/3elNhQu.png"),
	}, got)
}

func TestSplitImagesAlone(t *testing.T) {
	got := SplitImages([]TextNode{Text("![alt](http://x/y.png)")})
	assert.Equal(t, []TextNode{ImageOf("alt", "http://x/y.png")}, got)
}

func TestSplitImagesIgnoresLinks(t *testing.T) {
	input := []TextNode{Text("a [link](https://example.com) here"), Styled("![x](y)", Code)}
	assert.Equal(t, input, SplitImages(input))
}

func TestSplitLinks(t *testing.T) {
	got := SplitLinks([]TextNode{Text("This is text with a link [to boot dev](https://www.boot.dev) and [to youtube](https://www.youtube.com/@bootdotdev) done")})
	assert.Equal(t, []TextNode{
		Text("This is text with a link "),
		LinkTo("to boot dev", "https://www.boot.dev"),
		Text(" and "),
		LinkTo("to youtube", "https://www.youtube.com/@bootdotdev"),
		Text(" done"),
	}, got)
}

func TestSplitLinksAdjacent(t *testing.T) {
	got := SplitLinks([]TextNode{Text("[a](x)[b](y)")})
	assert.Equal(t, []TextNode{LinkTo("a", "x"), LinkTo("b", "y")}, got)
}

func TestSplitLinksSkipsImageSyntax(t *testing.T) {
	input := []TextNode{Text("see ![pic](p.png)")}
	assert.Equal(t, input, SplitLinks(input))
}

func TestTextToNodes(t *testing.T) {
	text := "This is **text** with an _italic_ word and a `code block` and an ![obi wan image](https://i.imgur.com/fJRm4Vk.jpeg) and a [link](https://boot.dev)"
	got, err := TextToNodes(text)
	require.NoError(t, err)

	assert.Equal(t, []TextNode{
		Text("This is "),
		Styled("text", Bold),
		Text(" with an "),
		Styled("italic", Italic),
		Text(" word and a "),
		Styled("code block", Code),
		Text(" and an "),
		ImageOf("obi wan image", "https://i.imgur.com/fJRm4Vk.jpeg"),
		Text(" and a "),
		LinkTo("link", "https://boot.dev"),
	}, got)
}

func TestTextToNodesURLDelimitersAreNotEmphasis(t *testing.T) {
	got, err := TextToNodes("go to [my_page](https://example.com/a_b_c) now")
	require.NoError(t, err)

	assert.Equal(t, []TextNode{
		Text("go to "),
		LinkTo("my_page", "https://example.com/a_b_c"),
		Text(" now"),
	}, got)
}

func TestTextToNodesUnmatched(t *testing.T) {
	_, err := TextToNodes("snake_case word")
	require.ErrorIs(t, err, ErrUnmatchedDelimiter)
}

func TestTextNodeString(t *testing.T) {
	assert.Equal(t, `TextNode("a", bold)`, Styled("a", Bold).String())
	assert.Equal(t, `TextNode("a", link, "u")`, LinkTo("a", "u").String())
	assert.Equal(t, "kind(42)", Kind(42).String())
	assert.True(t, Image.HasURL())
	assert.False(t, Code.HasURL())
}
