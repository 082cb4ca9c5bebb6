package extractor

import (
	"testing"
)

// checkBlockSpans verifies every block slices back to its own text.
func checkBlockSpans(t *testing.T, src string, blocks []Block) {
	t.Helper()
	for _, b := range blocks {
		if src[b.Start:b.End] != b.Text {
			t.Errorf("span [%d,%d) = %q, want %q", b.Start, b.End, src[b.Start:b.End], b.Text)
		}
	}
}

func TestMarkdownBlocks(t *testing.T) {
	src := "# Title here\n\nSome prose line.\n\n- item one\n2. item two\n> quoted text\n"

	blocks := NewMarkdown().Blocks(src)
	checkBlockSpans(t, src, blocks)

	want := []struct {
		text string
		kind BlockKind
	}{
		{"Title here", BlockHeading},
		{"Some prose line.", BlockParagraph},
		{"item one", BlockListItem},
		{"item two", BlockListItem},
		{"quoted text", BlockQuote},
	}
	if len(blocks) != len(want) {
		t.Fatalf("blocks = %+v", blocks)
	}
	for i, w := range want {
		if blocks[i].Text != w.text || blocks[i].Kind != w.kind {
			t.Errorf("block %d = %+v, want %q/%q", i, blocks[i], w.text, w.kind)
		}
	}
}

func TestMarkdownCodeFences(t *testing.T) {
	src := "Before fence.\n\n```go\nfunc main() { prose trap }\n```\n\nAfter fence.\n\n~~~\nmore code\n~~~\n"

	blocks := NewMarkdown().Blocks(src)
	if len(blocks) != 2 {
		t.Fatalf("blocks = %+v", blocks)
	}
	if blocks[0].Text != "Before fence." || blocks[1].Text != "After fence." {
		t.Errorf("blocks = %+v", blocks)
	}
}

func TestMarkdownStructuralLinesSkipped(t *testing.T) {
	src := "| a | b |\n---\n<div>html here</div>\n[ref]: https://example.com\n    indented code\n\treal tab code\n"

	if blocks := NewMarkdown().Blocks(src); len(blocks) != 0 {
		t.Errorf("structural lines produced blocks: %+v", blocks)
	}
}

func TestMarkdownInlineMasking(t *testing.T) {
	src := "Use `go build` to compile, see [docs](https://example.com) or http://foo.bar now.\n"

	blocks := NewMarkdown().Blocks(src)
	checkBlockSpans(t, src, blocks)

	var texts []string
	for _, b := range blocks {
		texts = append(texts, b.Text)
	}
	want := []string{"Use", "to compile, see [docs", "or", "now."}
	if len(texts) != len(want) {
		t.Fatalf("texts = %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("text %d = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestMarkdownHeadingLevels(t *testing.T) {
	src := "### Deep heading\n####### not a heading\n"

	blocks := NewMarkdown().Blocks(src)
	if len(blocks) < 1 || blocks[0].Text != "Deep heading" || blocks[0].Kind != BlockHeading {
		t.Fatalf("blocks = %+v", blocks)
	}
	// Seven hashes is not a heading; the line is plain paragraph prose.
	if len(blocks) == 2 && blocks[1].Kind != BlockParagraph {
		t.Errorf("second block = %+v", blocks[1])
	}
}

func TestMarkdownNumbersOnlyRunsDropped(t *testing.T) {
	src := "42 100 7\nreal words\n"
	blocks := NewMarkdown().Blocks(src)
	if len(blocks) != 1 || blocks[0].Text != "real words" {
		t.Errorf("blocks = %+v", blocks)
	}
}

func TestMarkdownQuoteDepth(t *testing.T) {
	src := ">> nested quote line\n"
	blocks := NewMarkdown().Blocks(src)
	if len(blocks) != 1 || blocks[0].Text != "nested quote line" || blocks[0].Kind != BlockQuote {
		t.Fatalf("blocks = %+v", blocks)
	}
	checkBlockSpans(t, src, blocks)
}
