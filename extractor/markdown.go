package extractor

import (
	"strings"
	"unicode"
)

// BlockKind labels the structural role of a Markdown prose run.
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockListItem  BlockKind = "listItem"
	BlockQuote     BlockKind = "quote"
)

// Block is one translatable prose run with its exact byte range. Structural
// markers (heading hashes, list bullets, quote arrows) and masked spans
// (inline code, URLs) sit outside the range, so a rewrite never touches them.
type Block struct {
	Text  string
	Start int
	End   int
	Kind  BlockKind
}

// Markdown extracts prose blocks from Markdown documents. Code fences,
// tables, horizontal rules, raw HTML lines and link-reference definitions
// are structural and skipped entirely.
type Markdown struct{}

// NewMarkdown creates a Markdown prose extractor.
func NewMarkdown() *Markdown { return &Markdown{} }

// Blocks returns the translatable prose runs of src in document order.
func (m *Markdown) Blocks(src string) []Block {
	var blocks []Block

	inFence := false
	fenceMarker := ""
	offset := 0

	for offset <= len(src) && offset < len(src) {
		lineEnd := strings.IndexByte(src[offset:], '\n')
		if lineEnd < 0 {
			lineEnd = len(src)
		} else {
			lineEnd += offset
		}
		line := src[offset:lineEnd]
		trimmed := strings.TrimSpace(line)

		if marker := fenceOf(trimmed); marker != "" {
			if inFence && strings.HasPrefix(marker, fenceMarker) {
				inFence = false
			} else if !inFence {
				inFence = true
				fenceMarker = marker
			}
			offset = lineEnd + 1
			continue
		}

		if inFence || skipLine(line, trimmed) {
			offset = lineEnd + 1
			continue
		}

		kind, lead := lineKind(line)
		blocks = append(blocks, proseRuns(line, offset, lead, kind)...)
		offset = lineEnd + 1
	}

	return blocks
}

// fenceOf returns the fence marker when the trimmed line opens or closes a
// code fence.
func fenceOf(trimmed string) string {
	for _, marker := range []string{"```", "~~~"} {
		if strings.HasPrefix(trimmed, marker) {
			return marker
		}
	}
	return ""
}

// skipLine reports whether the line is structural rather than prose:
// blank, table row, horizontal rule, raw HTML or link-reference definition.
// Indented code blocks (four spaces or a tab) are skipped too.
func skipLine(line, trimmed string) bool {
	if trimmed == "" {
		return true
	}
	if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		return true
	}
	if strings.HasPrefix(trimmed, "|") || strings.HasPrefix(trimmed, "<") {
		return true
	}
	if isRule(trimmed) {
		return true
	}
	// Link-reference definition: [label]: url
	if strings.HasPrefix(trimmed, "[") {
		if close := strings.Index(trimmed, "]:"); close > 0 {
			return true
		}
	}
	return false
}

// isRule reports whether the trimmed line is a horizontal rule.
func isRule(trimmed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	c := trimmed[0]
	if c != '-' && c != '*' && c != '_' {
		return false
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != c && trimmed[i] != ' ' {
			return false
		}
	}
	return true
}

// lineKind classifies the line and returns the byte length of its leading
// structural marker.
func lineKind(line string) (BlockKind, int) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	rest := line[i:]

	if strings.HasPrefix(rest, ">") {
		j := i
		for j < len(line) && (line[j] == '>' || line[j] == ' ') {
			j++
		}
		return BlockQuote, j
	}

	if strings.HasPrefix(rest, "#") {
		j := i
		for j < len(line) && line[j] == '#' {
			j++
		}
		if j-i <= 6 && j < len(line) && line[j] == ' ' {
			return BlockHeading, j + 1
		}
	}

	if len(rest) >= 2 && (rest[0] == '-' || rest[0] == '*' || rest[0] == '+') && rest[1] == ' ' {
		return BlockListItem, i + 2
	}

	// Ordered list: digits followed by ". " or ") ".
	j := i
	for j < len(line) && line[j] >= '0' && line[j] <= '9' {
		j++
	}
	if j > i && j+1 < len(line) && (line[j] == '.' || line[j] == ')') && line[j+1] == ' ' {
		return BlockListItem, j + 2
	}

	return BlockParagraph, i
}

// proseRuns masks the non-translatable spans of the line body (inline code,
// link URLs, bare URLs) and emits the remaining trimmed runs with offsets.
func proseRuns(line string, lineStart, lead int, kind BlockKind) []Block {
	body := line[lead:]
	masked := make([]bool, len(body))

	maskRange := func(from, to int) {
		for k := from; k < to && k < len(masked); k++ {
			masked[k] = true
		}
	}

	// Inline code spans.
	for i := 0; i < len(body); i++ {
		if body[i] != '`' {
			continue
		}
		if close := strings.IndexByte(body[i+1:], '`'); close >= 0 {
			maskRange(i, i+close+2)
			i += close + 1
		} else {
			break
		}
	}

	// Link destinations: the "](url)" part of [text](url). The link text
	// stays translatable.
	for i := 0; i+1 < len(body); i++ {
		if body[i] != ']' || body[i+1] != '(' {
			continue
		}
		if close := strings.IndexByte(body[i+1:], ')'); close >= 0 {
			maskRange(i, i+close+2)
			i += close + 1
		}
	}

	// Bare URLs.
	for _, scheme := range []string{"http://", "https://"} {
		from := 0
		for {
			at := strings.Index(body[from:], scheme)
			if at < 0 {
				break
			}
			at += from
			end := at
			for end < len(body) && !unicode.IsSpace(rune(body[end])) {
				end++
			}
			maskRange(at, end)
			from = end
		}
	}

	var blocks []Block
	runStart := -1

	flush := func(upTo int) {
		if runStart < 0 {
			return
		}
		run := body[runStart:upTo]
		trimmedRun := strings.TrimSpace(run)
		if trimmedRun != "" && hasLetter(trimmedRun) {
			at := runStart + strings.Index(run, trimmedRun)
			blocks = append(blocks, Block{
				Text:  trimmedRun,
				Start: lineStart + lead + at,
				End:   lineStart + lead + at + len(trimmedRun),
				Kind:  kind,
			})
		}
		runStart = -1
	}

	for i := 0; i < len(body); i++ {
		if masked[i] {
			flush(i)
			continue
		}
		if runStart < 0 {
			runStart = i
		}
	}
	flush(len(body))

	return blocks
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
