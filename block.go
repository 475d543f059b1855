package docjudge

import "strings"

// BlockTag identifies the kind of content a block holds.
type BlockTag string

// BlockTag constants.
const (
	BlockHeading   BlockTag = "heading"
	BlockParagraph BlockTag = "paragraph"
	BlockListItem  BlockTag = "list-item"
	BlockCode      BlockTag = "code"
	BlockGeneric   BlockTag = "generic"
)

// Extraction thresholds.
const (
	// MinBlockChars is the minimum trimmed length for an individual block
	// to be collected. Shorter blocks are discarded during collection,
	// not after joining.
	MinBlockChars = 10

	// MinViableChars is the minimum cleaned length below which extracted
	// text is considered unusable.
	MinViableChars = 100
)

// ContentBlock is one ordered, tagged unit of extracted page text.
// Level applies only to heading blocks.
type ContentBlock struct {
	Tag   BlockTag
	Level int
	Text  string
}

// TextBlock builds a non-heading block.
func TextBlock(tag BlockTag, text string) ContentBlock {
	return ContentBlock{Tag: tag, Text: text}
}

// HeadingBlock builds a heading block. Level is clamped to 1..6.
func HeadingBlock(level int, text string) ContentBlock {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return ContentBlock{Tag: BlockHeading, Level: level, Text: text}
}

// BlockForTag maps an HTML tag name to a content block. Heading tags
// h1-h6 become heading blocks at the matching level; everything else
// carries its text as-is under the closest block kind.
func BlockForTag(tagName, text string) ContentBlock {
	tagName = strings.ToLower(strings.TrimSpace(tagName))
	if len(tagName) == 2 && tagName[0] == 'h' && tagName[1] >= '1' && tagName[1] <= '6' {
		return HeadingBlock(int(tagName[1]-'0'), text)
	}
	switch tagName {
	case "p":
		return TextBlock(BlockParagraph, text)
	case "li":
		return TextBlock(BlockListItem, text)
	case "pre", "code":
		return TextBlock(BlockCode, text)
	default:
		return TextBlock(BlockGeneric, text)
	}
}

// Markdown renders the block as text. Heading blocks are framed with
// newlines and a marker matching their level; other blocks render their
// text as-is.
func (b ContentBlock) Markdown() string {
	if b.Tag == BlockHeading {
		level := b.Level
		if level < 1 {
			level = 1
		}
		if level > 6 {
			level = 6
		}
		return "\n" + strings.Repeat("#", level) + " " + b.Text + "\n"
	}
	return b.Text
}

// ExtractedDocument is an ordered sequence of content blocks. Documents
// are immutable values: later pipeline stages only consume them.
type ExtractedDocument struct {
	Blocks []ContentBlock
}

// Markdown returns the blocks joined with blank-line separation, before
// line cleanup.
func (d *ExtractedDocument) Markdown() string {
	parts := make([]string, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		parts = append(parts, b.Markdown())
	}
	return strings.Join(parts, "\n\n")
}

// Text returns the cleaned, newline-joined document content consumed by
// downstream stages.
func (d *ExtractedDocument) Text() string {
	return CleanText(d.Markdown())
}

// CleanText splits the text into lines, trims each line, drops lines of
// length <= 3, and rejoins with single newlines. The operation is
// idempotent.
func CleanText(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 3 {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
