// Package document holds the in-memory model of a rendered gopher page:
// a flat list of blocks, each either preformatted text or something
// navigable. It deliberately knows nothing about terminals or key maps,
// so behavior that inspects the document (like the wrap toggle) can be
// tested against a synthetic page.
package document

import (
	"net/url"

	"github.com/gopherburrow/burrow/internal/gopher"
)

// WrapMode is the line-wrapping behavior of a preformatted block.
// There are exactly two modes; a block that was never styled is WrapNone.
type WrapMode int

const (
	// WrapNone lets long lines overflow horizontally, preserving the
	// exact layout of the source. This is the default.
	WrapNone WrapMode = iota

	// WrapSoft breaks long lines at the viewport width.
	WrapSoft
)

func (m WrapMode) String() string {
	if m == WrapSoft {
		return "wrap"
	}
	return "no-wrap"
}

// Toggled returns the opposite mode.
func (m WrapMode) Toggled() WrapMode {
	if m == WrapNone {
		return WrapSoft
	}
	return WrapNone
}

// Focus identifies where keyboard input currently lands.
type Focus int

const (
	// FocusBody means no interactive widget holds focus; keys act as
	// page-level shortcuts. This is the default for a fresh document.
	FocusBody Focus = iota

	// FocusInput means an editable widget (URL bar, search field) holds
	// focus and keystrokes belong to it.
	FocusInput
)

// KeyEvent is one keypress as delivered by the input stream: the key
// identifier plus where focus was when it fired.
type KeyEvent struct {
	Key   string
	Focus Focus
}

// View is the slice of a rendered document that document-inspecting
// behavior needs: enumerate the preformatted blocks and report focus.
type View interface {
	TextBlocks() []*TextBlock
	Focus() Focus
}

// Block is one renderable unit of a document.
type Block interface {
	isBlock()
}

// TextBlock is a preformatted run of lines. Rendering preserves
// whitespace verbatim; whether long lines wrap is per-block state.
type TextBlock struct {
	Lines []string

	mode WrapMode
}

func (b *TextBlock) isBlock() {}

// WrapMode returns the block's current wrap mode.
func (b *TextBlock) WrapMode() WrapMode {
	return b.mode
}

// SetWrapMode sets the block's wrap mode.
func (b *TextBlock) SetWrapMode(m WrapMode) {
	b.mode = m
}

// LinkBlock is a navigable menu entry. URL may be nil when the entry's
// target could not be parsed; such links render but cannot be followed.
type LinkBlock struct {
	Type  gopher.ItemType
	Label string
	URL   *url.URL
}

func (b *LinkBlock) isBlock() {}

// SearchBlock is a type-7 full text search form.
type SearchBlock struct {
	Label string
	URL   *url.URL
}

func (b *SearchBlock) isBlock() {}

// Document is one rendered page.
type Document struct {
	Title  string
	URL    *url.URL
	Blocks []Block

	focus Focus
}

// TextBlocks enumerates the preformatted blocks currently in the
// document, in order.
func (d *Document) TextBlocks() []*TextBlock {
	var blocks []*TextBlock
	for _, b := range d.Blocks {
		if tb, ok := b.(*TextBlock); ok {
			blocks = append(blocks, tb)
		}
	}
	return blocks
}

// Focus returns where keyboard input currently lands.
func (d *Document) Focus() Focus {
	return d.focus
}

// SetFocus records where keyboard input currently lands.
func (d *Document) SetFocus(f Focus) {
	d.focus = f
}

// Navigable returns the blocks a link cursor can land on (links and
// search forms), in document order.
func (d *Document) Navigable() []Block {
	var blocks []Block
	for _, b := range d.Blocks {
		switch b.(type) {
		case *LinkBlock, *SearchBlock:
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// Verify Document implements View
var _ View = (*Document)(nil)
