package browser

import (
	"github.com/gopherburrow/burrow/internal/document"
)

// wrapKey is the global shortcut that toggles line wrapping.
const wrapKey = "w"

// WrapToggler flips the wrap mode of every preformatted block in the
// attached document when the global shortcut fires.
//
// The shortcut only acts while keyboard focus is on the page body, so
// typing a "w" into the URL bar or a search field never touches the
// document. Each block flips its own prior mode independently; a page
// in mixed wrap states stays mixed, inverted.
type WrapToggler struct {
	view document.View
}

// NewWrapToggler creates a toggler attached to v. A nil v creates a
// detached toggler; attach one later with SetView.
func NewWrapToggler(v document.View) *WrapToggler {
	return &WrapToggler{view: v}
}

// SetView attaches the toggler to a document view. Passing nil
// detaches it. Called on every navigation, so the toggle always acts
// on the page that is currently rendered.
func (t *WrapToggler) SetView(v document.View) {
	t.view = v
}

// HandleKey processes one key event. It reports whether the event was
// consumed: true only when the shortcut matched, focus was on the body
// and the toggle ran (possibly over zero blocks). Malformed events fail
// the guard and mutate nothing.
func (t *WrapToggler) HandleKey(ev document.KeyEvent) bool {
	if t == nil || t.view == nil {
		return false
	}
	if ev.Key != wrapKey || ev.Focus != document.FocusBody {
		return false
	}

	for _, b := range t.view.TextBlocks() {
		b.SetWrapMode(b.WrapMode().Toggled())
	}
	return true
}
