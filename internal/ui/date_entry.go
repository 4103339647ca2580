package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// DateEntry is a custom Entry widget that only accepts the characters a
// calendar entry can contain: digits and dashes, plus the T and colon
// separators when a time of day is expected.
// It embeds widget.Entry to inherit all standard behavior.
type DateEntry struct {
	widget.Entry

	withTime bool
}

// NewDateEntry creates an entry for YYYY-MM-DD values.
func NewDateEntry() *DateEntry {
	entry := &DateEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// NewDateTimeEntry creates an entry for YYYY-MM-DDTHH:MM values, with an
// optional seconds component.
func NewDateTimeEntry() *DateEntry {
	entry := &DateEntry{withTime: true}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune intercepts text input events and drops anything outside the
// date alphabet.
// Note: Shortcuts like Ctrl+V (Paste) are handled by TypedShortcut/TypedKey,
// so arbitrary data could still be pasted. The Validator handles that case.
func (e *DateEntry) TypedRune(r rune) {
	if (r >= '0' && r <= '9') || r == '-' {
		e.Entry.TypedRune(r)
		return
	}
	if e.withTime && (r == 'T' || r == ':') {
		e.Entry.TypedRune(r)
	}
}

// Keyboard overrides the default keyboard type.
// This ensures that on mobile devices, a numeric keypad is shown.
func (e *DateEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
