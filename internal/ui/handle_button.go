package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/sort-visualizer/internal/model"
)

// HandleButton displays one board position. Its text and color follow the
// handle at that position; tapping it reports the position, not the value.
type HandleButton struct {
	widget.Button

	position int
	handle   model.Handle
	onSelect func(position int)
}

// NewHandleButton creates a button for the handle at position
func NewHandleButton(position int, h model.Handle, onSelect func(position int)) *HandleButton {
	b := &HandleButton{
		position: position,
		onSelect: onSelect,
	}
	b.ExtendBaseWidget(b)
	b.OnTapped = b.tapped
	b.apply(h)
	return b
}

// Index returns the board position this button stands for
func (b *HandleButton) Index() int {
	return b.position
}

// Handle returns the handle currently shown
func (b *HandleButton) Handle() model.Handle {
	return b.handle
}

// Update shows h and refreshes the button if anything changed
func (b *HandleButton) Update(h model.Handle) {
	if h == b.handle {
		return
	}
	b.apply(h)
	b.Refresh()
}

// MinSize keeps every handle the same size so columns line up
func (b *HandleButton) MinSize() fyne.Size {
	return b.Button.MinSize().Max(fyne.NewSize(HandleWidth, HandleHeight))
}

func (b *HandleButton) apply(h model.Handle) {
	b.handle = h
	b.Text = strconv.Itoa(h.Value)
	b.Importance = importanceFor(h.Highlight)
}

func (b *HandleButton) tapped() {
	if b.onSelect != nil {
		b.onSelect(b.position)
	}
}

// importanceFor maps a highlight to the theme color used to paint it
func importanceFor(h model.Highlight) widget.Importance {
	switch h {
	case model.HighlightPivotA:
		return widget.WarningImportance
	case model.HighlightPivotB:
		return widget.SuccessImportance
	default:
		return widget.HighImportance
	}
}
