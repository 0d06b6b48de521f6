package ui

import (
	"github.com/RogersPyke/robocoin-visualizer/events"
)

// selectionActions owns selection and cart mutations. Exactly one
// handler per event type regardless of how many records are on screen.
type selectionActions struct{}

func (selectionActions) EventTypes() []events.Type {
	return []events.Type{events.TypeSelectToggle, events.TypeCartToggle}
}

func (selectionActions) HandleEvent(a *App, ev events.Event) {
	switch ev.Type {
	case events.TypeSelectToggle:
		on := a.sel.ToggleSelect(ev.ID)
		a.cues.Select()
		if on {
			a.setStatus("selected (%d total)", a.sel.SelectedCount())
		} else {
			a.setStatus("deselected (%d total)", a.sel.SelectedCount())
		}
	case events.TypeCartToggle:
		on := a.sel.ToggleCart(ev.ID)
		a.cues.Cart()
		if on {
			a.setStatus("added to cart (%d total)", a.sel.CartCount())
		} else {
			a.setStatus("removed from cart (%d total)", a.sel.CartCount())
		}
	}
}

type navigationActions struct{}

func (navigationActions) EventTypes() []events.Type {
	return []events.Type{events.TypeOpenDetail}
}

func (navigationActions) HandleEvent(a *App, ev events.Event) {
	if _, ok := a.cat.Get(ev.ID); !ok {
		return
	}
	a.detailID = ev.ID
	a.mode = ModeDetail
	a.hoverID = ""
	a.cues.Open()
}

type hoverActions struct{}

func (hoverActions) EventTypes() []events.Type {
	return []events.Type{events.TypeHoverShow, events.TypeHoverHide}
}

func (hoverActions) HandleEvent(a *App, ev events.Event) {
	switch ev.Type {
	case events.TypeHoverShow:
		if a.mode == ModeBrowse {
			a.hoverID = ev.ID
		}
	case events.TypeHoverHide:
		if a.hoverID == ev.ID {
			a.hoverID = ""
		}
	}
}
