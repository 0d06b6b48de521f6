// Package events carries the semantic actions of the browser between the
// input layer and the state owners. Producers push onto a queue from any
// goroutine; the app loop consumes and routes, so handlers always run
// single-threaded.
package events

// Type identifies a semantic browser action.
type Type int

const (
	// TypeSelectToggle flips the highlight selection of one record.
	// Trigger: left click on a card, Space on the cursor row.
	TypeSelectToggle Type = iota

	// TypeCartToggle adds or removes one record from the export cart.
	// Trigger: right click on a card, 'c' on the cursor row.
	TypeCartToggle

	// TypeOpenDetail opens the detail view for one record.
	// Trigger: double click, Enter on the cursor row.
	TypeOpenDetail

	// TypeHoverShow raises the hover preview after the hover delay.
	TypeHoverShow

	// TypeHoverHide drops the hover preview when the pointer leaves.
	TypeHoverHide
)

// Event is one dispatched action. ID is the record identity it pertains
// to; X and Y carry the originating screen position where relevant.
type Event struct {
	Type Type
	ID   string
	X, Y int
}
