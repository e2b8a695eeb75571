package model

// Item represents a single named entry on the shopping list.  The list
// imposes no identifier or metadata on entries: the name is the whole
// record, insertion order is its position, and duplicates are allowed.
//
// Fields:
//  Name – non-empty, whitespace-trimmed item name.
type Item struct {
	Name string `json:"name"` // the item name as stored on the list
}
