package ir

// FieldSlot exposes one owned single-child field of a payload, by name, so
// generic kernel algorithms (skeleton clone, MatchedInsert, guide visit) can
// walk any concrete kind without a type switch over all ~85 leaves.
type FieldSlot struct {
	Name string
	Get  func() NodeID
	Set  func(NodeID)
}

// ListSlot exposes one owned BList field of a payload, by name.
type ListSlot struct {
	Name string
	List *BList
}

// Payload is implemented by every kind-specific node body (ExpressionData,
// AssignData, ...): an ordered list of the single-child fields it owns and
// an ordered list of the BLists it owns, exposed generically so kernel
// algorithms need no per-kind switch.
type Payload interface {
	ClassID() ClassID
	Fields() []FieldSlot
	Lists() []ListSlot
}

// BList is an ordered, owned child sequence. Membership in a BList and the
// field index together uniquely locate a child inside its parent.
type BList struct {
	Owner NodeID
	Field string
	Items []NodeID
}

// NewBList creates an empty BList tagged with its owner and field name.
func NewBList(owner NodeID, field string) *BList {
	return &BList{Owner: owner, Field: field}
}

// Len returns the number of items in the list.
func (b *BList) Len() int { return len(b.Items) }

// At returns the item at position i, or NoNode if out of range.
func (b *BList) At(i int) NodeID {
	if i < 0 || i >= len(b.Items) {
		return NoNode
	}
	return b.Items[i]
}

// IndexOf returns the position of id in the list, or -1.
func (b *BList) IndexOf(id NodeID) int {
	for i, v := range b.Items {
		if v == id {
			return i
		}
	}
	return -1
}
