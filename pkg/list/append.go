package list

// AppendFunc is the signature shared by both append algorithms. slot must be
// the address of a head variable or of some node's Next field; passing a nil
// slot is a precondition violation and panics on the first dereference.
type AppendFunc func(slot **Node, value int)

// AppendIndirect appends value to the tail of the list whose head is stored
// in *slot, walking the chain as a sequence of slots: the head slot first,
// then each node's Next field. Because every slot is handled the same way,
// the empty list needs no special case — writing the new node into the first
// empty slot found is correct whether that slot is the head or a Next field.
func AppendIndirect(slot **Node, value int) {
	n := &Node{Value: value}

	indirect := slot
	for *indirect != nil {
		indirect = &(*indirect).Next
	}
	*indirect = n
}

// AppendDirect appends value to the tail of the list whose head is stored in
// *slot, walking node pointers with a trailing prev. It must branch on
// whether any node was visited: an empty list means the new node becomes the
// head, otherwise it becomes the last visited node's successor. That branch
// is exactly the special case AppendIndirect avoids.
func AppendDirect(slot **Node, value int) {
	n := &Node{Value: value}

	var prev *Node
	for cur := *slot; cur != nil; cur = cur.Next {
		prev = cur
	}

	if prev == nil {
		*slot = n
	} else {
		prev.Next = n
	}
}
