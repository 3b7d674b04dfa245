// Package list implements a singly linked list of integers with two
// interchangeable append algorithms: a direct-pointer walk that special-cases
// the empty list, and an indirect pointer-to-pointer walk that does not.
//
// A list is identified purely by its head pointer; a nil head is the empty
// list. Both algorithms take the address of the head variable (a "slot") so
// that appending to an empty list can replace the head itself.
package list

// Node is a single list element. The last node's Next is nil.
type Node struct {
	Value int
	Next  *Node
}

// Values returns the list contents in traversal order. A nil head yields nil.
func Values(head *Node) []int {
	var vals []int
	for n := head; n != nil; n = n.Next {
		vals = append(vals, n.Value)
	}
	return vals
}

// Length returns the number of nodes reachable from head.
func Length(head *Node) int {
	count := 0
	for n := head; n != nil; n = n.Next {
		count++
	}
	return count
}
