package list

import "fmt"

// Variant selects which append algorithm a run uses. All appends in one run
// should go through the same variant; mixing them is harmless for
// correctness but defeats the comparison.
type Variant uint8

const (
	// VariantIndirect walks pointer-to-pointer slots and needs no
	// empty-list branch.
	VariantIndirect Variant = iota
	// VariantDirect walks node pointers with a trailing prev and
	// special-cases the empty list.
	VariantDirect
)

func (v Variant) String() string {
	switch v {
	case VariantIndirect:
		return "indirect"
	case VariantDirect:
		return "direct"
	default:
		return "unknown"
	}
}

// ParseVariant maps a variant name to its Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "indirect":
		return VariantIndirect, nil
	case "direct":
		return VariantDirect, nil
	default:
		return 0, fmt.Errorf("unknown append variant %q (want direct or indirect)", s)
	}
}

// Func returns the append function implementing the variant.
func (v Variant) Func() AppendFunc {
	if v == VariantDirect {
		return AppendDirect
	}
	return AppendIndirect
}

// Append adds value to the tail of the list whose head is stored in *slot
// using the variant's algorithm.
func (v Variant) Append(slot **Node, value int) {
	v.Func()(slot, value)
}

// Build appends each value in order to an empty list and returns its head.
func Build(v Variant, values ...int) *Node {
	var head *Node
	for _, value := range values {
		v.Append(&head, value)
	}
	return head
}
