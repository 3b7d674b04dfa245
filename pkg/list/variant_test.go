package list_test

import (
	"testing"

	"github.com/Sompom/listptr/pkg/list"
)

func TestParseVariant(t *testing.T) {
	cases := []struct {
		in      string
		want    list.Variant
		wantErr bool
	}{
		{in: "indirect", want: list.VariantIndirect},
		{in: "direct", want: list.VariantDirect},
		{in: "", wantErr: true},
		{in: "Direct", wantErr: true},
		{in: "bogus", wantErr: true},
	}

	for _, c := range cases {
		got, err := list.ParseVariant(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseVariant(%q): expected error, got %v", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseVariant(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseVariant(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestVariantString(t *testing.T) {
	if s := list.VariantIndirect.String(); s != "indirect" {
		t.Errorf("VariantIndirect.String() = %q", s)
	}
	if s := list.VariantDirect.String(); s != "direct" {
		t.Errorf("VariantDirect.String() = %q", s)
	}
	if s := list.Variant(99).String(); s != "unknown" {
		t.Errorf("Variant(99).String() = %q", s)
	}
}

// String and ParseVariant must round-trip for both variants.
func TestVariantRoundTrip(t *testing.T) {
	for _, v := range []list.Variant{list.VariantDirect, list.VariantIndirect} {
		got, err := list.ParseVariant(v.String())
		if err != nil {
			t.Fatalf("ParseVariant(%q): %v", v.String(), err)
		}
		if got != v {
			t.Errorf("round trip of %v gave %v", v, got)
		}
	}
}

func TestVariantFunc(t *testing.T) {
	for _, v := range []list.Variant{list.VariantDirect, list.VariantIndirect} {
		fn := v.Func()
		if fn == nil {
			t.Fatalf("%v.Func() returned nil", v)
		}

		var head *list.Node
		fn(&head, 9)
		if head == nil || head.Value != 9 {
			t.Errorf("%v.Func() did not append: head=%+v", v, head)
		}
	}
}
