package identifier

import (
	"reflect"
	"testing"
)

func TestSplitCombinedSku(t *testing.T) {
	cases := []struct {
		in   string
		want Identifier
	}{
		{"MJ01", Identifier{Sku: "MJ01"}},
		{"MJ01#MJ01-XS-Red", Identifier{Sku: "MJ01", VariantSku: "MJ01-XS-Red"}},
		{"/var/commerce/products/MJ01#MJ01-XS", Identifier{Sku: "MJ01", VariantSku: "MJ01-XS"}},
		{"/var/commerce/products/MJ01", Identifier{Sku: "MJ01"}},
		{"MJ01#", Identifier{Sku: "MJ01"}},
		{"", Identifier{}},
	}
	for _, tc := range cases {
		if got := SplitCombinedSku(tc.in); got != tc.want {
			t.Errorf("%q: got %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestSplitCombinedSku_HasVariant(t *testing.T) {
	if SplitCombinedSku("A").HasVariant() {
		t.Fatalf("plain sku reported a variant")
	}
	if !SplitCombinedSku("A#B").HasVariant() {
		t.Fatalf("variant not detected")
	}
}

func TestBaseSkus(t *testing.T) {
	got := BaseSkus([]string{"B#b1", "A", "/x/B#b2", "", "A#a1", "C"})
	if want := []string{"B", "A", "C"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
