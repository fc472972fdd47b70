// internal/identifier/split.go
//
// Combined SKU tokens.
//
// Context
// -------
// Authors pick products for lists and carousels as single tokens:
//
//   - "MJ01"                     – a base product.
//   - "MJ01#MJ01-XS-Red"         – a specific variant of MJ01.
//   - "/var/commerce/.../MJ01"   – a catalog resource path; only the last
//     segment is the token.
//
// SplitCombinedSku is the one place that decides which part is the
// grouping key (base SKU) and which is the purchasable variant.  Every
// list consumer calls it before grouping or fetching, so the base SKU
// handed to urlformat.Params never contains the separator.
//
// Notes
// -----
//   - The separator matches the URL fragment delimiter, which is where the
//     variant ends up in a formatted URL.
//   - Oxford commas, two spaces after periods.
package identifier

import "strings"

// VariantSeparator joins the base and the variant SKU in a combined token.
const VariantSeparator = "#"

// Identifier names one product, optionally narrowed to a variant.
type Identifier struct {
	Sku        string `json:"sku"`
	VariantSku string `json:"variant_sku,omitempty"`
}

// HasVariant reports whether a variant SKU was present in the token.
func (id Identifier) HasVariant() bool { return id.VariantSku != "" }

// SplitCombinedSku parses a combined token.  Without a separator the whole
// token is the base SKU.
func SplitCombinedSku(token string) Identifier {
	if strings.HasPrefix(token, "/") {
		token = token[strings.LastIndexByte(token, '/')+1:]
	}
	base, variant, _ := strings.Cut(token, VariantSeparator)
	return Identifier{Sku: base, VariantSku: variant}
}

// BaseSkus returns the distinct base SKUs of tokens in first-seen order.
// Empty bases are skipped.
func BaseSkus(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		sku := SplitCombinedSku(t).Sku
		if sku == "" {
			continue
		}
		if _, dup := seen[sku]; dup {
			continue
		}
		seen[sku] = struct{}{}
		out = append(out, sku)
	}
	return out
}
