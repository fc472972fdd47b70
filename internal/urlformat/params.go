// internal/urlformat/params.go
//
// Params carrier shared by every product URL format.
//
// Context
// -------
// A Params value is built fresh for one Format or one Parse call and then
// discarded.  Every field is optional; the empty string (or a nil slice)
// means "unknown".  No field ever carries a sentinel value.
//
// Notes
// -----
//   - `Sku` is always the base SKU.  Callers split combined "base#variant"
//     tokens with internal/identifier before filling Params.
//   - `CategoryURLKey` is produced by Parse only; Format never reads it.
//   - Oxford commas, two spaces after periods.
package urlformat

// Params holds every field a product URL format may read or write.
type Params struct {
	Page           string   `json:"page,omitempty"`
	Sku            string   `json:"sku,omitempty"`
	URLKey         string   `json:"url_key,omitempty"`
	URLPath        string   `json:"url_path,omitempty"`
	CategoryURLKey string   `json:"category_url_key,omitempty"`
	VariantSku     string   `json:"variant_sku,omitempty"`
	VariantURLKey  string   `json:"variant_url_key,omitempty"`
	URLRewrites    []string `json:"url_rewrites,omitempty"`
}

// Clone returns a deep copy so callers can hand Params to a format without
// sharing the rewrites slice.
func (p Params) Clone() Params {
	out := p
	if p.URLRewrites != nil {
		out.URLRewrites = append([]string(nil), p.URLRewrites...)
	}
	return out
}
