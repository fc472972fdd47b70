// internal/component/services.go
package component

import (
	"github.com/yanizio/adept-commerce/internal/catalog"
	"github.com/yanizio/adept-commerce/internal/urlformat"
)

// Services exposes process-wide resources to Components during Init.
type Services struct {
	Catalog     catalog.Retriever
	Format      urlformat.Format
	ProductPage string
	StrictURLs  bool
}
