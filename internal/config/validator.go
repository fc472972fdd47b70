// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// `internal/config/loader.go` calls `validateStruct` immediately after it
// unmarshals the merged Koanf tree into a `Config` instance.  Any tag
// mismatch or validation error aborts startup, ensuring the binary never
// runs with partial, malformed, or missing configuration.
//
// Custom rules
// ------------
//   • urlformat – value must be a registered product url format name.
//   • vaultref  – value must look like "mount/path#key".
//
// Notes
// -----
//   • Oxford commas, two spaces after periods.
//   • Section dividers use the simple comment style requested.

package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yanizio/adept-commerce/internal/urlformat"
)

//
// validator instance (package-level singleton)
//

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	_ = val.RegisterValidation("urlformat", func(fl validator.FieldLevel) bool {
		_, err := urlformat.Lookup(fl.Field().String())
		return err == nil
	})
	_ = val.RegisterValidation("vaultref", func(fl validator.FieldLevel) bool {
		_, _, err := SplitSecretRef(fl.Field().String())
		return err == nil
	})
	return val
}

//
// public API
//

// validateStruct returns the first validation error, or nil on success.
func validateStruct(c *Config) error {
	return v.Struct(c)
}

// SplitSecretRef splits "mount/path#key" into its path and key.
func SplitSecretRef(ref string) (path, key string, err error) {
	path, key, ok := strings.Cut(ref, "#")
	if !ok || path == "" || key == "" || !strings.Contains(path, "/") {
		return "", "", fmt.Errorf("invalid secret reference %q (want mount/path#key)", ref)
	}
	return path, key, nil
}
