// internal/catalog/repository.go
//
// SQL-backed catalog Retriever.
//
// Context
// -------
// Product data lives in three tables of the catalog database:
//
//	catalog_product          (sku PK, name, type_id, thumbnail_url,
//	                          thumbnail_label, url_key, url_path)
//	catalog_url_rewrite      (sku, url, position)
//	catalog_product_variant  (parent_sku, sku, name, thumbnail_url,
//	                          thumbnail_label, position)
//
// FetchProducts answers one list request with at most three parameterised
// queries, regardless of how many SKUs are asked for.  ResolveURLKey maps
// a url_key to its SKU for product pages addressed without one.
//
// Notes
// -----
//   - Nullable text columns scan into sql.NullString; empty and NULL are
//     the same "absent" to callers.
//   - Rewrites and variants keep their `position` order.
//   - Errors are returned verbatim so callers can wrap or log them.
//   - Oxford commas, two spaces after periods.
package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// SQLRepository reads products through a *sqlx.DB.
type SQLRepository struct {
	db *sqlx.DB
}

// NewSQLRepository wraps db.  The pool is owned by the caller.
func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

type productRow struct {
	Sku            string         `db:"sku"`
	Name           string         `db:"name"`
	Type           string         `db:"type_id"`
	ThumbnailURL   sql.NullString `db:"thumbnail_url"`
	ThumbnailLabel sql.NullString `db:"thumbnail_label"`
	URLKey         sql.NullString `db:"url_key"`
	URLPath        sql.NullString `db:"url_path"`
}

type rewriteRow struct {
	Sku string `db:"sku"`
	URL string `db:"url"`
}

type variantRow struct {
	ParentSku      string         `db:"parent_sku"`
	Sku            string         `db:"sku"`
	Name           string         `db:"name"`
	ThumbnailURL   sql.NullString `db:"thumbnail_url"`
	ThumbnailLabel sql.NullString `db:"thumbnail_label"`
}

const (
	qProducts = `
	    SELECT  sku, name, type_id, thumbnail_url, thumbnail_label, url_key, url_path
	    FROM    catalog_product
	    WHERE   sku IN (?)`

	qRewrites = `
	    SELECT  sku, url
	    FROM    catalog_url_rewrite
	    WHERE   sku IN (?)
	    ORDER BY sku, position`

	qVariants = `
	    SELECT  parent_sku, sku, name, thumbnail_url, thumbnail_label
	    FROM    catalog_product_variant
	    WHERE   parent_sku IN (?)
	    ORDER BY parent_sku, position`

	qSkuByURLKey = `
	    SELECT  sku
	    FROM    catalog_product
	    WHERE   url_key = ?
	    ORDER BY sku
	    LIMIT   1`
)

// FetchProducts implements Retriever.
func (r *SQLRepository) FetchProducts(ctx context.Context, skus []string) ([]Product, error) {
	if len(skus) == 0 {
		return nil, nil
	}

	var rows []productRow
	if err := r.selectIn(ctx, &rows, qProducts, skus); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	products := make([]Product, len(rows))
	found := make([]string, len(rows))
	var configurable []string
	for i, row := range rows {
		products[i] = Product{
			Sku:  row.Sku,
			Name: row.Name,
			Type: row.Type,
			Thumbnail: Thumbnail{
				URL:   row.ThumbnailURL.String,
				Label: row.ThumbnailLabel.String,
			},
			URLKey:  row.URLKey.String,
			URLPath: row.URLPath.String,
		}
		found[i] = row.Sku
		if row.Type == TypeConfigurable {
			configurable = append(configurable, row.Sku)
		}
	}
	byS := Index(products)

	var rewrites []rewriteRow
	if err := r.selectIn(ctx, &rewrites, qRewrites, found); err != nil {
		return nil, err
	}
	for _, rw := range rewrites {
		if p, ok := byS[rw.Sku]; ok {
			p.URLRewrites = append(p.URLRewrites, rw.URL)
		}
	}

	if len(configurable) == 0 {
		return products, nil
	}
	var variants []variantRow
	if err := r.selectIn(ctx, &variants, qVariants, configurable); err != nil {
		return nil, err
	}
	for _, v := range variants {
		if p, ok := byS[v.ParentSku]; ok {
			p.Variants = append(p.Variants, Variant{
				Sku:  v.Sku,
				Name: v.Name,
				Thumbnail: Thumbnail{
					URL:   v.ThumbnailURL.String,
					Label: v.ThumbnailLabel.String,
				},
			})
		}
	}
	return products, nil
}

// ResolveURLKey implements URLKeyResolver.  When several products share a
// url_key the lowest SKU wins.
func (r *SQLRepository) ResolveURLKey(ctx context.Context, urlKey string) (string, error) {
	var sku string
	err := r.db.GetContext(ctx, &sku, r.db.Rebind(qSkuByURLKey), urlKey)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return sku, err
}

// selectIn expands the single IN (?) placeholder and rebinds for the
// driver in use.
func (r *SQLRepository) selectIn(ctx context.Context, dest any, q string, args []string) error {
	query, params, err := sqlx.In(q, args)
	if err != nil {
		return err
	}
	err = r.db.SelectContext(ctx, dest, r.db.Rebind(query), params...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return err
}
