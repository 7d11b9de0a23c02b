package repositories

import (
	"context"
	"errors"

	"github.com/Emeenent14/omniverse/config"
	"github.com/Emeenent14/omniverse/models"
	"github.com/jackc/pgx/v5"
)

// CartRepository owns the cart_items table. Every query is scoped by the
// caller's user id, so one user's rows are invisible to another even when an
// item id is guessed.
type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

const productSummaryQuery = `
	SELECT id, title, price, image_url, in_stock, quantity
	FROM products WHERE id = $1
`

func scanProductSummary(row pgx.Row) (*models.ProductSummary, error) {
	p := &models.ProductSummary{}
	err := row.Scan(&p.ID, &p.Title, &p.Price, &p.ImageURL, &p.InStock, &p.Quantity)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *CartRepository) ListByUser(ctx context.Context, userID int) ([]models.CartItem, error) {
	query := `
		SELECT ci.id, ci.user_id, ci.product_id, ci.quantity, ci.added_at, ci.updated_at,
		       p.id, p.title, p.price, p.image_url, p.in_stock, p.quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1
		ORDER BY ci.added_at, ci.id
	`

	rows, err := config.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		product := &models.ProductSummary{}
		err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.AddedAt, &item.UpdatedAt,
			&product.ID, &product.Title, &product.Price, &product.ImageURL, &product.InStock, &product.Quantity,
		)
		if err != nil {
			return nil, err
		}
		item.Product = product
		item.TotalPrice = models.ItemTotal(product.Price, item.Quantity)
		items = append(items, item)
	}
	return items, rows.Err()
}

// Upsert adds a product to the user's cart. An existing (user, product) row
// accumulates the requested quantity instead of inserting a second row; the
// accumulated quantity is re-validated against current stock. The whole
// read-validate-write sequence runs in one transaction with the cart row
// locked, and a lost insert race is merged into the winner's row rather than
// surfaced as an error. The returned bool is true when a new row was created.
func (r *CartRepository) Upsert(ctx context.Context, userID, productID, requested int) (*models.CartItem, bool, error) {
	if requested <= 0 {
		return nil, false, &models.ValidationError{Field: "quantity", Message: "Quantity must be greater than zero."}
	}

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback(ctx)

	product, err := scanProductSummary(tx.QueryRow(ctx, productSummaryQuery, productID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, &models.ValidationError{Field: "product", Message: "Product does not exist."}
	}
	if err != nil {
		return nil, false, err
	}

	item := &models.CartItem{UserID: userID, ProductID: productID, Product: product}

	accumulate := func(itemID, oldQuantity int) error {
		newQuantity := oldQuantity + requested
		if err := models.CheckStock(product, newQuantity); err != nil {
			return err
		}
		item.ID = itemID
		return tx.QueryRow(ctx, `
			UPDATE cart_items SET quantity = $1, updated_at = now()
			WHERE id = $2
			RETURNING quantity, added_at, updated_at
		`, newQuantity, itemID).Scan(&item.Quantity, &item.AddedAt, &item.UpdatedAt)
	}

	created := false
	var existingID, existingQuantity int
	err = tx.QueryRow(ctx, `
		SELECT id, quantity FROM cart_items
		WHERE user_id = $1 AND product_id = $2
		FOR UPDATE
	`, userID, productID).Scan(&existingID, &existingQuantity)

	switch {
	case err == nil:
		if err := accumulate(existingID, existingQuantity); err != nil {
			return nil, false, err
		}

	case errors.Is(err, pgx.ErrNoRows):
		if err := models.CheckStock(product, requested); err != nil {
			return nil, false, err
		}

		insertErr := tx.QueryRow(ctx, `
			INSERT INTO cart_items (user_id, product_id, quantity)
			VALUES ($1, $2, $3)
			ON CONFLICT ON CONSTRAINT cart_items_user_product_key DO NOTHING
			RETURNING id, quantity, added_at, updated_at
		`, userID, productID, requested).Scan(&item.ID, &item.Quantity, &item.AddedAt, &item.UpdatedAt)

		if errors.Is(insertErr, pgx.ErrNoRows) {
			// A concurrent request inserted the same (user, product) pair
			// between our lookup and the insert. Lock its now-committed row
			// and merge into it.
			err = tx.QueryRow(ctx, `
				SELECT id, quantity FROM cart_items
				WHERE user_id = $1 AND product_id = $2
				FOR UPDATE
			`, userID, productID).Scan(&existingID, &existingQuantity)
			if err != nil {
				return nil, false, err
			}
			if err := accumulate(existingID, existingQuantity); err != nil {
				return nil, false, err
			}
		} else if insertErr != nil {
			return nil, false, insertErr
		} else {
			created = true
		}

	default:
		return nil, false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, err
	}

	item.TotalPrice = models.ItemTotal(product.Price, item.Quantity)
	return item, created, nil
}

// SetQuantity replaces an item's quantity outright, unlike Upsert which
// accumulates. Same stock validation, same single-transaction guarantee.
func (r *CartRepository) SetQuantity(ctx context.Context, userID, itemID, quantity int) (*models.CartItem, error) {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	item := &models.CartItem{ID: itemID, UserID: userID}
	err = tx.QueryRow(ctx, `
		SELECT product_id, added_at FROM cart_items
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`, itemID, userID).Scan(&item.ProductID, &item.AddedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &models.NotFoundError{Resource: "cart item"}
	}
	if err != nil {
		return nil, err
	}

	product, err := scanProductSummary(tx.QueryRow(ctx, productSummaryQuery, item.ProductID))
	if err != nil {
		return nil, err
	}

	if err := models.CheckStock(product, quantity); err != nil {
		return nil, err
	}

	err = tx.QueryRow(ctx, `
		UPDATE cart_items SET quantity = $1, updated_at = now()
		WHERE id = $2
		RETURNING quantity, updated_at
	`, quantity, itemID).Scan(&item.Quantity, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	item.Product = product
	item.TotalPrice = models.ItemTotal(product.Price, item.Quantity)
	return item, nil
}

func (r *CartRepository) Delete(ctx context.Context, userID, itemID int) error {
	tag, err := config.DB.Exec(ctx, `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, itemID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &models.NotFoundError{Resource: "cart item"}
	}
	return nil
}

// Clear removes every item in the user's cart. Clearing an already empty
// cart succeeds.
func (r *CartRepository) Clear(ctx context.Context, userID int) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	return err
}

// Summarize computes the item count and total price in a single statement so
// both numbers come from the same snapshot of the cart. Totals join against
// the products table for the current price.
func (r *CartRepository) Summarize(ctx context.Context, userID int) (*models.CartSummary, error) {
	summary := &models.CartSummary{}
	err := config.DB.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(ci.quantity * p.price), 0)
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1
	`, userID).Scan(&summary.ItemCount, &summary.TotalPrice)
	if err != nil {
		return nil, err
	}
	return summary, nil
}
