package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Emeenent14/omniverse/config"
	"github.com/Emeenent14/omniverse/models"
	"github.com/jackc/pgx/v5"
)

type CatalogRepository struct{}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

func (r *CatalogRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := config.DB.Query(ctx, `SELECT id, name, description FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Description); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

const productColumns = `id, seller_id, title, description, price, category_id, image_url, in_stock, quantity, created_at, updated_at`

func scanProduct(row pgx.Row) (*models.Product, error) {
	p := &models.Product{}
	err := row.Scan(
		&p.ID, &p.SellerID, &p.Title, &p.Description, &p.Price, &p.CategoryID,
		&p.ImageURL, &p.InStock, &p.Quantity, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetProducts lists products matching the filter plus the unpaginated total.
// The WHERE clause is assembled per filter field, teacher-style positional
// params throughout.
func (r *CatalogRepository) GetProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, int, error) {
	where := " WHERE true"
	args := []interface{}{}
	paramIndex := 1

	if filter.Search != "" {
		where += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", paramIndex, paramIndex)
		args = append(args, "%"+filter.Search+"%")
		paramIndex++
	}
	if filter.CategoryID > 0 {
		where += fmt.Sprintf(" AND category_id = $%d", paramIndex)
		args = append(args, filter.CategoryID)
		paramIndex++
	}
	if filter.SellerID > 0 {
		where += fmt.Sprintf(" AND seller_id = $%d", paramIndex)
		args = append(args, filter.SellerID)
		paramIndex++
	}
	if filter.MinPrice != nil {
		where += fmt.Sprintf(" AND price >= $%d", paramIndex)
		args = append(args, *filter.MinPrice)
		paramIndex++
	}
	if filter.MaxPrice != nil {
		where += fmt.Sprintf(" AND price <= $%d", paramIndex)
		args = append(args, *filter.MaxPrice)
		paramIndex++
	}

	var total int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM products"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy := " ORDER BY created_at DESC"
	switch filter.SortPrice {
	case "asc":
		orderBy = " ORDER BY price ASC"
	case "desc":
		orderBy = " ORDER BY price DESC"
	}

	query := "SELECT " + productColumns + " FROM products" + where + orderBy +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", paramIndex, paramIndex+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}
	return products, total, rows.Err()
}

func (r *CatalogRepository) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	p, err := scanProduct(config.DB.QueryRow(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &models.NotFoundError{Resource: "product"}
	}
	return p, err
}

func (r *CatalogRepository) GetProductDetail(ctx context.Context, id int) (*models.ProductDetail, error) {
	product, err := r.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &models.ProductDetail{Product: *product}

	detail.Category = &models.Category{}
	err = config.DB.QueryRow(ctx,
		`SELECT id, name, description FROM categories WHERE id = $1`, product.CategoryID,
	).Scan(&detail.Category.ID, &detail.Category.Name, &detail.Category.Description)
	if err != nil {
		return nil, err
	}

	detail.Seller = &models.SellerSummary{}
	err = config.DB.QueryRow(ctx,
		`SELECT id, username FROM users WHERE id = $1`, product.SellerID,
	).Scan(&detail.Seller.ID, &detail.Seller.Username)
	if err != nil {
		return nil, err
	}

	rows, err := config.DB.Query(ctx,
		`SELECT id, product_id, image_url FROM product_images WHERE product_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	detail.AdditionalImages = []models.ProductImage{}
	for rows.Next() {
		var img models.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.ImageURL); err != nil {
			return nil, err
		}
		detail.AdditionalImages = append(detail.AdditionalImages, img)
	}
	return detail, rows.Err()
}

func (r *CatalogRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (seller_id, title, description, price, category_id, image_url, in_stock, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		product.SellerID, product.Title, product.Description, product.Price,
		product.CategoryID, product.ImageURL, product.InStock, product.Quantity, now, now,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *CatalogRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products SET title = $1, description = $2, price = $3, category_id = $4,
		       image_url = $5, in_stock = $6, quantity = $7, updated_at = $8
		WHERE id = $9
	`
	_, err := config.DB.Exec(ctx, query,
		product.Title, product.Description, product.Price, product.CategoryID,
		product.ImageURL, product.InStock, product.Quantity, time.Now(), product.ID,
	)
	return err
}

func (r *CatalogRepository) DeleteProduct(ctx context.Context, id int) error {
	tag, err := config.DB.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &models.NotFoundError{Resource: "product"}
	}
	return nil
}

func (r *CatalogRepository) AddProductImage(ctx context.Context, image *models.ProductImage) error {
	return config.DB.QueryRow(ctx,
		`INSERT INTO product_images (product_id, image_url) VALUES ($1, $2) RETURNING id`,
		image.ProductID, image.ImageURL,
	).Scan(&image.ID)
}
