package services

import (
	"context"
	"errors"
	"math"

	"github.com/Emeenent14/omniverse/models"
	"github.com/Emeenent14/omniverse/repositories"
	"github.com/Emeenent14/omniverse/utils"
	"github.com/shopspring/decimal"
)

// ErrNotProductSeller rejects writes on a product the caller does not own.
var ErrNotProductSeller = errors.New("only the seller can modify this product")

// CatalogStore is the persistence contract for categories and products.
type CatalogStore interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, int, error)
	GetProductByID(ctx context.Context, id int) (*models.Product, error)
	GetProductDetail(ctx context.Context, id int) (*models.ProductDetail, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id int) error
	AddProductImage(ctx context.Context, image *models.ProductImage) error
}

type ProductService struct {
	catalog CatalogStore
}

func NewProductService() *ProductService {
	return &ProductService{catalog: repositories.NewCatalogRepository()}
}

func NewProductServiceWithStore(catalog CatalogStore) *ProductService {
	return &ProductService{catalog: catalog}
}

func (s *ProductService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.catalog.GetAllCategories(ctx)
}

// ClampPaging normalizes page/limit the same way for every listing endpoint.
func ClampPaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func (s *ProductService) GetProducts(ctx context.Context, filter models.ProductFilter) (*models.PaginationResponse, error) {
	filter.Page, filter.Limit = ClampPaging(filter.Page, filter.Limit)

	products, total, err := s.catalog.GetProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &models.PaginationResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
		Meta: models.MetaData{
			Page:       filter.Page,
			Limit:      filter.Limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		},
	}, nil
}

func (s *ProductService) GetProductDetail(ctx context.Context, id int) (*models.ProductDetail, error) {
	return s.catalog.GetProductDetail(ctx, id)
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &models.ValidationError{Field: "price", Message: "Price must be a valid decimal number."}
	}
	if price.IsNegative() {
		return decimal.Zero, &models.ValidationError{Field: "price", Message: "Price cannot be negative."}
	}
	return price, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, sellerID int, req models.CreateProductRequest, imageURL string) (*models.Product, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := &models.Product{
		SellerID:    sellerID,
		Title:       req.Title,
		Description: req.Description,
		Price:       price,
		CategoryID:  req.CategoryID,
		ImageURL:    imageURL,
		InStock:     inStock,
		Quantity:    req.Quantity,
	}

	if err := s.catalog.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, sellerID, productID int, req models.UpdateProductRequest, imageURL string) (*models.Product, error) {
	product, err := s.ownedProduct(ctx, sellerID, productID)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		product.Title = req.Title
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price != "" {
		price, err := parsePrice(req.Price)
		if err != nil {
			return nil, err
		}
		product.Price = price
	}
	if req.CategoryID > 0 {
		product.CategoryID = req.CategoryID
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, &models.ValidationError{Field: "quantity", Message: "Quantity cannot be negative."}
		}
		product.Quantity = *req.Quantity
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if imageURL != "" {
		if product.ImageURL != "" {
			utils.DeleteFile(product.ImageURL)
		}
		product.ImageURL = imageURL
	}

	if err := s.catalog.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, sellerID, productID int) error {
	product, err := s.ownedProduct(ctx, sellerID, productID)
	if err != nil {
		return err
	}

	if err := s.catalog.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	if product.ImageURL != "" {
		utils.DeleteFile(product.ImageURL)
	}
	return nil
}

func (s *ProductService) AddProductImage(ctx context.Context, sellerID, productID int, imageURL string) (*models.ProductImage, error) {
	if _, err := s.ownedProduct(ctx, sellerID, productID); err != nil {
		return nil, err
	}

	image := &models.ProductImage{ProductID: productID, ImageURL: imageURL}
	if err := s.catalog.AddProductImage(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *ProductService) ownedProduct(ctx context.Context, sellerID, productID int) (*models.Product, error) {
	product, err := s.catalog.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.SellerID != sellerID {
		return nil, ErrNotProductSeller
	}
	return product, nil
}
