package services

import (
	"context"
	"testing"

	"github.com/Emeenent14/omniverse/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogStore struct {
	nextID   int
	products map[int]*models.Product
	images   []models.ProductImage
}

func newFakeCatalogStore() *fakeCatalogStore {
	return &fakeCatalogStore{nextID: 1, products: map[int]*models.Product{}}
}

func (f *fakeCatalogStore) GetAllCategories(context.Context) ([]models.Category, error) {
	return []models.Category{{ID: 1, Name: "Electronics"}}, nil
}

func (f *fakeCatalogStore) GetProducts(_ context.Context, filter models.ProductFilter) ([]models.Product, int, error) {
	all := []models.Product{}
	for _, p := range f.products {
		all = append(all, *p)
	}
	return all, len(all), nil
}

func (f *fakeCatalogStore) GetProductByID(_ context.Context, id int) (*models.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, &models.NotFoundError{Resource: "product"}
	}
	copied := *product
	return &copied, nil
}

func (f *fakeCatalogStore) GetProductDetail(ctx context.Context, id int) (*models.ProductDetail, error) {
	product, err := f.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.ProductDetail{Product: *product}, nil
}

func (f *fakeCatalogStore) CreateProduct(_ context.Context, product *models.Product) error {
	product.ID = f.nextID
	f.nextID++
	f.products[product.ID] = product
	return nil
}

func (f *fakeCatalogStore) UpdateProduct(_ context.Context, product *models.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeCatalogStore) DeleteProduct(_ context.Context, id int) error {
	if _, ok := f.products[id]; !ok {
		return &models.NotFoundError{Resource: "product"}
	}
	delete(f.products, id)
	return nil
}

func (f *fakeCatalogStore) AddProductImage(_ context.Context, image *models.ProductImage) error {
	image.ID = len(f.images) + 1
	f.images = append(f.images, *image)
	return nil
}

func createRequest() models.CreateProductRequest {
	return models.CreateProductRequest{
		Title:       "Analytical Engine",
		Description: "Gently used",
		Price:       "1999.99",
		CategoryID:  1,
		Quantity:    3,
	}
}

func TestClampPaging(t *testing.T) {
	tests := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{1, 10, 1, 10},
		{0, 0, 1, 10},
		{-3, -1, 1, 10},
		{2, 500, 2, 100},
	}
	for _, tt := range tests {
		page, limit := ClampPaging(tt.page, tt.limit)
		assert.Equal(t, tt.wantPage, page)
		assert.Equal(t, tt.wantLimit, limit)
	}
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()
	svc := NewProductServiceWithStore(newFakeCatalogStore())

	product, err := svc.CreateProduct(ctx, 7, createRequest(), "products/engine.jpg")
	require.NoError(t, err)
	assert.Equal(t, 7, product.SellerID)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("1999.99")))
	assert.True(t, product.InStock)
	assert.Equal(t, 3, product.Quantity)
}

func TestCreateProductRejectsBadPrice(t *testing.T) {
	ctx := context.Background()
	svc := NewProductServiceWithStore(newFakeCatalogStore())

	var validationErr *models.ValidationError

	req := createRequest()
	req.Price = "not-a-number"
	_, err := svc.CreateProduct(ctx, 7, req, "")
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "price", validationErr.Field)

	req.Price = "-10.00"
	_, err = svc.CreateProduct(ctx, 7, req, "")
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "price", validationErr.Field)
}

func TestUpdateProductSellerOnly(t *testing.T) {
	ctx := context.Background()
	store := newFakeCatalogStore()
	svc := NewProductServiceWithStore(store)

	product, err := svc.CreateProduct(ctx, 7, createRequest(), "")
	require.NoError(t, err)

	_, err = svc.UpdateProduct(ctx, 8, product.ID, models.UpdateProductRequest{Title: "Hijacked"}, "")
	assert.ErrorIs(t, err, ErrNotProductSeller)

	err = svc.DeleteProduct(ctx, 8, product.ID)
	assert.ErrorIs(t, err, ErrNotProductSeller)

	_, err = svc.AddProductImage(ctx, 8, product.ID, "products/extra.jpg")
	assert.ErrorIs(t, err, ErrNotProductSeller)
}

func TestUpdateProductPartial(t *testing.T) {
	ctx := context.Background()
	store := newFakeCatalogStore()
	svc := NewProductServiceWithStore(store)

	product, err := svc.CreateProduct(ctx, 7, createRequest(), "")
	require.NoError(t, err)

	quantity := 0
	inStock := false
	updated, err := svc.UpdateProduct(ctx, 7, product.ID, models.UpdateProductRequest{
		Price:    "1500.00",
		Quantity: &quantity,
		InStock:  &inStock,
	}, "")
	require.NoError(t, err)

	// untouched fields survive, provided ones change
	assert.Equal(t, "Analytical Engine", updated.Title)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("1500.00")))
	assert.Equal(t, 0, updated.Quantity)
	assert.False(t, updated.InStock)
}

func TestGetProductsPaginationMeta(t *testing.T) {
	ctx := context.Background()
	store := newFakeCatalogStore()
	svc := NewProductServiceWithStore(store)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateProduct(ctx, 7, createRequest(), "")
		require.NoError(t, err)
	}

	response, err := svc.GetProducts(ctx, models.ProductFilter{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, response.Meta.TotalItems)
	assert.Equal(t, 2, response.Meta.TotalPages)
}

func TestDeleteUnknownProduct(t *testing.T) {
	ctx := context.Background()
	svc := NewProductServiceWithStore(newFakeCatalogStore())

	var notFoundErr *models.NotFoundError
	err := svc.DeleteProduct(ctx, 7, 42)
	require.ErrorAs(t, err, &notFoundErr)
}
