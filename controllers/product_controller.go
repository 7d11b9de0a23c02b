package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Emeenent14/omniverse/config"
	"github.com/Emeenent14/omniverse/models"
	"github.com/Emeenent14/omniverse/services"
	"github.com/Emeenent14/omniverse/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProductController struct {
	productService *services.ProductService
}

func NewProductController() *ProductController {
	return &ProductController{productService: services.NewProductService()}
}

func productCacheKey(rawQuery string) string {
	return "products_list_" + rawQuery
}

func invalidateProductCache() {
	if config.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := config.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
}

// GetAllCategories godoc
// @Summary Get all categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.productService.GetAllCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved",
		Data:    categories,
	})
}

// GetProducts godoc
// @Summary List products
// @Description Paginated product list with search, category, price and sort filters
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param search query string false "Search in title and description"
// @Param category query int false "Filter by category id"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param sort_price query string false "Sort by price" Enums(asc, desc)
// @Param my_products query bool false "Only the caller's products (requires auth)"
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	filter := ctrl.parseFilter(c)

	// Only the public, identity-independent listing is cached.
	cacheable := config.RedisClient != nil && filter.SellerID == 0
	cacheKey := productCacheKey(c.Request.URL.RawQuery)

	if cacheable {
		cached, err := config.RedisClient.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	response, err := ctrl.productService.GetProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	if cacheable {
		if jsonData, err := json.Marshal(response); err == nil {
			config.RedisClient.Set(c.Request.Context(), cacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(http.StatusOK, response)
}

func (ctrl *ProductController) parseFilter(c *gin.Context) models.ProductFilter {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	categoryID, _ := strconv.Atoi(c.Query("category"))

	filter := models.ProductFilter{
		Search:     strings.TrimSpace(c.Query("search")),
		CategoryID: categoryID,
		SortPrice:  c.Query("sort_price"),
		Page:       page,
		Limit:      limit,
	}

	if raw := c.Query("min_price"); raw != "" {
		if price, err := decimal.NewFromString(raw); err == nil {
			filter.MinPrice = &price
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if price, err := decimal.NewFromString(raw); err == nil {
			filter.MaxPrice = &price
		}
	}

	if c.Query("my_products") == "true" {
		filter.SellerID = c.GetInt("user_id")
	}
	return filter
}

// GetProductByID godoc
// @Summary Get product detail
// @Description Product with category, seller and additional images
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid product id")
		return
	}

	detail, err := ctrl.productService.GetProductDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product retrieved",
		Data:    detail,
	})
}

// CreateProduct godoc
// @Summary Create a product
// @Description The authenticated caller becomes the product's seller
// @Tags Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param price formData string true "Price (decimal)"
// @Param category_id formData int true "Category ID"
// @Param quantity formData int true "Available stock"
// @Param image formData file false "Primary image"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	sellerID := c.GetInt("user_id")

	var req models.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		imageURL, err = utils.UploadFile(c, file, "products")
		if err != nil {
			badRequest(c, err.Error())
			return
		}
	}

	product, err := ctrl.productService.CreateProduct(c.Request.Context(), sellerID, req, imageURL)
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateProductCache()

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Product created",
		Data:    product,
	})
}

// UpdateProduct godoc
// @Summary Update a product
// @Description Seller-only partial update
// @Tags Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	sellerID := c.GetInt("user_id")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid product id")
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		imageURL, err = utils.UploadFile(c, file, "products")
		if err != nil {
			badRequest(c, err.Error())
			return
		}
	}

	product, err := ctrl.productService.UpdateProduct(c.Request.Context(), sellerID, id, req, imageURL)
	if err != nil {
		respondError(c, err)
		return
	}

	invalidateProductCache()

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product updated",
		Data:    product,
	})
}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Seller-only
// @Tags Products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	sellerID := c.GetInt("user_id")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid product id")
		return
	}

	if err := ctrl.productService.DeleteProduct(c.Request.Context(), sellerID, id); err != nil {
		respondError(c, err)
		return
	}

	invalidateProductCache()

	c.Status(http.StatusNoContent)
}

// AddProductImage godoc
// @Summary Add an additional product image
// @Description Seller-only
// @Tags Products
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Param image formData file true "Image file"
// @Success 201 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Router /products/{id}/images [post]
func (ctrl *ProductController) AddProductImage(c *gin.Context) {
	sellerID := c.GetInt("user_id")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid product id")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		badRequest(c, "Image file required")
		return
	}

	imageURL, err := utils.UploadFile(c, file, "products")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	image, err := ctrl.productService.AddProductImage(c.Request.Context(), sellerID, id, imageURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Image added",
		Data:    image,
	})
}
