package models

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=150"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Password2 string `json:"password2" binding:"required"`
	FirstName string `json:"first_name" binding:"omitempty,max=150"`
	LastName  string `json:"last_name" binding:"omitempty,max=150"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Bio      string `json:"bio" binding:"omitempty,max=500"`
	Location string `json:"location" binding:"omitempty,max=100"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required,len=6"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type CreateProductRequest struct {
	Title       string `json:"title" form:"title" binding:"required,max=200"`
	Description string `json:"description" form:"description" binding:"required"`
	Price       string `json:"price" form:"price" binding:"required"`
	CategoryID  int    `json:"category_id" form:"category_id" binding:"required"`
	Quantity    int    `json:"quantity" form:"quantity" binding:"required,gte=0"`
	InStock     *bool  `json:"in_stock" form:"in_stock"`
}

type UpdateProductRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Price       string `json:"price" form:"price"`
	CategoryID  int    `json:"category_id" form:"category_id"`
	Quantity    *int   `json:"quantity" form:"quantity"`
	InStock     *bool  `json:"in_stock" form:"in_stock"`
}

// ProductFilter carries the parsed /products query string.
type ProductFilter struct {
	Search     string
	CategoryID int
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	SortPrice  string // "asc" or "desc", empty for newest-first
	SellerID   int    // non-zero restricts to that seller's products
	Page       int
	Limit      int
}

type AddCartItemRequest struct {
	ProductID int `json:"product" binding:"required"`
	Quantity  int `json:"quantity" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}
