package services

import (
	"context"

	"github.com/Emeenent14/omniverse/models"
	"github.com/Emeenent14/omniverse/repositories"
)

// CartStore is the persistence contract for cart operations. Every method
// takes the authenticated user's id; implementations must scope all reads and
// writes to it.
type CartStore interface {
	ListByUser(ctx context.Context, userID int) ([]models.CartItem, error)
	Upsert(ctx context.Context, userID, productID, quantity int) (*models.CartItem, bool, error)
	SetQuantity(ctx context.Context, userID, itemID, quantity int) (*models.CartItem, error)
	Delete(ctx context.Context, userID, itemID int) error
	Clear(ctx context.Context, userID int) error
	Summarize(ctx context.Context, userID int) (*models.CartSummary, error)
}

type CartService struct {
	store CartStore
}

func NewCartService() *CartService {
	return &CartService{store: repositories.NewCartRepository()}
}

func NewCartServiceWithStore(store CartStore) *CartService {
	return &CartService{store: store}
}

func (s *CartService) GetCart(ctx context.Context, userID int) ([]models.CartItem, error) {
	return s.store.ListByUser(ctx, userID)
}

// AddItem is the additive upsert: a repeat add of the same product grows the
// existing row's quantity. The bool reports whether a new row was created.
func (s *CartService) AddItem(ctx context.Context, userID int, req models.AddCartItemRequest) (*models.CartItem, bool, error) {
	return s.store.Upsert(ctx, userID, req.ProductID, req.Quantity)
}

// UpdateItem replaces the item's quantity outright.
func (s *CartService) UpdateItem(ctx context.Context, userID, itemID int, req models.UpdateCartItemRequest) (*models.CartItem, error) {
	return s.store.SetQuantity(ctx, userID, itemID, req.Quantity)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID int) error {
	return s.store.Delete(ctx, userID, itemID)
}

func (s *CartService) ClearCart(ctx context.Context, userID int) error {
	return s.store.Clear(ctx, userID)
}

func (s *CartService) GetSummary(ctx context.Context, userID int) (*models.CartSummary, error) {
	return s.store.Summarize(ctx, userID)
}
