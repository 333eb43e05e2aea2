package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/velura/storefront-api/internal/core/domain"
	"github.com/velura/storefront-api/internal/core/ports"
)

// CartLocker serializes cart writes per user. Acquire blocks until the
// user's lock is held or ctx is done; the returned release function frees it.
type CartLocker interface {
	Acquire(ctx context.Context, userID string) (release func(), err error)
}

// CartService owns the merge/add/remove/clear transitions on a user's cart.
// All writes are read-modify-write against the full cart document; the
// locker keeps two concurrent writers for the same user from overwriting
// each other's merge.
type CartService struct {
	carts  ports.CartRepository
	locker CartLocker
	log    zerolog.Logger
}

func NewCartService(carts ports.CartRepository, locker CartLocker, log zerolog.Logger) *CartService {
	return &CartService{carts: carts, locker: locker, log: log}
}

func (s *CartService) GetOrCreate(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, domain.ErrCartNotFound) {
		return nil, err
	}

	cart = &domain.Cart{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     []domain.CartItem{},
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.carts.Insert(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, userID string, item domain.CartItem) (*domain.Cart, error) {
	if item.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	release := s.lock(ctx, userID)
	defer release()

	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrCartNotFound) {
			return nil, err
		}
		cart = &domain.Cart{
			ID:     uuid.NewString(),
			UserID: userID,
			Items:  []domain.CartItem{},
		}
	}

	cart.Merge(item)
	cart.UpdatedAt = time.Now().UTC()

	if err := s.carts.Replace(ctx, cart); err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("user_id", userID).
		Str("product_id", item.ProductID).
		Int("quantity", item.Quantity).
		Msg("cart item merged")

	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID, size, color string) (*domain.Cart, error) {
	release := s.lock(ctx, userID)
	defer release()

	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart.RemoveLine(productID, size, color)
	cart.UpdatedAt = time.Now().UTC()

	if err := s.carts.Replace(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear deletes the cart document entirely; the next GetOrCreate starts
// fresh.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.carts.Delete(ctx, userID)
}

// lock acquires the per-user write lock. When the locker is unreachable the
// write proceeds unlocked (last-writer-wins, the original behavior) rather
// than failing the request.
func (s *CartService) lock(ctx context.Context, userID string) func() {
	release, err := s.locker.Acquire(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("cart lock unavailable, writing unlocked")
		return func() {}
	}
	return release
}
