package service

import (
	"bookstore-server/internal/model"
	"bookstore-server/internal/ports"
	"bookstore-server/internal/util"
	"context"

	"github.com/google/uuid"
)

type CartService struct {
	cartRepository ports.CartRepository
	bookRepository ports.BookRepository
}

func NewCartService(cartRepository ports.CartRepository, bookRepository ports.BookRepository) *CartService {
	return &CartService{
		cartRepository: cartRepository,
		bookRepository: bookRepository,
	}
}

func (s *CartService) ListItems(ctx context.Context, userUUID string) ([]model.CartItem, error) {
	return s.cartRepository.ListByUser(ctx, userUUID)
}

// AddItem кладёт книгу в корзину.
// Если книга уже в корзине, количество накапливается
func (s *CartService) AddItem(ctx context.Context, userUUID, bookUUID string, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, util.BadRequest(util.CodeValidationFailed, "количество должно быть не меньше 1")
	}

	if _, err := s.bookRepository.GetByUUID(ctx, bookUUID); err != nil {
		return nil, err
	}

	existing, err := s.cartRepository.FindByUserAndBook(ctx, userUUID, bookUUID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Quantity += quantity
		if err := s.cartRepository.UpdateQuantity(ctx, existing.UUID, existing.Quantity); err != nil {
			return nil, err
		}
		return existing, nil
	}

	item := &model.CartItem{
		UUID:     uuid.New().String(),
		UserUUID: userUUID,
		BookUUID: bookUUID,
		Quantity: quantity,
	}
	if err := s.cartRepository.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateItem меняет количество в позиции корзины владельца
func (s *CartService) UpdateItem(ctx context.Context, userUUID, itemUUID string, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, util.BadRequest(util.CodeValidationFailed, "количество должно быть не меньше 1")
	}

	item, err := s.cartRepository.FindByUUID(ctx, itemUUID, userUUID)
	if err != nil {
		return nil, err
	}

	item.Quantity = quantity
	if err := s.cartRepository.UpdateQuantity(ctx, item.UUID, quantity); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userUUID, itemUUID string) error {
	return s.cartRepository.Delete(ctx, itemUUID, userUUID)
}

func (s *CartService) Clear(ctx context.Context, userUUID string) error {
	return s.cartRepository.Clear(ctx, userUUID)
}
