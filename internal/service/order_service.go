package service

import (
	"bookstore-server/internal/model"
	"bookstore-server/internal/ports"
	"bookstore-server/internal/util"
	"context"
	"log"

	"github.com/google/uuid"
)

type OrderService struct {
	orderRepository ports.OrderRepository
	bookRepository  ports.BookRepository
}

func NewOrderService(orderRepository ports.OrderRepository, bookRepository ports.BookRepository) *OrderService {
	return &OrderService{
		orderRepository: orderRepository,
		bookRepository:  bookRepository,
	}
}

// CreateOrder оформляет заказ одной транзакцией: остатки списываются
// по каждой позиции, цена фиксируется на момент заказа. Любая ошибка
// откатывает транзакцию целиком
func (s *OrderService) CreateOrder(ctx context.Context, userUUID string, items []model.OrderItem) (*model.Order, error) {
	if len(items) == 0 {
		return nil, util.BadRequest(util.CodeValidationFailed, "заказ не может быть пустым")
	}
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, util.BadRequest(util.CodeValidationFailed, "количество должно быть не меньше 1")
		}
	}

	tx, commit, rollback, err := s.orderRepository.BeginTX(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rollbackErr := rollback(); rollbackErr != nil {
			// после commit откат штатно возвращает ErrTxDone
			log.Printf("[OrderService] rollback: %v", rollbackErr)
		}
	}()

	order := &model.Order{
		UUID:     uuid.New().String(),
		UserUUID: userUUID,
		Status:   model.OrderStatusCreated,
	}

	var orderItems []model.OrderItem
	var total int64

	for _, requested := range items {
		book, err := s.bookRepository.GetForUpdate(ctx, tx, requested.BookUUID)
		if err != nil {
			return nil, err
		}

		if err := s.bookRepository.DecrementStock(ctx, tx, book.UUID, requested.Quantity); err != nil {
			return nil, err
		}

		orderItems = append(orderItems, model.OrderItem{
			UUID:      uuid.New().String(),
			OrderUUID: order.UUID,
			BookUUID:  book.UUID,
			Quantity:  requested.Quantity,
			UnitPrice: book.Price, // цена на момент заказа
		})
		total += book.Price * int64(requested.Quantity)
	}

	order.TotalPrice = total
	if err := s.orderRepository.CreateOrder(ctx, tx, order); err != nil {
		return nil, err
	}

	for i := range orderItems {
		if err := s.orderRepository.CreateOrderItem(ctx, tx, &orderItems[i]); err != nil {
			return nil, err
		}
	}

	if err := commit(); err != nil {
		return nil, util.Unavailable("[OrderService] не удалось зафиксировать заказ", err)
	}

	order.Items = orderItems
	return order, nil
}

// GetMyOrder : заказ с позициями, доступен только владельцу
func (s *OrderService) GetMyOrder(ctx context.Context, userUUID, orderUUID string) (*model.Order, error) {
	order, err := s.orderRepository.GetByUUID(ctx, orderUUID)
	if err != nil {
		return nil, err
	}

	if order.UserUUID != userUUID {
		return nil, util.Forbidden("доступ запрещён")
	}

	items, err := s.orderRepository.ListItems(ctx, orderUUID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (s *OrderService) ListMyOrders(ctx context.Context, userUUID string, status string, page, size int) ([]model.Order, int, error) {
	if status != "" && !model.ValidOrderStatus(status) {
		return nil, 0, util.BadRequest(util.CodeValidationFailed, "неизвестный статус заказа")
	}
	return s.orderRepository.ListByUser(ctx, userUUID, status, page, size)
}

// UpdateStatus : смена статуса заказа администратором
func (s *OrderService) UpdateStatus(ctx context.Context, orderUUID, status string) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, util.BadRequest(util.CodeValidationFailed, "неизвестный статус заказа")
	}

	if err := s.orderRepository.UpdateStatus(ctx, orderUUID, status); err != nil {
		return nil, err
	}

	return s.orderRepository.GetByUUID(ctx, orderUUID)
}
