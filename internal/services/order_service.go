package services

import (
	"context"
	"errors"

	"golang-jewelry-backend/internal/models"
	"golang-jewelry-backend/internal/repositories"
	"golang-jewelry-backend/pkg/messaging"

	"github.com/google/uuid"
)

var validOrderStatuses = map[string]bool{
	models.OrderStatusPending:   true,
	models.OrderStatusConfirmed: true,
	models.OrderStatusShipped:   true,
	models.OrderStatusDelivered: true,
	models.OrderStatusCancelled: true,
}

type OrderService struct {
	orderRepo     repositories.OrderRepository
	kafkaProducer *messaging.KafkaProducer
	kafkaBrokers  []string
}

func NewOrderService(orderRepo repositories.OrderRepository, kafkaProducer *messaging.KafkaProducer, kafkaBrokers []string) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		kafkaProducer: kafkaProducer,
		kafkaBrokers:  kafkaBrokers,
	}
}

type OrderListResponse struct {
	Orders []models.Order `json:"orders"`
	Total  int64          `json:"total"`
}

func (s *OrderService) ListOrders(ctx context.Context, limit, offset int) (*OrderListResponse, error) {
	if limit <= 0 {
		limit = 20
	}

	orders, total, err := s.orderRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return &OrderListResponse{Orders: orders, Total: total}, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, errors.New("invalid order ID")
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("order not found")
	}
	return order, nil
}

func (s *OrderService) GetUserOrders(ctx context.Context, userID string, limit, offset int) ([]models.Order, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	if limit <= 0 {
		limit = 20
	}

	return s.orderRepo.GetByUserID(ctx, userUUID, limit, offset)
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID, status string) (*models.Order, error) {
	if !validOrderStatuses[status] {
		return nil, errors.New("invalid order status")
	}

	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, errors.New("invalid order ID")
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("order not found")
	}

	order.Status = status

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	event := messaging.OrderEvent{
		Type:    "order_status_updated",
		OrderID: order.ID.String(),
		UserID:  order.UserID.String(),
		Status:  status,
	}
	s.kafkaProducer.SendMessage(messaging.TopicOrderEvents, s.kafkaBrokers, order.ID.String(), event)

	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, orderID string) error {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return errors.New("invalid order ID")
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return errors.New("order not found")
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}

	event := messaging.OrderEvent{
		Type:    "order_deleted",
		OrderID: orderID,
		UserID:  order.UserID.String(),
	}
	s.kafkaProducer.SendMessage(messaging.TopicOrderEvents, s.kafkaBrokers, orderID, event)

	return nil
}
