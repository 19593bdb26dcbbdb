package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"storefront/internal/domain"
	"storefront/internal/infra/rabbitmq"
	"storefront/internal/repository"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

const (
	ordersCacheKey = "orders:all"
	ordersCacheTTL = 10 * time.Second
)

type OrderService struct {
	repo        repository.OrderRepository
	publisher   rabbitmq.PublisherInterface
	redisClient *redis.Client
	log         zerolog.Logger
}

func NewOrderService(r repository.OrderRepository, pub rabbitmq.PublisherInterface, log zerolog.Logger) *OrderService {
	return &OrderService{
		repo:      r,
		publisher: pub,
		log:       log.With().Str("component", "orders").Logger(),
	}
}

// SetRedisClient enables the short-lived listing cache. The service works
// identically without it.
func (s *OrderService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// CreateOrder persists a new order with a fresh id and Pending status, then
// publishes order.created.
func (s *OrderService) CreateOrder(ctx context.Context, draft domain.OrderDraft) (domain.Order, error) {
	order, err := s.repo.Create(draft)
	if err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}

	s.invalidateCache(ctx)
	go s.publish(context.Background(), "order.created", order)

	s.log.Info().Int64("order_id", order.ID).Int64("product_id", order.ProductID).
		Int64("total", order.Total).Msg("order created")
	return order, nil
}

// ListOrders returns every stored order, unordered. When redis is wired a
// cached copy may be served for up to ordersCacheTTL.
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, ordersCacheKey).Result(); err == nil {
			var orders []domain.Order
			if err := json.Unmarshal([]byte(cached), &orders); err == nil {
				return orders, nil
			}
		}
	}

	orders, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(orders); err == nil {
			s.redisClient.Set(ctx, ordersCacheKey, data, ordersCacheTTL)
		}
	}
	return orders, nil
}

// UpdateOrder applies a partial update. A status change must follow the
// lifecycle graph; rewriting the current status is a legal no-op.
func (s *OrderService) UpdateOrder(ctx context.Context, id int64, patch domain.OrderPatch) (domain.Order, error) {
	current, err := s.repo.Get(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("load order %d: %w", id, err)
	}

	if patch.Status != nil {
		next := *patch.Status
		if !next.Valid() {
			return domain.Order{}, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
		}
		if !current.Status.CanTransitionTo(next) {
			return domain.Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, next)
		}
	}

	order, err := s.repo.Patch(id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("patch order %d: %w", id, err)
	}

	s.invalidateCache(ctx)
	if patch.Status != nil && *patch.Status != current.Status {
		go s.publish(context.Background(), "order.status_changed", order)
	}

	s.log.Info().Int64("order_id", order.ID).Str("status", string(order.Status)).Msg("order updated")
	return order, nil
}

func (s *OrderService) publish(ctx context.Context, routingKey string, order domain.Order) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, routingKey, order); err != nil {
		s.log.Error().Err(err).Str("routing_key", routingKey).Int64("order_id", order.ID).
			Msg("publish failed")
	}
}

func (s *OrderService) invalidateCache(ctx context.Context) {
	if s.redisClient != nil {
		s.redisClient.Del(ctx, ordersCacheKey)
	}
}
