package shop

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/agent"
	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/store"
)

// Collection names inside the document store.
const (
	CatalogCollection = "catalog"
	OrdersCollection  = "orders"
)

// Service validates and places orders against the catalog. Reads and the
// load-mutate-save of orders are not synchronized: the store assumes one
// writing session at a time (see package store).
type Service struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service's logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithClock overrides the order timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a Service over the given store.
func NewService(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:  st,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the current catalog snapshot.
func (s *Service) Catalog() []Product {
	var products []Product
	_ = s.store.LoadCollection(CatalogCollection, &products)
	return products
}

// ListProducts filters the catalog. Provided predicates AND together;
// catalog order is preserved.
func (s *Service) ListProducts(f ProductFilter) []Product {
	var out []Product
	for _, p := range s.Catalog() {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// CreateOrder places an order for the given lines. Every line is validated
// against the current catalog snapshot before anything is written, so a
// failing line leaves the orders collection untouched.
func (s *Service) CreateOrder(lines []OrderLineRequest) (*Order, error) {
	catalog := s.Catalog()
	byID := make(map[string]Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	items := make([]OrderItem, 0, len(lines))
	total := 0
	for _, line := range lines {
		p, ok := byID[line.ProductID]
		if !ok {
			return nil, agent.NewProductNotFoundError(line.ProductID)
		}
		if !p.InStock {
			return nil, agent.NewOutOfStockError(p.Name)
		}
		if line.Size != "" && !p.HasSize(line.Size) {
			return nil, agent.NewInvalidSizeError(line.Size, p.Name, p.Sizes)
		}

		qty := line.Quantity
		if qty < 1 {
			qty = 1
		}
		itemTotal := p.Price * qty
		items = append(items, OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    qty,
			Size:        normalizeOrderSize(p, line.Size),
			UnitPrice:   p.Price,
			ItemTotal:   itemTotal,
		})
		total += itemTotal
	}

	orders := s.GetAllOrders()
	order := Order{
		ID:        fmt.Sprintf("ORD-%04d", len(orders)+1),
		Items:     items,
		Total:     total,
		Currency:  orderCurrency,
		CreatedAt: s.now().Format(time.RFC3339),
		Status:    orderStatusConfirmed,
	}
	orders = append(orders, order)

	if err := s.store.SaveCollection(OrdersCollection, orders); err != nil {
		// Spoken flow continues; the loss is already logged by the store.
		s.logger.Error("order not persisted", "order_id", order.ID, "error", err)
	}

	s.logger.Info("order placed", "order_id", order.ID, "items", len(items), "total", total)
	return &order, nil
}

// GetLastOrder returns the most recently placed order, if any.
func (s *Service) GetLastOrder() (*Order, bool) {
	orders := s.GetAllOrders()
	if len(orders) == 0 {
		return nil, false
	}
	return &orders[len(orders)-1], true
}

// GetAllOrders returns every persisted order in insertion order.
func (s *Service) GetAllOrders() []Order {
	var orders []Order
	_ = s.store.LoadCollection(OrdersCollection, &orders)
	return orders
}

// normalizeOrderSize records sizes in the catalog's casing. Products
// without a size list keep the caller's value untouched.
func normalizeOrderSize(p Product, size string) string {
	if size == "" || len(p.Sizes) == 0 {
		return size
	}
	norm := normalizeSize(size)
	for _, s := range p.Sizes {
		if normalizeSize(s) == norm {
			return s
		}
	}
	return size
}
