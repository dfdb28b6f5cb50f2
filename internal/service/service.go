package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mitrasafety/storefront/internal/catalog"
	"mitrasafety/storefront/internal/client"
	"mitrasafety/storefront/internal/domain"
	"mitrasafety/storefront/internal/repository"
	"mitrasafety/storefront/internal/store"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrEmptyCart is returned by Checkout when there is nothing to order.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrOutOfStock is returned by AddToCart for products marked out of stock.
	ErrOutOfStock = errors.New("product is out of stock")
)

// CartLedger is the part of the cart the service drives.
type CartLedger interface {
	Items() []domain.LineItem
	Totals() domain.CartTotals
	AddItem(product domain.ProductSnapshot, quantity int)
	ClearCart()
	CloseCart()
}

// CheckoutRequest is the customer-entered part of an order.
type CheckoutRequest struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required,phone"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address" validate:"required"`
	Province      string `json:"province" validate:"required"`
	City          string `json:"city" validate:"required"`
	PostalCode    string `json:"postalCode" validate:"required,numeric,len=5"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=transfer ewallet cod"`
}

func (r CheckoutRequest) trimmed() CheckoutRequest {
	return CheckoutRequest{
		Name:          strings.TrimSpace(r.Name),
		Phone:         strings.TrimSpace(r.Phone),
		Email:         strings.TrimSpace(r.Email),
		Address:       strings.TrimSpace(r.Address),
		Province:      strings.TrimSpace(r.Province),
		City:          strings.TrimSpace(r.City),
		PostalCode:    strings.TrimSpace(r.PostalCode),
		PaymentMethod: strings.TrimSpace(r.PaymentMethod),
	}
}

type Service struct {
	client   client.StorefrontClient
	products *store.ProductStore
	cart     CartLedger
	orders   repository.OrderRepository
}

func NewService(
	client client.StorefrontClient,
	products *store.ProductStore,
	cart CartLedger,
	orders repository.OrderRepository,
) *Service {
	if orders == nil {
		orders = repository.NewNoopOrderRepository()
	}
	return &Service{
		client:   client,
		products: products,
		cart:     cart,
		orders:   orders,
	}
}

// LoadStorefront fetches products and categories concurrently and applies
// whatever arrived. A failed fetch leaves that part of the store unchanged
// and is reported through the store's error flag.
func (s *Service) LoadStorefront(ctx context.Context) error {
	s.products.SetLoading(true)

	var (
		raws          []catalog.RawProduct
		categories    []domain.Category
		productsErr   error
		categoriesErr error
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		raws, productsErr = s.client.ListProducts(ctx, client.SearchParams{})
		return nil
	})
	g.Go(func() error {
		categories, categoriesErr = s.client.ListCategories(ctx)
		return nil
	})
	// Each fetch keeps its own error so one failed part does not discard the
	// other; the group itself never fails.
	_ = g.Wait()

	if categoriesErr != nil {
		log.Errorf("❌ Failed to load categories: %v", categoriesErr)
	} else {
		s.products.SetCategories(categories)
	}

	if productsErr != nil {
		log.Errorf("❌ Failed to load products: %v", productsErr)
	} else {
		s.products.SetProducts(raws)
		log.Infof("✅ Loaded %d products in %d categories", len(raws), len(categories))
	}

	err := errors.Join(productsErr, categoriesErr)
	s.products.SetError(err)
	s.products.SetLoading(false)

	return err
}

// OpenProduct fetches a single product and focuses the detail view on it.
func (s *Service) OpenProduct(ctx context.Context, id string) (domain.Product, error) {
	if product, ok := s.products.ProductByID(id); ok {
		s.products.OpenProductDetail(product)
		return product, nil
	}

	raw, err := s.client.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	product := catalog.Normalize(*raw)
	s.products.OpenProductDetail(product)
	return product, nil
}

// AddToCart adds a cached product to the cart, fetching it when the catalog
// does not hold it. Out-of-stock products are refused and the cart is left
// untouched.
func (s *Service) AddToCart(ctx context.Context, productID string, quantity int) (domain.Product, error) {
	product, ok := s.products.ProductByID(productID)
	if !ok {
		raw, err := s.client.GetProduct(ctx, productID)
		if err != nil {
			return domain.Product{}, err
		}
		product = catalog.Normalize(*raw)
	}

	if !product.InStock {
		log.Warnf("⚠️ Refusing to add out-of-stock product %s to cart", product.ID)
		return product, fmt.Errorf("%s: %w", product.Name, ErrOutOfStock)
	}

	s.cart.AddItem(product.Snapshot(), quantity)
	return product, nil
}

// BuildOrder turns the current cart and the customer details into an order
// payload. Amounts come from the cart's derived totals.
func (s *Service) BuildOrder(req CheckoutRequest) (domain.OrderRequest, error) {
	req = req.trimmed()
	if err := validateStruct(req); err != nil {
		return domain.OrderRequest{}, err
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return domain.OrderRequest{}, ErrEmptyCart
	}

	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	totals := s.cart.Totals()
	order := domain.OrderRequest{
		CustomerName:       req.Name,
		CustomerPhone:      req.Phone,
		ShippingAddress:    req.Address,
		ShippingProvince:   req.Province,
		ShippingCity:       req.City,
		ShippingPostalCode: req.PostalCode,
		PaymentMethod:      req.PaymentMethod,
		Subtotal:           totals.Subtotal,
		Shipping:           totals.Shipping,
		Total:              totals.Total,
		Status:             domain.OrderStatusPending,
		Items:              orderItems,
	}
	if req.Email != "" {
		email := req.Email
		order.CustomerEmail = &email
	}

	return order, nil
}

// Checkout submits the cart as an order. The cart is cleared only after the
// API has accepted the order.
func (s *Service) Checkout(ctx context.Context, req CheckoutRequest) (*domain.Order, error) {
	payload, err := s.BuildOrder(req)
	if err != nil {
		return nil, err
	}

	order, err := s.client.CreateOrder(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}

	if err := s.orders.SaveOrder(ctx, order); err != nil {
		log.Errorf("❌ Failed to archive order %s: %v", order.ID, err)
	}

	s.cart.ClearCart()
	s.cart.CloseCart()

	log.Infof("✅ Checkout complete, order %s (%s)", order.ID, order.PaymentMethod)
	return order, nil
}
