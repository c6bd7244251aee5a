// Package fake provides an in-memory repository.Store for tests. It mirrors
// the constraints the Postgres schema enforces: primary keys, the unique cart
// product and the positive cart quantity.
package fake

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Alturino/storefront/internal/repository"
)

var (
	ErrUniqueViolation = &pgconn.PgError{
		Code:    repository.CodeUniqueViolation,
		Message: "duplicate key value violates unique constraint",
	}
	ErrCheckViolation = &pgconn.PgError{
		Code:    repository.CodeCheckViolation,
		Message: "new row violates check constraint",
	}
)

type state struct {
	products        map[uuid.UUID]repository.Product
	deliveryOptions map[string]repository.DeliveryOption
	cartItems       map[uuid.UUID]repository.CartItem
	orders          map[uuid.UUID]repository.Order
}

func (s state) clone() state {
	c := state{
		products:        make(map[uuid.UUID]repository.Product, len(s.products)),
		deliveryOptions: make(map[string]repository.DeliveryOption, len(s.deliveryOptions)),
		cartItems:       make(map[uuid.UUID]repository.CartItem, len(s.cartItems)),
		orders:          make(map[uuid.UUID]repository.Order, len(s.orders)),
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.deliveryOptions {
		c.deliveryOptions[k] = v
	}
	for k, v := range s.cartItems {
		c.cartItems[k] = v
	}
	for k, v := range s.orders {
		c.orders[k] = v
	}
	return c
}

type Store struct {
	mu    sync.Mutex
	state state
	calls []string

	// Failures makes the named method return the given error.
	Failures map[string]error
	Now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		state: state{
			products:        map[uuid.UUID]repository.Product{},
			deliveryOptions: map[string]repository.DeliveryOption{},
			cartItems:       map[uuid.UUID]repository.CartItem{},
			orders:          map[uuid.UUID]repository.Order{},
		},
		Failures: map[string]error{},
		Now:      time.Now,
	}
}

// Calls returns the methods invoked so far, in order.
func (s *Store) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.calls)
}

func (s *Store) enter(method string) error {
	s.calls = append(s.calls, method)
	if err, ok := s.Failures[method]; ok {
		return err
	}
	return nil
}

func (s *Store) timestamp() pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: s.Now(), Valid: true}
}

func ts(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func (s *Store) ExecTx(ctx context.Context, fn func(repository.Querier) error) error {
	s.mu.Lock()
	if err := s.enter("ExecTx"); err != nil {
		s.mu.Unlock()
		return err
	}
	snapshot := s.state.clone()
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.state = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func sortedProducts(m map[uuid.UUID]repository.Product) []repository.Product {
	items := make([]repository.Product, 0, len(m))
	for _, v := range m {
		items = append(items, v)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Time.Equal(items[j].CreatedAt.Time) {
			return items[i].CreatedAt.Time.Before(items[j].CreatedAt.Time)
		}
		return items[i].ID.String() < items[j].ID.String()
	})
	return items
}

func (s *Store) CountProducts(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("CountProducts"); err != nil {
		return 0, err
	}
	return int64(len(s.state.products)), nil
}

func (s *Store) FindProducts(ctx context.Context) ([]repository.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("FindProducts"); err != nil {
		return nil, err
	}
	return sortedProducts(s.state.products), nil
}

func (s *Store) SearchProducts(ctx context.Context, search string) ([]repository.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("SearchProducts"); err != nil {
		return nil, err
	}
	needle := strings.ToLower(search)
	items := []repository.Product{}
	for _, p := range sortedProducts(s.state.products) {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			items = append(items, p)
			continue
		}
		for _, k := range p.Keywords {
			if strings.Contains(strings.ToLower(k), needle) {
				items = append(items, p)
				break
			}
		}
	}
	return items, nil
}

func (s *Store) FindProductById(ctx context.Context, id uuid.UUID) (repository.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("FindProductById"); err != nil {
		return repository.Product{}, err
	}
	p, ok := s.state.products[id]
	if !ok {
		return repository.Product{}, pgx.ErrNoRows
	}
	return p, nil
}

func (s *Store) FindProductsByIds(
	ctx context.Context,
	ids []uuid.UUID,
) ([]repository.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("FindProductsByIds"); err != nil {
		return nil, err
	}
	items := []repository.Product{}
	for _, p := range sortedProducts(s.state.products) {
		if slices.Contains(ids, p.ID) {
			items = append(items, p)
		}
	}
	return items, nil
}

func (s *Store) InsertProduct(
	ctx context.Context,
	arg repository.InsertProductParams,
) (repository.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("InsertProduct"); err != nil {
		return repository.Product{}, err
	}
	now := s.timestamp()
	p := repository.Product{
		ID:          uuid.New(),
		Name:        arg.Name,
		Image:       arg.Image,
		Category:    arg.Category,
		PriceCents:  arg.PriceCents,
		RatingStars: arg.RatingStars,
		RatingCount: arg.RatingCount,
		Keywords:    slices.Clone(arg.Keywords),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.state.products[p.ID] = p
	return p, nil
}

func (s *Store) UpdateProduct(
	ctx context.Context,
	arg repository.UpdateProductParams,
) (repository.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("UpdateProduct"); err != nil {
		return repository.Product{}, err
	}
	p, ok := s.state.products[arg.ID]
	if !ok {
		return repository.Product{}, pgx.ErrNoRows
	}
	p.Name = arg.Name
	p.Image = arg.Image
	p.Category = arg.Category
	p.PriceCents = arg.PriceCents
	p.RatingStars = arg.RatingStars
	p.RatingCount = arg.RatingCount
	p.Keywords = slices.Clone(arg.Keywords)
	p.UpdatedAt = s.timestamp()
	s.state.products[p.ID] = p
	return p, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id uuid.UUID) (repository.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("DeleteProduct"); err != nil {
		return repository.Product{}, err
	}
	p, ok := s.state.products[id]
	if !ok {
		return repository.Product{}, pgx.ErrNoRows
	}
	delete(s.state.products, id)
	return p, nil
}

func (s *Store) DeleteAllProducts(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("DeleteAllProducts"); err != nil {
		return 0, err
	}
	n := int64(len(s.state.products))
	s.state.products = map[uuid.UUID]repository.Product{}
	return n, nil
}

func (s *Store) CreateProducts(
	ctx context.Context,
	arg []repository.CreateProductsParams,
) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("CreateProducts"); err != nil {
		return 0, err
	}
	for _, a := range arg {
		if _, ok := s.state.products[a.ID]; ok {
			return 0, fmt.Errorf("products: %w", ErrUniqueViolation)
		}
	}
	for _, a := range arg {
		s.state.products[a.ID] = repository.Product{
			ID:          a.ID,
			Name:        a.Name,
			Image:       a.Image,
			Category:    a.Category,
			PriceCents:  a.PriceCents,
			RatingStars: a.RatingStars,
			RatingCount: a.RatingCount,
			Keywords:    slices.Clone(a.Keywords),
			CreatedAt:   ts(a.CreatedAt),
			UpdatedAt:   ts(a.UpdatedAt),
		}
	}
	return int64(len(arg)), nil
}

func sortedDeliveryOptions(m map[string]repository.DeliveryOption) []repository.DeliveryOption {
	items := make([]repository.DeliveryOption, 0, len(m))
	for _, v := range m {
		items = append(items, v)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Time.Equal(items[j].CreatedAt.Time) {
			return items[i].CreatedAt.Time.Before(items[j].CreatedAt.Time)
		}
		return items[i].ID < items[j].ID
	})
	return items
}

func (s *Store) FindDeliveryOptions(ctx context.Context) ([]repository.DeliveryOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("FindDeliveryOptions"); err != nil {
		return nil, err
	}
	return sortedDeliveryOptions(s.state.deliveryOptions), nil
}

func (s *Store) FindDeliveryOptionById(
	ctx context.Context,
	id string,
) (repository.DeliveryOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("FindDeliveryOptionById"); err != nil {
		return repository.DeliveryOption{}, err
	}
	d, ok := s.state.deliveryOptions[id]
	if !ok {
		return repository.DeliveryOption{}, pgx.ErrNoRows
	}
	return d, nil
}

func (s *Store) InsertDeliveryOption(
	ctx context.Context,
	arg repository.InsertDeliveryOptionParams,
) (repository.DeliveryOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("InsertDeliveryOption"); err != nil {
		return repository.DeliveryOption{}, err
	}
	if _, ok := s.state.deliveryOptions[arg.ID]; ok {
		return repository.DeliveryOption{}, fmt.Errorf("delivery_options: %w", ErrUniqueViolation)
	}
	now := s.timestamp()
	d := repository.DeliveryOption{
		ID:           arg.ID,
		Label:        arg.Label,
		DeliveryDays: arg.DeliveryDays,
		PriceCents:   arg.PriceCents,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.state.deliveryOptions[d.ID] = d
	return d, nil
}

func (s *Store) UpdateDeliveryOption(
	ctx context.Context,
	arg repository.UpdateDeliveryOptionParams,
) (repository.DeliveryOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("UpdateDeliveryOption"); err != nil {
		return repository.DeliveryOption{}, err
	}
	d, ok := s.state.deliveryOptions[arg.ID]
	if !ok {
		return repository.DeliveryOption{}, pgx.ErrNoRows
	}
	d.Label = arg.Label
	d.DeliveryDays = arg.DeliveryDays
	d.PriceCents = arg.PriceCents
	d.UpdatedAt = s.timestamp()
	s.state.deliveryOptions[d.ID] = d
	return d, nil
}

func (s *Store) DeleteDeliveryOption(
	ctx context.Context,
	id string,
) (repository.DeliveryOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("DeleteDeliveryOption"); err != nil {
		return repository.DeliveryOption{}, err
	}
	d, ok := s.state.deliveryOptions[id]
	if !ok {
		return repository.DeliveryOption{}, pgx.ErrNoRows
	}
	delete(s.state.deliveryOptions, id)
	return d, nil
}

func (s *Store) DeleteAllDeliveryOptions(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("DeleteAllDeliveryOptions"); err != nil {
		return 0, err
	}
	n := int64(len(s.state.deliveryOptions))
	s.state.deliveryOptions = map[string]repository.DeliveryOption{}
	return n, nil
}

func (s *Store) CreateDeliveryOptions(
	ctx context.Context,
	arg []repository.CreateDeliveryOptionsParams,
) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("CreateDeliveryOptions"); err != nil {
		return 0, err
	}
	for _, a := range arg {
		if _, ok := s.state.deliveryOptions[a.ID]; ok {
			return 0, fmt.Errorf("delivery_options: %w", ErrUniqueViolation)
		}
	}
	for _, a := range arg {
		s.state.deliveryOptions[a.ID] = repository.DeliveryOption{
			ID:           a.ID,
			Label:        a.Label,
			DeliveryDays: a.DeliveryDays,
			PriceCents:   a.PriceCents,
			CreatedAt:    ts(a.CreatedAt),
			UpdatedAt:    ts(a.UpdatedAt),
		}
	}
	return int64(len(arg)), nil
}

func (s *Store) sortedCartItems() []repository.CartItem {
	items := make([]repository.CartItem, 0, len(s.state.cartItems))
	for _, v := range s.state.cartItems {
		items = append(items, v)
	}
	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Time.Equal(items[j].CreatedAt.Time) {
			return items[i].CreatedAt.Time.Before(items[j].CreatedAt.Time)
		}
		return items[i].ID.String() < items[j].ID.String()
	})
	return items
}

func (s *Store) FindCartItems(ctx context.Context) ([]repository.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("FindCartItems"); err != nil {
		return nil, err
	}
	return s.sortedCartItems(), nil
}

func (s *Store) FindCartItemByProductId(
	ctx context.Context,
	productID uuid.UUID,
) (repository.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("FindCartItemByProductId"); err != nil {
		return repository.CartItem{}, err
	}
	c, ok := s.state.cartItems[productID]
	if !ok {
		return repository.CartItem{}, pgx.ErrNoRows
	}
	return c, nil
}

func (s *Store) UpsertCartItem(
	ctx context.Context,
	arg repository.UpsertCartItemParams,
) (repository.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("UpsertCartItem"); err != nil {
		return repository.CartItem{}, err
	}
	now := s.timestamp()
	c, ok := s.state.cartItems[arg.ProductID]
	if ok {
		c.Quantity += arg.Quantity
		c.UpdatedAt = now
	} else {
		c = repository.CartItem{
			ID:               uuid.New(),
			ProductID:        arg.ProductID,
			Quantity:         arg.Quantity,
			DeliveryOptionID: arg.DeliveryOptionID,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
	}
	if c.Quantity < 1 {
		return repository.CartItem{}, fmt.Errorf("cart_items: %w", ErrCheckViolation)
	}
	s.state.cartItems[c.ProductID] = c
	return c, nil
}

func (s *Store) UpdateCartItem(
	ctx context.Context,
	arg repository.UpdateCartItemParams,
) (repository.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("UpdateCartItem"); err != nil {
		return repository.CartItem{}, err
	}
	c, ok := s.state.cartItems[arg.ProductID]
	if !ok {
		return repository.CartItem{}, pgx.ErrNoRows
	}
	if arg.Quantity < 1 {
		return repository.CartItem{}, fmt.Errorf("cart_items: %w", ErrCheckViolation)
	}
	c.Quantity = arg.Quantity
	c.DeliveryOptionID = arg.DeliveryOptionID
	c.UpdatedAt = s.timestamp()
	s.state.cartItems[c.ProductID] = c
	return c, nil
}

func (s *Store) DeleteCartItemByProductId(
	ctx context.Context,
	productID uuid.UUID,
) (repository.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("DeleteCartItemByProductId"); err != nil {
		return repository.CartItem{}, err
	}
	c, ok := s.state.cartItems[productID]
	if !ok {
		return repository.CartItem{}, pgx.ErrNoRows
	}
	delete(s.state.cartItems, productID)
	return c, nil
}

func (s *Store) DeleteAllCartItems(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("DeleteAllCartItems"); err != nil {
		return 0, err
	}
	n := int64(len(s.state.cartItems))
	s.state.cartItems = map[uuid.UUID]repository.CartItem{}
	return n, nil
}

func (s *Store) CreateCartItems(
	ctx context.Context,
	arg []repository.CreateCartItemsParams,
) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("CreateCartItems"); err != nil {
		return 0, err
	}
	for _, a := range arg {
		if _, ok := s.state.cartItems[a.ProductID]; ok {
			return 0, fmt.Errorf("cart_items: %w", ErrUniqueViolation)
		}
		if a.Quantity < 1 {
			return 0, fmt.Errorf("cart_items: %w", ErrCheckViolation)
		}
	}
	for _, a := range arg {
		s.state.cartItems[a.ProductID] = repository.CartItem{
			ID:               a.ID,
			ProductID:        a.ProductID,
			Quantity:         a.Quantity,
			DeliveryOptionID: a.DeliveryOptionID,
			CreatedAt:        ts(a.CreatedAt),
			UpdatedAt:        ts(a.UpdatedAt),
		}
	}
	return int64(len(arg)), nil
}

func (s *Store) FindOrders(ctx context.Context) ([]repository.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("FindOrders"); err != nil {
		return nil, err
	}
	items := make([]repository.Order, 0, len(s.state.orders))
	for _, v := range s.state.orders {
		items = append(items, v)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].OrderTimeMs != items[j].OrderTimeMs {
			return items[i].OrderTimeMs > items[j].OrderTimeMs
		}
		return items[i].CreatedAt.Time.After(items[j].CreatedAt.Time)
	})
	return items, nil
}

func (s *Store) FindOrderById(ctx context.Context, id uuid.UUID) (repository.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("FindOrderById"); err != nil {
		return repository.Order{}, err
	}
	o, ok := s.state.orders[id]
	if !ok {
		return repository.Order{}, pgx.ErrNoRows
	}
	return o, nil
}

func (s *Store) InsertOrder(
	ctx context.Context,
	arg repository.InsertOrderParams,
) (repository.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("InsertOrder"); err != nil {
		return repository.Order{}, err
	}
	if _, ok := s.state.orders[arg.ID]; ok {
		return repository.Order{}, fmt.Errorf("orders: %w", ErrUniqueViolation)
	}
	now := s.timestamp()
	o := repository.Order{
		ID:             arg.ID,
		OrderTimeMs:    arg.OrderTimeMs,
		TotalCostCents: arg.TotalCostCents,
		Products:       slices.Clone(arg.Products),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.state.orders[o.ID] = o
	return o, nil
}

func (s *Store) DeleteAllOrders(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("DeleteAllOrders"); err != nil {
		return 0, err
	}
	n := int64(len(s.state.orders))
	s.state.orders = map[uuid.UUID]repository.Order{}
	return n, nil
}

func (s *Store) CreateOrders(
	ctx context.Context,
	arg []repository.CreateOrdersParams,
) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter("CreateOrders"); err != nil {
		return 0, err
	}
	for _, a := range arg {
		if _, ok := s.state.orders[a.ID]; ok {
			return 0, fmt.Errorf("orders: %w", ErrUniqueViolation)
		}
	}
	for _, a := range arg {
		s.state.orders[a.ID] = repository.Order{
			ID:             a.ID,
			OrderTimeMs:    a.OrderTimeMs,
			TotalCostCents: a.TotalCostCents,
			Products:       slices.Clone(a.Products),
			CreatedAt:      ts(a.CreatedAt),
			UpdatedAt:      ts(a.UpdatedAt),
		}
	}
	return int64(len(arg)), nil
}

var _ repository.Store = (*Store)(nil)
