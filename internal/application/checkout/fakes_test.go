package checkout

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/raash-api/internal/domain/entity"
	"github.com/jhoicas/raash-api/internal/domain/repository"
)

// memDB estado en memoria. Las transacciones trabajan sobre una copia y solo la publican si no hay error.
type memDB struct {
	cart     map[int64]map[int64]int
	prices   map[int64]decimal.Decimal
	orders   []entity.Order
	items    []entity.OrderItem
	payments []entity.Payment
	nextID   int64
}

func newMemDB() *memDB {
	return &memDB{cart: map[int64]map[int64]int{}, prices: map[int64]decimal.Decimal{}}
}

func (db *memDB) clone() *memDB {
	c := &memDB{
		cart:     map[int64]map[int64]int{},
		prices:   db.prices,
		orders:   append([]entity.Order(nil), db.orders...),
		items:    append([]entity.OrderItem(nil), db.items...),
		payments: append([]entity.Payment(nil), db.payments...),
		nextID:   db.nextID,
	}
	for u, lines := range db.cart {
		c.cart[u] = map[int64]int{}
		for p, q := range lines {
			c.cart[u][p] = q
		}
	}
	return c
}

type memCart struct {
	db       *memDB
	clearErr error
}

func (r *memCart) ListByUser(context.Context, int64) ([]*entity.CartItem, error) { return nil, nil }

func (r *memCart) Increase(_ context.Context, userID, productID int64) (entity.CartChange, error) {
	if r.db.cart[userID] == nil {
		r.db.cart[userID] = map[int64]int{}
	}
	r.db.cart[userID][productID]++
	if r.db.cart[userID][productID] == 1 {
		return entity.CartLineCreated, nil
	}
	return entity.CartLineIncremented, nil
}

func (r *memCart) Decrease(context.Context, int64, int64) (entity.CartChange, error) {
	return entity.CartLineUnchanged, nil
}

func (r *memCart) LockPricedLines(_ context.Context, userID int64) ([]entity.PricedCartLine, error) {
	var out []entity.PricedCartLine
	for p, q := range r.db.cart[userID] {
		out = append(out, entity.PricedCartLine{ProductID: p, Quantity: q, UnitPrice: r.db.prices[p]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (r *memCart) ClearByUser(_ context.Context, userID int64) error {
	if r.clearErr != nil {
		return r.clearErr
	}
	delete(r.db.cart, userID)
	return nil
}

type memOrders struct {
	db       *memDB
	itemsErr error
}

func (r *memOrders) Create(_ context.Context, o *entity.Order) error {
	r.db.nextID++
	o.ID = r.db.nextID
	r.db.orders = append(r.db.orders, *o)
	return nil
}

func (r *memOrders) CreateItems(_ context.Context, items []*entity.OrderItem) error {
	if r.itemsErr != nil {
		return r.itemsErr
	}
	for _, it := range items {
		r.db.items = append(r.db.items, *it)
	}
	return nil
}

func (r *memOrders) ListHistoryByUser(context.Context, int64) ([]*entity.OrderHistoryRow, error) {
	return nil, nil
}

type memPayments struct {
	db  *memDB
	err error
}

func (r *memPayments) Create(_ context.Context, p *entity.Payment) error {
	if r.err != nil {
		return r.err
	}
	r.db.payments = append(r.db.payments, *p)
	return nil
}

// memTx serializa las transacciones, como el bloqueo de filas del carrito.
type memTx struct {
	mu         sync.Mutex
	db         *memDB
	itemsErr   error
	paymentErr error
}

func (t *memTx) RunCheckout(_ context.Context, fn func(
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	staged := t.db.clone()
	err := fn(
		&memCart{db: staged},
		&memOrders{db: staged, itemsErr: t.itemsErr},
		&memPayments{db: staged, err: t.paymentErr},
	)
	if err != nil {
		return err
	}
	*t.db = *staged
	return nil
}

type memNotifier struct {
	mu   sync.Mutex
	sent []Notification
	err  error
}

func (n *memNotifier) Send(_ context.Context, msg Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, msg)
	return nil
}

type stubRenderer struct {
	err error
}

func (r stubRenderer) RenderReceipt(context.Context, Receipt) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	return []byte("%PDF-1.3 recibo"), nil
}

var errDB = errors.New("insert order_items: conexión cerrada")
