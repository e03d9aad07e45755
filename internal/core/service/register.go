package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tokogrand/pos-register/internal/core/domain"
	"github.com/tokogrand/pos-register/internal/core/logger"
	"github.com/tokogrand/pos-register/internal/core/port"
	"github.com/tokogrand/pos-register/internal/core/serviceerrors"
)

// CartView is the cart state returned after every mutation, so the
// register display can refresh without a second round trip.
type CartView struct {
	Lines []domain.CartLine
	Total domain.Amount
}

type registerSession struct {
	mu       sync.Mutex
	cart     *domain.Cart
	debounce *domain.Debouncer
}

// RegisterService owns the volatile per-register sessions: the cart, the
// scan debouncer and the availability arithmetic on top of the ledger.
// One register serves one operator, but the HTTP shell is concurrent, so
// each session serializes its own operations.
type RegisterService struct {
	ledger   port.LedgerPort
	window   time.Duration
	now      func() time.Time
	mu       sync.Mutex
	sessions map[string]*registerSession
}

func NewRegisterService(ledger port.LedgerPort, debounceWindow time.Duration) *RegisterService {
	return &RegisterService{
		ledger:   ledger,
		window:   debounceWindow,
		now:      time.Now,
		sessions: make(map[string]*registerSession),
	}
}

func (s *RegisterService) session(registerID string) *registerSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[registerID]
	if !ok {
		sess = &registerSession{
			cart:     domain.NewCart(),
			debounce: domain.NewDebouncer(s.window),
		}
		s.sessions[registerID] = sess
	}
	return sess
}

func view(cart *domain.Cart) *CartView {
	return &CartView{Lines: cart.Lines(), Total: cart.Total()}
}

// ScanItem handles scanner submissions: the debouncer collapses rapid
// duplicates of one physical scan, accepted ones become a single add.
// The bool reports whether the submission was accepted or dropped.
func (s *RegisterService) ScanItem(ctx context.Context, registerID, sku string) (*CartView, bool, error) {
	sess := s.session(registerID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.debounce.Accept(sku, s.now()) {
		logger.Debug(ctx, "scan debounced", map[string]any{
			"register_id": registerID,
			"sku":         sku,
		})
		return view(sess.cart), false, nil
	}

	if err := s.addOne(ctx, sess, sku); err != nil {
		return nil, true, err
	}
	return view(sess.cart), true, nil
}

// AddItem is the manual keyboard path; it bypasses the debouncer.
func (s *RegisterService) AddItem(ctx context.Context, registerID, sku string) (*CartView, error) {
	sess := s.session(registerID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.addOne(ctx, sess, sku); err != nil {
		return nil, err
	}
	return view(sess.cart), nil
}

func (s *RegisterService) addOne(ctx context.Context, sess *registerSession, sku string) error {
	product, err := s.ledger.GetBySKU(ctx, sku)
	if err != nil {
		return err
	}

	if err := sess.cart.Add(product); err != nil {
		if errors.Is(err, domain.ErrStockInsufficient) {
			return serviceerrors.NewStockInsufficientError(sku, product.Stock)
		}
		return err
	}
	return nil
}

// SetQuantity overwrites a line's quantity; zero removes the line.
func (s *RegisterService) SetQuantity(ctx context.Context, registerID, sku string, quantity int) (*CartView, error) {
	sess := s.session(registerID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return s.setQuantity(ctx, sess, sku, quantity)
}

// AdjustQuantity applies a relative delta to a line's quantity. A delta
// of -currentQty removes the line.
func (s *RegisterService) AdjustQuantity(ctx context.Context, registerID, sku string, delta int) (*CartView, error) {
	sess := s.session(registerID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return s.setQuantity(ctx, sess, sku, sess.cart.Quantity(sku)+delta)
}

func (s *RegisterService) setQuantity(ctx context.Context, sess *registerSession, sku string, quantity int) (*CartView, error) {
	if quantity < 0 {
		return nil, serviceerrors.NewInvalidRequestError("quantity must not be negative")
	}
	if quantity == 0 {
		sess.cart.Remove(sku)
		return view(sess.cart), nil
	}

	product, err := s.ledger.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	if err := sess.cart.SetQuantity(sku, quantity, product.Stock); err != nil {
		switch {
		case errors.Is(err, domain.ErrStockInsufficient):
			return nil, serviceerrors.NewStockInsufficientError(sku, product.Stock)
		case errors.Is(err, domain.ErrLineNotFound):
			return nil, serviceerrors.NewNotFoundError("product " + sku + " is not in the cart")
		default:
			return nil, err
		}
	}
	return view(sess.cart), nil
}

// RemoveItem deletes the line; removing an absent line is a no-op.
func (s *RegisterService) RemoveItem(ctx context.Context, registerID, sku string) (*CartView, error) {
	sess := s.session(registerID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.cart.Remove(sku)
	return view(sess.cart), nil
}

func (s *RegisterService) GetCart(ctx context.Context, registerID string) *CartView {
	sess := s.session(registerID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return view(sess.cart)
}

// Available reports the sellable quantity: ledger stock minus what the
// cart already holds, floored at zero.
func (s *RegisterService) Available(ctx context.Context, registerID, sku string) (int, error) {
	sess := s.session(registerID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	product, err := s.ledger.GetBySKU(ctx, sku)
	if err != nil {
		return 0, err
	}

	available := product.Stock - sess.cart.Quantity(sku)
	if available < 0 {
		return 0, nil
	}
	return available, nil
}

// WithCart runs fn while holding the register's session lock, so a commit
// can validate, apply and clear without a concurrent mutation slipping in
// between its passes.
func (s *RegisterService) WithCart(registerID string, fn func(cart *domain.Cart) error) error {
	sess := s.session(registerID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return fn(sess.cart)
}
