package cart

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Repository is the optional durable backing for carts. Load returns
// (nil, nil) when the client has no cart.
type Repository interface {
	Load(ctx context.Context, clientID string) (*Cart, error)
	Save(ctx context.Context, clientID string, c Cart) error
	Delete(ctx context.Context, clientID string) error
}

// Store keeps one cart per client with write-through persistence when a
// repository is configured. Removing the last item deletes the cart record
// entirely; an absent cart is distinct from an empty one.
type Store struct {
	mu     sync.Mutex
	carts  map[string]*Cart
	repo   Repository
	logger zerolog.Logger
}

func NewStore(repo Repository, logger zerolog.Logger) *Store {
	return &Store{
		carts:  make(map[string]*Cart),
		repo:   repo,
		logger: logger,
	}
}

// warm populates the cache from the repository on a miss. Every accessor
// calls it first so a cold cache never shadows a persisted cart: a restart
// must not let AddItem mint a fresh cart over a stored snapshot.
func (s *Store) warm(ctx context.Context, clientID string) {
	if s.repo == nil {
		return
	}
	s.mu.Lock()
	_, ok := s.carts[clientID]
	s.mu.Unlock()
	if ok {
		return
	}

	c, err := s.repo.Load(ctx, clientID)
	if err != nil {
		s.logger.Warn().Err(err).Str("client_id", clientID).Msg("cart: load failed; treating as absent")
		return
	}
	if c == nil {
		return
	}

	s.mu.Lock()
	if _, ok := s.carts[clientID]; !ok {
		s.carts[clientID] = c
	}
	s.mu.Unlock()
}

// Get returns a copy of the client's cart, reading through to the repository
// on a cache miss.
func (s *Store) Get(ctx context.Context, clientID string) (Cart, bool) {
	s.warm(ctx, clientID)

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[clientID]
	if !ok {
		return Cart{}, false
	}
	return copyCart(c), true
}

// AddItem appends the item to the client's cart, creating the cart on first
// use, and returns the updated cart. The item id is minted here.
func (s *Store) AddItem(ctx context.Context, clientID string, item Item) Cart {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	item.ID = "cart-" + uuid.NewString()

	s.warm(ctx, clientID)

	s.mu.Lock()
	c, ok := s.carts[clientID]
	if !ok {
		c = &Cart{ID: "cart-" + uuid.NewString(), CheckoutURL: PlaceholderCheckoutURL}
		s.carts[clientID] = c
	}
	c.Items = append(c.Items, item)
	c.recalcTotal()
	out := copyCart(c)
	s.mu.Unlock()

	s.persist(ctx, clientID, out)
	return out
}

// RemoveItem removes the item. When the last item goes, the cart record is
// deleted and (Cart{}, false) is returned.
func (s *Store) RemoveItem(ctx context.Context, clientID, itemID string) (Cart, bool) {
	s.warm(ctx, clientID)

	s.mu.Lock()
	c, ok := s.carts[clientID]
	if !ok {
		s.mu.Unlock()
		return Cart{}, false
	}
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
	if len(c.Items) == 0 {
		delete(s.carts, clientID)
		s.mu.Unlock()
		s.remove(ctx, clientID)
		return Cart{}, false
	}
	c.recalcTotal()
	out := copyCart(c)
	s.mu.Unlock()

	s.persist(ctx, clientID, out)
	return out, true
}

// Clear deletes the client's cart entirely.
func (s *Store) Clear(ctx context.Context, clientID string) {
	s.mu.Lock()
	delete(s.carts, clientID)
	s.mu.Unlock()
	s.remove(ctx, clientID)
}

func (s *Store) persist(ctx context.Context, clientID string, c Cart) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(ctx, clientID, c); err != nil {
		s.logger.Warn().Err(err).Str("client_id", clientID).Msg("cart: save failed")
	}
}

func (s *Store) remove(ctx context.Context, clientID string) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Delete(ctx, clientID); err != nil {
		s.logger.Warn().Err(err).Str("client_id", clientID).Msg("cart: delete failed")
	}
}

func copyCart(c *Cart) Cart {
	out := *c
	out.Items = append([]Item(nil), c.Items...)
	return out
}
