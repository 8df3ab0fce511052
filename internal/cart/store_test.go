package cart

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(nil, zerolog.New(io.Discard))
}

func sampleItem(price int) Item {
	return Item{
		VariantID: "gid://shopify/ProductVariant/10001",
		ImageID:   "gen-1-1",
		ImageURL:  "/images/gallery/art-1.jpg",
		Title:     "Golden Hour Abstraction",
		Size:      `16×20"`,
		Medium:    "Canvas",
		Frame:     "Black",
		Mat:       "No Mat",
		Price:     price,
		Quantity:  1,
	}
}

func TestAddThenRemoveRoundTrip(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	c := store.AddItem(ctx, "client-1", sampleItem(11900))
	require.Len(t, c.Items, 1)
	assert.NotEmpty(t, c.Items[0].ID)
	assert.Equal(t, 11900, c.TotalPrice)
	assert.Equal(t, PlaceholderCheckoutURL, c.CheckoutURL)

	_, ok := store.RemoveItem(ctx, "client-1", c.Items[0].ID)
	assert.False(t, ok, "removing the last item must delete the cart record")

	_, ok = store.Get(ctx, "client-1")
	assert.False(t, ok, "cart should be absent after round trip")
}

func TestTotalsAreExactSums(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, "client-1", sampleItem(6900))
	c := store.AddItem(ctx, "client-1", sampleItem(14900))

	require.Len(t, c.Items, 2)
	assert.Equal(t, 6900+14900, c.TotalPrice)
	assert.Equal(t, 2, c.ItemCount())

	c, ok := store.RemoveItem(ctx, "client-1", c.Items[0].ID)
	require.True(t, ok)
	assert.Equal(t, 14900, c.TotalPrice)
}

func TestRemoveUnknownItemLeavesCartIntact(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, "client-1", sampleItem(2900))
	c, ok := store.RemoveItem(ctx, "client-1", "cart-does-not-exist")
	require.True(t, ok)
	assert.Len(t, c.Items, 1)
	assert.Equal(t, 2900, c.TotalPrice)
}

func TestCartsAreIsolatedPerClient(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	store.AddItem(ctx, "client-a", sampleItem(2900))
	_, ok := store.Get(ctx, "client-b")
	assert.False(t, ok)
}

type memRepo struct {
	saved   map[string]Cart
	deletes int
}

func newMemRepo() *memRepo { return &memRepo{saved: make(map[string]Cart)} }

func (r *memRepo) Load(_ context.Context, clientID string) (*Cart, error) {
	if c, ok := r.saved[clientID]; ok {
		return &c, nil
	}
	return nil, nil
}

func (r *memRepo) Save(_ context.Context, clientID string, c Cart) error {
	r.saved[clientID] = c
	return nil
}

func (r *memRepo) Delete(_ context.Context, clientID string) error {
	delete(r.saved, clientID)
	r.deletes++
	return nil
}

func TestWriteThroughPersistence(t *testing.T) {
	repo := newMemRepo()
	store := NewStore(repo, zerolog.New(io.Discard))
	ctx := context.Background()

	c := store.AddItem(ctx, "client-1", sampleItem(4900))
	require.Contains(t, repo.saved, "client-1")
	assert.Equal(t, 4900, repo.saved["client-1"].TotalPrice)

	store.RemoveItem(ctx, "client-1", c.Items[0].ID)
	assert.NotContains(t, repo.saved, "client-1")
	assert.Equal(t, 1, repo.deletes)
}

func TestAddItemMergesIntoPersistedCart(t *testing.T) {
	repo := &memRepo{saved: map[string]Cart{
		"client-1": {
			ID: "cart-x",
			Items: []Item{
				{ID: "cart-a", Size: "16x20", Medium: "canvas", Quantity: 1, Price: 8900},
				{ID: "cart-b", Size: "8x10", Medium: "paper", Quantity: 1, Price: 2900},
			},
			TotalPrice: 11800,
		},
	}}
	store := NewStore(repo, zerolog.New(io.Discard))

	cart := store.AddItem(context.Background(), "client-1", sampleItem(4500))

	require.Len(t, cart.Items, 3)
	require.Equal(t, "cart-x", cart.ID)
	require.Equal(t, 16300, cart.TotalPrice)
	require.Len(t, repo.saved["client-1"].Items, 3)
	require.Equal(t, 16300, repo.saved["client-1"].TotalPrice)
}

func TestRemoveItemFindsPersistedItem(t *testing.T) {
	repo := &memRepo{saved: map[string]Cart{
		"client-1": {
			ID: "cart-x",
			Items: []Item{
				{ID: "cart-a", Size: "16x20", Medium: "canvas", Quantity: 1, Price: 8900},
				{ID: "cart-b", Size: "8x10", Medium: "paper", Quantity: 1, Price: 2900},
			},
			TotalPrice: 11800,
		},
	}}
	store := NewStore(repo, zerolog.New(io.Discard))

	cart, ok := store.RemoveItem(context.Background(), "client-1", "cart-a")

	require.True(t, ok)
	require.Len(t, cart.Items, 1)
	require.Equal(t, "cart-b", cart.Items[0].ID)
	require.Equal(t, 2900, cart.TotalPrice)
	require.Len(t, repo.saved["client-1"].Items, 1)
}

func TestReadThroughOnColdCache(t *testing.T) {
	repo := newMemRepo()
	repo.saved["client-1"] = Cart{ID: "cart-x", Items: []Item{sampleItem(2900)}, TotalPrice: 2900}

	store := NewStore(repo, zerolog.New(io.Discard))
	c, ok := store.Get(context.Background(), "client-1")
	require.True(t, ok)
	assert.Equal(t, "cart-x", c.ID)
	assert.Equal(t, 2900, c.TotalPrice)
}
