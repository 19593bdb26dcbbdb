package jsonfile

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "orders.json"), zerolog.Nop())
}

func testDraft() domain.OrderDraft {
	return domain.OrderDraft{
		ProductID:      161,
		ProductName:    "Argentina Fan Version World Cup 2026 Jersey (Half Sleeve)",
		RegularPrice:   900,
		OfferPrice:     850,
		Quantity:       1,
		Size:           "L",
		Name:           "Rahim",
		Phone:          "01711111111",
		Address:        "Mirpur, Dhaka",
		DeliveryArea:   domain.ZoneInside,
		DeliveryCharge: 70,
		Total:          920,
	}
}

func TestStore_CreateRoundTrip(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Create(testDraft())
	require.NoError(t, err)
	assert.Greater(t, created.ID, int64(0))
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, testDraft(), created.OrderDraft)

	orders, err := store.List()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, created, orders[0])
}

func TestStore_IDsAreUniqueAndMonotonic(t *testing.T) {
	store := newTestStore(t)

	var prev int64
	for i := 0; i < 10; i++ {
		order, err := store.Create(testDraft())
		require.NoError(t, err)
		assert.Greater(t, order.ID, prev)
		prev = order.ID
	}
}

func TestStore_IDsStayMonotonicAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")

	first := New(path, zerolog.Nop())
	a, err := first.Create(testDraft())
	require.NoError(t, err)

	reopened := New(path, zerolog.Nop())
	b, err := reopened.Create(testDraft())
	require.NoError(t, err)
	assert.Greater(t, b.ID, a.ID)

	orders, err := reopened.List()
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestStore_Patch(t *testing.T) {
	store := newTestStore(t)
	created, err := store.Create(testDraft())
	require.NoError(t, err)

	status := domain.StatusConfirmed
	patched, err := store.Patch(created.ID, domain.OrderPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, patched.Status)
	assert.Equal(t, created.ID, patched.ID)
	assert.Equal(t, created.OrderDraft, patched.OrderDraft)

	orders, err := store.List()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, patched, orders[0])
}

func TestStore_PatchIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	created, err := store.Create(testDraft())
	require.NoError(t, err)

	status := created.Status
	name := created.Name
	patched, err := store.Patch(created.ID, domain.OrderPatch{Status: &status, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, created, patched)
}

func TestStore_PatchNotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Create(testDraft())
	require.NoError(t, err)

	status := domain.StatusConfirmed
	_, err = store.Patch(999999, domain.OrderPatch{Status: &status})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	orders, err := store.List()
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, domain.StatusPending, orders[0].Status)
}

func TestStore_Get(t *testing.T) {
	store := newTestStore(t)
	created, err := store.Create(testDraft())
	require.NoError(t, err)

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = store.Get(created.ID + 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_MissingFileListsEmpty(t *testing.T) {
	store := newTestStore(t)
	orders, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestStore_CorruptFileDegradesToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := New(path, zerolog.Nop())
	orders, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, orders)

	// The store stays usable after degrading.
	_, err = store.Create(testDraft())
	require.NoError(t, err)
}

func TestStore_ConcurrentCreates(t *testing.T) {
	store := newTestStore(t)

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Create(testDraft())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	orders, err := store.List()
	require.NoError(t, err)
	require.Len(t, orders, n)

	seen := make(map[int64]bool, n)
	for _, o := range orders {
		assert.False(t, seen[o.ID], "duplicate id %d", o.ID)
		seen[o.ID] = true
	}
}
