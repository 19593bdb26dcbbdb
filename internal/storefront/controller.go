// Package storefront holds the client-side engine of the shop: the carousel
// display index, the customer's order selection, the form state, and the
// submission pipeline. The display index and the order selection change
// independently and are only synchronized by the explicit triggers below;
// a shopper can browse the carousel without losing an in-progress selection.
package storefront

import (
	"context"
	"errors"
	"sync"
	"time"

	"storefront/internal/domain"
	"storefront/internal/pricing"
)

var (
	ErrEmptyCatalog   = errors.New("catalog is empty")
	ErrNotLoaded      = errors.New("catalog not loaded")
	ErrUnknownProduct = errors.New("product not in catalog")
	ErrFormIncomplete = errors.New("order form incomplete")
	ErrSubmitInFlight = errors.New("submission already in flight")
)

// DefaultAutoplayInterval matches the carousel rotation period of the shop.
const DefaultAutoplayInterval = 4500 * time.Millisecond

type CatalogSource interface {
	Products(ctx context.Context) ([]domain.Product, error)
}

type OrderPlacer interface {
	Place(ctx context.Context, draft domain.OrderDraft) error
}

type Config struct {
	Catalog          CatalogSource
	Orders           OrderPlacer
	AutoplayInterval time.Duration
	// OnChange, when set, is called after every state change so a render
	// layer can repaint. It runs outside the controller lock.
	OnChange func()
}

// Controller owns all storefront state. All methods are safe to call from
// any goroutine, including the autoplay timer firing concurrently with user
// input: autoplay only ever advances the display index.
type Controller struct {
	mu             sync.Mutex
	catalog        []domain.Product
	displayIndex   int
	orderProductID int64 // 0 means no selection
	form           Form
	submitting     bool

	source   CatalogSource
	orders   OrderPlacer
	autoplay *autoplay
	onChange func()
}

func New(cfg Config) *Controller {
	interval := cfg.AutoplayInterval
	if interval <= 0 {
		interval = DefaultAutoplayInterval
	}
	c := &Controller{
		source:   cfg.Catalog,
		orders:   cfg.Orders,
		onChange: cfg.OnChange,
		form:     Form{Quantity: 1},
	}
	c.autoplay = newAutoplay(interval, c.tick)
	return c
}

// Load fetches the catalog and initializes the selection: slide 0 is shown
// and the first product becomes the order selection. Autoplay starts once
// the catalog is in.
func (c *Controller) Load(ctx context.Context) error {
	products, err := c.source.Products(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return ErrEmptyCatalog
	}

	c.mu.Lock()
	c.catalog = products
	c.displayIndex = 0
	c.orderProductID = products[0].ID
	c.mu.Unlock()

	c.autoplay.Restart()
	c.notify()
	return nil
}

// Dispose cancels the autoplay timer. Safe to call more than once.
func (c *Controller) Dispose() {
	c.autoplay.Stop()
}

// tick is the autoplay trigger: advance the display index with wrap-around
// and leave the order selection alone. The timer reschedules itself, so no
// restart happens here.
func (c *Controller) tick() {
	c.mu.Lock()
	if len(c.catalog) == 0 {
		c.mu.Unlock()
		return
	}
	c.displayIndex = (c.displayIndex + 1) % len(c.catalog)
	c.mu.Unlock()
	c.notify()
}

// Next advances the carousel one slide. Order selection is untouched.
func (c *Controller) Next() {
	c.nav(+1)
}

// Prev moves the carousel back one slide. Order selection is untouched.
func (c *Controller) Prev() {
	c.nav(-1)
}

func (c *Controller) nav(step int) {
	c.mu.Lock()
	if len(c.catalog) == 0 {
		c.mu.Unlock()
		return
	}
	n := len(c.catalog)
	c.displayIndex = (c.displayIndex + step + n) % n
	c.mu.Unlock()

	c.autoplay.Restart()
	c.notify()
}

// SelectDot jumps the carousel to slide i. Order selection is untouched.
func (c *Controller) SelectDot(i int) error {
	c.mu.Lock()
	if i < 0 || i >= len(c.catalog) {
		c.mu.Unlock()
		return ErrUnknownProduct
	}
	c.displayIndex = i
	c.mu.Unlock()

	c.autoplay.Restart()
	c.notify()
	return nil
}

// ClickSlide shows slide i and also makes its product the order selection.
func (c *Controller) ClickSlide(i int) error {
	c.mu.Lock()
	if i < 0 || i >= len(c.catalog) {
		c.mu.Unlock()
		return ErrUnknownProduct
	}
	c.displayIndex = i
	c.orderProductID = c.catalog[i].ID
	c.mu.Unlock()

	c.autoplay.Restart()
	c.notify()
	return nil
}

// ClickCard selects a product from the catalog grid. The carousel is synced
// to the product's position so the display matches the selection.
func (c *Controller) ClickCard(productID int64) error {
	return c.selectProduct(productID)
}

// ChooseProduct selects a product from the order form dropdown. Same
// synchronization as ClickCard.
func (c *Controller) ChooseProduct(productID int64) error {
	return c.selectProduct(productID)
}

func (c *Controller) selectProduct(productID int64) error {
	c.mu.Lock()
	idx := c.indexOfLocked(productID)
	if idx < 0 {
		c.mu.Unlock()
		return ErrUnknownProduct
	}
	c.orderProductID = productID
	c.displayIndex = idx
	c.mu.Unlock()

	c.autoplay.Restart()
	c.notify()
	return nil
}

func (c *Controller) indexOfLocked(productID int64) int {
	for i, p := range c.catalog {
		if p.ID == productID {
			return i
		}
	}
	return -1
}

// Selection returns the current display index and order selection.
func (c *Controller) Selection() (displayIndex int, orderProductID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displayIndex, c.orderProductID
}

// DisplayedProduct returns the product the carousel currently shows.
func (c *Controller) DisplayedProduct() (domain.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.catalog) == 0 {
		return domain.Product{}, false
	}
	return c.catalog[c.displayIndex], true
}

// SelectedProduct returns the product targeted by the order form.
func (c *Controller) SelectedProduct() (domain.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedLocked()
}

func (c *Controller) selectedLocked() (domain.Product, bool) {
	if c.orderProductID == 0 {
		return domain.Product{}, false
	}
	if idx := c.indexOfLocked(c.orderProductID); idx >= 0 {
		return c.catalog[idx], true
	}
	return domain.Product{}, false
}

// Catalog returns the loaded catalog snapshot.
func (c *Controller) Catalog() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Product, len(c.catalog))
	copy(out, c.catalog)
	return out
}

// Summary returns the live price breakdown for the current selection and
// form. With no selection the quote is all zeros.
func (c *Controller) Summary() pricing.Quote {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.selectedLocked()
	if !ok {
		return pricing.Quote{}
	}
	return pricing.Price(p, c.form.Quantity, c.form.Zone)
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}
