package storefront

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/mocks"
)

func TestController_SubmitBuildsDenormalizedDraft(t *testing.T) {
	placer := new(mocks.MockOrderPlacer)
	placer.On("Place", mock.Anything, mock.AnythingOfType("domain.OrderDraft")).Return(nil)

	c := newLoadedController(t, placer)
	require.NoError(t, c.ChooseProduct(114))
	fillValidForm(c)
	c.SetQuantity(2)
	c.SetName("  Karim Ahmed  ")

	draft, err := c.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(114), draft.ProductID)
	assert.Equal(t, "Spain Player Home", draft.ProductName)
	assert.Equal(t, int64(1100), draft.RegularPrice)
	assert.Equal(t, int64(1050), draft.OfferPrice)
	assert.Equal(t, 2, draft.Quantity)
	assert.Equal(t, int64(70), draft.DeliveryCharge)
	assert.Equal(t, int64(2170), draft.Total)
	assert.Equal(t, "Karim Ahmed", draft.Name, "name is trimmed")

	placer.AssertExpectations(t)
}

func TestController_SubmitResetsSelectionAndForm(t *testing.T) {
	placer := new(mocks.MockOrderPlacer)
	placer.On("Place", mock.Anything, mock.Anything).Return(nil)

	c := newLoadedController(t, placer)
	require.NoError(t, c.ChooseProduct(161))
	c.Next() // shopper keeps browsing after picking
	fillValidForm(c)

	displayBefore, _ := c.Selection()
	_, err := c.Submit(context.Background())
	require.NoError(t, err)

	display, orderID := c.Selection()
	assert.Equal(t, int64(144), orderID, "selection resets to the first catalog product")
	assert.Equal(t, displayBefore, display, "display index is left alone")
	assert.Equal(t, Form{Quantity: 1}, c.Form())
	assert.False(t, c.CanSubmit())
}

func TestController_SubmitIncompleteForm(t *testing.T) {
	placer := new(mocks.MockOrderPlacer)
	c := newLoadedController(t, placer)
	fillValidForm(c)
	c.SetPhone("12345")

	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrFormIncomplete)
	placer.AssertNotCalled(t, "Place")
}

func TestController_SubmitPlacerFailureKeepsState(t *testing.T) {
	placer := new(mocks.MockOrderPlacer)
	placer.On("Place", mock.Anything, mock.Anything).Return(errors.New("server unreachable"))

	c := newLoadedController(t, placer)
	require.NoError(t, c.ChooseProduct(161))
	fillValidForm(c)

	_, err := c.Submit(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSubmitInFlight)

	_, orderID := c.Selection()
	assert.Equal(t, int64(161), orderID, "failed submit must not reset the selection")
	assert.True(t, c.CanSubmit(), "form survives so the shopper can retry")
}

func TestController_SubmitRejectsConcurrentSubmission(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})

	placer := new(mocks.MockOrderPlacer)
	placer.On("Place", mock.Anything, mock.Anything).Return(nil).Run(func(mock.Arguments) {
		close(entered)
		<-release
	})

	c := newLoadedController(t, placer)
	fillValidForm(c)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := c.Submit(context.Background())
		assert.NoError(t, err)
	}()

	<-entered
	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(release)
	wg.Wait()
	placer.AssertNumberOfCalls(t, "Place", 1)
}
