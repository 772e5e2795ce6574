package cart_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/pos-demo/internal/cart"
	"github.com/nikolayk812/pos-demo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type storeSuite struct {
	suite.Suite

	store *cart.Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(storeSuite))
}

func (suite *storeSuite) SetupTest() {
	suite.store = cart.New()
}

func (suite *storeSuite) TestAddItemAggregatesQuantity() {
	t := suite.T()

	item := randomItem()
	adds := gofakeit.IntRange(1, 20)
	for range adds {
		suite.store.AddItem(item)
	}

	lines := suite.store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, item.ID, lines[0].ItemID)
	assert.Equal(t, adds, lines[0].Quantity)
	assert.Equal(t, adds, suite.store.ItemCount())
}

func (suite *storeSuite) TestAddItemKeepsInsertionOrder() {
	t := suite.T()

	a, b, c := randomItem(), randomItem(), randomItem()
	suite.store.AddItem(a)
	suite.store.AddItem(b)
	suite.store.AddItem(a)
	suite.store.AddItem(c)

	var ids []string
	for _, l := range suite.store.Lines() {
		ids = append(ids, l.ItemID)
	}
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, ids)
	assert.Equal(t, 4, suite.store.ItemCount())
}

func (suite *storeSuite) TestRemoveItem() {
	tests := []struct {
		name        string
		setup       int
		removeOwn   bool
		wantRemoved bool
		wantLen     int
	}{
		{name: "remove line with quantity 3: ok", setup: 3, removeOwn: true, wantRemoved: true, wantLen: 0},
		{name: "remove absent item: no-op", setup: 2, removeOwn: false, wantRemoved: false, wantLen: 1},
		{name: "remove from empty cart: no-op", setup: 0, removeOwn: false, wantRemoved: false, wantLen: 0},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			store := cart.New()

			item := randomItem()
			for range tt.setup {
				store.AddItem(item)
			}

			id := gofakeit.UUID()
			if tt.removeOwn {
				id = item.ID
			}

			assert.Equal(t, tt.wantRemoved, store.RemoveItem(id))
			assert.Equal(t, tt.wantLen, store.Len())
		})
	}
}

func (suite *storeSuite) TestRemoveThenAddStartsFresh() {
	t := suite.T()

	item := randomItem()
	suite.store.AddItem(item)
	suite.store.AddItem(item)
	suite.store.RemoveItem(item.ID)
	suite.store.AddItem(item)

	lines := suite.store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func (suite *storeSuite) TestSetQuantity() {
	item := randomItem()

	tests := []struct {
		name      string
		itemID    string
		qty       int
		wantQty   int
		wantError error
	}{
		{name: "set to 5: ok", itemID: item.ID, qty: 5, wantQty: 5},
		{name: "set to 1: ok", itemID: item.ID, qty: 1, wantQty: 1},
		{name: "set to 0: error", itemID: item.ID, qty: 0, wantQty: 1, wantError: cart.ErrInvalidQuantity},
		{name: "set negative: error", itemID: item.ID, qty: -2, wantQty: 1, wantError: cart.ErrInvalidQuantity},
		{name: "set on absent item: error", itemID: "missing", qty: 2, wantQty: 1, wantError: cart.ErrLineNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			store := cart.New()
			store.AddItem(item)

			err := store.SetQuantity(tt.itemID, tt.qty)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantQty, store.Lines()[0].Quantity)
		})
	}
}

func (suite *storeSuite) TestClear() {
	t := suite.T()

	suite.store.AddItem(randomItem())
	suite.store.AddItem(randomItem())
	suite.store.Clear()

	assert.True(t, suite.store.IsEmpty())
	assert.Empty(t, suite.store.Lines())
	assert.Zero(t, suite.store.ItemCount())
}

func (suite *storeSuite) TestLinesIsACopy() {
	t := suite.T()

	item := randomItem()
	suite.store.AddItem(item)

	lines := suite.store.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, suite.store.Lines()[0].Quantity)
}

func (suite *storeSuite) TestLineCopiesCatalogFields() {
	t := suite.T()

	item := randomItem()
	suite.store.AddItem(item)
	suite.store.AddItem(item)

	line := suite.store.Lines()[0]
	assert.Equal(t, item.Name, line.Name)
	assert.True(t, item.UnitPrice.Equal(line.UnitPrice))
	assert.True(t, item.UnitPrice.Mul(decimal.NewFromInt(2)).Equal(line.LineTotal()))
}

func randomItem() domain.CatalogItem {
	return domain.CatalogItem{
		ID:        gofakeit.UUID(),
		Name:      gofakeit.ProductName(),
		UnitPrice: decimal.NewFromFloat(gofakeit.Price(0, 100)).Round(2),
		Barcode:   gofakeit.DigitN(12),
	}
}
