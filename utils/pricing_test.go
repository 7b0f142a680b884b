package utils

import (
	"shikhon/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWorkshopPriceEarlybird(t *testing.T) {
	w := &models.Workshop{
		PriceRegular:    2000,
		PriceOffer:      1500,
		PriceEarlybirds: 1000,
		EarlybirdsCount: 10,
	}

	quote := ResolveWorkshopPrice(w, 4)

	assert.Equal(t, 1000.0, quote.CurrentPrice)
	assert.True(t, quote.IsEarlybird)
	require.NotNil(t, quote.EarlybirdSpotsLeft)
	assert.Equal(t, 6, *quote.EarlybirdSpotsLeft)
	assert.Nil(t, quote.OriginalPrice)
}

func TestResolveWorkshopPriceEarlybirdExhausted(t *testing.T) {
	w := &models.Workshop{
		PriceRegular:    2000,
		PriceOffer:      1500,
		PriceEarlybirds: 1000,
		EarlybirdsCount: 10,
	}

	// Exactly at the count the earlybird tier is gone
	quote := ResolveWorkshopPrice(w, 10)

	assert.Equal(t, 1500.0, quote.CurrentPrice)
	assert.False(t, quote.IsEarlybird)
	require.NotNil(t, quote.OriginalPrice)
	assert.Equal(t, 2000.0, *quote.OriginalPrice)
	assert.Nil(t, quote.EarlybirdSpotsLeft)
}

func TestResolveWorkshopPriceOffer(t *testing.T) {
	w := &models.Workshop{
		PriceRegular: 200,
		PriceOffer:   150,
	}

	quote := ResolveWorkshopPrice(w, 0)

	assert.Equal(t, 150.0, quote.CurrentPrice)
	assert.False(t, quote.IsEarlybird)
	require.NotNil(t, quote.OriginalPrice)
	assert.Equal(t, 200.0, *quote.OriginalPrice)
}

func TestResolveWorkshopPriceRegular(t *testing.T) {
	w := &models.Workshop{PriceRegular: 500}

	quote := ResolveWorkshopPrice(w, 3)

	assert.Equal(t, 500.0, quote.CurrentPrice)
	assert.False(t, quote.IsEarlybird)
	assert.Nil(t, quote.OriginalPrice)
	assert.Nil(t, quote.EarlybirdSpotsLeft)
}

func TestResolveWorkshopPriceFree(t *testing.T) {
	w := &models.Workshop{PriceRegular: 0}

	quote := ResolveWorkshopPrice(w, 0)

	assert.True(t, quote.IsFree())
}

func TestResolveWorkshopPriceEarlybirdWithoutCount(t *testing.T) {
	// Price set but no count configured: the tier never applies
	w := &models.Workshop{
		PriceRegular:    300,
		PriceEarlybirds: 100,
	}

	quote := ResolveWorkshopPrice(w, 0)

	assert.Equal(t, 300.0, quote.CurrentPrice)
	assert.False(t, quote.IsEarlybird)
}

func TestRegularOnlyQuote(t *testing.T) {
	w := &models.Workshop{
		PriceRegular:    900,
		PriceOffer:      700,
		PriceEarlybirds: 500,
		EarlybirdsCount: 5,
	}

	quote := RegularOnlyQuote(w)

	assert.Equal(t, 900.0, quote.CurrentPrice)
	assert.False(t, quote.IsEarlybird)
	assert.Nil(t, quote.OriginalPrice)
}

func TestResolveCoursePrice(t *testing.T) {
	c := &models.Course{PriceRegular: 3000, PriceOffer: 2500}

	quote := ResolveCoursePrice(c)

	assert.Equal(t, 2500.0, quote.CurrentPrice)
	require.NotNil(t, quote.OriginalPrice)
	assert.Equal(t, 3000.0, *quote.OriginalPrice)

	free := ResolveCoursePrice(&models.Course{})
	assert.True(t, free.IsFree())
}
