package travel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFlights(t *testing.T) {
	client := NewClient(0)

	offers, err := client.SearchFlights(context.Background(), "sfo", "jfk", "2025-03-01", 1)
	require.NoError(t, err)
	require.Len(t, offers, 5)

	assert.Equal(t, "FL-SFOJFK-1", offers[0]["id"])
	assert.Equal(t, "SFO", offers[0]["origin"])
	assert.Equal(t, "JFK", offers[0]["destination"])
	assert.Equal(t, "2025-03-01", offers[0]["departure_date"])

	price, ok := offers[0]["price"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "USD", price["currency"])
}

func TestSearchFlights_Deterministic(t *testing.T) {
	client := NewClient(0)
	ctx := context.Background()

	first, err := client.SearchFlights(ctx, "SFO", "JFK", "2025-03-01", 2)
	require.NoError(t, err)
	second, err := client.SearchFlights(ctx, "SFO", "JFK", "2025-03-01", 2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPriceFlightOffer(t *testing.T) {
	client := NewClient(0)
	ctx := context.Background()

	offers, err := client.SearchFlights(ctx, "SFO", "JFK", "2025-03-01", 1)
	require.NoError(t, err)

	priced, err := client.PriceFlightOffer(ctx, offers[2])
	require.NoError(t, err)

	assert.Equal(t, offers[2]["id"], priced["id"])
	assert.Equal(t, true, priced["fare_confirmed"])
	assert.NotEmpty(t, priced["priced_at"])

	// Pricing must not mutate the original offer
	_, mutated := offers[2]["fare_confirmed"]
	assert.False(t, mutated)
}

func TestBookFlight(t *testing.T) {
	client := NewClient(0)
	ctx := context.Background()

	offers, err := client.SearchFlights(ctx, "SFO", "JFK", "2025-03-01", 1)
	require.NoError(t, err)

	confirmation, err := client.BookFlight(ctx, offers[0], "Ada", "Lovelace")
	require.NoError(t, err)

	assert.Equal(t, "CONFIRMED", confirmation["status"])
	assert.Equal(t, "Ada Lovelace", confirmation["traveler"])
	assert.Equal(t, offers[0]["id"], confirmation["flight_id"])
	assert.Len(t, confirmation["booking_reference"], 8)
}

func TestSearchHotelsAndCars(t *testing.T) {
	client := NewClient(0)
	ctx := context.Background()

	hotels, err := client.SearchHotels(ctx, "New York", "2025-03-01", "2025-03-05", 2)
	require.NoError(t, err)
	require.Len(t, hotels, 5)
	assert.Equal(t, "HT-NEWYORK-1", hotels[0]["id"])

	cars, err := client.SearchRentalCars(ctx, "Los Angeles", "2025-03-01", "2025-03-05")
	require.NoError(t, err)
	require.Len(t, cars, 5)
	assert.Equal(t, "CR-LOSANGELES-1", cars[0]["id"])
}

func TestSimulatedLatencyHonorsCancellation(t *testing.T) {
	client := NewClient(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.SearchFlights(ctx, "SFO", "JFK", "2025-03-01", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}
