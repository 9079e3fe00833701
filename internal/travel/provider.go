// Package travel wraps the travel-provider APIs the tools call. The current
// implementation returns deterministic mock data shaped like real provider
// responses; swapping in a live SDK only changes this package.
package travel

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"travelchat/internal/session"
)

type Client struct {
	// Simulated provider latency; zero in tests
	latency time.Duration
}

func NewClient(latency time.Duration) *Client {
	return &Client{latency: latency}
}

// simulateCall stands in for the network round-trip to the provider and
// honors cancellation so tool timeouts actually bound the call.
func (c *Client) simulateCall(ctx context.Context) error {
	if c.latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(c.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var carriers = []string{"United", "Delta", "American", "Lufthansa", "KLM"}

// SearchFlights returns five mock offers for the given route and date.
func (c *Client) SearchFlights(ctx context.Context, origin, destination, departureDate string, adults int) ([]session.Offer, error) {
	if err := c.simulateCall(ctx); err != nil {
		return nil, err
	}

	origin = strings.ToUpper(origin)
	destination = strings.ToUpper(destination)

	offers := make([]session.Offer, 0, len(carriers))
	for i, carrier := range carriers {
		price := 189.50 + float64(i)*62.25
		offers = append(offers, session.Offer{
			"id":      fmt.Sprintf("FL-%s%s-%d", origin, destination, i+1),
			"carrier": carrier,
			"origin":  origin, "destination": destination,
			"departure_date": departureDate,
			"departure_time": fmt.Sprintf("%02d:%d0", 6+i*3, i%6),
			"duration":       fmt.Sprintf("PT%dH%dM", 5+i%3, 15*(i%4)),
			"stops":          i % 2,
			"adults":         adults,
			"price":          map[string]any{"total": fmt.Sprintf("%.2f", price*float64(max(adults, 1))), "currency": "USD"},
		})
	}
	return offers, nil
}

// PriceFlightOffer confirms the fare for a previously returned offer. Real
// providers re-verify availability here, so the total can shift slightly.
func (c *Client) PriceFlightOffer(ctx context.Context, offer session.Offer) (session.Offer, error) {
	if err := c.simulateCall(ctx); err != nil {
		return nil, err
	}

	priced := session.Offer{}
	for k, v := range offer {
		priced[k] = v
	}
	priced["priced_at"] = time.Now().UTC().Format(time.RFC3339)
	priced["fare_confirmed"] = true
	return priced, nil
}

// BookFlight issues a booking against a priced offer and returns the
// confirmation record.
func (c *Client) BookFlight(ctx context.Context, offer session.Offer, firstName, lastName string) (map[string]any, error) {
	if err := c.simulateCall(ctx); err != nil {
		return nil, err
	}

	return map[string]any{
		"booking_reference": strings.ToUpper(uuid.NewString()[:8]),
		"status":            "CONFIRMED",
		"traveler":          fmt.Sprintf("%s %s", firstName, lastName),
		"flight_id":         offer["id"],
		"carrier":           offer["carrier"],
		"price":             offer["price"],
	}, nil
}

var hotelChains = []string{"Hilton Garden Inn", "Marriott Courtyard", "Hyatt Place", "Holiday Inn Express", "Four Seasons"}

// SearchHotels returns mock hotel offers for a city and stay window.
func (c *Client) SearchHotels(ctx context.Context, city, checkInDate, checkOutDate string, adults int) ([]session.Offer, error) {
	if err := c.simulateCall(ctx); err != nil {
		return nil, err
	}

	offers := make([]session.Offer, 0, len(hotelChains))
	for i, name := range hotelChains {
		rate := 95.00 + float64(i)*85.00
		offers = append(offers, session.Offer{
			"id":       fmt.Sprintf("HT-%s-%d", strings.ToUpper(strings.ReplaceAll(city, " ", "")), i+1),
			"name":     fmt.Sprintf("%s %s", name, city),
			"city":     city,
			"check_in": checkInDate, "check_out": checkOutDate,
			"adults": adults,
			"rating": 3 + i%3,
			"price":  map[string]any{"per_night": fmt.Sprintf("%.2f", rate), "currency": "USD"},
		})
	}
	return offers, nil
}

// BookHotel books the given hotel offer for the named guest.
func (c *Client) BookHotel(ctx context.Context, offer session.Offer, firstName, lastName string) (map[string]any, error) {
	if err := c.simulateCall(ctx); err != nil {
		return nil, err
	}

	return map[string]any{
		"booking_reference": strings.ToUpper(uuid.NewString()[:8]),
		"status":            "CONFIRMED",
		"guest":             fmt.Sprintf("%s %s", firstName, lastName),
		"hotel_id":          offer["id"],
		"hotel_name":        offer["name"],
		"check_in":          offer["check_in"],
		"check_out":         offer["check_out"],
		"price":             offer["price"],
	}, nil
}

var carClasses = []string{"Economy", "Compact", "Midsize SUV", "Full-size", "Convertible"}

// SearchRentalCars returns mock rental car offers for a city and window.
func (c *Client) SearchRentalCars(ctx context.Context, city, pickUpDate, dropOffDate string) ([]session.Offer, error) {
	if err := c.simulateCall(ctx); err != nil {
		return nil, err
	}

	offers := make([]session.Offer, 0, len(carClasses))
	for i, class := range carClasses {
		rate := 32.00 + float64(i)*28.50
		offers = append(offers, session.Offer{
			"id":      fmt.Sprintf("CR-%s-%d", strings.ToUpper(strings.ReplaceAll(city, " ", "")), i+1),
			"class":   class,
			"company": []string{"Hertz", "Avis", "Enterprise", "Budget", "Sixt"}[i],
			"city":    city,
			"pick_up": pickUpDate, "drop_off": dropOffDate,
			"price": map[string]any{"per_day": fmt.Sprintf("%.2f", rate), "currency": "USD"},
		})
	}
	return offers, nil
}

// BookRentalCar books the given car offer for the named driver.
func (c *Client) BookRentalCar(ctx context.Context, offer session.Offer, firstName, lastName string) (map[string]any, error) {
	if err := c.simulateCall(ctx); err != nil {
		return nil, err
	}

	return map[string]any{
		"booking_reference": strings.ToUpper(uuid.NewString()[:8]),
		"status":            "CONFIRMED",
		"driver":            fmt.Sprintf("%s %s", firstName, lastName),
		"car_id":            offer["id"],
		"class":             offer["class"],
		"company":           offer["company"],
		"price":             offer["price"],
	}, nil
}
