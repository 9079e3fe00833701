package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai/jsonschema"

	"travelchat/internal/session"
	"travelchat/internal/travel"
)

// FlightSearchArgs represents the arguments for the flight search tool
type FlightSearchArgs struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	Adults        int    `json:"adults,omitempty"`
}

// FlightSearchTool queries the flight provider and fills the session's
// flight slot so later turns can reference offers by number.
type FlightSearchTool struct {
	BaseTool
	client *travel.Client
}

func NewFlightSearchTool(client *travel.Client) *FlightSearchTool {
	params := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"origin": {
				Type:        jsonschema.String,
				Description: "Origin airport IATA code, e.g. SFO",
			},
			"destination": {
				Type:        jsonschema.String,
				Description: "Destination airport IATA code, e.g. JFK",
			},
			"departure_date": {
				Type:        jsonschema.String,
				Description: "Departure date in YYYY-MM-DD format",
			},
			"adults": {
				Type:        jsonschema.Integer,
				Description: "Number of adult travelers (default 1)",
			},
		},
		Required: []string{"origin", "destination", "departure_date"},
	}

	return &FlightSearchTool{
		BaseTool: BaseTool{
			ToolName:        "search_flights",
			ToolDescription: "Search for flights between two airports on a given date. Present the results to the user as a numbered list.",
			ToolParameters:  params,
		},
		client: client,
	}
}

func (t *FlightSearchTool) ResultSlot() session.Slot {
	return session.SlotFlights
}

func (t *FlightSearchTool) Execute(ctx context.Context, sess *session.Session, args string) (Result, error) {
	var a FlightSearchArgs
	if err := json.Unmarshal([]byte(args), &a); err != nil {
		return Failuref(KindArgumentParse, "invalid flight search arguments: %s", err), nil
	}
	if a.Origin == "" || a.Destination == "" || a.DepartureDate == "" {
		return Failure(KindArgumentParse, "origin, destination and departure_date are required"), nil
	}
	if a.Adults <= 0 {
		a.Adults = 1
	}

	offers, err := t.client.SearchFlights(ctx, a.Origin, a.Destination, a.DepartureDate, a.Adults)
	if err != nil {
		return Result{}, err
	}

	return SuccessWithOffers(map[string]any{
		"count":   len(offers),
		"flights": offers,
	}, offers), nil
}

// PriceFlightArgs represents the arguments for the flight pricing tool
type PriceFlightArgs struct {
	FlightNumber int `json:"flight_number"`
}

// FlightPriceTool confirms the fare of one offer from the last flight
// search. A successful pricing call is the precondition for booking.
type FlightPriceTool struct {
	BaseTool
	client *travel.Client
}

func NewFlightPriceTool(client *travel.Client) *FlightPriceTool {
	params := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"flight_number": {
				Type:        jsonschema.Integer,
				Description: "The 1-based number of the flight from the most recent search results",
			},
		},
		Required: []string{"flight_number"},
	}

	return &FlightPriceTool{
		BaseTool: BaseTool{
			ToolName:        "price_flight_offer",
			ToolDescription: "Confirm the current price for one of the flights from the most recent search. Must be called before booking.",
			ToolParameters:  params,
		},
		client: client,
	}
}

func (t *FlightPriceTool) Ordinal() OrdinalSpec {
	return OrdinalSpec{Param: "flight_number", Slot: session.SlotFlights, Noun: "flight"}
}

func (t *FlightPriceTool) Execute(ctx context.Context, sess *session.Session, args string) (Result, error) {
	var a PriceFlightArgs
	if err := json.Unmarshal([]byte(args), &a); err != nil {
		return Failuref(KindArgumentParse, "invalid pricing arguments: %s", err), nil
	}

	// The executor has already validated the ordinal against the list
	offer := sess.Offers(session.SlotFlights)[a.FlightNumber-1]

	priced, err := t.client.PriceFlightOffer(ctx, offer)
	if err != nil {
		return Result{}, err
	}

	sess.SetLastPricedOffer(priced)

	return Success(map[string]any{
		"flight_number": a.FlightNumber,
		"offer":         priced,
		"message":       "Price confirmed. The traveler's first and last name are required to book.",
	}), nil
}

// BookFlightArgs represents the arguments for the flight booking tool
type BookFlightArgs struct {
	TravelerFirstName string `json:"traveler_first_name"`
	TravelerLastName  string `json:"traveler_last_name"`
}

// FlightBookTool books the offer confirmed by the last pricing call.
type FlightBookTool struct {
	BaseTool
	client *travel.Client
}

func NewFlightBookTool(client *travel.Client) *FlightBookTool {
	params := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"traveler_first_name": {
				Type:        jsonschema.String,
				Description: "The traveler's first name as it appears on their ID",
			},
			"traveler_last_name": {
				Type:        jsonschema.String,
				Description: "The traveler's last name as it appears on their ID",
			},
		},
		Required: []string{"traveler_first_name", "traveler_last_name"},
	}

	return &FlightBookTool{
		BaseTool: BaseTool{
			ToolName:        "book_flight",
			ToolDescription: "Book the flight offer that was most recently priced with price_flight_offer.",
			ToolParameters:  params,
		},
		client: client,
	}
}

func (t *FlightBookTool) Execute(ctx context.Context, sess *session.Session, args string) (Result, error) {
	var a BookFlightArgs
	if err := json.Unmarshal([]byte(args), &a); err != nil {
		return Failuref(KindArgumentParse, "invalid booking arguments: %s", err), nil
	}
	if a.TravelerFirstName == "" || a.TravelerLastName == "" {
		return Failure(KindArgumentParse, "traveler_first_name and traveler_last_name are required"), nil
	}

	offer := sess.LastPricedOffer()
	if offer == nil {
		return Failure(KindPreconditionFailed,
			"No priced flight offer found. Please price a flight offer with price_flight_offer before booking."), nil
	}

	confirmation, err := t.client.BookFlight(ctx, offer, a.TravelerFirstName, a.TravelerLastName)
	if err != nil {
		return Result{}, err
	}

	return Success(map[string]any{
		"message":      fmt.Sprintf("Flight booked for %s %s.", a.TravelerFirstName, a.TravelerLastName),
		"confirmation": confirmation,
	}), nil
}
