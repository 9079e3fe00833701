package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai/jsonschema"

	"travelchat/internal/session"
	"travelchat/internal/travel"
)

// HotelSearchArgs represents the arguments for the hotel search tool
type HotelSearchArgs struct {
	City         string `json:"city"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Adults       int    `json:"adults,omitempty"`
}

// HotelSearchTool queries the hotel provider and fills the session's hotel
// slot for later ordinal references.
type HotelSearchTool struct {
	BaseTool
	client *travel.Client
}

func NewHotelSearchTool(client *travel.Client) *HotelSearchTool {
	params := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"city": {
				Type:        jsonschema.String,
				Description: "The city to search hotels in, e.g. New York",
			},
			"check_in_date": {
				Type:        jsonschema.String,
				Description: "Check-in date in YYYY-MM-DD format",
			},
			"check_out_date": {
				Type:        jsonschema.String,
				Description: "Check-out date in YYYY-MM-DD format",
			},
			"adults": {
				Type:        jsonschema.Integer,
				Description: "Number of adult guests (default 1)",
			},
		},
		Required: []string{"city", "check_in_date", "check_out_date"},
	}

	return &HotelSearchTool{
		BaseTool: BaseTool{
			ToolName:        "search_hotels",
			ToolDescription: "Search for hotels in a city for a stay window. Present the results to the user as a numbered list.",
			ToolParameters:  params,
		},
		client: client,
	}
}

func (t *HotelSearchTool) ResultSlot() session.Slot {
	return session.SlotHotels
}

func (t *HotelSearchTool) Execute(ctx context.Context, sess *session.Session, args string) (Result, error) {
	var a HotelSearchArgs
	if err := json.Unmarshal([]byte(args), &a); err != nil {
		return Failuref(KindArgumentParse, "invalid hotel search arguments: %s", err), nil
	}
	if a.City == "" || a.CheckInDate == "" || a.CheckOutDate == "" {
		return Failure(KindArgumentParse, "city, check_in_date and check_out_date are required"), nil
	}
	if a.Adults <= 0 {
		a.Adults = 1
	}

	offers, err := t.client.SearchHotels(ctx, a.City, a.CheckInDate, a.CheckOutDate, a.Adults)
	if err != nil {
		return Result{}, err
	}

	return SuccessWithOffers(map[string]any{
		"count":  len(offers),
		"hotels": offers,
	}, offers), nil
}

// BookHotelArgs represents the arguments for the hotel booking tool
type BookHotelArgs struct {
	HotelNumber    int    `json:"hotel_number"`
	GuestFirstName string `json:"guest_first_name"`
	GuestLastName  string `json:"guest_last_name"`
}

// HotelBookTool books one hotel from the last hotel search by number.
type HotelBookTool struct {
	BaseTool
	client *travel.Client
}

func NewHotelBookTool(client *travel.Client) *HotelBookTool {
	params := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"hotel_number": {
				Type:        jsonschema.Integer,
				Description: "The 1-based number of the hotel from the most recent search results",
			},
			"guest_first_name": {
				Type:        jsonschema.String,
				Description: "The guest's first name",
			},
			"guest_last_name": {
				Type:        jsonschema.String,
				Description: "The guest's last name",
			},
		},
		Required: []string{"hotel_number", "guest_first_name", "guest_last_name"},
	}

	return &HotelBookTool{
		BaseTool: BaseTool{
			ToolName:        "book_hotel",
			ToolDescription: "Book one of the hotels from the most recent hotel search.",
			ToolParameters:  params,
		},
		client: client,
	}
}

func (t *HotelBookTool) Ordinal() OrdinalSpec {
	return OrdinalSpec{Param: "hotel_number", Slot: session.SlotHotels, Noun: "hotel"}
}

func (t *HotelBookTool) Execute(ctx context.Context, sess *session.Session, args string) (Result, error) {
	var a BookHotelArgs
	if err := json.Unmarshal([]byte(args), &a); err != nil {
		return Failuref(KindArgumentParse, "invalid hotel booking arguments: %s", err), nil
	}
	if a.GuestFirstName == "" || a.GuestLastName == "" {
		return Failure(KindArgumentParse, "guest_first_name and guest_last_name are required"), nil
	}

	offer := sess.Offers(session.SlotHotels)[a.HotelNumber-1]

	confirmation, err := t.client.BookHotel(ctx, offer, a.GuestFirstName, a.GuestLastName)
	if err != nil {
		return Result{}, err
	}

	return Success(map[string]any{
		"message":      fmt.Sprintf("Hotel booked for %s %s.", a.GuestFirstName, a.GuestLastName),
		"confirmation": confirmation,
	}), nil
}
