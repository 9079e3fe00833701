package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai/jsonschema"

	"travelchat/internal/session"
	"travelchat/internal/travel"
)

// CarSearchArgs represents the arguments for the rental car search tool
type CarSearchArgs struct {
	City        string `json:"city"`
	PickUpDate  string `json:"pick_up_date"`
	DropOffDate string `json:"drop_off_date"`
}

// CarSearchTool queries the rental car provider and fills the session's
// rental car slot for later ordinal references.
type CarSearchTool struct {
	BaseTool
	client *travel.Client
}

func NewCarSearchTool(client *travel.Client) *CarSearchTool {
	params := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"city": {
				Type:        jsonschema.String,
				Description: "The city to pick the car up in, e.g. Los Angeles",
			},
			"pick_up_date": {
				Type:        jsonschema.String,
				Description: "Pick-up date in YYYY-MM-DD format",
			},
			"drop_off_date": {
				Type:        jsonschema.String,
				Description: "Drop-off date in YYYY-MM-DD format",
			},
		},
		Required: []string{"city", "pick_up_date", "drop_off_date"},
	}

	return &CarSearchTool{
		BaseTool: BaseTool{
			ToolName:        "search_rental_cars",
			ToolDescription: "Search for rental cars in a city for a date window. Present the results to the user as a numbered list.",
			ToolParameters:  params,
		},
		client: client,
	}
}

func (t *CarSearchTool) ResultSlot() session.Slot {
	return session.SlotRentalCars
}

func (t *CarSearchTool) Execute(ctx context.Context, sess *session.Session, args string) (Result, error) {
	var a CarSearchArgs
	if err := json.Unmarshal([]byte(args), &a); err != nil {
		return Failuref(KindArgumentParse, "invalid rental car search arguments: %s", err), nil
	}
	if a.City == "" || a.PickUpDate == "" || a.DropOffDate == "" {
		return Failure(KindArgumentParse, "city, pick_up_date and drop_off_date are required"), nil
	}

	offers, err := t.client.SearchRentalCars(ctx, a.City, a.PickUpDate, a.DropOffDate)
	if err != nil {
		return Result{}, err
	}

	return SuccessWithOffers(map[string]any{
		"count": len(offers),
		"cars":  offers,
	}, offers), nil
}

// BookCarArgs represents the arguments for the rental car booking tool
type BookCarArgs struct {
	CarNumber       int    `json:"car_number"`
	DriverFirstName string `json:"driver_first_name"`
	DriverLastName  string `json:"driver_last_name"`
}

// CarBookTool books one rental car from the last car search by number.
type CarBookTool struct {
	BaseTool
	client *travel.Client
}

func NewCarBookTool(client *travel.Client) *CarBookTool {
	params := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"car_number": {
				Type:        jsonschema.Integer,
				Description: "The 1-based number of the car from the most recent search results",
			},
			"driver_first_name": {
				Type:        jsonschema.String,
				Description: "The driver's first name as it appears on their license",
			},
			"driver_last_name": {
				Type:        jsonschema.String,
				Description: "The driver's last name as it appears on their license",
			},
		},
		Required: []string{"car_number", "driver_first_name", "driver_last_name"},
	}

	return &CarBookTool{
		BaseTool: BaseTool{
			ToolName:        "book_rental_car",
			ToolDescription: "Book one of the rental cars from the most recent car search.",
			ToolParameters:  params,
		},
		client: client,
	}
}

func (t *CarBookTool) Ordinal() OrdinalSpec {
	return OrdinalSpec{Param: "car_number", Slot: session.SlotRentalCars, Noun: "car"}
}

func (t *CarBookTool) Execute(ctx context.Context, sess *session.Session, args string) (Result, error) {
	var a BookCarArgs
	if err := json.Unmarshal([]byte(args), &a); err != nil {
		return Failuref(KindArgumentParse, "invalid car booking arguments: %s", err), nil
	}
	if a.DriverFirstName == "" || a.DriverLastName == "" {
		return Failure(KindArgumentParse, "driver_first_name and driver_last_name are required"), nil
	}

	offer := sess.Offers(session.SlotRentalCars)[a.CarNumber-1]

	confirmation, err := t.client.BookRentalCar(ctx, offer, a.DriverFirstName, a.DriverLastName)
	if err != nil {
		return Result{}, err
	}

	return Success(map[string]any{
		"message":      fmt.Sprintf("Rental car booked for %s %s.", a.DriverFirstName, a.DriverLastName),
		"confirmation": confirmation,
	}), nil
}
