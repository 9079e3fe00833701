package tools

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelchat/internal/session"
)

func newTestSession() *session.Session {
	return session.NewStore().GetOrCreate("test-conn")
}

func newTestExecutor() *Executor {
	return NewExecutor(newTestRegistry(), 5*time.Second)
}

func searchFlightsArgs(dest string) string {
	return fmt.Sprintf(`{"origin":"SFO","destination":%q,"departure_date":"2025-03-01"}`, dest)
}

func TestExecutor_MalformedArguments(t *testing.T) {
	e := newTestExecutor()
	sess := newTestSession()

	res := e.Execute(context.Background(), sess, "search_flights", `{not json`)
	assert.False(t, res.OK)
	assert.Equal(t, KindArgumentParse, res.Kind)
}

func TestExecutor_UnknownTool(t *testing.T) {
	e := newTestExecutor()
	sess := newTestSession()

	res := e.Execute(context.Background(), sess, "launch_rocket", `{}`)
	assert.False(t, res.OK)
	assert.Equal(t, KindUnknownTool, res.Kind)
	assert.Equal(t, "unknown tool", res.Err)
}

func TestExecutor_SearchPersistsOffers(t *testing.T) {
	e := newTestExecutor()
	sess := newTestSession()

	res := e.Execute(context.Background(), sess, "search_flights", searchFlightsArgs("JFK"))
	require.True(t, res.OK)
	assert.Len(t, sess.Offers(session.SlotFlights), 5)
}

func TestExecutor_SearchOverwritesNotAppends(t *testing.T) {
	e := newTestExecutor()
	sess := newTestSession()

	res := e.Execute(context.Background(), sess, "search_flights", searchFlightsArgs("JFK"))
	require.True(t, res.OK)
	res = e.Execute(context.Background(), sess, "search_flights", searchFlightsArgs("BOS"))
	require.True(t, res.OK)

	offers := sess.Offers(session.SlotFlights)
	require.Len(t, offers, 5)
	for _, offer := range offers {
		assert.Equal(t, "BOS", offer["destination"])
	}
}

func TestExecutor_IdenticalReplayIsIdempotent(t *testing.T) {
	e := newTestExecutor()
	sess := newTestSession()

	first := e.Execute(context.Background(), sess, "search_flights", searchFlightsArgs("JFK"))
	require.True(t, first.OK)
	firstOffers := sess.Offers(session.SlotFlights)

	second := e.Execute(context.Background(), sess, "search_flights", searchFlightsArgs("JFK"))
	require.True(t, second.OK)
	secondOffers := sess.Offers(session.SlotFlights)

	assert.Equal(t, firstOffers, secondOffers)
	assert.Len(t, secondOffers, 5)
}

func TestExecutor_OrdinalOutOfRange(t *testing.T) {
	e := newTestExecutor()
	sess := newTestSession()

	res := e.Execute(context.Background(), sess, "search_flights", searchFlightsArgs("JFK"))
	require.True(t, res.OK)

	for _, n := range []int{0, -1, 6, 100} {
		res := e.Execute(context.Background(), sess,
			"price_flight_offer", fmt.Sprintf(`{"flight_number":%d}`, n))
		assert.False(t, res.OK, "ordinal %d must be rejected", n)
		assert.Equal(t, KindInvalidOrdinal, res.Kind)
		assert.Equal(t, "Invalid flight number. Please choose a number between 1 and 5.", res.Err)
	}

	// Non-integer and missing ordinals are rejected the same way
	res = e.Execute(context.Background(), sess, "price_flight_offer", `{"flight_number":1.5}`)
	assert.Equal(t, KindInvalidOrdinal, res.Kind)
	res = e.Execute(context.Background(), sess, "price_flight_offer", `{}`)
	assert.Equal(t, KindInvalidOrdinal, res.Kind)
}

func TestExecutor_OrdinalAgainstEmptyList(t *testing.T) {
	e := newTestExecutor()
	sess := newTestSession()

	res := e.Execute(context.Background(), sess, "price_flight_offer", `{"flight_number":1}`)
	assert.False(t, res.OK)
	assert.Equal(t, "Invalid flight number. Please choose a number between 1 and 0.", res.Err)
}

func TestExecutor_BookingRequiresPricedOffer(t *testing.T) {
	e := newTestExecutor()
	sess := newTestSession()

	res := e.Execute(context.Background(), sess, "search_flights", searchFlightsArgs("JFK"))
	require.True(t, res.OK)

	res = e.Execute(context.Background(), sess,
		"book_flight", `{"traveler_first_name":"Ada","traveler_last_name":"Lovelace"}`)
	assert.False(t, res.OK)
	assert.Equal(t, KindPreconditionFailed, res.Kind)
	assert.Contains(t, res.Err, "No priced flight offer")
}

func TestExecutor_PriceThenBookFlight(t *testing.T) {
	e := newTestExecutor()
	sess := newTestSession()
	ctx := context.Background()

	res := e.Execute(ctx, sess, "search_flights", searchFlightsArgs("JFK"))
	require.True(t, res.OK)

	res = e.Execute(ctx, sess, "price_flight_offer", `{"flight_number":2}`)
	require.True(t, res.OK)
	require.NotNil(t, sess.LastPricedOffer())
	// 1-based ordinal 2 maps to the second offer
	assert.Equal(t, "FL-SFOJFK-2", sess.LastPricedOffer()["id"])

	res = e.Execute(ctx, sess,
		"book_flight", `{"traveler_first_name":"Ada","traveler_last_name":"Lovelace"}`)
	require.True(t, res.OK)

	data, ok := res.Data.(map[string]any)
	require.True(t, ok)
	confirmation, ok := data["confirmation"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "FL-SFOJFK-2", confirmation["flight_id"])
}

func TestExecutor_HotelAndCarBookings(t *testing.T) {
	e := newTestExecutor()
	sess := newTestSession()
	ctx := context.Background()

	res := e.Execute(ctx, sess, "search_hotels",
		`{"city":"New York","check_in_date":"2025-03-01","check_out_date":"2025-03-05"}`)
	require.True(t, res.OK)

	res = e.Execute(ctx, sess, "book_hotel",
		`{"hotel_number":3,"guest_first_name":"Ada","guest_last_name":"Lovelace"}`)
	require.True(t, res.OK)

	res = e.Execute(ctx, sess, "book_rental_car",
		`{"car_number":1,"driver_first_name":"Ada","driver_last_name":"Lovelace"}`)
	assert.False(t, res.OK)
	assert.Equal(t, "Invalid car number. Please choose a number between 1 and 0.", res.Err)

	res = e.Execute(ctx, sess, "search_rental_cars",
		`{"city":"New York","pick_up_date":"2025-03-01","drop_off_date":"2025-03-05"}`)
	require.True(t, res.OK)

	res = e.Execute(ctx, sess, "book_rental_car",
		`{"car_number":1,"driver_first_name":"Ada","driver_last_name":"Lovelace"}`)
	require.True(t, res.OK)
}

type panickyTool struct {
	BaseTool
}

func (p *panickyTool) Execute(ctx context.Context, sess *session.Session, args string) (Result, error) {
	panic("provider bug")
}

func TestExecutor_HandlerPanicIsContained(t *testing.T) {
	r := NewRegistry()
	r.Register(&panickyTool{BaseTool: BaseTool{
		ToolName:       "boom",
		ToolParameters: jsonschema.Definition{Type: jsonschema.Object},
	}})
	e := NewExecutor(r, time.Second)

	res := e.Execute(context.Background(), newTestSession(), "boom", `{}`)
	assert.False(t, res.OK)
	assert.Equal(t, KindExecution, res.Kind)
	assert.Contains(t, res.Err, "panicked")
}

type slowTool struct {
	BaseTool
}

func (s *slowTool) Execute(ctx context.Context, sess *session.Session, args string) (Result, error) {
	<-ctx.Done()
	return Result{}, ctx.Err()
}

func TestExecutor_Timeout(t *testing.T) {
	r := NewRegistry()
	r.Register(&slowTool{BaseTool: BaseTool{
		ToolName:       "slow",
		ToolParameters: jsonschema.Definition{Type: jsonschema.Object},
	}})
	e := NewExecutor(r, 10*time.Millisecond)

	res := e.Execute(context.Background(), newTestSession(), "slow", `{}`)
	assert.False(t, res.OK)
	assert.Equal(t, KindTimeout, res.Kind)
	assert.Contains(t, res.Err, "timed out")
}

func TestResult_Content(t *testing.T) {
	t.Run("success encodes data verbatim", func(t *testing.T) {
		res := Success(map[string]any{"answer": 42})
		assert.JSONEq(t, `{"answer":42}`, res.Content())
	})

	t.Run("failure keeps the error key", func(t *testing.T) {
		res := Failure(KindExecution, "provider unavailable")
		assert.JSONEq(t, `{"error":"provider unavailable","kind":"execution_error"}`, res.Content())
	})

	t.Run("details are included when present", func(t *testing.T) {
		res := Failure(KindExecution, "bad thing")
		res.Details = map[string]any{"code": "E42"}
		assert.JSONEq(t, `{"error":"bad thing","kind":"execution_error","details":{"code":"E42"}}`, res.Content())
	})
}
