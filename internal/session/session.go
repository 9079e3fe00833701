// Package session holds the per-connection state the travel tools need to
// resolve ordinal references ("book flight #2") across turns.
package session

// Offer is an opaque provider-shaped record. The core never interprets its
// fields except to pull identifiers and prices into booking confirmations.
type Offer map[string]any

// Slot names a session list that search tools overwrite and ordinal tools
// index into. The slot string doubles as the noun in validation messages.
type Slot string

const (
	SlotFlights    Slot = "flight"
	SlotHotels     Slot = "hotel"
	SlotRentalCars Slot = "car"
)

// Session is owned by exactly one connection. Turns on a connection run one
// at a time, so no locking is needed here; only the Store map is shared.
type Session struct {
	ID string

	flightOffers    []Offer
	hotelOffers     []Offer
	rentalCarOffers []Offer

	// Set only by a successful pricing call, consumed by booking
	lastPricedOffer Offer
}

func newSession(id string) *Session {
	return &Session{ID: id}
}

// Offers returns the current list for a slot. The returned slice is the
// session's own; callers must not mutate it.
func (s *Session) Offers(slot Slot) []Offer {
	switch slot {
	case SlotFlights:
		return s.flightOffers
	case SlotHotels:
		return s.hotelOffers
	case SlotRentalCars:
		return s.rentalCarOffers
	}
	return nil
}

// SetOffers replaces the slot's list wholesale. Search results always
// overwrite, never append, so later ordinals address only the newest set.
func (s *Session) SetOffers(slot Slot, offers []Offer) {
	switch slot {
	case SlotFlights:
		s.flightOffers = offers
	case SlotHotels:
		s.hotelOffers = offers
	case SlotRentalCars:
		s.rentalCarOffers = offers
	}
}

func (s *Session) LastPricedOffer() Offer {
	return s.lastPricedOffer
}

func (s *Session) SetLastPricedOffer(offer Offer) {
	s.lastPricedOffer = offer
}
