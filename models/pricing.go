package models

// Route codes served by the fixed price table. CUSTOM is a sentinel for
// trips quoted out of band; it never resolves to a price.
const (
	RouteHourly = "HOURLY"
	RouteCustom = "CUSTOM"
)

// Vehicle classes.
const (
	VehicleSedan = "sedan"
	VehicleSUV   = "suv"
	VehicleVan   = "van"
)

// Trip types.
const (
	TripOneWay    = "one-way"
	TripRoundTrip = "round-trip"
	TripHourly    = "hourly"
)

// PriceQuote is the server-side resolved fare for a booking request.
// Amounts are minor units (cents); a quote is never accepted from the
// client, only recomputed here.
type PriceQuote struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Label    string `json:"label"`
}
