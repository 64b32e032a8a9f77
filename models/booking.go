package models

// BookingRequest is the client payload for creating a hosted payment link.
// Pricing fields are only ever used to look up the authoritative table;
// the client never supplies an amount.
type BookingRequest struct {
	Route        string `json:"route"`
	VehicleClass string `json:"vehicleClass"`
	TripType     string `json:"tripType"`
	Hours        int    `json:"hours,omitempty"`
	ReferenceID  string `json:"referenceId,omitempty"`
	BuyerEmail   string `json:"buyerEmail,omitempty"`
	BuyerPhone   string `json:"buyerPhone,omitempty"`
	RedirectPath string `json:"redirectPath,omitempty"`
	Note         string `json:"note,omitempty"`
}

// BookingDetails travels with the confirmation call and feeds the
// notification emails. All fields are free text from the booking form and
// must be escaped before rendering into markup.
type BookingDetails struct {
	BookingID      string `json:"bookingId,omitempty"`
	PassengerName  string `json:"passengerName,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Passengers     string `json:"passengers,omitempty"`
	PickupDate     string `json:"pickupDate,omitempty"`
	PickupTime     string `json:"pickupTime,omitempty"`
	PickupLocation string `json:"pickupLocation,omitempty"`
	Destination    string `json:"destination,omitempty"`
	Route          string `json:"route,omitempty"`
	Vehicle        string `json:"vehicle,omitempty"`
	Trip           string `json:"trip,omitempty"`
	Flight         string `json:"flight,omitempty"`
	Luggage        string `json:"luggage,omitempty"`
	ChildSeats     string `json:"childSeats,omitempty"`
	Notes          string `json:"notes,omitempty"`
}
