package pricing

import (
	"fmt"
	"strings"

	"mltransport/models"
)

// Hourly charters are clamped to this window rather than rejected, so a
// client sending a slightly-off value still gets a quote.
const (
	MinHourlyHours = 3
	MaxHourlyHours = 24
)

// PricingError indicates the requested combination has no tabled price.
type PricingError struct {
	Code    string
	Message string
}

func (e *PricingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewUnknownCombinationError reports a (route, vehicle, trip) triple with
// no entry in the price table.
func NewUnknownCombinationError(route, vehicle, trip string) error {
	return &PricingError{
		Code:    "unknownCombination",
		Message: fmt.Sprintf("no tabled price for route %q, vehicle %q, trip %q", route, vehicle, trip),
	}
}

// Resolver maps a validated booking request onto the authoritative fare.
type Resolver interface {
	Resolve(route, vehicle, trip string, hours int) (models.PriceQuote, error)
}

// transferFare holds the one-way and round-trip fares for a route/vehicle
// cell, in minor units.
type transferFare struct {
	oneWay    int64
	roundTrip int64
}

// transferRates is the authoritative transfer price table. Loaded once,
// never mutated. All amounts are USD cents.
var transferRates = map[string]map[string]transferFare{
	"MCO-DISNEY": {
		models.VehicleSedan: {12000, 23000},
		models.VehicleSUV:   {14000, 27000},
		models.VehicleVan:   {16000, 31000},
	},
	"MCO-UNIVERSAL": {
		models.VehicleSedan: {10000, 19000},
		models.VehicleSUV:   {12000, 23000},
		models.VehicleVan:   {14000, 27000},
	},
	"MCO-SEAWORLD": {
		models.VehicleSedan: {10000, 19000},
		models.VehicleSUV:   {12000, 23000},
		models.VehicleVan:   {14000, 27000},
	},
	"MCO-KISSIMMEE": {
		models.VehicleSedan: {13000, 25000},
		models.VehicleSUV:   {15000, 29000},
		models.VehicleVan:   {17000, 33000},
	},
	"MCO-PORT-CANAVERAL": {
		models.VehicleSedan: {16000, 31000},
		models.VehicleSUV:   {18000, 35000},
		models.VehicleVan:   {20000, 39000},
	},
	"SANFORD-DISNEY": {
		models.VehicleSedan: {16000, 31000},
		models.VehicleSUV:   {18000, 35000},
		models.VehicleVan:   {20000, 39000},
	},
}

// hourlyRates is the per-hour charter rate per vehicle class, USD cents.
var hourlyRates = map[string]int64{
	models.VehicleSedan: 7500,
	models.VehicleSUV:   9000,
	models.VehicleVan:   10500,
}

// TableResolver implements Resolver against the in-process price table.
type TableResolver struct{}

func NewTableResolver() *TableResolver {
	return &TableResolver{}
}

// Resolve returns the tabled fare for the given combination. Amounts are
// computed entirely in integer minor units; no floats are involved.
func (r *TableResolver) Resolve(route, vehicle, trip string, hours int) (models.PriceQuote, error) {
	route = strings.ToUpper(strings.TrimSpace(route))
	vehicle = strings.ToLower(strings.TrimSpace(vehicle))
	trip = strings.ToLower(strings.TrimSpace(trip))

	// Custom routes have no fixed price and are always quoted out of band.
	if route == models.RouteCustom {
		return models.PriceQuote{}, NewUnknownCombinationError(route, vehicle, trip)
	}

	if trip == models.TripHourly {
		rate, ok := hourlyRates[vehicle]
		if !ok || !knownRoute(route) {
			return models.PriceQuote{}, NewUnknownCombinationError(route, vehicle, trip)
		}
		h := clampHours(hours)
		return models.PriceQuote{
			Amount:   rate * int64(h),
			Currency: "USD",
			Label:    fmt.Sprintf("MLT Transportation - Hourly charter (%s, %d hrs)", vehicle, h),
		}, nil
	}

	fares, ok := transferRates[route]
	if !ok {
		return models.PriceQuote{}, NewUnknownCombinationError(route, vehicle, trip)
	}
	fare, ok := fares[vehicle]
	if !ok {
		return models.PriceQuote{}, NewUnknownCombinationError(route, vehicle, trip)
	}

	var amount int64
	switch trip {
	case models.TripOneWay:
		amount = fare.oneWay
	case models.TripRoundTrip:
		amount = fare.roundTrip
	default:
		return models.PriceQuote{}, NewUnknownCombinationError(route, vehicle, trip)
	}

	return models.PriceQuote{
		Amount:   amount,
		Currency: "USD",
		Label:    fmt.Sprintf("MLT Transportation - %s (%s, %s)", route, vehicle, trip),
	}, nil
}

func knownRoute(route string) bool {
	if route == models.RouteHourly {
		return true
	}
	_, ok := transferRates[route]
	return ok
}

func clampHours(hours int) int {
	if hours < MinHourlyHours {
		return MinHourlyHours
	}
	if hours > MaxHourlyHours {
		return MaxHourlyHours
	}
	return hours
}
