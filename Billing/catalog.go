package Billing

import (
	"strings"

	"Balaji/Models"
)

// VehicleTypes is the fixed fleet enumeration, smallest to largest.
var VehicleTypes = []string{
	"TATA ACE", "DOST", "407", "1000 Kg", "2000 Kg", "3000 Kg",
	"DCM Toyota", "17 Feet", "20 Feet",
}

// Brands are the two operating names services are sold under.
var Brands = []string{"Transport", "VIKING"}

// ServiceItem is one sellable catalog entry: an area crossed with a brand
// and vehicle type, carrying its resolved pricing. The catalog is
// regenerated on demand from Areas and Calculations and never persisted.
type ServiceItem struct {
	LocationArea         string `json:"locationArea"`
	LocationCategory     string `json:"locationCategory"`
	BrandVehicleLabel    string `json:"brandVehicleLabel"`
	ProductItemKey       string `json:"productItemKey"`
	MinimumHours         string `json:"minimumHours"`
	MinimumKm            string `json:"minimumKm"`
	MinimumCharges       string `json:"minimumCharges"`
	AdditionalHourCharge string `json:"additionalHourCharge"`
	RunningHours         string `json:"runningHours"`
	DriverBata           string `json:"driverBata"`
	VehicleType          string `json:"vehicleType"`
}

// rateKey addresses one rate row. Splitting the persisted composite string
// into a typed key once, here, keeps an underscore inside a future vehicle
// type name from colliding with the delimiter.
type rateKey struct {
	Brand            string
	VehicleType      string
	LocationCategory string
}

// buildRateIndex maps rate rows by their parsed key. Later duplicates win,
// matching how the legacy sheet resolved them. Rows whose composite key does
// not split into brand/vehicle/category are unmatchable and dropped.
func buildRateIndex(rates []Models.Calculation) map[rateKey]Models.Calculation {
	index := make(map[rateKey]Models.Calculation, len(rates))
	for _, rate := range rates {
		parts := strings.SplitN(rate.TypeCategory, "_", 3)
		if len(parts) != 3 {
			continue
		}
		index[rateKey{Brand: parts[0], VehicleType: parts[1], LocationCategory: parts[2]}] = rate
	}
	return index
}

// GenerateCatalog cross-joins every area with the vehicle-type and brand
// enumerations and emits an item for each combination priced in the rate
// table; unpriced combinations are skipped without error. Output follows
// the iteration order area > vehicle type > brand; callers wanting a display
// order sort it themselves.
//
// VIKING services outside Chengalpet carry no driver bata: the allowance is
// zeroed regardless of the rate row.
func GenerateCatalog(areas []Models.Area, rates []Models.Calculation) []ServiceItem {
	index := buildRateIndex(rates)

	var items []ServiceItem
	for _, area := range areas {
		for _, vehicleType := range VehicleTypes {
			for _, brand := range Brands {
				rate, ok := index[rateKey{Brand: brand, VehicleType: vehicleType, LocationCategory: area.LocationCategory}]
				if !ok {
					continue
				}

				driverBata := rate.DriverBata
				if brand == "VIKING" && area.LocationArea != "Chengalpet" {
					driverBata = "0"
				}

				items = append(items, ServiceItem{
					LocationArea:         area.LocationArea,
					LocationCategory:     area.LocationCategory,
					BrandVehicleLabel:    brand + " - " + vehicleType,
					ProductItemKey:       ProductItemKey(brand, area.LocationCategory, area.LocationArea, vehicleType),
					MinimumHours:         rate.MinimumHours,
					MinimumKm:            rate.MinimumKm,
					MinimumCharges:       rate.MinimumCharges,
					AdditionalHourCharge: rate.AdditionalHourCharges,
					RunningHours:         rate.RunningHours,
					DriverBata:           driverBata,
					VehicleType:          vehicleType,
				})
			}
		}
	}
	return items
}

// ProductItemKey builds the deterministic identifier an invoice line stores
// for its selected service. Spaces become underscores across the whole key.
func ProductItemKey(brand, locationCategory, locationArea, vehicleType string) string {
	key := brand + "_" + locationCategory + "_" + locationArea + "_" + vehicleType
	return strings.ReplaceAll(key, " ", "_")
}

// FindServiceItem returns the catalog entry for a product item key, or false
// when the key no longer resolves (e.g. the area or rate row was removed).
func FindServiceItem(items []ServiceItem, productItemKey string) (ServiceItem, bool) {
	for _, item := range items {
		if item.ProductItemKey == productItemKey {
			return item, true
		}
	}
	return ServiceItem{}, false
}
