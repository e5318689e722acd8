package Billing

import (
	"math"
	"strconv"
	"strings"

	"Balaji/Models"
)

// CalculateHours returns the duration of one HH:MM time pair in hours. An
// empty or malformed side contributes nothing. A stop before the start is
// read as running past midnight and gets one day added, never more.
func CalculateHours(start, stop string) float64 {
	if start == "" || stop == "" {
		return 0
	}
	startMinutes, ok := parseClock(start)
	if !ok {
		return 0
	}
	stopMinutes, ok := parseClock(stop)
	if !ok {
		return 0
	}
	if stopMinutes < startMinutes {
		stopMinutes += 24 * 60
	}
	return float64(stopMinutes-startMinutes) / 60
}

func parseClock(value string) (int, bool) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return hours*60 + minutes, true
}

// Recalculate derives every computed field of a memo from its raw inputs and
// writes the results back, replacing the previous derived values wholesale.
// It is pure: the same raw inputs always produce the same outputs, so a
// saved memo is a faithful snapshot of the rates it was billed under.
//
// Rounding follows the printed document exactly: hours and kilometres keep
// their shortest form, amounts two decimals, and the extra-hour amount a
// whole rupee - the extra hours themselves keep two decimals, so the two can
// visibly disagree and that is intentional.
func Recalculate(inv *Models.Invoice) {
	hours1 := CalculateHours(inv.StartingTime1, inv.ClosingTime1)
	hours2 := CalculateHours(inv.StartingTime2, inv.ClosingTime2)
	totalHours := roundTo(hours1+hours2, 2)
	driverBataQty := math.Ceil(totalHours)

	totalKm := (ParseNumber(inv.ClosingKm1) - ParseNumber(inv.StartingKm1)) +
		(ParseNumber(inv.ClosingKm2) - ParseNumber(inv.StartingKm2))

	extraHours := math.Max(0, totalHours-ParseNumber(inv.MinimumHours1)-ParseNumber(inv.MinimumHours2))
	extraHourAmount := extraHours * ParseNumber(inv.AdditionalHourRate)

	kmAmount := totalKm * ParseNumber(inv.KmRate)
	driverBataAmount := driverBataQty * ParseNumber(inv.DriverBataRate)

	subTotal := ParseNumber(inv.MinimumCharges1) + ParseNumber(inv.MinimumCharges2) +
		extraHourAmount + kmAmount + driverBataAmount +
		ParseNumber(inv.FixedAmount) + ParseNumber(inv.TollAmount) +
		ParseNumber(inv.PermitAmount) + ParseNumber(inv.NightHaltAmount) +
		ParseNumber(inv.OtherChargesAmount)

	discountAmount := subTotal * (ParseNumber(inv.DiscountPercentage) / 100)
	totalAmount := subTotal - discountAmount
	balance := totalAmount - ParseNumber(inv.LessAdvance)

	inv.TotalHours = FormatNumber(totalHours)
	inv.DriverBataQty = FormatNumber(driverBataQty)
	inv.TotalKm = FormatNumber(totalKm)
	inv.Km = inv.TotalKm
	inv.ExtraHours = FormatFixed(extraHours, 2)
	inv.AdditionalHourAmount = FormatFixed(extraHourAmount, 0)
	inv.KmAmount = FormatFixed(kmAmount, 2)
	inv.DriverBataAmount = FormatFixed(driverBataAmount, 2)
	inv.Discount = FormatFixed(discountAmount, 2)
	inv.TotalAmount = FormatFixed(totalAmount, 2)
	inv.Balance = FormatFixed(balance, 2)
	inv.TotalAmountInWords = NumberToWords(int(math.Floor(totalAmount + 0.5)))
}

// ApplyService populates invoice line 1 or 2 from the catalog entry matching
// productItemKey. Line 1 also carries the vehicle type, additional-hour rate
// and driver-bata rate. An unresolvable key (or a cleared selection) resets
// the line to its defaults; that is a normal event, not an error.
func ApplyService(inv *Models.Invoice, catalog []ServiceItem, line int, productItemKey string) {
	item, found := FindServiceItem(catalog, productItemKey)

	if line == 2 {
		if found {
			inv.ProductItem2 = productItemKey
			inv.MinimumHours2 = item.MinimumHours
			inv.MinimumCharges2 = item.MinimumCharges
		} else {
			inv.ProductItem2 = ""
			inv.MinimumHours2 = "0"
			inv.MinimumCharges2 = "0"
		}
		return
	}

	if found {
		inv.ProductItem = productItemKey
		inv.VehicleType = item.VehicleType
		inv.MinimumHours1 = item.MinimumHours
		inv.MinimumCharges1 = item.MinimumCharges
		inv.AdditionalHourRate = item.AdditionalHourCharge
		if item.DriverBata != "" {
			inv.DriverBataRate = item.DriverBata
		} else {
			inv.DriverBataRate = "0"
		}
	} else {
		inv.ProductItem = ""
		inv.VehicleType = ""
		inv.MinimumHours1 = "0"
		inv.MinimumCharges1 = "0"
		inv.AdditionalHourRate = "0"
		inv.DriverBataRate = "0"
	}
}

// ApplyCustomer sets the customer on a memo. A name containing "transport"
// (any case) gets the standing 10% trade discount, anyone else 0 - this
// overwrites a manually entered percentage. Addresses autofill from the
// first customer whose name contains the typed name, case-insensitively;
// with no match they clear.
func ApplyCustomer(inv *Models.Invoice, name string, customers []Models.Customer) {
	inv.CustomerName = name
	if strings.Contains(strings.ToLower(name), "transport") {
		inv.DiscountPercentage = "10"
	} else {
		inv.DiscountPercentage = "0"
	}

	inv.Address1 = ""
	inv.Address2 = ""
	lowered := strings.ToLower(name)
	for _, customer := range customers {
		if strings.Contains(strings.ToLower(customer.Name), lowered) {
			inv.Address1 = customer.Address1
			inv.Address2 = customer.Address2
			break
		}
	}
}
