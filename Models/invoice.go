package Models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Invoice is one trip memo. It is keyed by the memo number and stores raw
// user inputs and derived amounts side by side: a saved memo is a snapshot,
// so later rate-table edits never change historical documents. All numeric
// fields are strings to match the legacy data shape; parsing happens in the
// Billing package.
type Invoice struct {
	MemoNo           string `json:"trips_memo_no" gorm:"primaryKey;size:20"`
	OperatedDate     string `json:"trip_operated_date1" gorm:"size:20"`
	UptoOperatedDate string `json:"trip_upto_operated_date2" gorm:"size:20"`
	VehicleNo        string `json:"trips_vehicle_no" gorm:"size:50"`
	VehicleType      string `json:"trips_vehicle_type" gorm:"size:50"`

	CustomerName string `json:"customers_name" gorm:"size:255"`
	Address1     string `json:"customers_address1" gorm:"size:255"`
	Address2     string `json:"customers_address2" gorm:"size:255"`

	StartingTime1 string `json:"trips_starting_time1" gorm:"size:10"`
	ClosingTime1  string `json:"trips_closing_time1" gorm:"size:10"`
	StartingTime2 string `json:"trips_starting_time2" gorm:"size:10"`
	ClosingTime2  string `json:"trips_closing_time2" gorm:"size:10"`
	TotalHours    string `json:"trips_total_hours" gorm:"size:20"`

	StartingKm1 string `json:"trips_startingKm1" gorm:"size:20"`
	ClosingKm1  string `json:"trips_closingKm1" gorm:"size:20"`
	StartingKm2 string `json:"trips_startingKm2" gorm:"size:20"`
	ClosingKm2  string `json:"trips_closingKm2" gorm:"size:20"`
	TotalKm     string `json:"trips_totalKm" gorm:"size:20"`

	ProductItem     string `json:"products_item" gorm:"size:255"`
	MinimumHours1   string `json:"trips_minimum_hours1" gorm:"size:20"`
	MinimumCharges1 string `json:"trips_minimum_charges1" gorm:"size:20"`
	ProductItem2    string `json:"products_item2" gorm:"size:255"`
	MinimumHours2   string `json:"trips_minimum_hours2" gorm:"size:20"`
	MinimumCharges2 string `json:"trips_minimum_charges2" gorm:"size:20"`

	ExtraHours           string `json:"trips_extra_hours" gorm:"size:20"`
	AdditionalHourRate   string `json:"trips_for_additional_hour_rate" gorm:"size:20"`
	AdditionalHourAmount string `json:"trips_for_additional_hour_amt" gorm:"size:20"`

	FixedAmountDesc string `json:"trips_fixed_amt_desc" gorm:"size:255"`
	FixedAmount     string `json:"trips_fixed_amt" gorm:"size:20"`

	Km       string `json:"trips_km" gorm:"size:20"`
	KmRate   string `json:"trips_km_rate" gorm:"size:20"`
	KmAmount string `json:"trips_Km_amt" gorm:"size:20"`

	DiscountPercentage string `json:"trips_discount_percentage" gorm:"size:20"`
	Discount           string `json:"trips_discount" gorm:"size:20"`

	DriverBataQty    string `json:"trips_driver_bata_qty" gorm:"size:20"`
	DriverBataRate   string `json:"trips_driver_bata_rate" gorm:"size:20"`
	DriverBataAmount string `json:"trips_driver_bata_amt" gorm:"size:20"`

	TollAmount      string `json:"trips_toll_amt" gorm:"size:20"`
	PermitAmount    string `json:"trips_permit_amt" gorm:"size:20"`
	NightHaltAmount string `json:"trips_night_hault_amt" gorm:"size:20"`

	OtherChargesDesc   string `json:"trips_other_charges_desc" gorm:"size:255"`
	OtherChargesAmount string `json:"trips_other_charges_amt" gorm:"size:20"`

	TotalAmount        string `json:"trips_total_amt" gorm:"size:20"`
	LessAdvance        string `json:"trips_less_advance" gorm:"size:20"`
	Balance            string `json:"trips_balance" gorm:"size:20"`
	TotalAmountInWords string `json:"trips_total_amt_in_words" gorm:"size:500"`
	Remark             string `json:"trips_remark" gorm:"type:text"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// NewInvoice returns a memo with the form defaults the legacy app started
// from, dated today.
func NewInvoice() Invoice {
	return Invoice{
		OperatedDate:       time.Now().Format("2006-01-02"),
		TotalHours:         "0",
		StartingKm1:        "0",
		ClosingKm1:         "0",
		StartingKm2:        "0",
		ClosingKm2:         "0",
		TotalKm:            "0",
		MinimumHours1:      "0",
		MinimumCharges1:    "0",
		MinimumHours2:      "0",
		MinimumCharges2:    "0",
		ExtraHours:         "0",
		AdditionalHourRate: "0",
		AdditionalHourAmount: "0",
		FixedAmountDesc:    "Fixed Amount",
		FixedAmount:        "0",
		Km:                 "0",
		KmRate:             "0",
		KmAmount:           "0",
		DiscountPercentage: "0",
		Discount:           "0",
		DriverBataQty:      "0",
		DriverBataRate:     "0",
		DriverBataAmount:   "0",
		TollAmount:         "0",
		PermitAmount:       "0",
		NightHaltAmount:    "0",
		OtherChargesDesc:   "Other Charges",
		OtherChargesAmount: "0",
		TotalAmount:        "0",
		LessAdvance:        "0",
		Balance:            "0",
	}
}

// NextMemoNumber generates the next memo number in the SBT-NNN sequence:
// highest existing numeric suffix plus one, zero-padded to three digits.
// Numbers are never reused after a delete because the scan covers the full
// history, not just the latest row.
func NextMemoNumber(db *gorm.DB) (string, error) {
	var memoNos []string
	if err := db.Model(&Invoice{}).Pluck("memo_no", &memoNos).Error; err != nil {
		return "", err
	}

	maxNum := 0
	for _, memoNo := range memoNos {
		if !strings.Contains(memoNo, "-") {
			continue
		}
		parts := strings.SplitN(memoNo, "-", 2)
		if num, err := strconv.Atoi(parts[1]); err == nil && num > maxNum {
			maxNum = num
		}
	}
	return fmt.Sprintf("SBT-%03d", maxNum+1), nil
}
