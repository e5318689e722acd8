package Models

// Calculation is one pricing rule. TypeCategory is the composite
// "<brand>_<vehicleType>_<locationCategory>" key carried over from the
// legacy sheet; the catalog generator splits it into its parts before any
// lookup. Numeric fields stay strings at rest and are coerced in Billing.
type Calculation struct {
	ID                    uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	TypeCategory          string `json:"products_type_category" gorm:"size:255;not null" validate:"required"`
	MinimumHours          string `json:"products_minimum_hours" gorm:"size:20"`
	MinimumKm             string `json:"products_minimum_km" gorm:"size:20"`
	MinimumCharges        string `json:"products_minimum_charges" gorm:"size:20"`
	AdditionalHourCharges string `json:"products_additional_hours_charges" gorm:"size:20"`
	RunningHours          string `json:"products_running_hours" gorm:"size:20"`
	DriverBata            string `json:"products_driver_bata" gorm:"size:20"`
}
