package Models

// Lookup is the driver reference table used for dropdowns on the memo form.
type Lookup struct {
	ID            uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	DriverName    string `json:"driver_name" gorm:"size:255;not null" validate:"required"`
	LicenseNumber string `json:"license_number" gorm:"size:50"`
	Phone         string `json:"phone" gorm:"size:20"`
}
