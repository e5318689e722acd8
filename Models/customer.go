package Models

// Customer is an invoice recipient. Names are not unique; the invoice form
// autofills addresses from the first matching name.
type Customer struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"customers_name" gorm:"size:255;not null" validate:"required"`
	Address1 string `json:"customers_address1" gorm:"size:255"`
	Address2 string `json:"customers_address2" gorm:"size:255"`
}
