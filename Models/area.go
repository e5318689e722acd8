package Models

// Area is a named pickup/drop-off location tagged with a pricing category.
// The category ("Area 1".."Area 9" by convention) is the join key into the
// rate table; it is a free-form label and nothing enforces uniqueness of the
// area/category pair.
type Area struct {
	ID               uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	LocationArea     string `json:"locationArea" gorm:"size:255;not null" validate:"required"`
	LocationCategory string `json:"locationCategory" gorm:"size:50;not null" validate:"required"`
}
