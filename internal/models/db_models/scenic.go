package db_models

// Scenic is a geo-tagged scenic spot. Checkins and favorites reference
// rows of this table by id.
type Scenic struct {
	ID              int      `gorm:"primaryKey" json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Place           string   `json:"place"`
	Score           *float64 `json:"score"`
	SightLevel      string   `gorm:"column:sight_level" json:"sight_level"`
	Price           *float64 `json:"price"`
	Longitude       *float64 `json:"longitude"`
	Latitude        *float64 `json:"latitude"`
	RecommendReason string   `gorm:"column:recommend_reason" json:"recommend_reason"`
	Comment         string   `json:"comment"`
}

func (Scenic) TableName() string { return "scenic.scenic" }
