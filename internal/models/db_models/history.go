package db_models

// History is a geo-tagged historical record.
type History struct {
	ID          int      `gorm:"primaryKey" json:"id"`
	Name        string   `json:"name"`
	People      string   `json:"people"`
	Description string   `json:"description"`
	Province    string   `json:"province"`
	Property    string   `json:"property"`
	City        string   `json:"city"`
	County      string   `json:"county"`
	Period      string   `json:"period"`
	Longitude   *float64 `json:"longitude"`
	Latitude    *float64 `json:"latitude"`
}

func (History) TableName() string { return "history.history" }
