package db_models

// Heritage is a geo-tagged intangible cultural heritage item.
type Heritage struct {
	ID        int      `gorm:"primaryKey" json:"id"`
	Name      string   `json:"name"`
	RxTime    string   `gorm:"column:rx_time" json:"rx_time"`
	Content   string   `json:"content"`
	Province  string   `json:"province"`
	Type      string   `gorm:"column:type" json:"type"`
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

func (Heritage) TableName() string { return "heritage.heritage" }
