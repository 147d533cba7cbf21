package db_models

// Poem is a geo-tagged classical poem. The table is reference data; this
// service only reads it.
type Poem struct {
	ID        int      `gorm:"primaryKey" json:"id"`
	Name      string   `json:"name"`
	Author    string   `json:"author"`
	Dynasty   string   `json:"dynasty"`
	Content   string   `json:"content"`
	Keywords  string   `json:"keywords"`
	Poemtype  string   `gorm:"column:poemtype" json:"poemtype"`
	City      string   `json:"city"`
	County    string   `json:"county"`
	Province  string   `json:"province"`
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

func (Poem) TableName() string { return "poems.poems" }
