package db_models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// RoutePoint is one stop on a user-drawn travel path. Ordering inside
// the stored list is significant and must survive the encode/decode
// round trip exactly.
type RoutePoint struct {
	Longitude float64  `json:"longitude"`
	Latitude  float64  `json:"latitude"`
	Name      *string  `json:"name"`
	Elevation *float64 `json:"elevation"`
}

type Route struct {
	ID          int            `gorm:"primaryKey"`
	UserID      int            `gorm:"column:user_id"`
	Name        string
	ScenicList  datatypes.JSON `gorm:"column:scenic_list;type:jsonb"`
	Description *string
	CreateTime  time.Time `gorm:"column:create_time;autoCreateTime"`
}

func (Route) TableName() string { return "actions.routes" }

// Points decodes the stored blob. A malformed or absent blob degrades to
// an empty sequence instead of failing the read.
func (r *Route) Points() []RoutePoint {
	if len(r.ScenicList) == 0 {
		return []RoutePoint{}
	}
	var points []RoutePoint
	if err := json.Unmarshal(r.ScenicList, &points); err != nil {
		return []RoutePoint{}
	}
	if points == nil {
		return []RoutePoint{}
	}
	return points
}

// EncodePoints serializes an ordered point sequence into the stored
// jsonb representation.
func EncodePoints(points []RoutePoint) (datatypes.JSON, error) {
	if points == nil {
		points = []RoutePoint{}
	}
	raw, err := json.Marshal(points)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
