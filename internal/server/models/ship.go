package models

import "time"

// Ship operating statuses.
const (
	ShipInService   = "IN_SERVICE"
	ShipMaintenance = "MAINTENANCE"
	ShipRetired     = "RETIRED"
)

type Ship struct {
	ID         int64      `json:"id"`
	CategoryID int64      `json:"categoryId"`
	Name       string     `json:"name"`
	IMONumber  string     `json:"imoNumber"`
	Flag       string     `json:"flag"`
	Tonnage    float64    `json:"tonnage"`
	BuildDate  *time.Time `json:"buildDate"`
	Status     string     `json:"status"`
	Remarks    string     `json:"remarks"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type ShipCategory struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
