package models

import "time"

type Crew struct {
	ID        int64     `json:"id"`
	ShipID    *int64    `json:"shipId"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Phone     string    `json:"phone"`
	CertNo    string    `json:"certNo"`
	Status    string    `json:"status"`
	Remarks   string    `json:"remarks"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
