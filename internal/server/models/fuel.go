package models

import "time"

type FuelRecord struct {
	ID         int64      `json:"id"`
	ShipID     int64      `json:"shipId"`
	VoyageID   *int64     `json:"voyageId"`
	RecordDate *time.Time `json:"recordDate"`
	FuelType   string     `json:"fuelType"`
	Quantity   float64    `json:"quantity"`
	UnitPrice  float64    `json:"unitPrice"`
	TotalCost  float64    `json:"totalCost"`
	Supplier   string     `json:"supplier"`
	Port       string     `json:"port"`
	Remarks    string     `json:"remarks"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}
