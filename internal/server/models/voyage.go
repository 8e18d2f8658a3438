package models

import "time"

// Voyage statuses.
const (
	VoyageSailing   = "VOYAGING"
	VoyageCompleted = "COMPLETED"
)

type Voyage struct {
	ID              int64      `json:"id"`
	ShipID          int64      `json:"shipId"`
	VoyageNo        string     `json:"voyageNo"`
	DeparturePort   string     `json:"departurePort"`
	ArrivalPort     string     `json:"arrivalPort"`
	DepartureTime   *time.Time `json:"departureTime"`
	ExpectedArrival *time.Time `json:"expectedArrival"`
	ActualArrival   *time.Time `json:"actualArrival"`
	Status          string     `json:"status"`
	Remarks         string     `json:"remarks"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
