package models

import "time"

// Maintenance statuses.
const (
	MaintenancePlanned    = "PLANNED"
	MaintenanceInProgress = "IN_PROGRESS"
	MaintenanceDone       = "DONE"
)

type MaintenanceRecord struct {
	ID          int64      `json:"id"`
	ShipID      int64      `json:"shipId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Cost        float64    `json:"cost"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
