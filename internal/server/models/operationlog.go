package models

import "time"

// Audit outcome values.
const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailed  = "FAILED"
)

// OperationLog is an immutable audit record of one intercepted operation:
// who acted, what they did, with what request, and how it ended. Entries are
// append-only and garbage-collected by an explicit retention sweep.
type OperationLog struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"userId"`
	Username       string    `json:"username"`
	Module         string    `json:"module"`
	Operation      string    `json:"operation"`
	OperationDesc  string    `json:"operationDesc"`
	Method         string    `json:"method"`
	RequestURL     string    `json:"requestUrl"`
	RequestParams  string    `json:"requestParams"`
	ResponseResult string    `json:"responseResult"`
	IPAddress      string    `json:"ipAddress"`
	UserAgent      string    `json:"userAgent"`
	ExecutionTime  int64     `json:"executionTime"`
	ErrorMsg       string    `json:"errorMsg"`
	CreatedAt      time.Time `json:"createdAt"`
}
