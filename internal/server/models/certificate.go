package models

import "time"

// CertStatus is the derived lifecycle status of a ship certificate. It is a
// pure function of the expiry date and "today", denormalized into the row and
// recomputed on every write and by the periodic sweep.
type CertStatus string

const (
	CertValid    CertStatus = "VALID"
	CertExpiring CertStatus = "EXPIRING"
	CertExpired  CertStatus = "EXPIRED"
)

type ShipCertificate struct {
	ID               int64      `json:"id"`
	ShipID           int64      `json:"shipId"`
	CertificateName  string     `json:"certificateName"`
	CertificateNo    string     `json:"certificateNo"`
	IssuingAuthority string     `json:"issuingAuthority"`
	IssueDate        *time.Time `json:"issueDate"`
	ExpiryDate       *time.Time `json:"expiryDate"`
	Status           CertStatus `json:"status"`
	AttachmentURL    string     `json:"attachmentUrl"`
	Remarks          string     `json:"remarks"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}
