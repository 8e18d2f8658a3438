package models

import "time"

// Message read statuses.
const (
	MessageUnread = "UNREAD"
	MessageRead   = "READ"
)

// SystemSenderID marks messages generated by the system rather than a user.
const SystemSenderID int64 = 0

type Message struct {
	ID          int64      `json:"id"`
	SenderID    int64      `json:"senderId"`
	ReceiverID  int64      `json:"receiverId"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	RelatedID   *int64     `json:"relatedId"`
	RelatedType string     `json:"relatedType"`
	CreatedAt   time.Time  `json:"createdAt"`
	ReadAt      *time.Time `json:"readAt"`

	// Joined sender fields, populated on read paths only.
	SenderName   string `json:"senderName"`
	SenderAvatar string `json:"senderAvatar"`
}
