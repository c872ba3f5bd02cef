package domain

import "time"

type Message struct {
	ID         int       `json:"id" db:"id"`
	SenderID   int       `json:"sender_id" db:"sender_id"`
	ReceiverID int       `json:"receiver_id" db:"receiver_id"`
	Content    string    `json:"content" db:"content"`
	SentAt     time.Time `json:"sent_at" db:"sent_at"`
	Seen       bool      `json:"seen" db:"seen"`
}

func (m *Message) Involves(userID int) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}
