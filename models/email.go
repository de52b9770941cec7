package models

import (
	"time"
)

// Email journal des mails sortants (confirmation contact, bienvenue newsletter)
type Email struct {
	ID        string    `json:"id" gorm:"primaryKey;default:gen_random_uuid()"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Kind      string    `json:"kind"`
	SentAt    time.Time `json:"sentAt" gorm:"column:sent_at"`
	Error     string    `json:"error,omitempty" gorm:"type:text"`
}

func (Email) TableName() string {
	return "emails"
}
