package model

import "time"

// SubscriberModel mirrors the 'subscribers' table. The email itself is the key.
type SubscriberModel struct {
	Email     string `gorm:"type:varchar(255);primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriberModel) TableName() string {
	return "subscribers"
}
