package models

import "time"

// IPAddress is one distinct client address seen on an article detail page.
type IPAddress struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	IPAddress string    `json:"ip_address" gorm:"column:ip_address;size:64;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (IPAddress) TableName() string {
	return "ip_addresses"
}
