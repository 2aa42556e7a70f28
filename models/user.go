package models

import "time"

// User represents a user in the system. A user holds at most one token;
// issuing a new one replaces the previous token and its IssuedDate.
type User struct {
	ID         uint       `gorm:"column:id;primaryKey" json:"id"`
	Username   string     `gorm:"column:username;size:255" json:"username"`
	Passhash   string     `gorm:"column:passhash;size:255" json:"-"` // Never serialize the hash
	Token      string     `gorm:"column:token;size:255" json:"-"`
	IssuedDate *time.Time `gorm:"column:issuedDate" json:"issuedDate,omitempty"`
	CreatedAt  time.Time  `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"column:updatedAt" json:"updatedAt"`
}

func (User) TableName() string {
	return "Users"
}
