package models

import "time"

// User represents the 'users' table. A user owns exactly one item list.
type User struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Username  string    `gorm:"column:username;size:64;not null;uniqueIndex" json:"username"`
	CreatedAt time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"-"`
}

// Columns lists the columns the service reads from 'users'.
var Columns = []string{"id", "username", "created_at", "updated_at"}

// TableName overrides the table name.
func (User) TableName() string {
	return "users"
}
