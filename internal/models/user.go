package models

import "time"

// User represents application user.
type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"size:64;uniqueIndex;not null"`
	RollNo       string    `gorm:"column:rollno;size:8;uniqueIndex;not null"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	AboutMe      string    `gorm:"size:140"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	LastSeen *time.Time `gorm:"index"` // bumped on each authenticated request
}
