package models

import "time"

// Post is a short text post. Immutable once created; CreatedAt is assigned
// by the server at write time and drives feed ordering.
type Post struct {
	ID        uint      `gorm:"primaryKey"`
	AuthorID  uint      `gorm:"index;not null"`
	Body      string    `gorm:"size:280;not null"`
	Link      string    `gorm:"size:255"`
	CreatedAt time.Time `gorm:"index"`

	Author User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
