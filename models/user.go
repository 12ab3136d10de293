package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the local profile for an identity-provider subject. Rows are
// created out-of-band (seed or a future sync step), never through the API.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Auth0ID   string    `json:"auth0Id" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Posts     []Post    `json:"posts,omitempty" gorm:"foreignKey:AuthorID;references:Auth0ID"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
