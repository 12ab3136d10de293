package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	AuthorID  string    `json:"authorId" gorm:"not null;index"`
	Published bool      `json:"published" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// CreatePostRequest is the only shape accepted on creation. Server-assigned
// fields (id, authorId, published, timestamps) are never read from the client.
type CreatePostRequest struct {
	Title   string `json:"title" form:"title" binding:"required,min=3"`
	Content string `json:"content" form:"content" binding:"required,min=10"`
}

// ValidationDetails turns a binding failure into field-level constraint
// messages suitable for a 400 response body. Returns nil for errors that are
// not field validation failures (malformed JSON and the like).
func ValidationDetails(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			details[field] = fmt.Sprintf("%s is required", fe.Field())
		case "min":
			details[field] = fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
		default:
			details[field] = fmt.Sprintf("%s is invalid", fe.Field())
		}
	}
	return details
}
