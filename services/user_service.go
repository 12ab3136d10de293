package services

import (
	"errors"

	"postdeck/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a looked-up entity does not exist.
var ErrNotFound = errors.New("record not found")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetByAuth0ID looks up the local profile for an identity-provider subject.
func (s *UserService) GetByAuth0ID(auth0ID string) (*models.User, error) {
	var user models.User
	err := s.db.Where("auth0_id = ?", auth0ID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert inserts the user or, if a row with the same subject already exists,
// refreshes its email and name. The existing row keeps its id.
func (s *UserService) Upsert(user *models.User) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "auth0_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "name"}),
	}).Create(user).Error
}
