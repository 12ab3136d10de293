package services

import (
	"errors"

	"postdeck/models"

	"gorm.io/gorm"
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// ListByAuthor returns the subject's posts, newest first.
func (s *PostService) ListByAuthor(auth0ID string) ([]models.Post, error) {
	posts := []models.Post{}
	err := s.db.Where("author_id = ?", auth0ID).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// Create persists a new post owned by the subject. Posts are published on
// creation; there is no draft state in the API.
func (s *PostService) Create(auth0ID string, req *models.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  auth0ID,
		Published: true,
	}
	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetByID(id string) (*models.Post, error) {
	var post models.Post
	err := s.db.Where("id = ?", id).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostService) Delete(id string) error {
	return s.db.Delete(&models.Post{}, "id = ?", id).Error
}

// CreateIfAbsent inserts the post unless the author already has one with the
// same title. Used by the seed utility to stay idempotent.
func (s *PostService) CreateIfAbsent(post *models.Post) error {
	var existing models.Post
	err := s.db.Where("author_id = ? AND title = ?", post.AuthorID, post.Title).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Create(post).Error
}
