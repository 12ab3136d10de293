package controllers

import (
	"errors"
	"log"
	"net/http"

	"postdeck/middleware"
	"postdeck/models"
	"postdeck/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostController struct {
	db          *gorm.DB
	postService *services.PostService
	userService *services.UserService
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{
		db:          db,
		postService: services.NewPostService(db),
		userService: services.NewUserService(db),
	}
}

// ListPosts godoc
// @Summary List the caller's posts
// @Description Returns all posts owned by the authenticated subject, newest first
// @Tags posts
// @Produce json
// @Success 200 {array} models.Post
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /posts [get]
func (pc *PostController) ListPosts(c *gin.Context) {
	subject := c.GetString(middleware.SubjectKey)

	posts, err := pc.postService.ListByAuthor(subject)
	if err != nil {
		log.Printf("Error fetching posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// CreatePost godoc
// @Summary Create a post
// @Description Creates a post owned by the authenticated subject
// @Tags posts
// @Accept json
// @Produce json
// @Param post body models.CreatePostRequest true "Post to create"
// @Success 201 {object} models.Post
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /posts [post]
func (pc *PostController) CreatePost(c *gin.Context) {
	subject := c.GetString(middleware.SubjectKey)

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid post data",
			"errors":  models.ValidationDetails(err),
		})
		return
	}

	// A valid token whose subject has no local profile is a sync issue, not
	// an authentication failure. Profile rows are created out-of-band.
	if _, err := pc.userService.GetByAuth0ID(subject); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusForbidden, gin.H{"message": "User profile not found in local database. Please complete profile setup."})
			return
		}
		log.Printf("Error looking up user %s: %v", subject, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create post"})
		return
	}

	post, err := pc.postService.Create(subject, &req)
	if err != nil {
		log.Printf("Error creating post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// DeletePost godoc
// @Summary Delete a post
// @Description Deletes a post; only its author may do so
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /posts/{id} [delete]
func (pc *PostController) DeletePost(c *gin.Context) {
	subject := c.GetString(middleware.SubjectKey)
	id := c.Param("id")

	post, err := pc.postService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}
		log.Printf("Error fetching post %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete post"})
		return
	}

	if post.AuthorID != subject {
		c.JSON(http.StatusForbidden, gin.H{"message": "User not authorized to delete this post"})
		return
	}

	if err := pc.postService.Delete(id); err != nil {
		log.Printf("Error deleting post %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete post"})
		return
	}

	c.Status(http.StatusNoContent)
}
