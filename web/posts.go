package web

import (
	"errors"
	"log"
	"net/http"

	"postdeck/client"
	"postdeck/models"

	"github.com/gin-gonic/gin"
)

const unreachableAPIMessage = "Could not reach the API. Please try again."

type postsPage struct {
	User  sessionUser
	Posts []models.Post
	Flash flash
}

func (s *Server) handleIndex(c *gin.Context) {
	user := s.currentUser(c)
	if user == nil {
		c.HTML(http.StatusOK, "home", nil)
		return
	}

	// The flash has to be consumed before the body is written.
	f := s.takeFlash(c)

	posts, err := s.api.ListPosts(c.Request.Context(), user.AccessToken)
	if err != nil {
		log.Printf("Error fetching posts for %s: %v", user.Subject, err)
		if f.Error == "" {
			f.Error = errorMessage(err)
		}
	}

	c.HTML(http.StatusOK, "posts", postsPage{User: *user, Posts: posts, Flash: f})
}

func (s *Server) handleCreatePost(c *gin.Context) {
	user := s.currentUser(c)
	if user == nil {
		c.Redirect(http.StatusSeeOther, "/auth/login")
		return
	}

	var req models.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		// Rejected before the API is called; keep the entered values so the
		// form is not cleared.
		s.setFlash(c, flash{
			Error:   "Invalid post data",
			Details: models.ValidationDetails(err),
			Title:   c.PostForm("title"),
			Content: c.PostForm("content"),
		})
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if _, err := s.api.CreatePost(c.Request.Context(), user.AccessToken, &req); err != nil {
		log.Printf("Error creating post for %s: %v", user.Subject, err)
		f := flash{Error: errorMessage(err), Title: req.Title, Content: req.Content}
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			f.Details = apiErr.Details
		}
		s.setFlash(c, f)
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleDeletePost(c *gin.Context) {
	user := s.currentUser(c)
	if user == nil {
		c.Redirect(http.StatusSeeOther, "/auth/login")
		return
	}

	if err := s.api.DeletePost(c.Request.Context(), user.AccessToken, c.Param("id")); err != nil {
		log.Printf("Error deleting post for %s: %v", user.Subject, err)
		s.setFlash(c, flash{Error: errorMessage(err)})
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// errorMessage surfaces the API's own message when there is one, and a
// generic one for transport failures.
func errorMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return unreachableAPIMessage
}
