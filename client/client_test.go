package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"postdeck/models"
)

func TestListPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/posts" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"p1","title":"Hello World","content":"This is my first post.","authorId":"auth0|u1","published":true}]`))
	}))
	defer srv.Close()

	posts, err := New(srv.URL).ListPosts(context.Background(), "tok")
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != "p1" {
		t.Errorf("posts = %+v", posts)
	}
}

func TestCreatePost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/posts" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"p2","title":"Hello World","content":"This is my first post.","authorId":"auth0|u1","published":true}`))
	}))
	defer srv.Close()

	post, err := New(srv.URL).CreatePost(context.Background(), "tok", &models.CreatePostRequest{Title: "Hello World", Content: "This is my first post."})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.ID != "p2" || !post.Published {
		t.Errorf("post = %+v", post)
	}
}

func TestCreatePostValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid post data","errors":{"title":"Title must be at least 3 characters long"}}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreatePost(context.Background(), "tok", &models.CreatePostRequest{Title: "Hi", Content: "This is my first post."})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Invalid post data" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["title"] == "" {
		t.Errorf("Details = %v", apiErr.Details)
	}
}

func TestUnparsableErrorBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListPosts(context.Background(), "tok")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Message != "request failed with status 500" {
		t.Errorf("Message = %q, want generic fallback", apiErr.Message)
	}
}

func TestDeletePost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/posts/p1" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := New(srv.URL).DeletePost(context.Background(), "tok", "p1"); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
}

func TestDeletePostForbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"User not authorized to delete this post"}`))
	}))
	defer srv.Close()

	err := New(srv.URL).DeletePost(context.Background(), "tok", "p1")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusForbidden || apiErr.Message != "User not authorized to delete this post" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}
