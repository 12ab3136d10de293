package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"postdeck/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestUserUpsertIdempotent(t *testing.T) {
	db := testDB(t)
	users := NewUserService(db)

	first := &models.User{Auth0ID: "auth0|seeduser1", Email: "seeduser1@example.com", Name: "Seed User 1"}
	if err := users.Upsert(first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	again := &models.User{Auth0ID: "auth0|seeduser1", Email: "seeduser1@example.com", Name: "Renamed"}
	if err := users.Upsert(again); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("user count = %d, want 1", count)
	}

	stored, err := users.GetByAuth0ID("auth0|seeduser1")
	if err != nil {
		t.Fatalf("GetByAuth0ID: %v", err)
	}
	if stored.Name != "Renamed" {
		t.Errorf("Name = %q, want updated value", stored.Name)
	}
	if stored.ID != first.ID {
		t.Errorf("ID changed on upsert: %q -> %q", first.ID, stored.ID)
	}
}

func TestGetByAuth0IDNotFound(t *testing.T) {
	db := testDB(t)
	users := NewUserService(db)

	_, err := users.GetByAuth0ID("auth0|missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateIfAbsentSkipsDuplicates(t *testing.T) {
	db := testDB(t)
	posts := NewPostService(db)

	post := &models.Post{Title: "User 1 - First Post", Content: "This is the first post by Seed User 1.", AuthorID: "auth0|seeduser1", Published: true}
	if err := posts.CreateIfAbsent(post); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	dup := &models.Post{Title: "User 1 - First Post", Content: "Changed content.", AuthorID: "auth0|seeduser1", Published: true}
	if err := posts.CreateIfAbsent(dup); err != nil {
		t.Fatalf("second insert: %v", err)
	}

	var count int64
	db.Model(&models.Post{}).Count(&count)
	if count != 1 {
		t.Errorf("post count = %d, want 1", count)
	}
}

func TestListByAuthorOrdering(t *testing.T) {
	db := testDB(t)
	posts := NewPostService(db)

	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"oldest post", "middle post", "newest post"} {
		p := models.Post{Title: title, Content: "content long enough", AuthorID: "auth0|u1", Published: true, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}

	got, err := posts.ListByAuthor("auth0|u1")
	if err != nil {
		t.Fatalf("ListByAuthor: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Title != "newest post" || got[2].Title != "oldest post" {
		t.Errorf("ordering = [%s %s %s], want newest first", got[0].Title, got[1].Title, got[2].Title)
	}
}
