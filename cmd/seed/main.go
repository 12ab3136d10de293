// Seed populates two demo users and their posts. Safe to run repeatedly:
// users are upserted on their subject id and existing posts are skipped.
package main

import (
	"log"

	"postdeck/config"
	"postdeck/database"
	"postdeck/models"
	"postdeck/services"

	"github.com/joho/godotenv"
)

var seedUsers = []models.User{
	{Auth0ID: "auth0|seeduser1", Email: "seeduser1@example.com", Name: "Seed User 1"},
	{Auth0ID: "auth0|seeduser2", Email: "seeduser2@example.com", Name: "Seed User 2"},
}

var seedPosts = []models.Post{
	{
		Title:     "User 1 - First Post",
		Content:   "This is the first post by Seed User 1.",
		AuthorID:  "auth0|seeduser1",
		Published: true,
	},
	{
		Title:     "User 1 - Second Post",
		Content:   "This is another interesting post by Seed User 1.",
		AuthorID:  "auth0|seeduser1",
		Published: false,
	},
	{
		Title:     "User 2 - Thoughts on Development",
		Content:   "Seed User 2 shares some thoughts on modern web development.",
		AuthorID:  "auth0|seeduser2",
		Published: true,
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	users := services.NewUserService(db)
	posts := services.NewPostService(db)

	log.Println("Start seeding ...")

	for i := range seedUsers {
		if err := users.Upsert(&seedUsers[i]); err != nil {
			log.Fatalf("Failed to upsert user %s: %v", seedUsers[i].Auth0ID, err)
		}
		log.Printf("Created/Found user: %s with auth0Id: %s", seedUsers[i].Name, seedUsers[i].Auth0ID)
	}

	for i := range seedPosts {
		if err := posts.CreateIfAbsent(&seedPosts[i]); err != nil {
			log.Fatalf("Failed to create post %q: %v", seedPosts[i].Title, err)
		}
	}

	log.Println("Seeding finished.")
}
