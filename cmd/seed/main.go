package main

import (
	"fmt"
	"log"
	"time"

	"github.com/say2me/backend/internal/config"
	"github.com/say2me/backend/internal/database"
	"github.com/say2me/backend/internal/models"

	"github.com/google/uuid"
)

// Seeds a handful of demo pages and messages for local development.
func main() {
	cfg := config.Load()
	database.Connect(cfg)
	database.Migrate()

	usernames := []string{"demo-page", "happy-panda-42", "clever-fox-7"}

	var users []models.User
	for _, username := range usernames {
		var existing models.User
		result := database.DB.Where("username = ?", username).First(&existing)
		if result.Error == nil {
			log.Println("Page already exists:", username)
			users = append(users, existing)
			continue
		}

		user := models.User{
			ID:        uuid.New(),
			Username:  username,
			CreatedAt: time.Now(),
		}
		if err := database.DB.Create(&user).Error; err != nil {
			log.Fatal("Failed to create page:", err)
		}
		log.Println("Page created:", username)
		users = append(users, user)
	}

	for i := 1; i <= 5; i++ {
		msg := models.Message{
			Text:      fmt.Sprintf("Welcome to the wall! (seed %d)", i),
			Timestamp: time.Now(),
		}
		if err := database.DB.Create(&msg).Error; err != nil {
			log.Fatal("Failed to create global message:", err)
		}
	}
	log.Println("Seeded 5 global messages")

	for i := 1; i <= 3; i++ {
		msg := models.Message{
			UserID:    &users[0].ID,
			Text:      fmt.Sprintf("Hello %s! (seed %d)", users[0].Username, i),
			Timestamp: time.Now(),
		}
		if err := database.DB.Create(&msg).Error; err != nil {
			log.Fatal("Failed to create user message:", err)
		}
	}
	log.Printf("Seeded 3 messages for %s", users[0].Username)
}
