// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"stackwiser/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	NumComments int
	ShouldClean bool
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users, %d posts and %d comments...",
		opts.NumUsers, opts.NumPosts, opts.NumComments)

	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	posts, err := createPosts(db, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	comments, err := createComments(db, users, posts, opts.NumComments)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("✓ %d comments created", len(comments))

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE comments, posts, tokens, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.DefaultCost)

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Always include a known test user for consistency if cleaning
	if count >= 1 {
		user := models.User{
			FirstName:   "Test",
			LastName:    "Student",
			Email:       "test@example.com",
			PhoneNumber: "0700000000",
			Password:    string(hashedPassword),
			Picture:     models.DefaultPicture,
			IsActive:    true,
			Role:        models.RoleUser,
		}
		if err := db.Create(&user).Error; err == nil {
			users = append(users, user)
		}
	}

	for i := len(users); i < count; i++ {
		user := models.User{
			FirstName:   gofakeit.FirstName(),
			LastName:    gofakeit.LastName(),
			Email:       fmt.Sprintf("%s%d@example.com", gofakeit.Username(), i),
			PhoneNumber: fmt.Sprintf("07%08d", r.Intn(100000000)),
			Password:    string(hashedPassword),
			Picture:     models.DefaultPicture,
			IsActive:    true,
			Role:        models.RoleUser,
		}
		if err := db.Create(&user).Error; err != nil {
			return users, err
		}
		users = append(users, user)
	}

	return users, nil
}

func createPosts(db *gorm.DB, users []models.User, count int) ([]models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	posts := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[r.Intn(len(users))]
		post := models.Post{
			Title:   gofakeit.Sentence(5),
			Content: gofakeit.Paragraph(1, 3, 8, "\n"),
			UserID:  author.ID,
		}
		// realistic created_at spread over the last 90 days
		post.CreatedAt = time.Now().Add(-time.Duration(r.Intn(90*24)) * time.Hour)

		if err := db.Create(&post).Error; err != nil {
			return posts, err
		}
		posts = append(posts, post)
	}

	return posts, nil
}

func createComments(db *gorm.DB, users []models.User, posts []models.Post, count int) ([]models.Comment, error) {
	if len(users) == 0 || len(posts) == 0 {
		return nil, nil
	}

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	comments := make([]models.Comment, 0, count)
	for i := 0; i < count; i++ {
		comment := models.Comment{
			Content: gofakeit.Sentence(8),
			UserID:  users[r.Intn(len(users))].ID,
			PostID:  posts[r.Intn(len(posts))].ID,
		}
		if err := db.Create(&comment).Error; err != nil {
			return comments, err
		}
		comments = append(comments, comment)
	}

	return comments, nil
}
