// Package seed provides helpers to create demo data for the Ask database. These helpers
// are intended for development and testing only.
package seed

import (
	"context"
	"fmt"
	"strings"

	"sangha/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password every seeded account logs in with.
const DefaultPassword = "Sangha-Seed-2024!"

// Factory builds domain entities from fake data and persists the ones that have no
// service-level side effects.
type Factory struct {
	db    *gorm.DB
	faker *gofakeit.Faker
	hash  string
	next  int
}

// NewFactory creates a Factory. A zero seed picks a random one; any other value gives a
// repeatable data set.
func NewFactory(db *gorm.DB, seed int64, bcryptCost int) (*Factory, error) {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}
	return &Factory{db: db, faker: gofakeit.New(seed), hash: string(hash)}, nil
}

// Faker exposes the underlying generator so callers share one random stream.
func (f *Factory) Faker() *gofakeit.Faker {
	return f.faker
}

// BuildUser returns an unsaved user with a unique username.
func (f *Factory) BuildUser(overrides ...func(*models.User)) *models.User {
	f.next++
	base := strings.ToLower(f.faker.Username())
	base = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			return r
		}
		return -1
	}, base)
	if len(base) > 20 {
		base = base[:20]
	}
	username := fmt.Sprintf("%s_%d", base, f.next)

	user := &models.User{
		Username: username,
		Email:    username + "@sangha.example",
		Password: f.hash,
		Bio:      f.faker.Sentence(10),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", f.faker.UUID()),
	}
	for _, override := range overrides {
		override(user)
	}
	return user
}

// CreateUsers persists count fake users in one batch.
func (f *Factory) CreateUsers(ctx context.Context, count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		users = append(users, *f.BuildUser())
	}
	if len(users) == 0 {
		return users, nil
	}
	if err := f.db.WithContext(ctx).CreateInBatches(&users, 100).Error; err != nil {
		return nil, fmt.Errorf("create users: %w", err)
	}
	return users, nil
}

// QuestionText returns a title and body for a fake question.
func (f *Factory) QuestionText() (string, string) {
	title := strings.TrimSpace(f.faker.Question())
	if len(title) > 280 {
		title = title[:280]
	}
	return title, f.faker.Paragraph(2, 4, 12, "\n\n")
}

// AnswerText returns a body for a fake answer.
func (f *Factory) AnswerText() string {
	return f.faker.Paragraph(1, 3, 14, "\n\n")
}

// Pick returns n distinct indexes in [0, size), fewer when size < n.
func (f *Factory) Pick(size, n int) []int {
	if n > size {
		n = size
	}
	perm := make([]int, size)
	for i := range perm {
		perm[i] = i
	}
	f.faker.ShuffleAnySlice(perm)
	return perm[:n]
}
