// Package testutil provides shared test fixtures for backend tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"sangha/internal/database"
	"sangha/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

// NewSQLiteDB opens an isolated in-memory SQLite database with every persistent model
// migrated. The pool is pinned to one connection, so code under test must not query the
// root handle while a transaction is open.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:sangha_test_%d?mode=memory&cache=private", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// CreateUser inserts a user with a unique username derived from name.
func CreateUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	u := &models.User{
		Username: name,
		Email:    name + "@example.com",
		Password: "x",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// CreateCategory inserts a category whose slug is its name.
func CreateCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name, Slug: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

// CreateQuestion inserts a question by author filed under categories.
func CreateQuestion(t *testing.T, db *gorm.DB, author *models.User, categories ...*models.Category) *models.Question {
	t.Helper()
	q := &models.Question{AuthorID: author.ID, Title: "How do I hold crow pose?", Body: "Details"}
	for _, c := range categories {
		q.Categories = append(q.Categories, *c)
	}
	require.NoError(t, db.Omit("Categories.*").Create(q).Error)
	return q
}

// CreateAnswer inserts an answer by author to q.
func CreateAnswer(t *testing.T, db *gorm.DB, q *models.Question, author *models.User) *models.Answer {
	t.Helper()
	a := &models.Answer{QuestionID: q.ID, AuthorID: author.ID, Body: "Engage your core."}
	require.NoError(t, db.Create(a).Error)
	return a
}

// CreateFollow inserts a follow edge.
func CreateFollow(t *testing.T, db *gorm.DB, follower *models.User, ft models.FollowingType, followingID uint) {
	t.Helper()
	require.NoError(t, db.Create(&models.Follow{
		FollowerID:    follower.ID,
		FollowingType: ft,
		FollowingID:   followingID,
	}).Error)
}
