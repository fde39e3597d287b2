package service

import (
	"context"
	"testing"

	"sangha/internal/featureflags"
	"sangha/internal/models"
	"sangha/internal/notifications"
	"sangha/internal/repository"
	"sangha/internal/testutil"

	"gorm.io/gorm"
)

// stack wires every service against one SQLite database.
type stack struct {
	db            *gorm.DB
	repos         *repository.Repositories
	reputation    *ReputationService
	votes         *VoteService
	follows       *FollowService
	notifications *NotificationService
	questions     *QuestionService
	answers       *AnswerService
	publisher     *recordingPublisher
}

func newStack(t *testing.T) *stack {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	repos := repository.NewRepositories(db)
	uow := repository.NewUnitOfWork(db)
	pub := &recordingPublisher{}

	rep := NewReputationService(repos.Reputations, repos.Users, DefaultPointTable())
	votes := NewVoteService(uow, repos.Votes, repos.Questions, repos.Answers, rep)
	notifs := NewNotificationService(repos.Notifications, repos.Follows, repos.Users, pub,
		featureflags.NewManager(featureflags.RealtimeNotifications+"=on"), 2)

	return &stack{
		db:            db,
		repos:         repos,
		reputation:    rep,
		votes:         votes,
		follows:       NewFollowService(repos.Follows, repos.Users, repos.Categories, repos.Questions),
		notifications: notifs,
		questions:     NewQuestionService(uow, repos.Questions, repos.Answers, repos.Categories, votes, rep, notifs),
		answers:       NewAnswerService(uow, repos.Answers, rep, notifs),
		publisher:     pub,
	}
}

func (s *stack) score(t *testing.T, userID uint) int64 {
	t.Helper()
	rep, err := s.repos.Reputations.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("load reputation: %v", err)
	}
	if rep == nil {
		return 0
	}
	return rep.Score
}

func (s *stack) inbox(t *testing.T, userID uint) []models.Notification {
	t.Helper()
	var rows []models.Notification
	if err := s.db.Where("recipient_id = ?", userID).Order("id").Find(&rows).Error; err != nil {
		t.Fatalf("load inbox: %v", err)
	}
	return rows
}

// recordingPublisher captures published events per user.
type recordingPublisher struct {
	events map[uint][]notifications.Event
	err    error
}

func (p *recordingPublisher) PublishEvent(_ context.Context, userID uint, event notifications.Event) error {
	if p.err != nil {
		return p.err
	}
	if p.events == nil {
		p.events = make(map[uint][]notifications.Event)
	}
	p.events[userID] = append(p.events[userID], event)
	return nil
}
