package service

import (
	"context"
	"log/slog"
	"time"

	"sangha/internal/featureflags"
	"sangha/internal/middleware"
	"sangha/internal/models"
	"sangha/internal/notifications"
	"sangha/internal/observability"
	"sangha/internal/repository"
)

// Publisher pushes an event to one user's live connections.
type Publisher interface {
	PublishEvent(ctx context.Context, userID uint, event notifications.Event) error
}

type NotificationService struct {
	notifications repository.NotificationRepository
	follows       repository.FollowRepository
	users         repository.UserRepository
	publisher     Publisher
	flags         *featureflags.Manager
	batchSize     int
}

type ListNotificationsInput struct {
	UserID     uint
	UnreadOnly bool
	Limit      int
	Offset     int
}

func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	follows repository.FollowRepository,
	users repository.UserRepository,
	publisher Publisher,
	flags *featureflags.Manager,
	batchSize int,
) *NotificationService {
	if batchSize <= 0 {
		batchSize = defaultFollowerBatch
	}
	return &NotificationService{
		notifications: notificationRepo,
		follows:       follows,
		users:         users,
		publisher:     publisher,
		flags:         flags,
		batchSize:     batchSize,
	}
}

// fanout is one in-flight delivery of a single notification type.
type fanout struct {
	kind       models.NotificationType
	sender     uint
	questionID *uint
	categoryID *uint
	title      string
	// skip holds recipients that must not receive this fan-out.
	skip   map[uint]struct{}
	result models.FanoutResult
}

// NotifyNewAnswer tells everyone following the question that it got an answer. The
// answer's author is never notified.
func (s *NotificationService) NotifyNewAnswer(ctx context.Context, answer *models.Answer, question *models.Question) models.FanoutResult {
	start := time.Now()
	f := &fanout{
		kind:       models.NotificationNewAnswer,
		sender:     answer.AuthorID,
		questionID: &question.ID,
		title:      question.Title,
		skip:       map[uint]struct{}{answer.AuthorID: {}},
	}
	s.deliverToFollowers(ctx, f, models.FollowingQuestion, question.ID)
	s.finish(ctx, f, time.Since(start))
	return f.result
}

// NotifyNewQuestion tells the author's followers and the followers of each category that
// a question was asked. The two audiences are independent. Within the category audience a
// user is notified once, tagged with the first category they follow.
func (s *NotificationService) NotifyNewQuestion(ctx context.Context, question *models.Question, categoryIDs []uint) models.FanoutResult {
	var total models.FanoutResult

	start := time.Now()
	byAuthor := &fanout{
		kind:       models.NotificationUserAskedQuestion,
		sender:     question.AuthorID,
		questionID: &question.ID,
		title:      question.Title,
		skip:       map[uint]struct{}{question.AuthorID: {}},
	}
	s.deliverToFollowers(ctx, byAuthor, models.FollowingUser, question.AuthorID)
	s.finish(ctx, byAuthor, time.Since(start))
	total.Add(byAuthor.result)

	start = time.Now()
	byTopic := &fanout{
		kind:       models.NotificationTopicNewQuestion,
		sender:     question.AuthorID,
		questionID: &question.ID,
		title:      question.Title,
		skip:       map[uint]struct{}{question.AuthorID: {}},
	}
	for _, categoryID := range categoryIDs {
		byTopic.categoryID = &categoryID
		s.deliverToFollowers(ctx, byTopic, models.FollowingCategory, categoryID)
	}
	s.finish(ctx, byTopic, time.Since(start))
	total.Add(byTopic.result)

	return total
}

// deliverToFollowers persists one row per new follower of the target, batch by batch. A
// batch that fails to insert is counted and skipped.
func (s *NotificationService) deliverToFollowers(ctx context.Context, f *fanout, followingType models.FollowingType, followingID uint) {
	err := eachFollowerBatch(ctx, s.follows, followingType, followingID, s.batchSize, func(ids []uint) error {
		rows := make([]models.Notification, 0, len(ids))
		for _, id := range ids {
			if _, seen := f.skip[id]; seen {
				continue
			}
			f.skip[id] = struct{}{}
			rows = append(rows, models.Notification{
				RecipientID: id,
				SenderID:    f.sender,
				Type:        f.kind,
				QuestionID:  f.questionID,
				CategoryID:  f.categoryID,
			})
		}
		if len(rows) == 0 {
			return nil
		}

		if err := s.notifications.CreateBatch(ctx, rows, s.batchSize); err != nil {
			f.result.Failed += len(rows)
			middleware.Logger.ErrorContext(ctx, "notification batch failed",
				slog.String("type", string(f.kind)),
				slog.Int("size", len(rows)),
				slog.String("error", err.Error()))
			return nil
		}
		f.result.Delivered += len(rows)
		s.push(ctx, f, rows)
		return nil
	})
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "follower enumeration failed",
			slog.String("type", string(f.kind)),
			slog.String("following_type", string(followingType)),
			slog.Uint64("following_id", uint64(followingID)),
			slog.String("error", err.Error()))
	}
}

// push publishes persisted rows to recipients with live sockets. Failures are logged only.
func (s *NotificationService) push(ctx context.Context, f *fanout, rows []models.Notification) {
	if s.publisher == nil {
		return
	}
	sender := models.UserSummary{ID: f.sender}
	if u, err := s.users.GetByID(ctx, f.sender); err == nil {
		sender = u.Summary()
	}
	for _, n := range rows {
		if !s.flags.Enabled(featureflags.RealtimeNotifications, n.RecipientID) {
			continue
		}
		view := n.View()
		view.Sender = sender
		if view.Question != nil {
			view.Question.Title = f.title
		}
		event, err := notifications.NewEvent(notifications.EventNotification, view)
		if err != nil {
			continue
		}
		if err := s.publisher.PublishEvent(ctx, n.RecipientID, event); err != nil {
			middleware.Logger.WarnContext(ctx, "notification publish failed",
				slog.Uint64("recipient_id", uint64(n.RecipientID)),
				slog.String("error", err.Error()))
		}
	}
}

func (s *NotificationService) finish(ctx context.Context, f *fanout, elapsed time.Duration) {
	observability.RecordFanout(string(f.kind), f.result.Delivered, f.result.Failed, elapsed)
	level := slog.LevelInfo
	if f.result.Failed > 0 {
		level = slog.LevelWarn
	}
	middleware.Logger.Log(ctx, level, "notification fan-out finished",
		slog.String("type", string(f.kind)),
		slog.Uint64("sender_id", uint64(f.sender)),
		slog.Int("delivered", f.result.Delivered),
		slog.Int("failed", f.result.Failed),
		slog.Duration("elapsed", elapsed))
}

// List returns the user's inbox, newest first.
func (s *NotificationService) List(ctx context.Context, in ListNotificationsInput) ([]models.NotificationView, error) {
	rows, err := s.notifications.List(ctx, in.UserID, repository.NotificationFilter{
		UnreadOnly: in.UnreadOnly,
		Page:       repository.Page{Limit: in.Limit, Offset: in.Offset},
	})
	if err != nil {
		return nil, err
	}
	views := make([]models.NotificationView, 0, len(rows))
	for _, n := range rows {
		views = append(views, n.View())
	}
	return views, nil
}

// MarkRead flags one of the user's notifications as read. Repeating it is harmless.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint) error {
	if err := s.notifications.MarkRead(ctx, notificationID, userID); err != nil {
		return err
	}
	s.pushUnreadCount(ctx, userID)
	return nil
}

// MarkAllRead flags every unread notification of the user and returns how many changed.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	n, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.pushUnreadCount(ctx, userID)
	return n, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.notifications.UnreadCount(ctx, userID)
}

// pushUnreadCount keeps the user's other open tabs in sync with a read change.
func (s *NotificationService) pushUnreadCount(ctx context.Context, userID uint) {
	if s.publisher == nil || !s.flags.Enabled(featureflags.RealtimeNotifications, userID) {
		return
	}
	count, err := s.notifications.UnreadCount(ctx, userID)
	if err != nil {
		return
	}
	event, err := notifications.NewEvent(notifications.EventUnreadCount, map[string]int64{"count": count})
	if err != nil {
		return
	}
	_ = s.publisher.PublishEvent(ctx, userID, event)
}
