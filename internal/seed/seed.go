package seed

import (
	"context"
	"fmt"
	"log/slog"

	"sangha/internal/featureflags"
	"sangha/internal/middleware"
	"sangha/internal/models"
	"sangha/internal/repository"
	"sangha/internal/service"

	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	Users              int
	Questions          int
	AnswersPerQuestion int
	FollowsPerUser     int
	VotesPerQuestion   int
	Clean              bool
	// Seed makes the generated data repeatable when non-zero.
	Seed int64
	// BcryptCost overrides the password hashing cost; tests pass bcrypt.MinCost.
	BcryptCost int
}

// DefaultOptions is a small but connected community.
func DefaultOptions() Options {
	return Options{
		Users:              25,
		Questions:          40,
		AnswersPerQuestion: 3,
		FollowsPerUser:     4,
		VotesPerQuestion:   5,
	}
}

// Report counts what a seeding run created.
type Report struct {
	Users         int
	Categories    int
	Questions     int
	Answers       int
	Follows       int
	Votes         int
	Notifications int64
}

// Run populates the database. Content goes through the services so reputation and
// notifications come out exactly as they would from real traffic.
func Run(ctx context.Context, db *gorm.DB, opts Options) (*Report, error) {
	logger := middleware.Logger
	logger.InfoContext(ctx, "seeding started",
		slog.Int("users", opts.Users),
		slog.Int("questions", opts.Questions))

	if opts.Clean {
		if err := Clean(ctx, db); err != nil {
			return nil, err
		}
	}

	categories, err := Categories(ctx, db)
	if err != nil {
		return nil, err
	}

	factory, err := NewFactory(db, opts.Seed, opts.BcryptCost)
	if err != nil {
		return nil, err
	}
	users, err := factory.CreateUsers(ctx, opts.Users)
	if err != nil {
		return nil, err
	}
	report := &Report{Users: len(users), Categories: len(categories)}
	if len(users) < 2 {
		return report, nil
	}

	svc := newServices(db)

	if err := seedFollows(ctx, svc, factory, users, categories, opts, report); err != nil {
		return nil, err
	}
	questions, err := seedQuestions(ctx, svc, factory, users, categories, opts, report)
	if err != nil {
		return nil, err
	}
	if err := seedAnswersAndVotes(ctx, svc, factory, users, questions, opts, report); err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).Model(&models.Notification{}).Count(&report.Notifications).Error; err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "seeding completed",
		slog.Int("users", report.Users),
		slog.Int("questions", report.Questions),
		slog.Int("answers", report.Answers),
		slog.Int("follows", report.Follows),
		slog.Int("votes", report.Votes),
		slog.Int64("notifications", report.Notifications))
	return report, nil
}

type services struct {
	questions *service.QuestionService
	answers   *service.AnswerService
	votes     *service.VoteService
	follows   *service.FollowService
}

func newServices(db *gorm.DB) services {
	repos := repository.NewRepositories(db)
	uow := repository.NewUnitOfWork(db)
	reputation := service.NewReputationService(repos.Reputations, repos.Users, service.DefaultPointTable())
	votes := service.NewVoteService(uow, repos.Votes, repos.Questions, repos.Answers, reputation)
	// Seeding never pushes realtime events.
	notifs := service.NewNotificationService(repos.Notifications, repos.Follows, repos.Users, nil,
		featureflags.NewManager(""), 0)
	return services{
		questions: service.NewQuestionService(uow, repos.Questions, repos.Answers, repos.Categories, votes, reputation, notifs),
		answers:   service.NewAnswerService(uow, repos.Answers, reputation, notifs),
		votes:     votes,
		follows:   service.NewFollowService(repos.Follows, repos.Users, repos.Categories, repos.Questions),
	}
}

// seedFollows runs before questions so asking fans out to real followers.
func seedFollows(ctx context.Context, svc services, f *Factory, users []models.User, categories []models.Category, opts Options, report *Report) error {
	for _, follower := range users {
		for _, idx := range f.Pick(len(users), opts.FollowsPerUser) {
			target := users[idx]
			if target.ID == follower.ID {
				continue
			}
			if err := follow(ctx, svc, follower.ID, models.FollowingUser, target.ID, report); err != nil {
				return err
			}
		}
		for _, idx := range f.Pick(len(categories), 2) {
			if err := follow(ctx, svc, follower.ID, models.FollowingCategory, categories[idx].ID, report); err != nil {
				return err
			}
		}
	}
	return nil
}

func follow(ctx context.Context, svc services, followerID uint, ft models.FollowingType, id uint, report *Report) error {
	_, err := svc.follows.Follow(ctx, followerID, ft, id)
	switch models.ErrorCode(err) {
	case "":
		if err != nil {
			return err
		}
		report.Follows++
	case models.CodeConflict, models.CodeBadRequest:
	default:
		return fmt.Errorf("seed follow: %w", err)
	}
	return nil
}

func seedQuestions(ctx context.Context, svc services, f *Factory, users []models.User, categories []models.Category, opts Options, report *Report) ([]models.Question, error) {
	questions := make([]models.Question, 0, opts.Questions)
	for i := 0; i < opts.Questions; i++ {
		author := users[f.Faker().IntRange(0, len(users)-1)]
		var categoryIDs []uint
		for _, idx := range f.Pick(len(categories), f.Faker().IntRange(1, 2)) {
			categoryIDs = append(categoryIDs, categories[idx].ID)
		}
		title, body := f.QuestionText()
		q, err := svc.questions.Create(ctx, service.CreateQuestionInput{
			AuthorID:    author.ID,
			Title:       title,
			Body:        body,
			CategoryIDs: categoryIDs,
		})
		if err != nil {
			return nil, fmt.Errorf("seed question: %w", err)
		}
		questions = append(questions, *q)
		report.Questions++
	}
	return questions, nil
}

func seedAnswersAndVotes(ctx context.Context, svc services, f *Factory, users []models.User, questions []models.Question, opts Options, report *Report) error {
	for _, q := range questions {
		// The asker follows their own question so answers reach them.
		if err := follow(ctx, svc, q.AuthorID, models.FollowingQuestion, q.ID, report); err != nil {
			return err
		}

		for _, idx := range f.Pick(len(users), opts.AnswersPerQuestion) {
			author := users[idx]
			if author.ID == q.AuthorID {
				continue
			}
			a, err := svc.answers.Create(ctx, service.CreateAnswerInput{QuestionID: q.ID, AuthorID: author.ID, Body: f.AnswerText()})
			if err != nil {
				return fmt.Errorf("seed answer: %w", err)
			}
			report.Answers++
			if err := castVote(ctx, svc, f, users, models.VoteTargetAnswer, a.ID, report); err != nil {
				return err
			}
		}

		for i := 0; i < opts.VotesPerQuestion; i++ {
			if err := castVote(ctx, svc, f, users, models.VoteTargetQuestion, q.ID, report); err != nil {
				return err
			}
		}
	}
	return nil
}

// castVote has a random user vote, mostly up. Self-votes and repeat voters are skipped.
func castVote(ctx context.Context, svc services, f *Factory, users []models.User, targetType models.VoteTargetType, targetID uint, report *Report) error {
	voter := users[f.Faker().IntRange(0, len(users)-1)]
	direction := models.VoteUp
	if f.Faker().IntRange(1, 5) == 1 {
		direction = models.VoteDown
	}

	current, err := svc.votes.GetSummary(ctx, targetType, targetID, voter.ID)
	if err != nil {
		return err
	}
	if current.HasUpvoted || current.HasDownvoted {
		return nil
	}

	_, err = svc.votes.HandleVote(ctx, service.VoteInput{
		TargetType: targetType,
		TargetID:   targetID,
		UserID:     voter.ID,
		Direction:  direction,
	})
	if models.ErrorCode(err) == models.CodeForbidden {
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed vote: %w", err)
	}
	report.Votes++
	return nil
}

// Clean removes all Ask content and accounts. Categories are kept.
func Clean(ctx context.Context, db *gorm.DB) error {
	middleware.Logger.InfoContext(ctx, "clearing existing data")
	tables := []any{
		&models.Notification{},
		&models.Follow{},
		&models.VoteCast{},
		&models.Vote{},
		&models.ReputationEvent{},
		&models.Reputation{},
		&models.Answer{},
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, model := range tables {
			if err := all.Delete(model).Error; err != nil {
				return fmt.Errorf("clean %T: %w", model, err)
			}
		}
		if err := all.Exec("DELETE FROM question_categories").Error; err != nil {
			return err
		}
		if err := all.Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return all.Delete(&models.User{}).Error
	})
}
