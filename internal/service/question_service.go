package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"sangha/internal/cache"
	"sangha/internal/middleware"
	"sangha/internal/models"
	"sangha/internal/repository"
)

const (
	maxTitleLen              = 300
	maxBodyLen               = 50000
	maxCategoriesPerQuestion = 5
)

type QuestionService struct {
	uow           repository.UnitOfWork
	questions     repository.QuestionRepository
	answers       repository.AnswerRepository
	categories    repository.CategoryRepository
	votes         *VoteService
	reputation    *ReputationService
	notifications *NotificationService
}

type CreateQuestionInput struct {
	AuthorID    uint
	Title       string
	Body        string
	CategoryIDs []uint
}

type ListQuestionsInput struct {
	CategorySlug string
	AuthorID     uint
	Limit        int
	Offset       int
	ViewerID     uint
}

func NewQuestionService(
	uow repository.UnitOfWork,
	questions repository.QuestionRepository,
	answers repository.AnswerRepository,
	categories repository.CategoryRepository,
	votes *VoteService,
	reputation *ReputationService,
	notifications *NotificationService,
) *QuestionService {
	return &QuestionService{
		uow:           uow,
		questions:     questions,
		answers:       answers,
		categories:    categories,
		votes:         votes,
		reputation:    reputation,
		notifications: notifications,
	}
}

// Create stores the question and credits its author in one unit of work, then notifies
// the author's and the categories' followers.
func (s *QuestionService) Create(ctx context.Context, in CreateQuestionInput) (*models.Question, error) {
	title := strings.TrimSpace(in.Title)
	body := strings.TrimSpace(in.Body)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if body == "" {
		return nil, models.NewValidationError("Body is required")
	}
	if len(body) > maxBodyLen {
		return nil, models.NewValidationError("Body too long (max 50000 characters)")
	}

	categoryIDs := dedupeIDs(in.CategoryIDs)
	if len(categoryIDs) > maxCategoriesPerQuestion {
		return nil, models.NewValidationError("Too many categories (max 5)")
	}
	if len(categoryIDs) > 0 {
		found, err := s.categories.FindByIDs(ctx, categoryIDs)
		if err != nil {
			return nil, err
		}
		if len(found) != len(categoryIDs) {
			return nil, models.NewBadRequestError("unknown category")
		}
	}

	question := &models.Question{AuthorID: in.AuthorID, Title: title, Body: body}
	err := s.uow.Do(ctx, func(r *repository.Repositories) error {
		if err := r.Questions.Create(ctx, question, categoryIDs); err != nil {
			return err
		}
		_, err := s.reputation.UpdateReputationIn(ctx, r, in.AuthorID, models.ActionAskQuestion, false)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.reputation.InvalidateCache(ctx, in.AuthorID)

	if s.notifications != nil {
		s.notifications.NotifyNewQuestion(ctx, question, categoryIDs)
	}

	created, err := s.questions.GetByID(ctx, question.ID)
	if err != nil {
		return question, nil
	}
	return created, nil
}

// Get returns the question with its answers and the viewer's vote summaries.
func (s *QuestionService) Get(ctx context.Context, id, viewerID uint) (*models.Question, error) {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	answers, err := s.answers.ListByQuestion(ctx, id)
	if err != nil {
		return nil, err
	}
	question.Answers = answers

	summaries, err := s.votes.Summaries(ctx, models.VoteTargetQuestion, []uint{id}, viewerID)
	if err != nil {
		return nil, err
	}
	summary := summaries[id]
	question.Votes = &summary

	if len(answers) > 0 {
		ids := make([]uint, 0, len(answers))
		for _, a := range answers {
			ids = append(ids, a.ID)
		}
		answerSummaries, err := s.votes.Summaries(ctx, models.VoteTargetAnswer, ids, viewerID)
		if err != nil {
			return nil, err
		}
		for i := range question.Answers {
			v := answerSummaries[question.Answers[i].ID]
			question.Answers[i].Votes = &v
		}
	}
	return question, nil
}

func (s *QuestionService) List(ctx context.Context, in ListQuestionsInput) ([]models.Question, error) {
	questions, err := s.questions.List(ctx, repository.QuestionFilter{
		CategorySlug: in.CategorySlug,
		AuthorID:     in.AuthorID,
		Page:         repository.Page{Limit: in.Limit, Offset: in.Offset},
	})
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return questions, nil
	}

	ids := make([]uint, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	summaries, err := s.votes.Summaries(ctx, models.VoteTargetQuestion, ids, in.ViewerID)
	if err != nil {
		return nil, err
	}
	for i := range questions {
		v := summaries[questions[i].ID]
		questions[i].Votes = &v
	}
	return questions, nil
}

// Delete removes a question the user authored together with everything that hangs off it:
// answers, vote ledgers, follows and notifications. Points for asking and for every
// cascaded answer are taken back from their authors.
func (s *QuestionService) Delete(ctx context.Context, userID, questionID uint) error {
	affected := []uint{userID}
	err := s.uow.Do(ctx, func(r *repository.Repositories) error {
		authorID, err := r.Questions.GetAuthorID(ctx, questionID)
		if err != nil {
			return err
		}
		if authorID != userID {
			return models.NewForbiddenError("only the author can delete this question")
		}

		answers, err := r.Answers.ListByQuestion(ctx, questionID)
		if err != nil {
			return err
		}
		answerIDs := make([]uint, 0, len(answers))
		for _, a := range answers {
			answerIDs = append(answerIDs, a.ID)
		}

		if err := r.Votes.DeleteForTargets(ctx, models.VoteTargetAnswer, answerIDs); err != nil {
			return err
		}
		if err := r.Votes.DeleteForTargets(ctx, models.VoteTargetQuestion, []uint{questionID}); err != nil {
			return err
		}
		if err := r.Follows.DeleteTargeting(ctx, models.FollowingQuestion, []uint{questionID}); err != nil {
			return err
		}
		if err := r.Notifications.DeleteForQuestions(ctx, []uint{questionID}); err != nil {
			return err
		}
		if err := r.Answers.DeleteByQuestion(ctx, questionID); err != nil {
			return err
		}
		if err := r.Questions.Delete(ctx, questionID); err != nil {
			return err
		}

		for _, a := range answers {
			if _, err := s.reputation.UpdateReputationIn(ctx, r, a.AuthorID, models.ActionDeleteAnswer, false); err != nil {
				return err
			}
			affected = append(affected, a.AuthorID)
		}
		_, err = s.reputation.UpdateReputationIn(ctx, r, userID, models.ActionDeleteQuestion, false)
		return err
	})
	if err != nil {
		return err
	}

	s.reputation.InvalidateCache(ctx, dedupeIDs(affected)...)
	cache.InvalidateVoteSummary(ctx, string(models.VoteTargetQuestion), questionID)
	middleware.Logger.InfoContext(ctx, "question deleted",
		slog.Uint64("question_id", uint64(questionID)),
		slog.Uint64("user_id", uint64(userID)))
	return nil
}

// dedupeIDs drops zeros and duplicates, keeping first-seen order.
func dedupeIDs(ids []uint) []uint {
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}
