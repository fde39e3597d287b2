package service

import (
	"context"
	"strings"

	"sangha/internal/cache"
	"sangha/internal/models"
	"sangha/internal/repository"
)

type AnswerService struct {
	uow           repository.UnitOfWork
	answers       repository.AnswerRepository
	reputation    *ReputationService
	notifications *NotificationService
}

type CreateAnswerInput struct {
	QuestionID uint
	AuthorID   uint
	Body       string
}

func NewAnswerService(
	uow repository.UnitOfWork,
	answers repository.AnswerRepository,
	reputation *ReputationService,
	notifications *NotificationService,
) *AnswerService {
	return &AnswerService{
		uow:           uow,
		answers:       answers,
		reputation:    reputation,
		notifications: notifications,
	}
}

// Create posts an answer and credits its author, then notifies the question's followers.
func (s *AnswerService) Create(ctx context.Context, in CreateAnswerInput) (*models.Answer, error) {
	body := strings.TrimSpace(in.Body)
	if body == "" {
		return nil, models.NewValidationError("Body is required")
	}
	if len(body) > maxBodyLen {
		return nil, models.NewValidationError("Body too long (max 50000 characters)")
	}

	answer := &models.Answer{QuestionID: in.QuestionID, AuthorID: in.AuthorID, Body: body}
	var question *models.Question
	err := s.uow.Do(ctx, func(r *repository.Repositories) error {
		var err error
		question, err = r.Questions.GetByID(ctx, in.QuestionID)
		if err != nil {
			return err
		}
		if err := r.Answers.Create(ctx, answer); err != nil {
			return err
		}
		_, err = s.reputation.UpdateReputationIn(ctx, r, in.AuthorID, models.ActionPostAnswer, false)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.reputation.InvalidateCache(ctx, in.AuthorID)

	if s.notifications != nil {
		s.notifications.NotifyNewAnswer(ctx, answer, question)
	}

	created, err := s.answers.GetByID(ctx, answer.ID)
	if err != nil {
		return answer, nil
	}
	return created, nil
}

func (s *AnswerService) ListByQuestion(ctx context.Context, questionID uint) ([]models.Answer, error) {
	return s.answers.ListByQuestion(ctx, questionID)
}

// Delete removes an answer the user authored along with its vote ledger and takes back
// the points for posting it.
func (s *AnswerService) Delete(ctx context.Context, userID, answerID uint) error {
	err := s.uow.Do(ctx, func(r *repository.Repositories) error {
		authorID, err := r.Answers.GetAuthorID(ctx, answerID)
		if err != nil {
			return err
		}
		if authorID != userID {
			return models.NewForbiddenError("only the author can delete this answer")
		}
		if err := r.Votes.DeleteForTargets(ctx, models.VoteTargetAnswer, []uint{answerID}); err != nil {
			return err
		}
		if err := r.Answers.Delete(ctx, answerID); err != nil {
			return err
		}
		_, err = s.reputation.UpdateReputationIn(ctx, r, userID, models.ActionDeleteAnswer, false)
		return err
	})
	if err != nil {
		return err
	}
	s.reputation.InvalidateCache(ctx, userID)
	cache.InvalidateVoteSummary(ctx, string(models.VoteTargetAnswer), answerID)
	return nil
}
