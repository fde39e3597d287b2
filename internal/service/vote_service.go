package service

import (
	"context"
	"log/slog"

	"sangha/internal/cache"
	"sangha/internal/middleware"
	"sangha/internal/models"
	"sangha/internal/observability"
	"sangha/internal/repository"
)

// Vote transitions reported to metrics and logs.
const (
	transitionAdded    = "added"
	transitionRemoved  = "removed"
	transitionSwitched = "switched"
)

type VoteService struct {
	uow        repository.UnitOfWork
	votes      repository.VoteRepository
	questions  repository.QuestionRepository
	answers    repository.AnswerRepository
	reputation *ReputationService
}

type VoteInput struct {
	TargetType models.VoteTargetType
	TargetID   uint
	UserID     uint
	Direction  models.VoteDirection
}

func NewVoteService(
	uow repository.UnitOfWork,
	votes repository.VoteRepository,
	questions repository.QuestionRepository,
	answers repository.AnswerRepository,
	reputation *ReputationService,
) *VoteService {
	return &VoteService{
		uow:        uow,
		votes:      votes,
		questions:  questions,
		answers:    answers,
		reputation: reputation,
	}
}

// HandleVote toggles the user's vote on a question or answer and credits the target's
// author. Voting the same direction twice withdraws the vote. Voting the other direction
// moves the user across and reverses the earlier credit first.
func (s *VoteService) HandleVote(ctx context.Context, in VoteInput) (models.VoteSummary, error) {
	if !in.TargetType.Valid() {
		return models.VoteSummary{}, models.NewBadRequestError("invalid vote target")
	}
	if !in.Direction.Valid() {
		return models.VoteSummary{}, models.NewBadRequestError("invalid vote direction")
	}
	action, err := models.VoteAction(in.TargetType, in.Direction)
	if err != nil {
		return models.VoteSummary{}, models.NewBadRequestError(err.Error())
	}
	oppositeAction, err := models.VoteAction(in.TargetType, in.Direction.Opposite())
	if err != nil {
		return models.VoteSummary{}, models.NewBadRequestError(err.Error())
	}

	ctx, span := observability.StartSpan(ctx, "vote", "HandleVote")
	var (
		summary    models.VoteSummary
		authorID   uint
		transition string
	)
	err = s.uow.Do(ctx, func(r *repository.Repositories) error {
		var err error
		authorID, err = targetAuthor(ctx, r, in.TargetType, in.TargetID)
		if err != nil {
			return err
		}
		if authorID == in.UserID {
			return models.NewForbiddenError("you cannot vote on your own post")
		}

		vote, err := r.Votes.GetOrCreateForUpdate(ctx, in.TargetType, in.TargetID)
		if err != nil {
			return err
		}
		cast, err := r.Votes.FindCast(ctx, vote.ID, in.UserID)
		if err != nil {
			return err
		}

		switch {
		case cast != nil && cast.Direction == in.Direction:
			transition = transitionRemoved
			if err := r.Votes.RemoveCast(ctx, cast.ID); err != nil {
				return err
			}
			up, down := countDelta(in.Direction, -1)
			if err := r.Votes.AdjustCounts(ctx, vote.ID, up, down); err != nil {
				return err
			}
			if _, err := s.reputation.UpdateReputationIn(ctx, r, authorID, action, true); err != nil {
				return err
			}

		case cast != nil:
			transition = transitionSwitched
			if _, err := s.reputation.UpdateReputationIn(ctx, r, authorID, oppositeAction, true); err != nil {
				return err
			}
			if err := r.Votes.SwitchCast(ctx, cast.ID, in.Direction); err != nil {
				return err
			}
			up, down := countDelta(in.Direction, 1)
			oppUp, oppDown := countDelta(cast.Direction, -1)
			if err := r.Votes.AdjustCounts(ctx, vote.ID, up+oppUp, down+oppDown); err != nil {
				return err
			}
			if _, err := s.reputation.UpdateReputationIn(ctx, r, authorID, action, false); err != nil {
				return err
			}

		default:
			transition = transitionAdded
			if err := r.Votes.AddCast(ctx, vote.ID, in.UserID, in.Direction); err != nil {
				return err
			}
			up, down := countDelta(in.Direction, 1)
			if err := r.Votes.AdjustCounts(ctx, vote.ID, up, down); err != nil {
				return err
			}
			if _, err := s.reputation.UpdateReputationIn(ctx, r, authorID, action, false); err != nil {
				return err
			}
		}

		summary, err = r.Votes.Summary(ctx, in.TargetType, in.TargetID, in.UserID)
		return err
	})
	observability.EndSpan(span, err)
	if err != nil {
		return models.VoteSummary{}, err
	}

	s.reputation.InvalidateCache(ctx, authorID)
	cache.InvalidateVoteSummary(ctx, string(in.TargetType), in.TargetID)
	observability.VotesTotal.WithLabelValues(string(in.TargetType), transition).Inc()
	middleware.Logger.InfoContext(ctx, "vote applied",
		slog.String("target_type", string(in.TargetType)),
		slog.Uint64("target_id", uint64(in.TargetID)),
		slog.Uint64("user_id", uint64(in.UserID)),
		slog.String("direction", string(in.Direction)),
		slog.String("transition", transition))
	return summary, nil
}

// GetSummary returns the target's counters and the viewer's flags without mutating
// anything. Anonymous summaries are cached.
func (s *VoteService) GetSummary(ctx context.Context, targetType models.VoteTargetType, targetID, viewerID uint) (models.VoteSummary, error) {
	if !targetType.Valid() {
		return models.VoteSummary{}, models.NewBadRequestError("invalid vote target")
	}
	if _, err := targetAuthor(ctx, &repository.Repositories{Questions: s.questions, Answers: s.answers}, targetType, targetID); err != nil {
		return models.VoteSummary{}, err
	}
	if viewerID != 0 {
		return s.votes.Summary(ctx, targetType, targetID, viewerID)
	}

	var summary models.VoteSummary
	err := cache.Aside(ctx, cache.VoteSummaryKey(string(targetType), targetID), &summary, cache.VoteSummaryTTL, func() error {
		var err error
		summary, err = s.votes.Summary(ctx, targetType, targetID, 0)
		return err
	})
	return summary, err
}

// Summaries returns summaries for many targets of one type.
func (s *VoteService) Summaries(ctx context.Context, targetType models.VoteTargetType, targetIDs []uint, viewerID uint) (map[uint]models.VoteSummary, error) {
	return s.votes.Summaries(ctx, targetType, targetIDs, viewerID)
}

func targetAuthor(ctx context.Context, r *repository.Repositories, targetType models.VoteTargetType, targetID uint) (uint, error) {
	switch targetType {
	case models.VoteTargetQuestion:
		return r.Questions.GetAuthorID(ctx, targetID)
	case models.VoteTargetAnswer:
		return r.Answers.GetAuthorID(ctx, targetID)
	}
	return 0, models.NewBadRequestError("invalid vote target")
}

// countDelta maps a direction and a step onto (upvote, downvote) counter deltas.
func countDelta(direction models.VoteDirection, step int64) (int64, int64) {
	if direction == models.VoteUp {
		return step, 0
	}
	return 0, step
}
