package server

import (
	"sangha/internal/models"
	"sangha/internal/service"

	"github.com/gofiber/fiber/v2"
)

// voteHandler serves POST /api/{questions,answers}/:id/{upvote,downvote}. Casting the
// same direction twice withdraws the vote.
//
// @Summary Vote on a question or answer
// @Description Toggles the caller's vote and returns the updated summary
// @Tags votes
// @Produce json
// @Param id path int true "Question or answer ID"
// @Success 200 {object} models.VoteSummary
// @Failure 403 {object} models.ErrorResponse "Voting on your own content"
// @Failure 404 {object} models.ErrorResponse
// @Router /questions/{id}/upvote [post]
// @Router /questions/{id}/downvote [post]
// @Router /answers/{id}/upvote [post]
// @Router /answers/{id}/downvote [post]
func (s *Server) voteHandler(targetType models.VoteTargetType, direction models.VoteDirection) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := s.parseID(c, "id")
		if err != nil {
			return nil
		}

		summary, err := s.voteService.HandleVote(c.UserContext(), service.VoteInput{
			TargetType: targetType,
			TargetID:   id,
			UserID:     currentUserID(c),
			Direction:  direction,
		})
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(summary)
	}
}

// GetQuestionVotes handles GET /api/questions/:id/votes
// @Summary Question vote summary
// @Tags votes
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} models.VoteSummary
// @Router /questions/{id}/votes [get]
func (s *Server) GetQuestionVotes(c *fiber.Ctx) error {
	return s.voteSummary(c, models.VoteTargetQuestion)
}

// GetAnswerVotes handles GET /api/answers/:id/votes
// @Summary Answer vote summary
// @Tags votes
// @Produce json
// @Param id path int true "Answer ID"
// @Success 200 {object} models.VoteSummary
// @Router /answers/{id}/votes [get]
func (s *Server) GetAnswerVotes(c *fiber.Ctx) error {
	return s.voteSummary(c, models.VoteTargetAnswer)
}

func (s *Server) voteSummary(c *fiber.Ctx, targetType models.VoteTargetType) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	summary, err := s.voteService.GetSummary(c.UserContext(), targetType, id, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
