package server

import (
	"sangha/internal/featureflags"
	"sangha/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetReputation handles GET /api/reputation/:userId
// @Summary Author reputation
// @Description Returns {author, score}; authors who never scored have 0
// @Tags reputation
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} service.ReputationView
// @Failure 404 {object} models.ErrorResponse
// @Router /reputation/{userId} [get]
func (s *Server) GetReputation(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	view, err := s.reputationService.GetReputation(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// GetReputationHistory handles GET /api/reputation/:userId/history
// @Summary Reputation ledger entries
// @Tags reputation
// @Produce json
// @Param userId path int true "User ID"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} models.ReputationEvent
// @Router /reputation/{userId}/history [get]
func (s *Server) GetReputationHistory(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	page := parsePagination(c, defaultPaginationLimit)
	events, err := s.reputationService.History(c.UserContext(), userID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(events)
}

// GetLeaderboard handles GET /api/reputation/leaderboard
// @Summary Top authors by reputation
// @Tags reputation
// @Produce json
// @Param limit query int false "Number of entries (max 100)"
// @Success 200 {array} service.LeaderboardEntry
// @Failure 404 {object} models.ErrorResponse "Leaderboard disabled"
// @Router /reputation/leaderboard [get]
func (s *Server) GetLeaderboard(c *fiber.Ctx) error {
	if !s.featureFlags.Enabled(featureflags.ReputationLeaderboard, currentUserID(c)) {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Feature", featureflags.ReputationLeaderboard))
	}
	entries, err := s.reputationService.Leaderboard(c.UserContext(), c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}
