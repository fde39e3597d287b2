package server

import (
	"sangha/internal/models"

	"github.com/gofiber/fiber/v2"
)

// FollowQuestion handles POST /api/questions/:id/follow
// @Summary Follow a question
// @Description Subscribes the caller to NEW_ANSWER notifications for the question
// @Tags follows
// @Produce json
// @Param id path int true "Question ID"
// @Success 201 {object} models.Follow
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Already following"
// @Router /questions/{id}/follow [post]
func (s *Server) FollowQuestion(c *fiber.Ctx) error {
	return s.follow(c, models.FollowingQuestion)
}

// UnfollowQuestion handles POST /api/questions/:id/unfollow
// @Summary Unfollow a question
// @Tags follows
// @Param id path int true "Question ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse "Not following"
// @Router /questions/{id}/unfollow [post]
func (s *Server) UnfollowQuestion(c *fiber.Ctx) error {
	return s.unfollow(c, models.FollowingQuestion)
}

// FollowUser handles POST /api/follow/:id/follow
// @Summary Follow a user
// @Tags follows
// @Produce json
// @Param id path int true "User ID"
// @Success 201 {object} models.Follow
// @Failure 400 {object} models.ErrorResponse "Following yourself"
// @Failure 409 {object} models.ErrorResponse "Already following"
// @Router /follow/{id}/follow [post]
func (s *Server) FollowUser(c *fiber.Ctx) error {
	return s.follow(c, models.FollowingUser)
}

// UnfollowUser handles POST /api/follow/:id/unfollow
// @Summary Unfollow a user
// @Tags follows
// @Param id path int true "User ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse "Not following"
// @Router /follow/{id}/unfollow [post]
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	return s.unfollow(c, models.FollowingUser)
}

// FollowCategory handles POST /api/categories/:id/follow
// @Summary Follow a category
// @Tags follows
// @Produce json
// @Param id path int true "Category ID"
// @Success 201 {object} models.Follow
// @Router /categories/{id}/follow [post]
func (s *Server) FollowCategory(c *fiber.Ctx) error {
	return s.follow(c, models.FollowingCategory)
}

// UnfollowCategory handles POST /api/categories/:id/unfollow
// @Summary Unfollow a category
// @Tags follows
// @Param id path int true "Category ID"
// @Success 204
// @Router /categories/{id}/unfollow [post]
func (s *Server) UnfollowCategory(c *fiber.Ctx) error {
	return s.unfollow(c, models.FollowingCategory)
}

func (s *Server) follow(c *fiber.Ctx, followingType models.FollowingType) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	edge, err := s.followService.Follow(c.UserContext(), currentUserID(c), followingType, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(edge)
}

func (s *Server) unfollow(c *fiber.Ctx, followingType models.FollowingType) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.followService.Unfollow(c.UserContext(), currentUserID(c), followingType, id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetUserFollowers handles GET /api/users/:id/followers
// @Summary List a user's followers
// @Tags follows
// @Produce json
// @Param id path int true "User ID"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} models.UserSummary
// @Router /users/{id}/followers [get]
func (s *Server) GetUserFollowers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, defaultPaginationLimit)
	users, err := s.followService.Followers(c.UserContext(), models.FollowingUser, id, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, u.Summary())
	}
	return c.JSON(out)
}

// GetUserFollowing handles GET /api/users/:id/following
// @Summary List what a user follows
// @Tags follows
// @Produce json
// @Param id path int true "User ID"
// @Param type query string false "User, Category or Question"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Follow
// @Router /users/{id}/following [get]
func (s *Server) GetUserFollowing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, defaultPaginationLimit)
	edges, err := s.followService.Following(c.UserContext(), id, models.FollowingType(c.Query("type")), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(edges)
}
