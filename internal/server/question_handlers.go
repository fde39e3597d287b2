package server

import (
	"sangha/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createQuestionRequest struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	CategoryIDs []uint `json:"categoryIds"`
}

type createAnswerRequest struct {
	Body string `json:"body"`
}

// GetQuestions handles GET /api/questions
// @Summary List questions
// @Tags questions
// @Produce json
// @Param category query string false "Category slug"
// @Param author query int false "Author ID"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Question
// @Router /questions [get]
func (s *Server) GetQuestions(c *fiber.Ctx) error {
	page := parsePagination(c, defaultPaginationLimit)
	questions, err := s.questionService.List(c.UserContext(), service.ListQuestionsInput{
		CategorySlug: c.Query("category"),
		AuthorID:     uint(max(c.QueryInt("author", 0), 0)),
		Limit:        page.Limit,
		Offset:       page.Offset,
		ViewerID:     currentUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(questions)
}

// GetQuestion handles GET /api/questions/:id
// @Summary Question with answers
// @Description Includes answers and vote summaries personalised for the caller
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} models.Question
// @Failure 404 {object} models.ErrorResponse
// @Router /questions/{id} [get]
func (s *Server) GetQuestion(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	question, err := s.questionService.Get(c.UserContext(), id, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(question)
}

// CreateQuestion handles POST /api/questions
// @Summary Ask a question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body createQuestionRequest true "Question"
// @Success 201 {object} models.Question
// @Failure 400 {object} models.ErrorResponse
// @Router /questions [post]
func (s *Server) CreateQuestion(c *fiber.Ctx) error {
	var req createQuestionRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	question, err := s.questionService.Create(c.UserContext(), service.CreateQuestionInput{
		AuthorID:    currentUserID(c),
		Title:       req.Title,
		Body:        req.Body,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(question)
}

// DeleteQuestion handles DELETE /api/questions/:id
// @Summary Delete a question
// @Description Removes the question with its answers, votes, follows and notifications
// @Tags questions
// @Param id path int true "Question ID"
// @Success 204
// @Failure 403 {object} models.ErrorResponse "Not the author"
// @Failure 404 {object} models.ErrorResponse
// @Router /questions/{id} [delete]
func (s *Server) DeleteQuestion(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.questionService.Delete(c.UserContext(), currentUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateAnswer handles POST /api/questions/:id/answers
// @Summary Answer a question
// @Tags answers
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param request body createAnswerRequest true "Answer"
// @Success 201 {object} models.Answer
// @Failure 404 {object} models.ErrorResponse
// @Router /questions/{id}/answers [post]
func (s *Server) CreateAnswer(c *fiber.Ctx) error {
	questionID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req createAnswerRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	answer, err := s.answerService.Create(c.UserContext(), service.CreateAnswerInput{
		QuestionID: questionID,
		AuthorID:   currentUserID(c),
		Body:       req.Body,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(answer)
}

// DeleteAnswer handles DELETE /api/answers/:id
// @Summary Delete an answer
// @Tags answers
// @Param id path int true "Answer ID"
// @Success 204
// @Failure 403 {object} models.ErrorResponse "Not the author"
// @Router /answers/{id} [delete]
func (s *Server) DeleteAnswer(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.answerService.Delete(c.UserContext(), currentUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
