// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"stackwiser/internal/models"
	"stackwiser/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /api/v1/comment/createcomment/:postId
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID:  requesterID(c),
		PostID:  postID,
		Content: req.Content,
	})
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Comment created successfully",
		"comment": comment.Content,
	})
}

// GetComments handles GET /api/v1/comment/viewcomment/:postId
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	page := parsePageQuery(c)

	result, err := s.commentService.ListComments(c.Context(), service.ListCommentsInput{
		UserID: requesterID(c),
		PostID: postID,
		Page:   page.Page,
		Limit:  page.Limit,
	})
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Comments fetched successfully",
		"comments":      result.Comments,
		"page":          result.Page,
		"totalPages":    result.TotalPages,
		"totalComments": result.TotalComments,
	})
}

// GetComment handles GET /api/v1/comment/viewcommentById/:commentId
func (s *Server) GetComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetComment(c.Context(), requesterID(c), commentID)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Comment fetched successfully",
		"comment": comment,
	})
}

// UpdateComment handles PUT /api/v1/comment/updatecomment/:commentId
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.Context(), service.UpdateCommentInput{
		UserID:    requesterID(c),
		CommentID: commentID,
		Content:   req.Content,
	})
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Comment updated successfully",
		"comment": comment,
	})
}

// DeleteComment handles DELETE /api/v1/comment/deletecomment/:commentId
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), requesterID(c), commentID); err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Comment deleted successfully",
	})
}
