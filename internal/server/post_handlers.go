// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"stackwiser/internal/models"
	"stackwiser/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/v1/post/createpost
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:  requesterID(c),
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post created successfully",
		"post":    post,
	})
}

// GetPosts handles GET /api/v1/post/viewpost
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page := parsePageQuery(c)

	result, err := s.postService.ListPosts(c.Context(), service.ListPostsInput{
		UserID: requesterID(c),
		Page:   page.Page,
		Limit:  page.Limit,
	})
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Posts retrieved successfully",
		"currentPage": result.CurrentPage,
		"totalPages":  result.TotalPages,
		"totalPosts":  result.TotalPosts,
		"posts":       result.Posts,
	})
}

// GetPost handles GET /api/v1/post/viewpost/:postId
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), requesterID(c), postID)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post retrieved successfully",
		"post":    post,
	})
}

// UpdatePost handles PUT /api/v1/post/updatepost/:postId
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:  requesterID(c),
		PostID:  postID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post updated successfully",
		"post":    post,
	})
}

// DeletePost handles DELETE /api/v1/post/deletepost/:postId
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), requesterID(c), postID); err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}

// SearchPosts handles GET /api/v1/post/searchpost.
// Criteria arrive in the JSON body; query parameters are accepted as a
// fallback for clients that cannot send a GET body.
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	// A GET without a body is fine; the service validates the criteria.
	_ = c.BodyParser(&req)
	if req.Title == "" {
		req.Title = c.Query("title")
	}
	if req.Content == "" {
		req.Content = c.Query("content")
	}

	posts, err := s.postService.SearchPosts(c.Context(), service.SearchPostsInput{
		UserID:  requesterID(c),
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Posts retrieved successfully",
		"posts":   posts,
	})
}

// SearchByAuthor handles GET /api/v1/post/searchbyauthor
func (s *Server) SearchByAuthor(c *fiber.Ctx) error {
	var req struct {
		FirstName string `json:"firstName"`
	}
	_ = c.BodyParser(&req)
	if req.FirstName == "" {
		req.FirstName = c.Query("firstName")
	}

	page := parsePageQuery(c)

	result, err := s.postService.SearchByAuthor(c.Context(), service.SearchByAuthorInput{
		UserID:    requesterID(c),
		FirstName: req.FirstName,
		Page:      page.Page,
		Limit:     page.Limit,
	})
	if err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":     "Posts retrieved successfully",
		"currentPage": result.CurrentPage,
		"totalPages":  result.TotalPages,
		"totalPosts":  result.TotalPosts,
		"posts":       result.Posts,
	})
}
