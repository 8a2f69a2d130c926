package service

import (
	"context"

	"stackwiser/internal/models"
	"stackwiser/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

type CreateCommentInput struct {
	UserID  uint
	PostID  uint
	Content string
}

type ListCommentsInput struct {
	UserID uint
	PostID uint
	Page   int
	Limit  int
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Content   string
}

// CommentPage is a paginated slice of comments with page metadata.
type CommentPage struct {
	Comments      []models.Comment `json:"comments"`
	Page          int              `json:"page"`
	TotalPages    int              `json:"totalPages"`
	TotalComments int64            `json:"totalComments"`
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// requireCommenter enforces the `user` role. Comment operations report role
// failures as Unauthorized rather than Forbidden.
func (s *CommentService) requireCommenter(ctx context.Context, userID uint, message string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !hasRole(user, models.RoleUser) {
		return nil, models.NewUnauthorizedError(message)
	}
	return user, nil
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	user, err := s.requireCommenter(ctx, in.UserID, "Unauthorized, you cannot comment on this user's post")
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	comment := &models.Comment{
		Content: in.Content,
		UserID:  user.ID,
		PostID:  post.ID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *CommentService) ListComments(ctx context.Context, in ListCommentsInput) (*CommentPage, error) {
	if _, err := s.requireCommenter(ctx, in.UserID, "Unauthorized, you cannot view comments on this post"); err != nil {
		return nil, err
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	page, limit := normalizePage(in.Page, in.Limit)

	comments, err := s.commentRepo.ListByPost(ctx, in.PostID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	total, err := s.commentRepo.CountByPost(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	return &CommentPage{
		Comments:      comments,
		Page:          page,
		TotalPages:    totalPages(total, limit),
		TotalComments: total,
	}, nil
}

func (s *CommentService) GetComment(ctx context.Context, userID, commentID uint) (*models.Comment, error) {
	if _, err := s.requireCommenter(ctx, userID, "Unauthorized, you cannot view this comment"); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, commentID)
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	user, err := s.requireCommenter(ctx, in.UserID, "Unauthorized, you cannot update this comment")
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if !canMutate(user.ID, comment.UserID) {
		return nil, models.NewUnauthorizedError("Unauthorized, only the author can update this comment")
	}
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	comment.Content = in.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	user, err := s.requireCommenter(ctx, userID, "Unauthorized, only the author can delete this comment")
	if err != nil {
		return err
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if !canMutate(user.ID, comment.UserID) {
		return models.NewUnauthorizedError("Unauthorized, only the author can delete this comment")
	}

	return s.commentRepo.Delete(ctx, commentID)
}
