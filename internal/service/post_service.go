package service

import (
	"context"

	"stackwiser/internal/models"
	"stackwiser/internal/repository"
)

const defaultPageLimit = 10

type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

type CreatePostInput struct {
	UserID  uint
	Title   string
	Content string
}

type ListPostsInput struct {
	UserID uint
	Page   int
	Limit  int
}

type UpdatePostInput struct {
	UserID  uint
	PostID  uint
	Title   string
	Content string
}

type SearchPostsInput struct {
	UserID  uint
	Title   string
	Content string
}

type SearchByAuthorInput struct {
	UserID    uint
	FirstName string
	Page      int
	Limit     int
}

// PostPage is a paginated slice of posts with page metadata.
type PostPage struct {
	Posts       []models.Post `json:"posts"`
	CurrentPage int           `json:"currentPage"`
	TotalPages  int           `json:"totalPages"`
	TotalPosts  int64         `json:"totalPosts"`
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// requireUser resolves the requester and enforces the `user` role.
// A missing requester is NotFound; a non-user role is Forbidden.
func (s *PostService) requireUser(ctx context.Context, userID uint, action string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !hasRole(user, models.RoleUser) {
		return nil, models.NewForbiddenError("Only users can " + action)
	}
	return user, nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	user, err := s.requireUser(ctx, in.UserID, "create a post")
	if err != nil {
		return nil, err
	}

	if in.Title == "" || in.Content == "" {
		return nil, models.NewValidationError("Title and content are required")
	}

	post := &models.Post{
		Title:   in.Title,
		Content: in.Content,
		UserID:  user.ID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) (*PostPage, error) {
	if _, err := s.requireUser(ctx, in.UserID, "view posts"); err != nil {
		return nil, err
	}

	page, limit := normalizePage(in.Page, in.Limit)

	posts, err := s.postRepo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &PostPage{
		Posts:       posts,
		CurrentPage: page,
		TotalPages:  totalPages(total, limit),
		TotalPosts:  total,
	}, nil
}

func (s *PostService) GetPost(ctx context.Context, userID, postID uint) (*models.Post, error) {
	if _, err := s.requireUser(ctx, userID, "view posts"); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, postID)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	user, err := s.requireUser(ctx, in.UserID, "update posts")
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !canMutate(user.ID, post.UserID) {
		return nil, models.NewForbiddenError("Only the author can update the post")
	}

	if in.Title != "" {
		post.Title = in.Title
	}
	if in.Content != "" {
		post.Content = in.Content
	}
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	user, err := s.requireUser(ctx, userID, "delete posts")
	if err != nil {
		return err
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if !canMutate(user.ID, post.UserID) {
		return models.NewForbiddenError("Only the author can delete the post")
	}

	return s.postRepo.Delete(ctx, postID)
}

// SearchPosts matches title or content case-insensitively, OR-combined.
// An empty result is not an error.
func (s *PostService) SearchPosts(ctx context.Context, in SearchPostsInput) ([]models.Post, error) {
	if _, err := s.requireUser(ctx, in.UserID, "search posts"); err != nil {
		return nil, err
	}

	if in.Title == "" && in.Content == "" {
		return nil, models.NewValidationError("Title or content must be provided for search")
	}

	posts, err := s.postRepo.Search(ctx, in.Title, in.Content)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

func (s *PostService) SearchByAuthor(ctx context.Context, in SearchByAuthorInput) (*PostPage, error) {
	if _, err := s.requireUser(ctx, in.UserID, "search posts"); err != nil {
		return nil, err
	}

	if in.FirstName == "" {
		return nil, models.NewValidationError("Author is required for search")
	}

	authors, err := s.userRepo.SearchByFirstName(ctx, in.FirstName)
	if err != nil {
		return nil, err
	}
	if len(authors) == 0 {
		return nil, models.NewNotFoundError("No users found with the specified author name")
	}

	authorIDs := make([]uint, 0, len(authors))
	for _, a := range authors {
		authorIDs = append(authorIDs, a.ID)
	}

	page, limit := normalizePage(in.Page, in.Limit)

	posts, err := s.postRepo.ListByAuthors(ctx, authorIDs, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, models.NewNotFoundError("No posts found for the specified author(s)")
	}
	total, err := s.postRepo.CountByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	return &PostPage{
		Posts:       posts,
		CurrentPage: page,
		TotalPages:  totalPages(total, limit),
		TotalPosts:  total,
	}, nil
}

func normalizePage(page, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	return page, limit
}

// totalPages is ceil(total/limit).
func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
