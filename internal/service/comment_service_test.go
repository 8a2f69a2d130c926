package service

import (
	"context"
	"testing"

	"stackwiser/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommentService(commentRepo *commentRepoStub, postRepo *postRepoStub, userRepo *userRepoStub) *CommentService {
	return NewCommentService(commentRepo, postRepo, userRepo)
}

func TestCreateComment_Success(t *testing.T) {
	commentRepo := noopCommentRepo()
	var created *models.Comment
	commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 21
		created = c
		return nil
	}

	svc := newTestCommentService(commentRepo, noopPostRepo(), noopUserRepo())

	comment, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID:  1,
		PostID:  8,
		Content: "nice post",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint(21), comment.ID)
	assert.Equal(t, "nice post", comment.Content)
	assert.Equal(t, uint(1), comment.UserID)
}

func TestCreateComment_NonUserRole(t *testing.T) {
	svc := newTestCommentService(noopCommentRepo(), noopPostRepo(), adminUserRepo())

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID:  1,
		PostID:  8,
		Content: "nice post",
	})
	assertAppError(t, err, models.CodeUnauthorized)
	assert.Contains(t, err.Error(), "you cannot comment on this user's post")
}

func TestCreateComment_MissingPost(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post not found")
	}

	svc := newTestCommentService(noopCommentRepo(), postRepo, noopUserRepo())

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID:  1,
		PostID:  404,
		Content: "nice post",
	})
	assertAppError(t, err, models.CodeNotFound)
	assert.Contains(t, err.Error(), "Post not found")
}

func TestCreateComment_EmptyContent(t *testing.T) {
	svc := newTestCommentService(noopCommentRepo(), noopPostRepo(), noopUserRepo())

	_, err := svc.CreateComment(context.Background(), CreateCommentInput{UserID: 1, PostID: 8})
	assertAppError(t, err, models.CodeValidation)
	assert.Contains(t, err.Error(), "Content is required")
}

func TestListComments_PaginationMath(t *testing.T) {
	commentRepo := noopCommentRepo()
	var gotLimit, gotOffset int
	commentRepo.listByPostFn = func(_ context.Context, _ uint, limit, offset int) ([]models.Comment, error) {
		gotLimit, gotOffset = limit, offset
		return []models.Comment{{ID: 1}}, nil
	}
	commentRepo.countByPostFn = func(_ context.Context, _ uint) (int64, error) { return 15, nil }

	svc := newTestCommentService(commentRepo, noopPostRepo(), noopUserRepo())

	page, err := svc.ListComments(context.Background(), ListCommentsInput{
		UserID: 1, PostID: 8, Page: 2, Limit: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, gotLimit)
	assert.Equal(t, 7, gotOffset)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(15), page.TotalComments)
}

func TestListComments_MissingPost(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post not found")
	}

	svc := newTestCommentService(noopCommentRepo(), postRepo, noopUserRepo())

	_, err := svc.ListComments(context.Background(), ListCommentsInput{UserID: 1, PostID: 404})
	assertAppError(t, err, models.CodeNotFound)
}

func TestGetComment_MissingComment(t *testing.T) {
	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) {
		return nil, models.NewNotFoundError("Comment not found")
	}

	svc := newTestCommentService(commentRepo, noopPostRepo(), noopUserRepo())

	_, err := svc.GetComment(context.Background(), 1, 404)
	assertAppError(t, err, models.CodeNotFound)
	assert.Contains(t, err.Error(), "Comment not found")
}

func TestUpdateComment_OnlyAuthor(t *testing.T) {
	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: 42, Content: "original"}, nil
	}

	svc := newTestCommentService(commentRepo, noopPostRepo(), noopUserRepo())

	_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
		UserID:    1,
		CommentID: 21,
		Content:   "edited",
	})
	assertAppError(t, err, models.CodeUnauthorized)
	assert.Contains(t, err.Error(), "only the author can update this comment")
}

func TestUpdateComment_Success(t *testing.T) {
	commentRepo := noopCommentRepo()
	stored := &models.Comment{ID: 21, UserID: 1, Content: "original"}
	commentRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) { return stored, nil }
	var updated *models.Comment
	commentRepo.updateFn = func(_ context.Context, c *models.Comment) error {
		updated = c
		return nil
	}

	svc := newTestCommentService(commentRepo, noopPostRepo(), noopUserRepo())

	_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{
		UserID:    1,
		CommentID: 21,
		Content:   "edited",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "edited", updated.Content)
}

func TestUpdateComment_EmptyContent(t *testing.T) {
	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: 1, Content: "original"}, nil
	}

	svc := newTestCommentService(commentRepo, noopPostRepo(), noopUserRepo())

	_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{UserID: 1, CommentID: 21})
	assertAppError(t, err, models.CodeValidation)
	assert.Contains(t, err.Error(), "Content is required")
}

func TestDeleteComment_OnlyAuthor(t *testing.T) {
	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: 42}, nil
	}

	svc := newTestCommentService(commentRepo, noopPostRepo(), noopUserRepo())

	err := svc.DeleteComment(context.Background(), 1, 21)
	assertAppError(t, err, models.CodeUnauthorized)
	assert.Contains(t, err.Error(), "only the author can delete this comment")
}

func TestDeleteComment_Success(t *testing.T) {
	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: 1}, nil
	}
	deleted := false
	commentRepo.deleteFn = func(_ context.Context, _ uint) error {
		deleted = true
		return nil
	}

	svc := newTestCommentService(commentRepo, noopPostRepo(), noopUserRepo())

	err := svc.DeleteComment(context.Background(), 1, 21)
	require.NoError(t, err)
	assert.True(t, deleted)
}
