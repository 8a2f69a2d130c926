package service

import (
	"context"
	"errors"
	"testing"

	"stackwiser/internal/mail"
	"stackwiser/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn           func(context.Context, uint) (*models.User, error)
	findByEmailFn       func(context.Context, string) (*models.User, error)
	findByPhoneFn       func(context.Context, string) (*models.User, error)
	searchByFirstNameFn func(context.Context, string) ([]models.User, error)
	createFn            func(context.Context, *models.User) error
	updateFn            func(context.Context, *models.User) error
	deleteFn            func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findByEmailFn(ctx, email)
}
func (s *userRepoStub) FindByPhoneNumber(ctx context.Context, phone string) (*models.User, error) {
	return s.findByPhoneFn(ctx, phone)
}
func (s *userRepoStub) SearchByFirstName(ctx context.Context, firstName string) ([]models.User, error) {
	return s.searchByFirstNameFn(ctx, firstName)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, _ uint) (*models.User, error) {
			return &models.User{ID: 1, Role: models.RoleUser, IsActive: true}, nil
		},
		findByEmailFn:       func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		findByPhoneFn:       func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		searchByFirstNameFn: func(_ context.Context, _ string) ([]models.User, error) { return nil, nil },
		createFn:            func(_ context.Context, _ *models.User) error { return nil },
		updateFn:            func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:            func(_ context.Context, _ uint) error { return nil },
	}
}

// tokenRepoStub is a stub for repository.TokenRepository.
type tokenRepoStub struct {
	createFn              func(context.Context, *models.Token) error
	findBySecretFn        func(context.Context, string) (*models.Token, error)
	findBySecretAndTypeFn func(context.Context, string, string) (*models.Token, error)
	deleteBySecretFn      func(context.Context, string) error
}

func (s *tokenRepoStub) Create(ctx context.Context, token *models.Token) error {
	return s.createFn(ctx, token)
}
func (s *tokenRepoStub) FindBySecret(ctx context.Context, secret string) (*models.Token, error) {
	return s.findBySecretFn(ctx, secret)
}
func (s *tokenRepoStub) FindBySecretAndType(ctx context.Context, secret, tokenType string) (*models.Token, error) {
	return s.findBySecretAndTypeFn(ctx, secret, tokenType)
}
func (s *tokenRepoStub) DeleteBySecret(ctx context.Context, secret string) error {
	return s.deleteBySecretFn(ctx, secret)
}

func noopTokenRepo() *tokenRepoStub {
	return &tokenRepoStub{
		createFn:              func(_ context.Context, _ *models.Token) error { return nil },
		findBySecretFn:        func(_ context.Context, _ string) (*models.Token, error) { return nil, nil },
		findBySecretAndTypeFn: func(_ context.Context, _, _ string) (*models.Token, error) { return nil, nil },
		deleteBySecretFn:      func(_ context.Context, _ string) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn         func(context.Context, *models.Post) error
	getByIDFn        func(context.Context, uint) (*models.Post, error)
	listFn           func(context.Context, int, int) ([]models.Post, error)
	countFn          func(context.Context) (int64, error)
	searchFn         func(context.Context, string, string) ([]models.Post, error)
	listByAuthorsFn  func(context.Context, []uint, int, int) ([]models.Post, error)
	countByAuthorsFn func(context.Context, []uint) (int64, error)
	updateFn         func(context.Context, *models.Post) error
	deleteFn         func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]models.Post, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *postRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}
func (s *postRepoStub) Search(ctx context.Context, title, content string) ([]models.Post, error) {
	return s.searchFn(ctx, title, content)
}
func (s *postRepoStub) ListByAuthors(ctx context.Context, authorIDs []uint, limit, offset int) ([]models.Post, error) {
	return s.listByAuthorsFn(ctx, authorIDs, limit, offset)
}
func (s *postRepoStub) CountByAuthors(ctx context.Context, authorIDs []uint) (int64, error) {
	return s.countByAuthorsFn(ctx, authorIDs)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:         func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:        func(_ context.Context, _ uint) (*models.Post, error) { return &models.Post{ID: 1}, nil },
		listFn:           func(_ context.Context, _, _ int) ([]models.Post, error) { return nil, nil },
		countFn:          func(_ context.Context) (int64, error) { return 0, nil },
		searchFn:         func(_ context.Context, _, _ string) ([]models.Post, error) { return nil, nil },
		listByAuthorsFn:  func(_ context.Context, _ []uint, _, _ int) ([]models.Post, error) { return nil, nil },
		countByAuthorsFn: func(_ context.Context, _ []uint) (int64, error) { return 0, nil },
		updateFn:         func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	getByIDFn     func(context.Context, uint) (*models.Comment, error)
	listByPostFn  func(context.Context, uint, int, int) ([]models.Comment, error)
	countByPostFn func(context.Context, uint) (int64, error)
	updateFn      func(context.Context, *models.Comment) error
	deleteFn      func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPostFn(ctx, postID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:      func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:     func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{ID: 1}, nil },
		listByPostFn:  func(_ context.Context, _ uint, _, _ int) ([]models.Comment, error) { return nil, nil },
		countByPostFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		updateFn:      func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:      func(_ context.Context, _ uint) error { return nil },
	}
}

// recordingMailer captures outgoing messages instead of sending them.
type recordingMailer struct {
	sent []mail.Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

// assertAppError asserts that err is an AppError with the given code.
func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}
