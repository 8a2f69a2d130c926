package repository

import (
	"context"
	"errors"

	"stackwiser/internal/models"

	"gorm.io/gorm"
)

// TokenRepository defines persistence operations for single-use tokens.
type TokenRepository interface {
	Create(ctx context.Context, token *models.Token) error
	FindBySecret(ctx context.Context, secret string) (*models.Token, error)
	FindBySecretAndType(ctx context.Context, secret, tokenType string) (*models.Token, error)
	DeleteBySecret(ctx context.Context, secret string) error
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository returns a new TokenRepository implementation.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *models.Token) error {
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Token already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *tokenRepository) FindBySecret(ctx context.Context, secret string) (*models.Token, error) {
	var token models.Token
	if err := r.db.WithContext(ctx).Where("token = ?", secret).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &token, nil
}

func (r *tokenRepository) FindBySecretAndType(ctx context.Context, secret, tokenType string) (*models.Token, error) {
	var token models.Token
	if err := r.db.WithContext(ctx).
		Where("token = ? AND type = ?", secret, tokenType).
		First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &token, nil
}

func (r *tokenRepository) DeleteBySecret(ctx context.Context, secret string) error {
	if err := r.db.WithContext(ctx).
		Where("token = ?", secret).
		Delete(&models.Token{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
