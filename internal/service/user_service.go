package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"stackwiser/internal/mail"
	"stackwiser/internal/middleware"
	"stackwiser/internal/models"
	"stackwiser/internal/repository"
	"stackwiser/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// Byte lengths of the random secrets mailed to users.
const (
	verifySecretBytes = 16
	resetSecretBytes  = 3
)

type UserService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	mailer    mail.Sender

	appName       string
	verifyBaseURL string
	resetBaseURL  string

	// now is swappable in tests to exercise token expiry.
	now func() time.Time
}

type RegisterInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
	Password    string
}

type UpdateProfileInput struct {
	UserID      uint
	FirstName   string
	LastName    string
	PhoneNumber string
	Picture     string
}

type ResetPasswordInput struct {
	Token    string
	Password string
}

func NewUserService(
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	mailer mail.Sender,
	appName, verifyBaseURL, resetBaseURL string,
) *UserService {
	return &UserService{
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		mailer:        mailer,
		appName:       appName,
		verifyBaseURL: verifyBaseURL,
		resetBaseURL:  resetBaseURL,
		now:           time.Now,
	}
}

// Register validates the signup payload, creates an inactive user and mails a
// verification link. The email send is awaited; a failure after the user row
// exists is not compensated.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateName("firstName", in.FirstName); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateName("lastName", in.LastName); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	email := validation.NormalizeEmail(in.Email)
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePhoneNumber(in.PhoneNumber); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("User already exists")
	}

	phoneOwner, err := s.userRepo.FindByPhoneNumber(ctx, in.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if phoneOwner != nil {
		return nil, models.NewConflictError("Phone number already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		PhoneNumber: in.PhoneNumber,
		Email:       email,
		Password:    string(hashedPassword),
		Picture:     models.DefaultPicture,
		Role:        models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	secret, err := generateSecret(verifySecretBytes)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	token := &models.Token{
		Token:   secret,
		UserID:  user.ID,
		Type:    models.TokenTypeEmail,
		Expires: s.now().Add(models.TokenTTL),
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, err
	}

	msg, err := mail.VerificationMessage(s.appName, user.Email, user.FirstName, user.LastName, s.verifyBaseURL, secret)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return nil, models.NewInternalError(err)
	}

	return user, nil
}

// VerifyEmail consumes an email-type token and activates the owning account.
func (s *UserService) VerifyEmail(ctx context.Context, secret string) (*models.User, error) {
	token, err := s.tokenRepo.FindBySecret(ctx, secret)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, models.NewNotFoundError("Invalid token")
	}
	if token.Expired(s.now()) {
		return nil, models.NewExpiredError("Token has expired")
	}

	user, err := s.userRepo.GetByID(ctx, token.UserID)
	if err != nil {
		return nil, err
	}
	if user.IsActive {
		return nil, models.NewConflictError("Your account is already verified")
	}

	user.IsActive = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := s.tokenRepo.DeleteBySecret(ctx, secret); err != nil {
		return nil, err
	}

	// The account is already active; a confirmation mail failure is logged,
	// not surfaced.
	if msg, err := mail.ConfirmationMessage(s.appName, user.Email, user.FirstName); err == nil {
		if sendErr := s.mailer.Send(ctx, msg); sendErr != nil {
			middleware.Logger.WarnContext(ctx, "confirmation email failed",
				slog.String("email", user.Email),
				slog.String("error", sendErr.Error()),
			)
		}
	}

	return user, nil
}

// Login checks credentials and account state. JWT issuance is the caller's job.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User does not exist")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Incorrect credentials")
	}

	if !user.IsActive {
		return nil, models.NewForbiddenError("Your account is pending. kindly check your email inbox and verify it")
	}

	return user, nil
}

// ViewProfile returns the requester's full profile.
func (s *UserService) ViewProfile(ctx context.Context, requesterID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !hasRole(user, models.RoleUser, models.RoleAdmin) {
		return nil, models.NewForbiddenError("You must be registered to view your profile")
	}
	return user, nil
}

// UpdateProfile applies a partial update to the requester's profile.
// Each provided field is re-validated; absent fields are left unchanged.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !hasRole(user, models.RoleUser, models.RoleAdmin) {
		return nil, models.NewForbiddenError("You must be registered to update your profile")
	}

	if in.FirstName != "" {
		if err := validation.ValidateName("firstName", in.FirstName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		if err := validation.ValidateName("lastName", in.LastName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.LastName = in.LastName
	}
	if in.PhoneNumber != "" {
		if err := validation.ValidatePhoneNumber(in.PhoneNumber); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.PhoneNumber = in.PhoneNumber
	}
	if in.Picture != "" {
		user.Picture = in.Picture
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ForgotPassword issues a password-type token and mails the reset link.
// The secret never appears in the API response.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return models.NewNotFoundError("User with this email, not found")
	}

	secret, err := generateSecret(resetSecretBytes)
	if err != nil {
		return models.NewInternalError(err)
	}
	token := &models.Token{
		Token:   secret,
		UserID:  user.ID,
		Type:    models.TokenTypePassword,
		Expires: s.now().Add(models.TokenTTL),
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return err
	}

	msg, err := mail.ResetMessage(s.appName, user.Email, user.FirstName, s.resetBaseURL, secret)
	if err != nil {
		return models.NewInternalError(err)
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return models.NewInternalError(err)
	}

	return nil
}

// ResetPassword consumes a password-type token and replaces the user's password.
func (s *UserService) ResetPassword(ctx context.Context, in ResetPasswordInput) (*models.User, error) {
	if in.Password == "" {
		return nil, models.NewValidationError("Password cannot be empty")
	}

	token, err := s.tokenRepo.FindBySecretAndType(ctx, in.Token, models.TokenTypePassword)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, models.NewNotFoundError("Token not valid")
	}
	if token.Expired(s.now()) {
		return nil, models.NewExpiredError("OTP has expired")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user, err := s.userRepo.GetByID(ctx, token.UserID)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashedPassword)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := s.tokenRepo.DeleteBySecret(ctx, in.Token); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser removes the account matching the email. Idempotent: a missing
// user is not an error.
func (s *UserService) DeleteUser(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	return s.userRepo.Delete(ctx, user.ID)
}

// generateSecret returns n random bytes hex-encoded.
func generateSecret(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
