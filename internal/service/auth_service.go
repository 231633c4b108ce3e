package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sponsoracareer/funding-service/internal/auth"
	"github.com/sponsoracareer/funding-service/internal/model"
)

const minPasswordLength = 8

// MailSender delivers verification emails; the mail package provides the
// Resend-backed implementation.
type MailSender interface {
	SendVerification(ctx context.Context, email, token string) error
}

type AuthService struct {
	users         UserStore
	profiles      *ProfileService
	notifications *NotificationService
	mail          MailSender
	issuer        *auth.Issuer
	log           zerolog.Logger
}

func NewAuthService(
	users UserStore,
	profiles *ProfileService,
	notifications *NotificationService,
	mail MailSender,
	issuer *auth.Issuer,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:         users,
		profiles:      profiles,
		notifications: notifications,
		mail:          mail,
		issuer:        issuer,
		log:           log,
	}
}

type RegisterInput struct {
	Email          string
	Password       string
	UserType       string
	FirstName      string
	LastName       string
	Location       string
	Phone          string
	DreamerProfile *DreamerProfileInput
	SponsorProfile *SponsorProfileInput
	Preferences    *PreferencesInput
}

type AuthResult struct {
	User  model.User
	Token string
}

// Register creates the user record and issues an access token. Profile,
// preferences, welcome notification, and the verification email are
// best-effort: their failure is logged but never rolls back the user.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || input.Password == "" || input.UserType == "" {
		return nil, fmt.Errorf("%w: email, password, and user type are required", ErrInvalidInput)
	}
	if len(input.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters long", ErrInvalidInput, minPasswordLength)
	}
	userType, ok := model.ParseUserType(input.UserType)
	if !ok {
		return nil, fmt.Errorf("%w: user type must be either dreamer or sponsor", ErrInvalidInput)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passwordHash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	verificationToken, err := auth.NewVerificationToken()
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:             email,
		PasswordHash:      passwordHash,
		UserType:          userType,
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		Location:          input.Location,
		Phone:             input.Phone,
		VerificationToken: &verificationToken,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	principal := model.Principal{UserID: user.ID, Email: user.Email, UserType: user.UserType}

	if input.DreamerProfile != nil && userType == model.UserTypeDreamer {
		if _, err := s.profiles.SaveDreamerProfile(ctx, *input.DreamerProfile, principal); err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("profile creation failed during registration")
		}
	}
	if input.SponsorProfile != nil && userType == model.UserTypeSponsor {
		if _, err := s.profiles.SaveSponsorProfile(ctx, *input.SponsorProfile, principal); err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("profile creation failed during registration")
		}
	}
	if input.Preferences != nil {
		if _, err := s.profiles.SavePreferences(ctx, *input.Preferences, principal); err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("preferences creation failed during registration")
		}
	}

	_, err = s.notifications.Emit(ctx,
		user.ID,
		"Welcome to SponsoraCareer!",
		"Get started by setting up your profile and goals",
		model.NotificationTypeWelcome,
		"overview",
	)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("welcome notification failed")
	}

	if err := s.mail.SendVerification(ctx, email, verificationToken); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("verification email failed")
	}

	token, err := s.issuer.Issue(*user, time.Now())
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: *user, Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(*user, time.Now())
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: *user, Token: token}, nil
}

func (s *AuthService) VerifyEmail(ctx context.Context, email, token string) error {
	if email == "" || token == "" {
		return fmt.Errorf("%w: email and token are required", ErrInvalidInput)
	}

	ok, err := s.users.VerifyEmail(ctx, email, token)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidToken
	}
	return nil
}

func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	token, err := auth.NewVerificationToken()
	if err != nil {
		return err
	}
	ok, err := s.users.SetVerificationToken(ctx, email, token)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	if err := s.mail.SendVerification(ctx, email, token); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("verification email failed")
	}
	return nil
}
