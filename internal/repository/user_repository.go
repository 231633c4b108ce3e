package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sponsoracareer/funding-service/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Raw(`
		INSERT INTO users (email, password_hash, user_type, first_name, last_name, location, phone, verification_token)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id, email, password_hash, user_type, first_name, last_name, location, phone,
			email_verified, verification_token, created_at
	`,
		user.Email,
		user.PasswordHash,
		user.UserType,
		user.FirstName,
		user.LastName,
		user.Location,
		user.Phone,
		user.VerificationToken,
	).Scan(user).Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, email, password_hash, user_type, first_name, last_name, location, phone,
			email_verified, verification_token, created_at
		FROM users
		WHERE email = ?
		LIMIT 1
	`, email).Scan(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, email, password_hash, user_type, first_name, last_name, location, phone,
			email_verified, verification_token, created_at
		FROM users
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

// VerifyEmail flips email_verified for the matching email/token pair and
// clears the token. Returns false when no row matched.
func (r *UserRepository) VerifyEmail(ctx context.Context, email, token string) (bool, error) {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE users
		SET email_verified = TRUE, verification_token = NULL
		WHERE email = ? AND verification_token = ?
	`, email, token)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *UserRepository) SetVerificationToken(ctx context.Context, email, token string) (bool, error) {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE users
		SET verification_token = ?
		WHERE email = ?
	`, token, email)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
