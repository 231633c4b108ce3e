package model

import (
	"time"

	"github.com/google/uuid"
)

type UserType string

const (
	UserTypeDreamer UserType = "dreamer"
	UserTypeSponsor UserType = "sponsor"
)

func ParseUserType(raw string) (UserType, bool) {
	switch UserType(raw) {
	case UserTypeDreamer:
		return UserTypeDreamer, true
	case UserTypeSponsor:
		return UserTypeSponsor, true
	default:
		return "", false
	}
}

type User struct {
	ID                uuid.UUID
	Email             string
	PasswordHash      string
	UserType          UserType
	FirstName         string
	LastName          string
	Location          string
	Phone             string
	EmailVerified     bool
	VerificationToken *string
	CreatedAt         time.Time
}

// Principal identifies the authenticated caller of a request. It is set by
// the auth middleware and passed explicitly into every service operation.
type Principal struct {
	UserID   uuid.UUID
	Email    string
	UserType UserType
}

func (p Principal) IsDreamer() bool {
	return p.UserType == UserTypeDreamer
}

func (p Principal) IsSponsor() bool {
	return p.UserType == UserTypeSponsor
}
