package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sponsoracareer/funding-service/internal/model"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	parser := NewParser("secret")

	user := model.User{
		ID:       uuid.New(),
		Email:    "dreamer@example.com",
		UserType: model.UserTypeDreamer,
	}

	token, err := issuer.Issue(user, time.Now())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	principal, err := parser.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if principal.UserID != user.ID {
		t.Fatalf("UserID = %v, want %v", principal.UserID, user.ID)
	}
	if principal.Email != user.Email {
		t.Fatalf("Email = %q, want %q", principal.Email, user.Email)
	}
	if principal.UserType != model.UserTypeDreamer {
		t.Fatalf("UserType = %q, want dreamer", principal.UserType)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	parser := NewParser("other-secret")

	token, err := issuer.Issue(model.User{ID: uuid.New(), UserType: model.UserTypeSponsor}, time.Now())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := parser.Parse(token); err == nil {
		t.Fatal("token signed with another secret was accepted")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	parser := NewParser("secret")

	token, err := issuer.Issue(model.User{ID: uuid.New(), UserType: model.UserTypeSponsor}, time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := parser.Parse(token); err == nil {
		t.Fatal("expired token was accepted")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("long-enough")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPassword(hash, "long-enough") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}

func TestNewVerificationToken(t *testing.T) {
	first, err := NewVerificationToken()
	if err != nil {
		t.Fatalf("NewVerificationToken: %v", err)
	}
	second, err := NewVerificationToken()
	if err != nil {
		t.Fatalf("NewVerificationToken: %v", err)
	}
	if len(first) != 48 {
		t.Fatalf("token length = %d, want 48 hex chars", len(first))
	}
	if first == second {
		t.Fatal("two tokens were identical")
	}
}
