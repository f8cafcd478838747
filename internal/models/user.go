package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	ID string `gorm:"primaryKey;size:24" bson:"_id" json:"id"`

	FirstName    string `gorm:"size:100;not null" bson:"firstName" json:"firstName"`
	LastName     string `gorm:"size:100;not null" bson:"lastName" json:"lastName"`
	Email        string `gorm:"size:255;uniqueIndex;not null" bson:"email" json:"email"`
	Phone        string `gorm:"size:30" bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string `gorm:"column:password;size:255;not null" bson:"password" json:"-"`
	Marketing    bool   `gorm:"default:false" bson:"marketing" json:"marketing"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`

	// Plaintext, only set between request binding and HashPassword.
	Password string `gorm:"-" bson:"-" json:"-"`
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HashPassword replaces the transient plaintext with its bcrypt hash. It is
// a no-op once the plaintext has been consumed.
func (u *User) HashPassword() error {
	if u.Password == "" {
		if u.PasswordHash == "" {
			return fmt.Errorf("%w: password is required", ErrValidation)
		}
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	u.PasswordHash = string(hashed)
	u.Password = ""
	return nil
}

func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

func (u *User) Validate() error {
	var errs []error
	if strings.TrimSpace(u.FirstName) == "" {
		errs = append(errs, fmt.Errorf("%w: firstName is required", ErrValidation))
	}
	if strings.TrimSpace(u.LastName) == "" {
		errs = append(errs, fmt.Errorf("%w: lastName is required", ErrValidation))
	}
	if u.Email == "" {
		errs = append(errs, fmt.Errorf("%w: email is required", ErrValidation))
	}
	return errors.Join(errs...)
}

// PrepareForInsert runs the pre-persistence hook shared by every backend.
func (u *User) PrepareForInsert(now time.Time) error {
	u.Email = NormalizeEmail(u.Email)
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)

	if err := u.Validate(); err != nil {
		return err
	}
	if err := u.HashPassword(); err != nil {
		return err
	}
	if u.ID == "" {
		u.ID = NewID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	return nil
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	return u.PrepareForInsert(time.Now().UTC())
}
