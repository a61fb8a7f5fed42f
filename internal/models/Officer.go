package models

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Role is the closed set of account roles. There is no hierarchy:
// an admin is not implicitly an officer and route gates compare exactly.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleOfficer Role = "officer"
)

// ParseRole normalizes raw input to a Role. Empty input defaults to
// officer, matching account creation behavior.
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleOfficer, Role(""):
		return RoleOfficer, true
	default:
		return "", false
	}
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleOfficer
}

// Officer is an authenticated user of the system, either a field
// officer or an admin.
type Officer struct {
	gorm.Model
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"unique"`
	Role         Role   `json:"role" gorm:"default:'officer'"`
	PasswordHash string `json:"-" gorm:"column:password_hash"`
	Location     string `json:"location"`
	ImageURL     string `json:"image_url" gorm:"default:'/officer.jpg'"`
}

// SetPassword hashes the plaintext and stores the result. Hashing
// happens only here, never on unrelated saves, so an already-hashed
// value is never hashed twice.
func (o *Officer) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	o.PasswordHash = string(hash)
	return nil
}

// MatchPassword reports whether plain matches the stored hash.
func (o *Officer) MatchPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(plain)) == nil
}
