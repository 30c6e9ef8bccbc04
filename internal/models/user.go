package models

import (
	"time"

	"github.com/google/uuid"
)

const UsersColName = "users"

type User struct {
	ID           uuid.UUID `bson:"_id" json:"id"`
	Username     string    `bson:"username" json:"username" validate:"required,min=3"`
	FullName     string    `bson:"fullname,omitempty" json:"fullname,omitempty"`
	Email        string    `bson:"email" json:"email" validate:"required,email"`
	Password     string    `bson:"-" json:"password,omitempty" validate:"required,min=8"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	PhoneNumber  string    `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	AvatarURL    string    `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
