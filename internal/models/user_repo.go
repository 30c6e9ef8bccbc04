package models

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"festa/internal/apperrors"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

func (mdb *MongodbRepo) CreateUser(ctx context.Context, user *User) (*User, error) {
	col, err := mdb.GetCollection(ctx, DbName, UsersColName)
	if err != nil {
		return nil, apperrors.Persistence("error getting collection", err)
	}

	if _, err := col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.Conflict("an account with this email already exists")
		}
		return nil, apperrors.Persistence("failed to insert user", err)
	}
	return user, nil
}

func (mdb *MongodbRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	col, err := mdb.GetCollection(ctx, DbName, UsersColName)
	if err != nil {
		return nil, apperrors.Persistence("error getting collection", err)
	}

	var user User
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("user", id.String())
		}
		return nil, apperrors.Persistence("failed to fetch user", err)
	}
	return &user, nil
}

func (mdb *MongodbRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	col, err := mdb.GetCollection(ctx, DbName, UsersColName)
	if err != nil {
		return nil, apperrors.Persistence("error getting collection", err)
	}

	var user User
	if err := col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NotFound("user", email)
		}
		return nil, apperrors.Persistence("failed to fetch user", err)
	}
	return &user, nil
}

func (mdb *MongodbRepo) UpdateUser(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*User, error) {
	col, err := mdb.GetCollection(ctx, DbName, UsersColName)
	if err != nil {
		return nil, apperrors.Persistence("error getting collection", err)
	}

	updates["updated_at"] = time.Now()
	if _, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates}); err != nil {
		return nil, apperrors.Persistence("failed to update user", err)
	}
	return mdb.GetUserByID(ctx, id)
}

func (mdb *MongodbRepo) DeleteUser(ctx context.Context, id uuid.UUID) error {
	col, err := mdb.GetCollection(ctx, DbName, UsersColName)
	if err != nil {
		return apperrors.Persistence("error getting collection", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.Persistence("failed to delete user", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NotFound("user", id.String())
	}
	return nil
}
