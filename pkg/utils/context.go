package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	ProfileIDKey  contextKey = "profile_id"
	BusinessIDKey contextKey = "business_id"
	TokenKey      contextKey = "token"
)

func SetStaffContext(ctx context.Context, profileID, businessID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, ProfileIDKey, profileID.String())
	ctx = context.WithValue(ctx, BusinessIDKey, businessID.String())
	return ctx
}

func GetProfileIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	return uuidFromContext(ctx, ProfileIDKey)
}

func GetBusinessIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	return uuidFromContext(ctx, BusinessIDKey)
}

func uuidFromContext(ctx context.Context, key contextKey) (uuid.UUID, bool) {
	val := ctx.Value(key)
	if val == nil {
		return uuid.Nil, false
	}

	str, ok := val.(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(str)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(TokenKey)
	if val == nil {
		return "", false
	}

	token, ok := val.(string)
	return token, ok
}
