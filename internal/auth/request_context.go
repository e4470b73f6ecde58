package auth

import (
	"context"
)

type claimsKey struct{}

type callerSlotKey struct{}

// callerSlot is filled in by SetUserClaims so middleware wrapping the auth
// layer can read the caller after the request returns.
type callerSlot struct {
	claims UserClaims
}

// WithCallerSlot prepares ctx to report the caller authenticated further
// down the chain.
func WithCallerSlot(ctx context.Context) context.Context {
	return context.WithValue(ctx, callerSlotKey{}, &callerSlot{})
}

func SetUserClaims(ctx context.Context, claims UserClaims) context.Context {
	if slot, ok := ctx.Value(callerSlotKey{}).(*callerSlot); ok {
		slot.claims = claims
	}
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetUserClaims returns nil outside authenticated routes.
func GetUserClaims(ctx context.Context) UserClaims {
	if claims, ok := ctx.Value(claimsKey{}).(UserClaims); ok {
		return claims
	}
	if slot, ok := ctx.Value(callerSlotKey{}).(*callerSlot); ok && slot.claims != nil {
		return slot.claims
	}
	return nil
}

// CallerID is the authenticated user id, or "" for anonymous requests.
func CallerID(ctx context.Context) string {
	if claims := GetUserClaims(ctx); claims != nil {
		return claims.UserID()
	}
	return ""
}
