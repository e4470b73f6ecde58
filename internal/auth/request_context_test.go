package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallerSlotSeesDownstreamClaims(t *testing.T) {
	outer := WithCallerSlot(context.Background())
	assert.Nil(t, GetUserClaims(outer))
	assert.Empty(t, CallerID(outer))

	claims := &Claims{RoleValues: []string{"Crew"}}
	claims.Subject = "uid-9"
	inner := SetUserClaims(outer, claims)

	assert.Equal(t, "uid-9", CallerID(inner))
	assert.Equal(t, "uid-9", CallerID(outer))
}

func TestGetUserClaimsWithoutSlot(t *testing.T) {
	assert.Nil(t, GetUserClaims(context.Background()))

	claims := &Claims{}
	claims.Subject = "uid-1"
	ctx := SetUserClaims(context.Background(), claims)
	assert.Equal(t, "uid-1", CallerID(ctx))
}
