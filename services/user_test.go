package services

import (
	"context"
	"errors"
	"testing"

	"DoctorsPortal/models"
	"DoctorsPortal/repository/repositorytest"
	"DoctorsPortal/role"
	"DoctorsPortal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateUser(t *testing.T) {
	store := &repositorytest.Users{}
	svc := NewUserService(store, repositorytest.Tokens{})
	ctx := context.Background()

	res, err := svc.CreateUser(ctx, &models.User{Name: "A", Email: " a@example.com ", Role: role.Admin})
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	require.Len(t, store.Docs, 1)
	assert.Equal(t, "a@example.com", store.Docs[0].Email)
	assert.Equal(t, role.None, store.Docs[0].Role, "signup must not grant a role")

	res, err = svc.CreateUser(ctx, &models.User{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)
	assert.False(t, res.Acknowledged)
	assert.Len(t, store.Docs, 1)
}

func TestIsAdmin(t *testing.T) {
	store := &repositorytest.Users{Docs: []models.User{
		{Email: "admin@example.com", Role: role.Admin},
		{Email: "p@example.com"},
	}}
	svc := NewUserService(store, repositorytest.Tokens{})
	ctx := context.Background()

	ok, err := svc.IsAdmin(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsAdmin(ctx, "p@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.IsAdmin(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMakeAdmin(t *testing.T) {
	id := primitive.NewObjectID()
	store := &repositorytest.Users{Docs: []models.User{{ID: id, Email: "p@example.com"}}}
	svc := NewUserService(store, repositorytest.Tokens{})
	ctx := context.Background()

	require.NoError(t, svc.MakeAdmin(ctx, id.Hex()))
	assert.Equal(t, role.Admin, store.Docs[0].Role)

	assert.ErrorIs(t, svc.MakeAdmin(ctx, "xyz"), util.ErrInvalidID)
	assert.ErrorIs(t, svc.MakeAdmin(ctx, primitive.NewObjectID().Hex()), util.ErrNotFound)
}

func TestIssueToken(t *testing.T) {
	store := &repositorytest.Users{Docs: []models.User{{Email: "a@example.com"}}}
	svc := NewUserService(store, repositorytest.Tokens{})
	ctx := context.Background()

	token, err := svc.IssueToken(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "token-for-a@example.com", token)

	_, err = svc.IssueToken(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, util.ErrUnauthorized)

	_, err = svc.IssueToken(ctx, "")
	assert.ErrorIs(t, err, util.ErrInvalidInput)
}

func TestIssueToken_StoreError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewUserService(&repositorytest.Users{Err: boom}, repositorytest.Tokens{})
	_, err := svc.IssueToken(context.Background(), "a@example.com")
	assert.ErrorIs(t, err, boom)
}
