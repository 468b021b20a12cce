package middleware

import (
	"context"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSource(t *testing.T) {
	msg := &models.Update{Message: &models.Message{
		Chat: models.Chat{ID: 10},
		From: &models.User{ID: 20},
	}}
	chatID, from, ok := UpdateSource(msg)
	require.True(t, ok)
	assert.Equal(t, int64(10), chatID)
	assert.Equal(t, int64(20), from.ID)

	cb := &models.Update{CallbackQuery: &models.CallbackQuery{
		From:    models.User{ID: 30},
		Message: models.MaybeInaccessibleMessage{Message: &models.Message{Chat: models.Chat{ID: 40}}},
	}}
	chatID, from, ok = UpdateSource(cb)
	require.True(t, ok)
	assert.Equal(t, int64(40), chatID)
	assert.Equal(t, int64(30), from.ID)

	_, _, ok = UpdateSource(&models.Update{})
	assert.False(t, ok)
}

func TestChatContext_StoresUser(t *testing.T) {
	update := &models.Update{Message: &models.Message{
		Chat: models.Chat{ID: 1},
		From: &models.User{ID: 2, Username: "buyer"},
	}}

	var got *models.User
	ChatContext()(func(ctx context.Context, _ *bot.Bot, _ *models.Update) {
		got = GetUser(ctx)
	})(context.Background(), nil, update)

	require.NotNil(t, got)
	assert.Equal(t, "buyer", got.Username)
	assert.Nil(t, GetUser(context.Background()))
}
