package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_SetAndClear(t *testing.T) {
	sut := NewStore()
	assert.False(t, sut.Current().LoggedIn())

	sut.Set(Session{Token: "testtoken", Username: "criodo", Balance: 5000})
	cur := sut.Current()
	assert.True(t, cur.LoggedIn())
	assert.Equal(t, "criodo", cur.Username)

	sut.Clear()
	assert.False(t, sut.Current().LoggedIn())
	assert.Empty(t, sut.Current().Username)
}
