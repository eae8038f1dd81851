package activity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogKeepsOnlyMostRecentEntries(t *testing.T) {
	l := NewLog()
	for i := 0; i < Capacity+5; i++ {
		l.Append(TypeSale, fmt.Sprintf("sale %d", i), nil)
	}

	entries := l.Entries()
	assert.Len(t, entries, Capacity)
	// Newest first.
	assert.Equal(t, fmt.Sprintf("sale %d", Capacity+4), entries[0].Message)
	assert.Equal(t, fmt.Sprintf("sale %d", 5), entries[len(entries)-1].Message)
}

func TestLogNotifiesSubscribers(t *testing.T) {
	l := NewLog()

	var got []Entry
	l.Subscribe(func(e Entry) {
		got = append(got, e)
	})

	l.Append(TypeRevert, "reverted", map[string]string{"player": "A"})
	l.Append(TypeCaptain, "captain", nil)

	assert.Len(t, got, 2)
	assert.Equal(t, TypeRevert, got[0].Type)
	assert.Equal(t, "A", got[0].Details["player"])
	assert.NotEmpty(t, got[0].ID)
}
