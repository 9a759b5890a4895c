package inboxing

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novasync/clinic-api/internal/domain"
)

func TestStore_PrependKeepsNewestFirst(t *testing.T) {
	store := NewStore()

	store.Prepend(domain.Message{ID: "first"})
	store.Prepend(domain.Message{ID: "second"})
	store.Prepend(domain.Message{ID: "third"})

	messages := store.List()
	require.Len(t, messages, 3)
	assert.Equal(t, "third", messages[0].ID)
	assert.Equal(t, "second", messages[1].ID)
	assert.Equal(t, "first", messages[2].ID)
}

func TestStore_ListReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Prepend(domain.Message{ID: "msg_1", Text: "hello"})

	messages := store.List()
	messages[0].Text = "mutated"

	assert.Equal(t, "hello", store.List()[0].Text)
}

func TestNewSeededStore(t *testing.T) {
	store := NewSeededStore()

	messages := store.List()
	require.Len(t, messages, 2)

	assert.Equal(t, "init_msg_1", messages[0].ID)
	assert.Equal(t, domain.PlatformWhatsApp, messages[0].Platform)
	assert.True(t, messages[0].Unread)

	assert.Equal(t, "init_msg_ig_1", messages[1].ID)
	assert.Equal(t, domain.PlatformInstagram, messages[1].Platform)
}

func TestStore_ConcurrentPrepends(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Prepend(domain.Message{ID: "msg"})
		}()
	}
	wg.Wait()

	assert.Len(t, store.List(), 50)
}
