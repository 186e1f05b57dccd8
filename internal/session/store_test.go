package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotbox-dev/pizzaservice/internal/domain/customer"
	"github.com/hotbox-dev/pizzaservice/internal/domain/order"
)

func TestStore_PutGet(t *testing.T) {
	s := NewStore(time.Minute)

	o := order.New(customer.Customer{}, "127.0.0.1", "sess-1")
	s.Put("sess-1", o)

	got, ok := s.Get("sess-1")
	require.True(t, ok)
	assert.Same(t, o, got)

	_, ok = s.Get("sess-2")
	assert.False(t, ok)
}

func TestStore_ResubmissionReplaces(t *testing.T) {
	s := NewStore(time.Minute)

	first := order.New(customer.Customer{}, "", "sess-1")
	second := order.New(customer.Customer{}, "", "sess-1")
	s.Put("sess-1", first)
	s.Put("sess-1", second)

	got, ok := s.Get("sess-1")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Expiry(t *testing.T) {
	s := NewStore(10 * time.Millisecond)

	s.Put("sess-1", order.New(customer.Customer{}, "", "sess-1"))
	time.Sleep(20 * time.Millisecond)

	_, ok := s.Get("sess-1")
	assert.False(t, ok, "expired entries are gone on read")
}

func TestStore_Cleanup(t *testing.T) {
	s := NewStore(10 * time.Millisecond)

	s.Put("sess-1", order.New(customer.Customer{}, "", "sess-1"))
	s.Put("sess-2", order.New(customer.Customer{}, "", "sess-2"))
	require.Equal(t, 2, s.Len())

	s.cleanup(time.Now().Add(time.Second))
	assert.Equal(t, 0, s.Len())
}
