package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMembership tests the known/has-odds mirror
func TestMembership(t *testing.T) {
	m := newMembership()

	assert.False(t, m.known("e1"))
	assert.False(t, m.hasOdds("e1"))
	assert.Equal(t, 0, m.size())

	m.add("e1", false)
	assert.True(t, m.known("e1"))
	assert.False(t, m.hasOdds("e1"))

	m.add("e1", true)
	assert.True(t, m.hasOdds("e1"))
	assert.Equal(t, 1, m.size())
}

// TestMembership_Reset tests wholesale replacement at run start
func TestMembership_Reset(t *testing.T) {
	m := newMembership()
	m.add("stale", true)

	m.reset(map[string]bool{"e1": true, "e2": false})

	assert.False(t, m.known("stale"))
	assert.True(t, m.known("e1"))
	assert.True(t, m.hasOdds("e1"))
	assert.True(t, m.known("e2"))
	assert.False(t, m.hasOdds("e2"))
	assert.Equal(t, 2, m.size())
}

// TestMembership_ConcurrentAccess tests reader/writer safety
func TestMembership_ConcurrentAccess(t *testing.T) {
	m := newMembership()

	done := make(chan bool)
	for i := 0; i < 5; i++ {
		go func() {
			m.add("e1", true)
			done <- true
		}()
		go func() {
			m.known("e1")
			m.hasOdds("e1")
			done <- true
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	assert.True(t, m.known("e1"))
}
