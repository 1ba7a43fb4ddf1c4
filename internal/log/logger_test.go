package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLoggerSequence(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewTurnStartEntry(1, "P1"))
	l.Log(NewDrawEntry(1, "P1", "Worker", "Hand"))
	l.Log(NewPlayEntry(1, "P1", "Worker"))

	events := l.Events()
	require.Len(t, events, 3)
	for i, e := range events {
		assert.Equal(t, i+1, e.Seq)
	}
	assert.Equal(t, EventPlay, l.LastEvent().Type)
	assert.Len(t, l.EventsOfType(EventDraw), 1)
}

func TestMemoryLoggerEmpty(t *testing.T) {
	l := NewMemoryLogger()
	assert.Equal(t, Entry{}, l.LastEvent())
	assert.Empty(t, l.Events())
}

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf)
	l.Log(NewBuyEntry(2, "Alice", "Gojira", "Bob"))
	l.Log(NewBreakEntry(3, "Bob", "Gojira", "Tower"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Alice buys Gojira into Bob's deck")
	assert.True(t, strings.HasPrefix(lines[1], "T3 "))
	assert.Len(t, l.Events(), 2)
	assert.Equal(t, buf.String(), FormatAll(l.Events()))
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "Intercept", EventIntercept.String())
	assert.Equal(t, "GameEnd", EventGameEnd.String())
}

func TestSyncLogger(t *testing.T) {
	l := NewSyncLogger(NewMemoryLogger())
	done := make(chan struct{})
	for g := 0; g < 4; g++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 50; i++ {
				l.Log(NewShuffleEntry(1, "P1"))
			}
		}()
	}
	for g := 0; g < 4; g++ {
		<-done
	}
	events := l.Events()
	require.Len(t, events, 200)
	assert.Equal(t, 200, events[199].Seq)
}
