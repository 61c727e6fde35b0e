package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryBoundedFIFO(t *testing.T) {
	h := NewHistory(3)

	for i := 0; i < 7; i++ {
		h.Append(SenderUser, fmt.Sprintf("mensagem %d", i))
		expected := i + 1
		if expected > 3 {
			expected = 3
		}
		assert.Equal(t, expected, h.Len(), "after %d appends", i+1)
	}

	// Only the last three messages survive, in arrival order.
	msgs := h.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "mensagem 4", msgs[0].Content)
	assert.Equal(t, "mensagem 5", msgs[1].Content)
	assert.Equal(t, "mensagem 6", msgs[2].Content)
}

func TestHistoryDefaultCapacity(t *testing.T) {
	h := NewHistory(0)
	for i := 0; i < 25; i++ {
		h.Append(SenderUser, "oi")
	}
	assert.Equal(t, DefaultHistorySize, h.Len())
}

func TestHistoryFormatted(t *testing.T) {
	h := NewHistory(10)
	assert.Empty(t, h.Formatted(), "empty history formats to empty string")

	h.Append(SenderUser, "Quais imóveis tem 3 quartos?")
	h.Append(SenderAssistant, "Encontrei estas opções.")

	got := h.Formatted()
	assert.Equal(t, "1. Cliente: Quais imóveis tem 3 quartos?\n2. Assistente: Encontrei estas opções.", got)
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(5)
	h.Append(SenderUser, "oi")
	h.Clear()
	assert.Zero(t, h.Len())
	assert.Empty(t, h.Formatted())
}

func TestHistoryTimestampsMonotonic(t *testing.T) {
	h := NewHistory(5)
	h.Append(SenderUser, "primeira")
	h.Append(SenderAssistant, "segunda")

	msgs := h.Messages()
	require.Len(t, msgs, 2)
	assert.False(t, msgs[1].Timestamp.Before(msgs[0].Timestamp))
}
