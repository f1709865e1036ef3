package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hanabi/internal/randutil"
)

func TestNewShuffledDistribution(t *testing.T) {
	d := NewShuffled(randutil.New(42))

	require.Equal(t, Size, d.CardsRemaining())

	counts := make(map[Card]int)
	for {
		card, ok := d.Draw()
		if !ok {
			break
		}
		counts[card]++
	}

	for _, color := range Colors {
		for number := 1; number <= MaxNumber; number++ {
			card := NewCard(color, number)
			assert.Equal(t, CardCount[number], counts[card], "wrong count for %s", card)
		}
	}
}

func TestNewShuffledDeterministic(t *testing.T) {
	a := NewShuffled(randutil.New(7))
	b := NewShuffled(randutil.New(7))

	for !a.IsEmpty() {
		ca, _ := a.Draw()
		cb, ok := b.Draw()
		require.True(t, ok)
		require.Equal(t, ca, cb)
	}
	require.True(t, b.IsEmpty())
}

func TestDrawEmpty(t *testing.T) {
	d := New(NewCard(Blue, 1))

	card, ok := d.Draw()
	require.True(t, ok)
	assert.Equal(t, NewCard(Blue, 1), card)
	assert.True(t, d.IsEmpty())

	_, ok = d.Draw()
	assert.False(t, ok)
	assert.Equal(t, 0, d.CardsRemaining())
}

func TestCardString(t *testing.T) {
	tests := []struct {
		card     Card
		expected string
	}{
		{NewCard(Blue, 1), "blue 1"},
		{NewCard(Green, 2), "green 2"},
		{NewCard(Red, 3), "red 3"},
		{NewCard(White, 4), "white 4"},
		{NewCard(Yellow, 5), "yellow 5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.card.String())
	}
}
