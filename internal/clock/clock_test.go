package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSystemClockReturnsUTC(t *testing.T) {
	now := SystemClock{}.Now(context.Background())
	require.Equal(t, time.UTC, now.Location())
}

func TestFixedClockIsStable(t *testing.T) {
	at := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)
	c := Fixed(at)

	require.Equal(t, at, c.Now(context.Background()))
	require.Equal(t, at, c.Now(context.Background()))
}
