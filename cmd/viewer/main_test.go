package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAverageRating(t *testing.T) {
	t.Run("should ignore rows whose rating does not parse", func(t *testing.T) {
		req := require.New(t)
		rows := [][]string{
			{"2026-08-29T10:00:00Z", "Ana", "a@x.com", "5", "great"},
			{"2026-08-29T10:01:00Z", "Bo", "b@x.com", "not-a-number", "meh"},
			{"2026-08-29T10:02:00Z", "Cy", "c@x.com", "3", "ok"},
		}

		req.InDelta(4.0, averageRating(rows), 1e-9)
	})

	t.Run("should report zero when no rating parses", func(t *testing.T) {
		req := require.New(t)
		rows := [][]string{
			{"2026-08-29T10:00:00Z", "Ana", "a@x.com", "??", "great"},
		}

		req.Zero(averageRating(rows))
	})
}
