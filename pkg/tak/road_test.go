package tak_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixside/tei/pkg/tak"
	"github.com/sixside/tei/pkg/tak/tps"
)

func decode(t *testing.T, s string) tak.Position {
	t.Helper()
	pos, err := tps.Decode(s)
	require.NoError(t, err)
	return pos
}

func TestHasRoad(t *testing.T) {
	t.Run("test1", func(t *testing.T) {
		pos := decode(t, "2,x2,2,x2/x3,2,2,x/x,2,221,2,x,1/21,1,1,1C,121,1/x2,112C,x3/x5,1 2 16")
		assert.True(t, pos.HasRoad(tak.P1))
		assert.False(t, pos.HasRoad(tak.P2))
	})

	t.Run("test2", func(t *testing.T) {
		pos := decode(t, "2,x2,2,x2/x3,2,2,x/x,2,221,2,x,1/2,1,1,1C,121,1/1,x,112C,x3/x5,1 1 16")
		assert.False(t, pos.HasRoad(tak.P1))
		assert.False(t, pos.HasRoad(tak.P2))
	})

	t.Run("test3", func(t *testing.T) {
		pos := decode(t, "2,x2,2,x2/x3,2,2,x/x,2,221,2,2,1/2,1,1,1C,1,1/1,x,1,12C,1,x/x5,1 2 14")
		assert.False(t, pos.HasRoad(tak.P1))
		assert.False(t, pos.HasRoad(tak.P2))
	})

}

func TestHasRoadWillTests(t *testing.T) {
	cases := []struct {
		winner tak.Color
		tps    string
	}{
		{tak.P2, "2S,211211C,x,1,2,12S/x2,1S,2S,2C,21S/x,122S,1S,x,12,122/x2,11,1S,22S,2/x2,11S,22S,21S,11112/1221222S,1,x,22122,11S,2 2 32"},
		{tak.P1, "1,1,221,112,1S,x/1222,2C,11,1,1S,1S/1C,22,1,11,2,2/2S,1S,221,221S,2S,x/x,21S,1,21,2,x/x,1S,21221212212221,1S,1S,x 2 33"},
		{tak.P2, "1211S,121S,212,x2,111S/1,211S,2C,1C,22S,212S/221,211S,2,x,2,x/22,2,2,2S,1S,1S/2,x,11,12,1,1S/112,1S,2,x,1112,22S 1 31"},
		{tak.P2, "1,x3,221,111S/222S,12,2,112,212C,1/2,2,1,2S,2,21S/2S,1,2S,1,12,12122112/21S,12,2S,1,2122211C,x/x,1S,11,x,12,x 1 35"},
		{tak.P2, "2,2,112,2,21,1S/x2,2,21221,2S,x/2S,1,22,1,211121C,22/122S,x,2,x,1,1S/11,2S,2,12,112,122C/1211S,11,122S,1,x,2S 1 34"},
		{tak.P2, "2,2,2,2,2,x/x4,2,x/x,2,2,2,2,x/x,2,x4/x,2,2,2,2,2/x6 2 16"},
		{tak.P1, "x,1,x4/x,1,x,1,1,1/x,1,x,1,x,1/x,1,x,1,x,1/x,1,1,1,x,1/x5,1 1 16"},
	}

	for _, c := range cases {
		t.Run(c.tps, func(t *testing.T) {
			pos := decode(t, c.tps)
			loser := tak.P1
			if c.winner == tak.P1 {
				loser = tak.P2
			}

			assert.True(t, pos.HasRoad(c.winner))
			assert.False(t, pos.HasRoad(loser))

			result, done := pos.Terminal(tak.DefaultKomi)
			require.True(t, done)
			winner, ok := result.Winner()
			require.True(t, ok)
			assert.Equal(t, c.winner, winner)
		})
	}
}
