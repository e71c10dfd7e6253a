package tak_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixside/tei/pkg/tak"
)

func TestMoveRoundtrip(t *testing.T) {
	cases := []string{
		"a1", "Cb4", "Sd3", "a1>", "d1-", "4c3>", "3b2+111", "5e4<23", "5b4>212",
	}

	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			mv, err := tak.ParseMove(c)
			require.NoError(t, err)
			assert.Equal(t, c, mv.String())
		})
	}
}

func TestMoveParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", tak.ErrMoveTooShort},
		{"bad lift count", "7a1>", tak.ErrInvalidLiftCount},
		{"short square", "a", tak.ErrMoveTooShort},
		{"bad file", "g1", tak.ErrInvalidSquareFile},
		{"bad rank", "a7", tak.ErrInvalidSquareRank},
		{"bad direction", "a1x", tak.ErrInvalidDirection},
		{"bad splat char", "3a1>1x", tak.ErrInvalidTrailingCharacter},
		{"splat overruns count", "2a1>12", tak.ErrInvalidSplat},
		{"splat underruns count", "3a1>11", tak.ErrInvalidSplat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tak.ParseMove(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
