package tak_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sixside/tei/pkg/tak"
)

func TestNewSquare(t *testing.T) {
	assert.Equal(t, tak.C2, tak.NewSquare(2, 1))
	assert.Equal(t, tak.F6, tak.NewSquare(5, 5))
	assert.Equal(t, tak.A1, tak.NewSquare(0, 0))
}

func TestSquareFileRank(t *testing.T) {
	assert.Equal(t, 2, tak.C2.File())
	assert.Equal(t, 1, tak.C2.Rank())
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "a1", tak.A1.String())
	assert.Equal(t, "f6", tak.F6.String())
	assert.Equal(t, "-", tak.NoSquare.String())
}

func TestParseSquare(t *testing.T) {
	sq, err := tak.ParseSquare("c2")
	assert.NoError(t, err)
	assert.Equal(t, tak.C2, sq)

	_, err = tak.ParseSquare("c")
	assert.ErrorIs(t, err, tak.ErrInvalidSquareLength)

	_, err = tak.ParseSquare("g1")
	assert.ErrorIs(t, err, tak.ErrInvalidSquareFile)

	_, err = tak.ParseSquare("a7")
	assert.ErrorIs(t, err, tak.ErrInvalidSquareRank)
}

func TestSquareStep(t *testing.T) {
	assert.Equal(t, tak.A2, tak.A1.Step(tak.North))
	assert.Equal(t, tak.B1, tak.A1.Step(tak.East))
}
