package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrientation(t *testing.T) {
	// given
	testCases := []struct {
		Name          string
		Input         string
		Expected      Orientation
		ExpectedError error
	}{
		{Name: "up", Input: "up", Expected: Up},
		{Name: "down", Input: "down", Expected: Down},
		{Name: "left with spaces", Input: " left\n", Expected: Left},
		{Name: "right upper case", Input: "RIGHT", Expected: Right},
		{Name: "unknown", Input: "up-left-diagonal", Expected: Up, ExpectedError: ErrUnknownOrientation},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			// when
			o, err := ParseOrientation(testCase.Input)

			// then
			if testCase.ExpectedError != nil {
				require.ErrorIs(t, err, testCase.ExpectedError)
				assert.Equal(t, "unknown positioning direction", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.Expected, o)
		})
	}
}

func TestOrientation_StringRoundTrip(t *testing.T) {
	for _, o := range []Orientation{Up, Down, Left, Right} {
		parsed, err := ParseOrientation(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, parsed)
	}
}

func TestComputeOrientation(t *testing.T) {
	head := Position{5, 5}

	for _, o := range []Orientation{Up, Down, Left, Right} {
		t.Run(o.String(), func(t *testing.T) {
			// given
			second := CreateVessel(head, o).Parts()[1].Position()

			// then
			assert.Equal(t, o, ComputeOrientation(head, second))
		})
	}

	t.Run("unrelated cells fall back to up", func(t *testing.T) {
		assert.Equal(t, Up, ComputeOrientation(head, Position{9, 9}))
	})
}
