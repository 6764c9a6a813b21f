package web

import (
	"encoding/json"
	"testing"

	"github.com/StanislavStefanov/Planes/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntArg(t *testing.T) {
	// given
	testCases := []struct {
		Name               string
		Args               map[string]interface{}
		Expected           int
		ExpectedErrMessage string
	}{
		{Name: "int", Args: map[string]interface{}{"x": 3}, Expected: 3},
		{Name: "whole float", Args: map[string]interface{}{"x": 4.0}, Expected: 4},
		{Name: "missing", Args: map[string]interface{}{}, ExpectedErrMessage: "missing value for x"},
		{Name: "fraction", Args: map[string]interface{}{"x": 4.5}, ExpectedErrMessage: "invalid value for x"},
		{Name: "too large", Args: map[string]interface{}{"x": 1e300}, ExpectedErrMessage: "invalid value for x"},
		{Name: "too small", Args: map[string]interface{}{"x": -1e300}, ExpectedErrMessage: "invalid value for x"},
		{Name: "string", Args: map[string]interface{}{"x": "x"}, ExpectedErrMessage: "invalid value for x"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			// when
			v, err := IntArg(testCase.Args, "x")

			// then
			if testCase.ExpectedErrMessage != "" {
				require.Error(t, err)
				assert.Equal(t, testCase.ExpectedErrMessage, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.Expected, v)
		})
	}
}

func TestStringArg(t *testing.T) {
	v, err := StringArg(map[string]interface{}{"orientation": "up"}, "orientation")
	require.NoError(t, err)
	assert.Equal(t, "up", v)

	_, err = StringArg(map[string]interface{}{}, "orientation")
	assert.EqualError(t, err, "missing value for orientation")

	_, err = StringArg(map[string]interface{}{"orientation": 1}, "orientation")
	assert.EqualError(t, err, "invalid value for orientation")
}

func TestPositionArgs_FromJSON(t *testing.T) {
	// given
	var req Request
	require.NoError(t, json.Unmarshal([]byte(`{"action":"shoot","args":{"x":3,"y":7}}`), &req))

	// when
	p, err := PositionArgs(req.Args)

	// then
	require.NoError(t, err)
	assert.Equal(t, game.Position{X: 3, Y: 7}, p)
}

func TestVesselArgs(t *testing.T) {
	for _, o := range []game.Orientation{game.Up, game.Down, game.Left, game.Right} {
		v := game.CreateVessel(game.Position{X: 5, Y: 5}, o)

		args := VesselArgs(v)

		assert.Equal(t, map[string]interface{}{"x": 5, "y": 5, "orientation": o.String()}, args)
	}
}

func TestCellArgs(t *testing.T) {
	cell := game.Cell{Position: game.Position{X: 1, Y: 2}, State: game.Hit, IsHead: true}

	args := CellArgs(cell, game.InProgress)

	assert.Equal(t, map[string]interface{}{
		"x":     1,
		"y":     2,
		"hit":   true,
		"cell":  "head-hit",
		"state": "in-progress",
	}, args)
}
