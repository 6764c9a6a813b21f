package web

import (
	"fmt"
	"math"

	"github.com/StanislavStefanov/Planes/pkg/game"
)

type Request struct {
	Action string                 `json:"action"`
	Args   map[string]interface{} `json:"args"`
}

func BuildRequest(action string, args map[string]interface{}) Request {
	return Request{
		Action: action,
		Args:   args,
	}
}

type Response struct {
	Action  string                 `json:"action"`
	Message string                 `json:"message"`
	Args    map[string]interface{} `json:"args"`
}

func BuildResponse(action string, message string, args map[string]interface{}) Response {
	return Response{
		Action:  action,
		Message: message,
		Args:    args,
	}
}

//IntArg returns the integer stored under key. JSON numbers decode as float64, so whole
//float values are accepted as well as ints.
func IntArg(args map[string]interface{}, key string) (int, error) {
	v, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("missing value for %s", key)
	}
	switch value := v.(type) {
	case int:
		return value, nil
	case float64:
		if value != math.Trunc(value) || value < math.MinInt || value >= math.MaxInt {
			return 0, fmt.Errorf("invalid value for %s", key)
		}
		return int(value), nil
	default:
		return 0, fmt.Errorf("invalid value for %s", key)
	}
}

func StringArg(args map[string]interface{}, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("missing value for %s", key)
	}
	value, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("invalid value for %s", key)
	}
	return value, nil
}

// PositionArgs reads the x and y arguments.
func PositionArgs(args map[string]interface{}) (game.Position, error) {
	x, err := IntArg(args, "x")
	if err != nil {
		return game.Position{}, err
	}
	y, err := IntArg(args, "y")
	if err != nil {
		return game.Position{}, err
	}
	return game.Position{X: x, Y: y}, nil
}

func VesselArgs(v game.Vessel) map[string]interface{} {
	head := v.Head()
	second := head
	if parts := v.Parts(); len(parts) > 1 {
		second = parts[1].Position()
	}
	return map[string]interface{}{
		"x":           head.X,
		"y":           head.Y,
		"orientation": game.ComputeOrientation(head, second).String(),
	}
}

func CellArgs(cell game.Cell, state game.State) map[string]interface{} {
	return map[string]interface{}{
		"x":     cell.Position.X,
		"y":     cell.Position.Y,
		"hit":   cell.State == game.Hit,
		"cell":  cell.DisplayState().String(),
		"state": state.String(),
	}
}

func StateArgs(state game.State) map[string]interface{} {
	return map[string]interface{}{
		"state": state.String(),
	}
}
