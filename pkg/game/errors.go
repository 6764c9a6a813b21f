package game

import "errors"

var (
	ErrInvalidPlacement   = errors.New("some of the fields are out of bounds or already taken")
	ErrInvalidTarget      = errors.New("position out of bounds")
	ErrAlreadyResolved    = errors.New("field has already been shot")
	ErrUnknownOrientation = errors.New("unknown positioning direction")
)

//PlacementError explains why v can not be placed on b, or returns nil if it can. The
//boolean contract of Board.PlaceVessel is unchanged, this only names the failure.
func PlacementError(b Board, v Vessel) error {
	if b == nil || !b.CanPlaceVessel(v) {
		return ErrInvalidPlacement
	}
	return nil
}

//ShotError must be called before the shot is applied. It returns ErrInvalidTarget for
//positions outside b and ErrAlreadyResolved for cells which are already Hit or Miss, so
//a false result of Board.ReceiveShot can be told apart from a genuine miss.
func ShotError(b Board, p Position) error {
	if b == nil || !inBounds(p, b.Size()) {
		return ErrInvalidTarget
	}
	switch b.CellState(p) {
	case Hit, Miss:
		return ErrAlreadyResolved
	}
	return nil
}
