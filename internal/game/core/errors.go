package core

import "errors"

var (
	ErrEmptyMap          = errors.New("map is empty")
	ErrMapNotRectangular = errors.New("map rows have unequal lengths")
	ErrUnknownMapChar    = errors.New("unrecognized map character")

	// ErrBattleDecided signals that one faction is already eliminated.
	// It is the clean-shutdown path for the round loop, not a failure:
	// the round in flight when it surfaces does not count as completed.
	ErrBattleDecided = errors.New("battle already decided")
)
