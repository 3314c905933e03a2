package game

import "errors"

// ErrRoundInProgress is an error when cards are dealt before the previous round was scored
var ErrRoundInProgress = errors.New("a round is already in progress")

// ErrHandsNotDealt is an error when hands are compared before cards were dealt
var ErrHandsNotDealt = errors.New("hands have not been dealt")
