package services

import "errors"

// Sentinel errors, mapped to HTTP statuses by the controllers.
var (
	ErrInvalidVoteValue = errors.New("vote value must be -1, 0 or 1")
	ErrReviewNotFound   = errors.New("review not found")
	ErrGameNotFound     = errors.New("game not found")
	ErrSelfVote         = errors.New("cannot vote on your own review")
	ErrDuplicateReview  = errors.New("user already reviewed this game")
	ErrDuplicateSlug    = errors.New("game with this slug already exists")
)
