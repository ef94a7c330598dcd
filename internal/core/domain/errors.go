package domain

import "errors"

var (
	ErrVotingClosed       = errors.New("Voting is only allowed before 11:00 AM")
	ErrStaleMenu          = errors.New("You can only vote for today's menu")
	ErrAlreadyVoted       = errors.New("employee has already voted today")
	ErrMenuNotFound       = errors.New("menu not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrMenuExists         = errors.New("menu for this restaurant and date already exists")
	ErrInternal           = errors.New("internal server error")
)
