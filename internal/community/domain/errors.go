package domain

import "errors"

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrChallengeNotFound    = errors.New("challenge not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrAlreadyVoted         = errors.New("voter already voted for this project")
	ErrInvalidStatus        = errors.New("invalid project status")
	ErrInvalidFeedbackType  = errors.New("invalid feedback type")
)
