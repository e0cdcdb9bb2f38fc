package questionbank

import "errors"

var (
	// ErrEmptyBank is returned when a bank has no skills or no questions.
	ErrEmptyBank = errors.New("question bank is empty")

	// ErrInvalidBank wraps structural validation failures.
	ErrInvalidBank = errors.New("question bank validation failed")

	// ErrQuestionNotFound is returned when a question id is not in the bank.
	ErrQuestionNotFound = errors.New("question not found")
)
