package domain

import "errors"

var (
	// ErrInvalidInput marks requests the assessment layer refuses to evaluate.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidKnowledge marks a knowledge file that fails validation.
	ErrInvalidKnowledge = errors.New("invalid knowledge base")
	// ErrUnknownTool is returned when a tool name is not registered.
	ErrUnknownTool = errors.New("tool not found")
)
