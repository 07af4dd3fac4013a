package domain

import "context"

// AssistRequest carries the draft message the user wants rewritten.
type AssistRequest struct {
	Message string `json:"message" binding:"required,min=10"`
}

// AssistResult holds the AI-suggested rewrite of the message.
type AssistResult struct {
	ImprovedMessage string `json:"improvedMessage"`
}

// AssistUsecase defines the interface for the contact form writing assistant.
// It is independent of delivery; its failure never affects a send.
type AssistUsecase interface {
	ImproveMessage(ctx context.Context, req *AssistRequest) (*AssistResult, error)
}
