package usecase

import (
	"context"
	"fmt"

	"go-sirius-backend/internal/domain"
	"go-sirius-backend/pkg/assist"
)

type assistUsecase struct {
	improver assist.Improver
}

// NewAssistUsecase creates a new assist usecase. The improver may be nil when
// no Gemini API key is configured; ImproveMessage then refuses immediately.
func NewAssistUsecase(improver assist.Improver) domain.AssistUsecase {
	return &assistUsecase{
		improver: improver,
	}
}

// ImproveMessage asks the assistant for a clearer version of the draft.
func (uc *assistUsecase) ImproveMessage(ctx context.Context, req *domain.AssistRequest) (*domain.AssistResult, error) {
	if uc.improver == nil {
		return nil, fmt.Errorf("assist service is not configured")
	}

	improved, err := uc.improver.Improve(ctx, req.Message)
	if err != nil {
		return nil, fmt.Errorf("failed to improve message: %w", err)
	}

	return &domain.AssistResult{ImprovedMessage: improved}, nil
}
