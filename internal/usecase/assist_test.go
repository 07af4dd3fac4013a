package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-sirius-backend/internal/domain"
	"go-sirius-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockImprover struct {
	mock.Mock
}

func (m *MockImprover) Improve(ctx context.Context, message string) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

func TestImproveMessageSuccess(t *testing.T) {
	mockImprover := new(MockImprover)
	uc := usecase.NewAssistUsecase(mockImprover)

	mockImprover.On("Improve", mock.Anything, "plz send info abt ur chips").
		Return("Could you please send me more information about your chips?", nil)

	result, err := uc.ImproveMessage(context.Background(), &domain.AssistRequest{
		Message: "plz send info abt ur chips",
	})

	require.NoError(t, err)
	assert.Equal(t, "Could you please send me more information about your chips?", result.ImprovedMessage)
}

func TestImproveMessageNotConfigured(t *testing.T) {
	uc := usecase.NewAssistUsecase(nil)

	_, err := uc.ImproveMessage(context.Background(), &domain.AssistRequest{
		Message: "plz send info abt ur chips",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestImproveMessageProviderFailure(t *testing.T) {
	mockImprover := new(MockImprover)
	uc := usecase.NewAssistUsecase(mockImprover)

	mockImprover.On("Improve", mock.Anything, mock.Anything).
		Return("", errors.New("model overloaded"))

	_, err := uc.ImproveMessage(context.Background(), &domain.AssistRequest{
		Message: "plz send info abt ur chips",
	})

	assert.Error(t, err)
}
