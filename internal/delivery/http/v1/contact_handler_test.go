package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"go-sirius-backend/config"
	v1 "go-sirius-backend/internal/delivery/http/v1"
	"go-sirius-backend/internal/domain"
	"go-sirius-backend/pkg/i18n"
	"go-sirius-backend/pkg/logger"
	"go-sirius-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}
	os.Exit(m.Run())
}

type MockContactUC struct {
	mock.Mock
}

func (m *MockContactUC) SendContactMessage(ctx context.Context, loc *i18n.Locale, req *domain.ContactRequest) *domain.DeliveryResult {
	args := m.Called(ctx, loc, req)
	return args.Get(0).(*domain.DeliveryResult)
}

type MockAssistUC struct {
	mock.Mock
}

func (m *MockAssistUC) ImproveMessage(ctx context.Context, req *domain.AssistRequest) (*domain.AssistResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssistResult), args.Error(1)
}

func newTestRouter(t *testing.T, contactUC domain.ContactUsecase, assistUC domain.AssistUsecase) *gin.Engine {
	t.Helper()
	translator, err := i18n.New()
	require.NoError(t, err)

	return v1.NewRouter(v1.RouterDeps{
		ContactUC:  contactUC,
		AssistUC:   assistUC,
		Translator: translator,
		Config: &config.Config{
			RateLimitWindowSeconds:    60,
			RateLimitContactThreshold: 100,
			RateLimitGlobalThreshold:  100,
		},
	})
}

func TestSubmitContactSuccess(t *testing.T) {
	mockUC := new(MockContactUC)
	mockUC.On("SendContactMessage", mock.Anything, mock.Anything, mock.AnythingOfType("*domain.ContactRequest")).
		Return(&domain.DeliveryResult{Success: true, Message: "Your message has been sent successfully!"})

	router := newTestRouter(t, mockUC, new(MockAssistUC))

	body := `{"name":"Jane Doe","email":"jane@example.com","message":"Hello, I am interested in your IP blocks.","consent":true}`
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Your message has been sent successfully!", resp.Message)
	mockUC.AssertNumberOfCalls(t, "SendContactMessage", 1)
}

func TestSubmitContactInvalidFields(t *testing.T) {
	mockUC := new(MockContactUC)
	router := newTestRouter(t, mockUC, new(MockAssistUC))

	// Four independent violations: short name, bad email, short message,
	// consent withheld
	body := `{"name":"A","email":"not-an-email","message":"short","consent":false}`
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool                    `json:"success"`
		Error   []validation.FieldError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Len(t, resp.Error, 4)

	// The delivery service is never invoked for invalid input
	mockUC.AssertNotCalled(t, "SendContactMessage")
}

func TestSubmitContactDeliveryFailure(t *testing.T) {
	mockUC := new(MockContactUC)
	mockUC.On("SendContactMessage", mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.DeliveryResult{Success: false, Message: "An error occurred while sending your message. Please try again."})

	router := newTestRouter(t, mockUC, new(MockAssistUC))

	body := `{"name":"Jane Doe","email":"jane@example.com","message":"Hello, I am interested in your IP blocks.","consent":true}`
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestSubmitContactVietnameseLocale(t *testing.T) {
	mockUC := new(MockContactUC)
	router := newTestRouter(t, mockUC, new(MockAssistUC))

	body := `{"name":"Jane Doe","email":"jane@example.com","message":"short","consent":true}`
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "vi")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Tin nhắn phải có ít nhất 10 ký tự.")
}

func TestImproveMessageEndpoint(t *testing.T) {
	mockAssist := new(MockAssistUC)
	mockAssist.On("ImproveMessage", mock.Anything, mock.AnythingOfType("*domain.AssistRequest")).
		Return(&domain.AssistResult{ImprovedMessage: "A clearer message."}, nil)

	router := newTestRouter(t, new(MockContactUC), mockAssist)

	body := `{"message":"plz send info abt ur chips"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/contact/assist", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "A clearer message.")
}

func TestImproveMessageUnavailable(t *testing.T) {
	mockAssist := new(MockAssistUC)
	mockAssist.On("ImproveMessage", mock.Anything, mock.Anything).
		Return(nil, errors.New("model overloaded"))

	router := newTestRouter(t, new(MockContactUC), mockAssist)

	body := `{"message":"plz send info abt ur chips"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/contact/assist", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "The message could not be improved. Please try again.")
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, new(MockContactUC), new(MockAssistUC))

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
