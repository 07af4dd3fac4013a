package v1

import (
	"context"
	"net/http"
	"time"

	"go-sirius-backend/internal/delivery/http/response"
	"go-sirius-backend/internal/domain"
	"go-sirius-backend/pkg/apperror"
	"go-sirius-backend/pkg/i18n"
	"go-sirius-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

const assistTimeout = 30 * time.Second

type AssistHandler struct {
	assistUC   domain.AssistUsecase
	translator *i18n.Translator
}

// NewAssistHandler registers the contact form writing assistant route
func NewAssistHandler(public *gin.RouterGroup, assistUC domain.AssistUsecase, translator *i18n.Translator) {
	handler := &AssistHandler{
		assistUC:   assistUC,
		translator: translator,
	}

	public.POST("/contact/assist", handler.ImproveMessage)
}

// ImproveMessage godoc
// @Summary      Improve Contact Message
// @Description  Suggest an improved version of a draft contact message. Failure here never affects delivery.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        Accept-Language  header    string                false  "Preferred locale (en, vi)"
// @Param        assist           body      domain.AssistRequest  true   "Draft message"
// @Success      200      {object}  response.Response{data=domain.AssistResult}
// @Failure      400      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /contact/assist [post]
func (h *AssistHandler) ImproveMessage(c *gin.Context) {
	loc := h.translator.Localizer(c.GetHeader("Accept-Language"))

	var req domain.AssistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fieldErrors := validation.FormatValidationErrors(err, loc)
		response.Error(c, http.StatusBadRequest, loc.T("contact.form.invalid"), fieldErrors)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), assistTimeout)
	defer cancel()

	result, err := h.assistUC.ImproveMessage(ctx, &req)
	if err != nil {
		c.Error(apperror.New(http.StatusServiceUnavailable, loc.T("contact.assist.failure"), err))
		return
	}

	response.Success(c, http.StatusOK, "", result)
}
