package v1

import (
	"context"
	"net/http"
	"time"

	"go-sirius-backend/internal/delivery/http/response"
	"go-sirius-backend/internal/domain"
	"go-sirius-backend/pkg/i18n"
	"go-sirius-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// contactTimeout bounds the two outbound round trips (token exchange + send).
const contactTimeout = 30 * time.Second

type ContactHandler struct {
	contactUC  domain.ContactUsecase
	translator *i18n.Translator
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, translator *i18n.Translator) {
	handler := &ContactHandler{
		contactUC:  contactUC,
		translator: translator,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        Accept-Language  header    string                 false  "Preferred locale (en, vi)"
// @Param        contact          body      domain.ContactRequest  true   "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	loc := h.translator.Localizer(c.GetHeader("Accept-Language"))

	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fieldErrors := validation.FormatValidationErrors(err, loc)
		response.Error(c, http.StatusBadRequest, loc.T("contact.form.invalid"), fieldErrors)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), contactTimeout)
	defer cancel()

	result := h.contactUC.SendContactMessage(ctx, loc, &req)
	if !result.Success {
		// Misconfiguration and provider failures are deliberately
		// indistinguishable to the client.
		response.Error(c, http.StatusInternalServerError, result.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, result.Message, nil)
}
