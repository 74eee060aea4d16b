package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/technoschool/technoschool-api/internal/service"
	appErrors "github.com/technoschool/technoschool-api/pkg/errors"
	"github.com/technoschool/technoschool-api/pkg/response"
)

// ContactHandler handles the contact form endpoints.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{service: svc}
}

// Submit godoc
// @Summary Submit contact form
// @Description Persist a contact form submission
// @Tags Contacts
// @Accept json
// @Produce json
// @Param payload body service.SubmitContactRequest true "Contact payload"
// @Success 200 {object} response.Ack
// @Failure 400 {object} map[string]string
// @Router /api/contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req service.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Name and email are required"))
		return
	}

	contact, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Acknowledge(c, "Contact form submitted successfully", contact.ID)
}

// List godoc
// @Summary List contact submissions
// @Description Up to 100 most recent contact submissions
// @Tags Contacts
// @Produce json
// @Success 200 {array} models.ContactRow
// @Failure 500 {object} map[string]string
// @Router /api/contacts [get]
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, contacts)
}
