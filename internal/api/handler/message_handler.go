package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lamsaclean/backoffice-api/internal/core/ports"
)

// MessageHandler handles the public contact form and the admin message
// inbox.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Contact handles POST /v1/public/contact — the public contact form.
//
// @Summary      Submit a contact message
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Contact form fields"
// @Success      201   {object}  domain.Message
// @Failure      400   {object}  errorResponse
// @Router       /v1/public/contact [post]
func (h *MessageHandler) Contact(c echo.Context) error {
	var req contactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateMessageInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Subject:  req.Subject,
		Body:     req.Body,
		Service:  req.Service,
		Language: req.Language,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /v1/admin/messages.
//
// @Summary      List contact messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        status   query     string  false  "Filter by status"  Enums(new, read, replied, resolved, archived)
// @Param        service  query     string  false  "Filter by service of interest"
// @Success      200      {object}  listMessagesResponse
// @Failure      401      {object}  errorResponse
// @Router       /v1/admin/messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	messages, err := h.service.List(c.Request().Context(), ports.ListMessagesFilter{
		Status:  c.QueryParam("status"),
		Service: c.QueryParam("service"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listMessagesResponse{Data: messages, Total: len(messages)})
}

// Update handles PUT /v1/admin/messages/:id — the generic patch path.
// Status is written as-is; the flow new → read → replied → resolved is
// advisory only.
//
// @Summary      Update a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Message id (e.g. MSG-0001)"
// @Param        body  body      updateMessageRequest  true  "Fields to change"
// @Success      200   {object}  domain.Message
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/messages/{id} [put]
func (h *MessageHandler) Update(c echo.Context) error {
	var req updateMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateMessageInput{
		Subject: req.Subject,
		Body:    req.Body,
		Status:  req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/admin/messages/:id.
//
// @Summary      Delete a message
// @Tags         messages
// @Security     BearerAuth
// @Param        id  path  string  true  "Message id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/messages/{id} [delete]
func (h *MessageHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// MarkRead handles POST /v1/admin/messages/:id/read.
//
// @Summary      Mark a message read
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Message id"
// @Success      200  {object}  domain.Message
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/messages/{id}/read [post]
func (h *MessageHandler) MarkRead(c echo.Context) error {
	m, err := h.service.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// Reply handles POST /v1/admin/messages/:id/reply.
//
// @Summary      Reply to a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Message id"
// @Param        body  body      replyMessageRequest  true  "Reply text"
// @Success      200   {object}  domain.Message
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/messages/{id}/reply [post]
func (h *MessageHandler) Reply(c echo.Context) error {
	var req replyMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	m, err := h.service.Reply(c.Request().Context(), c.Param("id"), req.Reply)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// Resolve handles POST /v1/admin/messages/:id/resolve.
//
// @Summary      Resolve a message
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Message id"
// @Success      200  {object}  domain.Message
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/messages/{id}/resolve [post]
func (h *MessageHandler) Resolve(c echo.Context) error {
	m, err := h.service.Resolve(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// Archive handles POST /v1/admin/messages/:id/archive.
//
// @Summary      Archive a message
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Message id"
// @Success      200  {object}  domain.Message
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/messages/{id}/archive [post]
func (h *MessageHandler) Archive(c echo.Context) error {
	m, err := h.service.Archive(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// MarkAllRead handles POST /v1/admin/messages/read-all.
//
// @Summary      Mark every new message read
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  countResponse
// @Router       /v1/admin/messages/read-all [post]
func (h *MessageHandler) MarkAllRead(c echo.Context) error {
	n, err := h.service.MarkAllRead(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Updated: n})
}
