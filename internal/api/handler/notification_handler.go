package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
	"github.com/lamsaclean/backoffice-api/internal/core/ports"
)

type createNotificationRequest struct {
	Title    string `json:"title"    validate:"required"`
	Body     string `json:"body"`
	Category string `json:"category" validate:"required,oneof=message customer system"`
	Priority string `json:"priority" validate:"omitempty,oneof=low normal high"`
}

type listNotificationsResponse struct {
	Data  []domain.Notification `json:"data"`
	Total int                   `json:"total"`
}

// NotificationHandler handles the admin dashboard bell.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List handles GET /v1/admin/notifications.
//
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        category  query     string  false  "Filter by category"  Enums(message, customer, system)
// @Param        priority  query     string  false  "Filter by priority"  Enums(low, normal, high)
// @Param        unread    query     bool    false  "Only unread notifications"
// @Success      200       {object}  listNotificationsResponse
// @Failure      401       {object}  errorResponse
// @Router       /v1/admin/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	notifications, err := h.service.List(c.Request().Context(), ports.ListNotificationsFilter{
		Category: c.QueryParam("category"),
		Priority: c.QueryParam("priority"),
		Unread:   c.QueryParam("unread") == "true",
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listNotificationsResponse{Data: notifications, Total: len(notifications)})
}

// Create handles POST /v1/admin/notifications.
//
// @Summary      Create a notification
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createNotificationRequest  true  "Notification details"
// @Success      201   {object}  domain.Notification
// @Failure      400   {object}  errorResponse
// @Router       /v1/admin/notifications [post]
func (h *NotificationHandler) Create(c echo.Context) error {
	var req createNotificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateNotificationInput{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
		Priority: req.Priority,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// MarkRead handles POST /v1/admin/notifications/:id/read.
//
// @Summary      Mark a notification read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Notification id (e.g. NTF-0001)"
// @Success      200  {object}  domain.Notification
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	n, err := h.service.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// MarkAllRead handles POST /v1/admin/notifications/read-all.
//
// @Summary      Mark every notification read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  countResponse
// @Router       /v1/admin/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	n, err := h.service.MarkAllRead(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Updated: n})
}

// Delete handles DELETE /v1/admin/notifications/:id.
//
// @Summary      Delete a notification
// @Tags         notifications
// @Security     BearerAuth
// @Param        id  path  string  true  "Notification id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/notifications/{id} [delete]
func (h *NotificationHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
