package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lamsaclean/backoffice-api/internal/core/ports"
)

// localizedPatch is a partial bilingual field: absent languages stay
// untouched.
type localizedPatch struct {
	Ar *string `json:"ar"`
	En *string `json:"en"`
}

func (p *localizedPatch) toInput() *ports.LocalizedTextInput {
	if p == nil {
		return nil
	}
	return &ports.LocalizedTextInput{Ar: p.Ar, En: p.En}
}

type updateSettingsRequest struct {
	Name         *localizedPatch `json:"name"`
	Tagline      *localizedPatch `json:"tagline"`
	About        *localizedPatch `json:"about"`
	Phone        *string         `json:"phone"`
	WhatsApp     *string         `json:"whatsapp"`
	Email        *string         `json:"email" validate:"omitempty,email"`
	Address      *localizedPatch `json:"address"`
	WorkingHours *localizedPatch `json:"working_hours"`
	Instagram    *string         `json:"instagram"`
	Twitter      *string         `json:"twitter"`
	TikTok       *string         `json:"tiktok"`
	Snapchat     *string         `json:"snapchat"`
}

// SettingsHandler handles the singleton company profile.
type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get handles GET /v1/admin/settings.
//
// @Summary      Get company settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.CompanySettings
// @Failure      401  {object}  errorResponse
// @Router       /v1/admin/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Update handles PUT /v1/admin/settings.
//
// @Summary      Update company settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateSettingsRequest  true  "Fields to change"
// @Success      200   {object}  domain.CompanySettings
// @Failure      400   {object}  errorResponse
// @Router       /v1/admin/settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req updateSettingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), ports.UpdateSettingsInput{
		Name:         req.Name.toInput(),
		Tagline:      req.Tagline.toInput(),
		About:        req.About.toInput(),
		Phone:        req.Phone,
		WhatsApp:     req.WhatsApp,
		Email:        req.Email,
		Address:      req.Address.toInput(),
		WorkingHours: req.WorkingHours.toInput(),
		Instagram:    req.Instagram,
		Twitter:      req.Twitter,
		TikTok:       req.TikTok,
		Snapchat:     req.Snapchat,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
