package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lamsaclean/backoffice-api/internal/core/ports"
)

// ContentHandler handles the editable site copy and the color palettes,
// on both the admin and public surfaces.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// GetContent handles GET /v1/admin/content and GET /v1/public/content.
//
// @Summary      Get site content
// @Tags         content
// @Produce      json
// @Success      200  {object}  domain.SiteContent
// @Router       /v1/public/content [get]
func (h *ContentHandler) GetContent(c echo.Context) error {
	content, err := h.service.GetContent(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, content)
}

// UpdateContent handles PUT /v1/admin/content.
//
// @Summary      Update site content
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateContentRequest  true  "Fields to change"
// @Success      200   {object}  domain.SiteContent
// @Failure      400   {object}  errorResponse
// @Router       /v1/admin/content [put]
func (h *ContentHandler) UpdateContent(c echo.Context) error {
	var req updateContentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := ports.UpdateContentInput{
		HeroTitle:    req.HeroTitle.toInput(),
		HeroSubtitle: req.HeroSubtitle.toInput(),
	}
	if req.Services != nil {
		input.Services = make([]ports.ServiceItemInput, len(req.Services))
		for i, s := range req.Services {
			input.Services[i] = ports.ServiceItemInput{
				NameAr:        s.Name.Ar,
				NameEn:        s.Name.En,
				DescriptionAr: s.Description.Ar,
				DescriptionEn: s.Description.En,
				Icon:          s.Icon,
			}
		}
	}
	if req.Testimonials != nil {
		input.Testimonials = make([]ports.TestimonialInput, len(req.Testimonials))
		for i, t := range req.Testimonials {
			input.Testimonials[i] = ports.TestimonialInput{
				Author:  t.Author,
				QuoteAr: t.Quote.Ar,
				QuoteEn: t.Quote.En,
			}
		}
	}

	updated, err := h.service.UpdateContent(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// ListPalettes handles GET /v1/admin/palettes and GET /v1/public/palettes.
//
// @Summary      List color palettes
// @Tags         content
// @Produce      json
// @Success      200  {object}  listPalettesResponse
// @Router       /v1/public/palettes [get]
func (h *ContentHandler) ListPalettes(c echo.Context) error {
	palettes, err := h.service.ListPalettes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listPalettesResponse{Data: palettes, Total: len(palettes)})
}

// CreatePalette handles POST /v1/admin/palettes.
//
// @Summary      Create a color palette
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPaletteRequest  true  "Palette colors"
// @Success      201   {object}  domain.ColorPalette
// @Failure      400   {object}  errorResponse
// @Router       /v1/admin/palettes [post]
func (h *ContentHandler) CreatePalette(c echo.Context) error {
	var req createPaletteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.service.CreatePalette(c.Request().Context(), ports.CreatePaletteInput{
		Name:       req.Name,
		Primary:    req.Primary,
		Secondary:  req.Secondary,
		Accent:     req.Accent,
		Background: req.Background,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdatePalette handles PUT /v1/admin/palettes/:id.
//
// @Summary      Update a color palette
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Palette id (e.g. PAL-0001)"
// @Param        body  body      updatePaletteRequest  true  "Fields to change"
// @Success      200   {object}  domain.ColorPalette
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/palettes/{id} [put]
func (h *ContentHandler) UpdatePalette(c echo.Context) error {
	var req updatePaletteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.service.UpdatePalette(c.Request().Context(), c.Param("id"), ports.UpdatePaletteInput{
		Name:       req.Name,
		Primary:    req.Primary,
		Secondary:  req.Secondary,
		Accent:     req.Accent,
		Background: req.Background,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// ActivatePalette handles POST /v1/admin/palettes/:id/activate.
//
// @Summary      Activate a color palette
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Palette id"
// @Success      200  {object}  domain.ColorPalette
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/palettes/{id}/activate [post]
func (h *ContentHandler) ActivatePalette(c echo.Context) error {
	activated, err := h.service.ActivatePalette(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activated)
}

// DeletePalette handles DELETE /v1/admin/palettes/:id.
//
// @Summary      Delete a color palette
// @Tags         content
// @Security     BearerAuth
// @Param        id  path  string  true  "Palette id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/palettes/{id} [delete]
func (h *ContentHandler) DeletePalette(c echo.Context) error {
	if err := h.service.DeletePalette(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
