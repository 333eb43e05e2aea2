package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velura/storefront-api/internal/core/ports"
)

type PartnershipHandler struct {
	partnershipService ports.PartnershipService
}

func NewPartnershipHandler(partnershipService ports.PartnershipService) *PartnershipHandler {
	return &PartnershipHandler{partnershipService: partnershipService}
}

// Create records a partnership inquiry. Open endpoint, no session needed.
//
// @Summary      Submit partnership inquiry
// @Tags         partnerships
// @Accept       json
// @Produce      json
// @Param        body  body      createPartnershipRequest  true  "Inquiry details"
// @Success      201   {object}  domain.Partnership
// @Failure      400   {object}  errorResponse
// @Router       /api/partnerships [post]
func (h *PartnershipHandler) Create(c echo.Context) error {
	var req createPartnershipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	partnership, err := h.partnershipService.Create(c.Request().Context(), ports.CreatePartnershipInput{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, partnership)
}
