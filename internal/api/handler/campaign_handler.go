package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eadmin-africa/portal-api/internal/core/domain"
	"github.com/eadmin-africa/portal-api/internal/core/ports"
	"github.com/eadmin-africa/portal-api/internal/infrastructure/queue"
)

// DeliveryDispatcher is the interface the handler uses to enqueue
// fire-and-forget delivery accounting events.
type DeliveryDispatcher interface {
	Enqueue(event queue.DeliveryEvent)
}

// CampaignHandler handles ad rotation and delivery accounting.
type CampaignHandler struct {
	ads        ports.AdRotationService
	dispatcher DeliveryDispatcher
}

func NewCampaignHandler(ads ports.AdRotationService, dispatcher DeliveryDispatcher) *CampaignHandler {
	return &CampaignHandler{ads: ads, dispatcher: dispatcher}
}

type createCampaignRequest struct {
	PartnerName string `json:"partner_name" validate:"required"`
	ImageURL    string `json:"image_url"    validate:"required,url"`
	Link        string `json:"link"         validate:"required,url"`
	Placement   string `json:"placement"    validate:"required,oneof=banner sidebar inline"`
	Category    string `json:"category"     validate:"required"`
	BrandColor  string `json:"brand_color"`
}

type campaignsResponse struct {
	Campaigns []*domain.AdCampaign `json:"campaigns"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}

// List handles GET /v1/ads?placement=: all campaigns, or those for one placement.
//
// @Summary      List ad campaigns
// @Tags         ads
// @Produce      json
// @Param        placement  query     string  false  "Placement filter (banner, sidebar, inline)"
// @Success      200        {object}  campaignsResponse
// @Router       /v1/ads [get]
func (h *CampaignHandler) List(c echo.Context) error {
	placement := domain.Placement(c.QueryParam("placement"))
	if placement != "" && !domain.ValidPlacement(placement) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown placement")
	}

	campaigns, err := h.ads.ListByPlacement(c.Request().Context(), placement)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, campaignsResponse{Campaigns: campaigns})
}

// Pick handles GET /v1/ads/pick?placement=&pinned=: one rotation pick.
//
// @Summary      Pick a campaign for a placement
// @Tags         ads
// @Produce      json
// @Param        placement  query     string  true   "Placement (banner, sidebar, inline)"
// @Param        pinned     query     string  false  "Campaign id that wins the pick when eligible"
// @Success      200        {object}  domain.AdCampaign
// @Failure      404        {object}  errorResponse
// @Router       /v1/ads/pick [get]
func (h *CampaignHandler) Pick(c echo.Context) error {
	placement := domain.Placement(c.QueryParam("placement"))
	if !domain.ValidPlacement(placement) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown placement")
	}

	selected, err := h.ads.PickForPlacement(c.Request().Context(), placement, c.QueryParam("pinned"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, selected)
}

// RecordImpression handles POST /v1/ads/:id/impressions: enqueues the
// counter update and returns 202. Unknown campaigns are silently dropped by
// the worker.
//
// @Summary      Record a campaign impression
// @Tags         ads
// @Produce      json
// @Param        id   path      string  true  "Campaign id"
// @Success      202  {object}  acceptedResponse
// @Router       /v1/ads/{id}/impressions [post]
func (h *CampaignHandler) RecordImpression(c echo.Context) error {
	h.dispatcher.Enqueue(queue.DeliveryEvent{CampaignID: c.Param("id"), Kind: queue.KindImpression})
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "impression accepted"})
}

// RecordClick handles POST /v1/ads/:id/clicks.
//
// @Summary      Record a campaign click
// @Tags         ads
// @Produce      json
// @Param        id   path      string  true  "Campaign id"
// @Success      202  {object}  acceptedResponse
// @Router       /v1/ads/{id}/clicks [post]
func (h *CampaignHandler) RecordClick(c echo.Context) error {
	h.dispatcher.Enqueue(queue.DeliveryEvent{CampaignID: c.Param("id"), Kind: queue.KindClick})
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "click accepted"})
}

// Create handles POST /v1/ads/campaigns: registers a new campaign.
//
// @Summary      Create an ad campaign
// @Tags         ads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCampaignRequest  true  "Campaign details"
// @Success      201   {object}  domain.AdCampaign
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/ads/campaigns [post]
func (h *CampaignHandler) Create(c echo.Context) error {
	var req createCampaignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.ads.CreateCampaign(c.Request().Context(), ports.CreateCampaignInput{
		PartnerName: req.PartnerName,
		ImageURL:    req.ImageURL,
		Link:        req.Link,
		Placement:   domain.Placement(req.Placement),
		Category:    req.Category,
		BrandColor:  req.BrandColor,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}
