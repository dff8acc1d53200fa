package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eadmin-africa/portal-api/internal/core/domain"
	"github.com/eadmin-africa/portal-api/internal/core/ports"
)

// RequestHandler handles service-request submission and role-scoped reads.
type RequestHandler struct {
	ledger ports.LedgerService
	users  ports.DirectoryService
}

func NewRequestHandler(ledger ports.LedgerService, users ports.DirectoryService) *RequestHandler {
	return &RequestHandler{ledger: ledger, users: users}
}

type submitRequestRequest struct {
	ServiceType    string `json:"service_type"    validate:"required"`
	SubType        string `json:"sub_type"`
	ServiceOption  string `json:"service_option"`
	Country        string `json:"country"         validate:"required"`
	City           string `json:"city"            validate:"required"`
	AdditionalInfo string `json:"additional_info"`
}

type advanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress awaiting_info validating completed rejected"`
}

type requestsResponse struct {
	Requests []*domain.ServiceRequest `json:"requests"`
}

// Submit handles POST /v1/requests. The requester identity comes from the
// session; when the client was agent-enrolled the request carries the
// enrolling agent's id.
//
// @Summary      File a new service request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitRequestRequest  true  "Request details"
// @Success      201   {object}  domain.ServiceRequest
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/requests [post]
func (h *RequestHandler) Submit(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	var req submitRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.users.FindByEmailAndRole(c.Request().Context(), viewer.Email, domain.RoleClient)
	if err != nil {
		return err
	}

	created, err := h.ledger.Submit(c.Request().Context(), ports.SubmitRequestInput{
		ServiceType:    req.ServiceType,
		SubType:        req.SubType,
		ServiceOption:  req.ServiceOption,
		Country:        req.Country,
		City:           req.City,
		ClientName:     profile.FullName,
		ClientEmail:    profile.Email,
		AdditionalInfo: req.AdditionalInfo,
		AgentID:        profile.EnrolledByAgentID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// List handles GET /v1/requests: admins see everything, clients their own
// requests, agents their enrolled clients' requests.
//
// @Summary      List service requests visible to the caller
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  requestsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/requests [get]
func (h *RequestHandler) List(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	requests, err := h.ledger.ListFor(c.Request().Context(), viewer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requestsResponse{Requests: requests})
}

// Get handles GET /v1/requests/:id with the same visibility rules as List.
//
// @Summary      Get one service request
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Case id (e.g. EA-7A8B9C2D)"
// @Success      200  {object}  domain.ServiceRequest
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/requests/{id} [get]
func (h *RequestHandler) Get(c echo.Context) error {
	viewer, err := ctxViewer(c)
	if err != nil {
		return err
	}

	req, err := h.ledger.Get(c.Request().Context(), viewer, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, req)
}

// AdvanceStatus handles PATCH /v1/requests/:id/status: administrative case
// progression through the request state machine.
//
// @Summary      Advance a request's status
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Case id"
// @Param        body  body      advanceStatusRequest  true  "Target status"
// @Success      200   {object}  domain.ServiceRequest
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/requests/{id}/status [patch]
func (h *RequestHandler) AdvanceStatus(c echo.Context) error {
	var req advanceStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.ledger.AdvanceStatus(c.Request().Context(), c.Param("id"), domain.RequestStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
