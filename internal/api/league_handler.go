package api

import (
	"net/http"

	"PredictAdmin/internal/repository"
	"PredictAdmin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// LeagueHandler 联赛接口
type LeagueHandler struct {
	svc    *service.LeagueService
	logger *logrus.Logger
}

// NewLeagueHandler 创建 LeagueHandler
func NewLeagueHandler(db *gorm.DB, opts service.Options) *LeagueHandler {
	return &LeagueHandler{
		svc:    service.NewLeagueService(repository.NewLeagueRepository(db), opts),
		logger: opts.Logger,
	}
}

// List GET /leagues
func (h *LeagueHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "ListLeagues")
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create POST /leagues
func (h *LeagueHandler) Create(c *gin.Context) {
	var req service.CreateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	league, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "CreateLeague")
		return
	}
	c.JSON(http.StatusCreated, league)
}

// Get GET /leagues/:id
func (h *LeagueHandler) Get(c *gin.Context) {
	id, ok := parseID(c, h.logger, "id")
	if !ok {
		return
	}
	league, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "GetLeague")
		return
	}
	c.JSON(http.StatusOK, league)
}

// Update PUT /leagues/:id
func (h *LeagueHandler) Update(c *gin.Context) {
	id, ok := parseID(c, h.logger, "id")
	if !ok {
		return
	}
	var req service.UpdateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	league, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, h.logger, err, "UpdateLeague")
		return
	}
	c.JSON(http.StatusOK, league)
}
