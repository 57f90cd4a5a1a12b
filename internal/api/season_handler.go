package api

import (
	"net/http"

	"PredictAdmin/internal/repository"
	"PredictAdmin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeasonHandler 赛季接口
type SeasonHandler struct {
	svc    *service.SeasonService
	logger *logrus.Logger
}

func NewSeasonHandler(db *gorm.DB, opts service.Options) *SeasonHandler {
	return &SeasonHandler{
		svc:    service.NewSeasonService(repository.NewSeasonRepository(db), opts),
		logger: opts.Logger,
	}
}

// List GET /seasons?leagueId=1
func (h *SeasonHandler) List(c *gin.Context) {
	leagueID, ok := optionalQueryID(c, h.logger, "leagueId")
	if !ok {
		return
	}
	list, err := h.svc.List(c.Request.Context(), leagueID)
	if err != nil {
		respondError(c, h.logger, err, "ListSeasons")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *SeasonHandler) Create(c *gin.Context) {
	var req service.CreateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	season, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "CreateSeason")
		return
	}
	c.JSON(http.StatusCreated, season)
}

func (h *SeasonHandler) Get(c *gin.Context) {
	id, ok := parseID(c, h.logger, "id")
	if !ok {
		return
	}
	season, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "GetSeason")
		return
	}
	c.JSON(http.StatusOK, season)
}

func (h *SeasonHandler) Update(c *gin.Context) {
	id, ok := parseID(c, h.logger, "id")
	if !ok {
		return
	}
	var req service.UpdateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	season, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, h.logger, err, "UpdateSeason")
		return
	}
	c.JSON(http.StatusOK, season)
}
