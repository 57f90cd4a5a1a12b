package api

import (
	"net/http"

	"PredictAdmin/internal/repository"
	"PredictAdmin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// GameweekHandler 比赛周接口
type GameweekHandler struct {
	svc    *service.GameweekService
	logger *logrus.Logger
}

// NewGameweekHandler 详情接口需要比赛与奖池仓储
func NewGameweekHandler(db *gorm.DB, opts service.Options) *GameweekHandler {
	svc := service.NewGameweekService(
		repository.NewGameweekRepository(db),
		repository.NewMatchRepository(db),
		repository.NewPoolRepository(db),
		opts,
	)
	return &GameweekHandler{svc: svc, logger: opts.Logger}
}

// List GET /gameweeks?seasonId=1，附赛季名与联赛名
func (h *GameweekHandler) List(c *gin.Context) {
	seasonID, ok := optionalQueryID(c, h.logger, "seasonId")
	if !ok {
		return
	}
	list, err := h.svc.List(c.Request.Context(), seasonID)
	if err != nil {
		respondError(c, h.logger, err, "ListGameweeks")
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create POST /gameweeks，六个字段均必填
func (h *GameweekHandler) Create(c *gin.Context) {
	var req service.CreateGameweekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	gw, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "CreateGameweek")
		return
	}
	c.JSON(http.StatusCreated, gw)
}

// Get GET /gameweeks/:id 返回 {gameweek, matches, pool}
func (h *GameweekHandler) Get(c *gin.Context) {
	id, ok := parseID(c, h.logger, "id")
	if !ok {
		return
	}
	detail, err := h.svc.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "GetGameweek")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Update PUT /gameweeks/:id
func (h *GameweekHandler) Update(c *gin.Context) {
	id, ok := parseID(c, h.logger, "id")
	if !ok {
		return
	}
	var req service.UpdateGameweekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	gw, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, h.logger, err, "UpdateGameweek")
		return
	}
	c.JSON(http.StatusOK, gw)
}
