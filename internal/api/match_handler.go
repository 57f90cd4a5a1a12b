package api

import (
	"net/http"

	"PredictAdmin/internal/repository"
	"PredictAdmin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MatchHandler 比赛接口
type MatchHandler struct {
	svc    *service.MatchService
	logger *logrus.Logger
}

func NewMatchHandler(db *gorm.DB, opts service.Options) *MatchHandler {
	return &MatchHandler{
		svc:    service.NewMatchService(repository.NewMatchRepository(db), opts),
		logger: opts.Logger,
	}
}

// List GET /matches?gameweekId=1，gameweekId 必填
func (h *MatchHandler) List(c *gin.Context) {
	gameweekID, ok := optionalQueryID(c, h.logger, "gameweekId")
	if !ok {
		return
	}
	if gameweekID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "gameweekId parameter is required"})
		return
	}
	list, err := h.svc.ListByGameweek(c.Request.Context(), *gameweekID)
	if err != nil {
		respondError(c, h.logger, err, "ListMatches")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *MatchHandler) Create(c *gin.Context) {
	var req service.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	match, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "CreateMatch")
		return
	}
	c.JSON(http.StatusCreated, match)
}

func (h *MatchHandler) Get(c *gin.Context) {
	id, ok := parseID(c, h.logger, "id")
	if !ok {
		return
	}
	match, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "GetMatch")
		return
	}
	c.JSON(http.StatusOK, match)
}

// Update PUT /matches/:id，录入比分、胜者、平局与状态
func (h *MatchHandler) Update(c *gin.Context) {
	id, ok := parseID(c, h.logger, "id")
	if !ok {
		return
	}
	var req service.UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	match, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, h.logger, err, "UpdateMatch")
		return
	}
	c.JSON(http.StatusOK, match)
}
