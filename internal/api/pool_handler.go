package api

import (
	"net/http"

	"PredictAdmin/internal/repository"
	"PredictAdmin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PoolHandler 奖池接口
type PoolHandler struct {
	svc    *service.PoolService
	logger *logrus.Logger
}

func NewPoolHandler(db *gorm.DB, opts service.Options) *PoolHandler {
	return &PoolHandler{
		svc:    service.NewPoolService(repository.NewPoolRepository(db), opts),
		logger: opts.Logger,
	}
}

// List GET /pools?gameweekId=1
func (h *PoolHandler) List(c *gin.Context) {
	gameweekID, ok := optionalQueryID(c, h.logger, "gameweekId")
	if !ok {
		return
	}
	list, err := h.svc.List(c.Request.Context(), gameweekID)
	if err != nil {
		respondError(c, h.logger, err, "ListPools")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *PoolHandler) Create(c *gin.Context) {
	var req service.CreatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	pool, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "CreatePool")
		return
	}
	c.JSON(http.StatusCreated, pool)
}

func (h *PoolHandler) Get(c *gin.Context) {
	id, ok := parseID(c, h.logger, "id")
	if !ok {
		return
	}
	pool, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "GetPool")
		return
	}
	c.JSON(http.StatusOK, pool)
}

func (h *PoolHandler) Update(c *gin.Context) {
	id, ok := parseID(c, h.logger, "id")
	if !ok {
		return
	}
	var req service.UpdatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	pool, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, h.logger, err, "UpdatePool")
		return
	}
	c.JSON(http.StatusOK, pool)
}
