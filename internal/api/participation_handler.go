package api

import (
	"net/http"

	"PredictAdmin/internal/repository"
	"PredictAdmin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ParticipationHandler 参与记录与结算结果接口
type ParticipationHandler struct {
	svc    *service.ParticipationService
	logger *logrus.Logger
}

func NewParticipationHandler(db *gorm.DB, opts service.Options) *ParticipationHandler {
	svc := service.NewParticipationService(
		repository.NewParticipationRepository(db),
		repository.NewResultRepository(db),
		opts,
	)
	return &ParticipationHandler{svc: svc, logger: opts.Logger}
}

// List GET /participations?poolId=1&userId=2
func (h *ParticipationHandler) List(c *gin.Context) {
	poolID, ok := optionalQueryID(c, h.logger, "poolId")
	if !ok {
		return
	}
	userID, ok := optionalQueryID(c, h.logger, "userId")
	if !ok {
		return
	}
	list, err := h.svc.List(c.Request.Context(), repository.ParticipationFilter{PoolID: poolID, UserID: userID})
	if err != nil {
		respondError(c, h.logger, err, "ListParticipations")
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create POST /participations，同时累加奖池人数与奖金
func (h *ParticipationHandler) Create(c *gin.Context) {
	var req service.CreateParticipationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "CreateParticipation")
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ParticipationHandler) Get(c *gin.Context) {
	id, ok := parseID(c, h.logger, "id")
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "GetParticipation")
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update PUT /participations/:id，回填交易哈希与核验状态
func (h *ParticipationHandler) Update(c *gin.Context) {
	id, ok := parseID(c, h.logger, "id")
	if !ok {
		return
	}
	var req service.UpdateParticipationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, h.logger, err, "UpdateParticipation")
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateResult POST /participation-results
func (h *ParticipationHandler) CreateResult(c *gin.Context) {
	var req service.CreateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.svc.CreateResult(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "CreateParticipationResult")
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GetResult GET /participations/:id/result
func (h *ParticipationHandler) GetResult(c *gin.Context) {
	id, ok := parseID(c, h.logger, "id")
	if !ok {
		return
	}
	res, err := h.svc.ResultOf(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "GetParticipationResult")
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateResult PUT /participation-results/:id
func (h *ParticipationHandler) UpdateResult(c *gin.Context) {
	id, ok := parseID(c, h.logger, "id")
	if !ok {
		return
	}
	var req service.UpdateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.svc.UpdateResult(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, h.logger, err, "UpdateParticipationResult")
		return
	}
	c.JSON(http.StatusOK, res)
}
