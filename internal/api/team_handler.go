package api

import (
	"net/http"

	"PredictAdmin/internal/repository"
	"PredictAdmin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TeamHandler struct {
	svc    *service.TeamService
	logger *logrus.Logger
}

func NewTeamHandler(db *gorm.DB, opts service.Options) *TeamHandler {
	return &TeamHandler{
		svc:    service.NewTeamService(repository.NewTeamRepository(db), opts),
		logger: opts.Logger,
	}
}

// List GET /teams?leagueId=1
func (h *TeamHandler) List(c *gin.Context) {
	leagueID, ok := optionalQueryID(c, h.logger, "leagueId")
	if !ok {
		return
	}
	list, err := h.svc.List(c.Request.Context(), leagueID)
	if err != nil {
		respondError(c, h.logger, err, "ListTeams")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *TeamHandler) Create(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	team, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "CreateTeam")
		return
	}
	c.JSON(http.StatusCreated, team)
}

func (h *TeamHandler) Get(c *gin.Context) {
	id, ok := parseID(c, h.logger, "id")
	if !ok {
		return
	}
	team, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "GetTeam")
		return
	}
	c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := parseID(c, h.logger, "id")
	if !ok {
		return
	}
	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	team, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, h.logger, err, "UpdateTeam")
		return
	}
	c.JSON(http.StatusOK, team)
}
