package api

import (
	"net/http"

	"PredictAdmin/internal/repository"
	"PredictAdmin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserHandler 用户接口
type UserHandler struct {
	svc    *service.UserService
	logger *logrus.Logger
}

func NewUserHandler(db *gorm.DB, opts service.Options) *UserHandler {
	return &UserHandler{
		svc:    service.NewUserService(repository.NewUserRepository(db), opts),
		logger: opts.Logger,
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err, "CreateUser")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, h.logger, "id")
	if !ok {
		return
	}
	user, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "GetUser")
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetByWallet GET /users/by-wallet/:wallet，地址大小写不敏感
func (h *UserHandler) GetByWallet(c *gin.Context) {
	user, err := h.svc.GetByWallet(c.Request.Context(), c.Param("wallet"))
	if err != nil {
		respondError(c, h.logger, err, "GetUserByWallet")
		return
	}
	c.JSON(http.StatusOK, user)
}
