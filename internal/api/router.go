package api

import (
	"net/http"
	"time"

	"PredictAdmin/internal/config"
	"PredictAdmin/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewRouter 创建 gin 引擎并注册中间件与全部管理接口。gin 运行模式由调用方设置
func NewRouter(cfg *config.Config, db *gorm.DB, logger *logrus.Logger, clock clockwork.Clock) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), AccessLog(logger), Recovery(logger))

	if len(cfg.Server.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.Server.CORSOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
			ExposeHeaders: []string{requestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}
	// 注册ppof 方便调试和监测性能问题
	if cfg.Server.Pprof {
		pprof.Register(r)
	}

	opts := service.Options{Logger: logger, Clock: clock, ActorID: cfg.Audit.ActorID}
	RegisterRoutes(r, db, opts)
	return r
}

// RegisterRoutes 注册管理接口
func RegisterRoutes(r gin.IRouter, db *gorm.DB, opts service.Options) {
	health := NewHealthHandler(db, opts.Logger)
	r.GET("/healthz", health.Healthz)

	leagues := NewLeagueHandler(db, opts)
	r.GET("/leagues", leagues.List)
	r.POST("/leagues", leagues.Create)
	r.GET("/leagues/:id", leagues.Get)
	r.PUT("/leagues/:id", leagues.Update)

	seasons := NewSeasonHandler(db, opts)
	r.GET("/seasons", seasons.List)
	r.POST("/seasons", seasons.Create)
	r.GET("/seasons/:id", seasons.Get)
	r.PUT("/seasons/:id", seasons.Update)

	gameweeks := NewGameweekHandler(db, opts)
	r.GET("/gameweeks", gameweeks.List)
	r.POST("/gameweeks", gameweeks.Create)
	r.GET("/gameweeks/:id", gameweeks.Get)
	r.PUT("/gameweeks/:id", gameweeks.Update)

	teams := NewTeamHandler(db, opts)
	r.GET("/teams", teams.List)
	r.POST("/teams", teams.Create)
	r.GET("/teams/:id", teams.Get)
	r.PUT("/teams/:id", teams.Update)

	matches := NewMatchHandler(db, opts)
	r.GET("/matches", matches.List)
	r.POST("/matches", matches.Create)
	r.GET("/matches/:id", matches.Get)
	r.PUT("/matches/:id", matches.Update)

	users := NewUserHandler(db, opts)
	r.POST("/users", users.Create)
	r.GET("/users/by-wallet/:wallet", users.GetByWallet)
	r.GET("/users/:id", users.Get)

	pools := NewPoolHandler(db, opts)
	r.GET("/pools", pools.List)
	r.POST("/pools", pools.Create)
	r.GET("/pools/:id", pools.Get)
	r.PUT("/pools/:id", pools.Update)

	participations := NewParticipationHandler(db, opts)
	r.GET("/participations", participations.List)
	r.POST("/participations", participations.Create)
	r.GET("/participations/:id", participations.Get)
	r.PUT("/participations/:id", participations.Update)
	r.GET("/participations/:id/result", participations.GetResult)
	r.POST("/participation-results", participations.CreateResult)
	r.PUT("/participation-results/:id", participations.UpdateResult)
}
