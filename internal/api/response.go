package api

import (
	"errors"
	"net/http"
	"strconv"

	"PredictAdmin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const internalErrorMessage = "internal server error"

// respondError 按错误种类映射状态码；未归类的错误只记录日志，不把细节返回给调用方
func respondError(c *gin.Context, log *logrus.Logger, err error, op string) {
	var se *service.Error
	message := err.Error()
	if errors.As(err, &se) {
		message = se.Message
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidReference):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	}

	entry := log.WithError(err).WithField("request_id", c.GetString(requestIDKey)).WithField("op", op)
	if status == http.StatusInternalServerError {
		entry.Error(op + " failed")
		c.JSON(status, gin.H{"error": internalErrorMessage})
		return
	}
	entry.Warn(op + " rejected")
	c.JSON(status, gin.H{"error": message})
}

// badRequest 请求体无法解析
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
}

// parseID 解析路径参数；解析失败按未预期错误返回 500
func parseID(c *gin.Context, log *logrus.Logger, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		log.WithError(err).WithField("request_id", c.GetString(requestIDKey)).Errorf("parse %s failed", name)
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalErrorMessage})
		return 0, false
	}
	return id, true
}

// optionalQueryID 可选的数字查询参数，缺省时返回 nil
func optionalQueryID(c *gin.Context, log *logrus.Logger, name string) (*uint64, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		log.WithError(err).WithField("request_id", c.GetString(requestIDKey)).Errorf("parse %s failed", name)
		c.JSON(http.StatusInternalServerError, gin.H{"error": internalErrorMessage})
		return nil, false
	}
	return &id, true
}
