package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health reports postgres and redis connectivity. Degraded dependencies
// return 503 so the orchestrator stops routing traffic; the payload never
// exposes credentials or connection details.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		postgres := "conectado"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			postgres = "error"
		}

		redisEstado := "conectado"
		if rdb.Ping(ctx).Err() != nil {
			redisEstado = "error"
		}

		status := http.StatusOK
		if postgres != "conectado" || redisEstado != "conectado" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":       status == http.StatusOK,
			"postgres": postgres,
			"redis":    redisEstado,
		})
	}
}
