package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rawen554/uploader/internal/middleware/compress"
	ginLogger "github.com/rawen554/uploader/internal/middleware/logger"
	"github.com/rawen554/uploader/internal/middleware/recovery"
)

const (
	rootPath   = "/"
	uploadPath = "/upload"
)

func (a *App) SetupRouter() *gin.Engine {
	r := gin.New()
	if a.config.ProfileMode {
		pprof.Register(r)
	}

	r.Use(ginLogger.Logger(a.logger.Named("middleware")))
	r.Use(cors.Default())
	r.Use(compress.Compress())
	r.Use(recovery.Recovery(a.errLog, a.logger.Named("recovery")))

	r.GET(rootPath, a.Home)
	r.POST(uploadPath, a.Upload)

	return r
}
