package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"pharmapp/config"
	"pharmapp/connection"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	gin.SetMode(gin.ReleaseMode)
	cfg := config.MustLoad()
	connection.StartServer(cfg)
}
