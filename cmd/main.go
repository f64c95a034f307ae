package main

import (
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/aastu-dms/DMSystem/config"
	"github.com/aastu-dms/DMSystem/database"
	"github.com/aastu-dms/DMSystem/routes"
)

func initLogger() {
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	levelStr := strings.ToLower(os.Getenv("LOG_LEVEL"))
	if levelStr == "" {
		levelStr = "info"
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		logrus.Warnf("invalid LOG_LEVEL %q, defaulting to info", levelStr)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func main() {
	initLogger()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	// Fails fast when the database is down.
	database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, cfg)

	addr := ":" + cfg.AppPort
	logrus.Infof("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		logrus.Fatal(err)
	}
}
