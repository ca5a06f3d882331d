package initialize

import (
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"simple-notes/backend/app/controllers"
	"simple-notes/backend/app/db"
	"simple-notes/backend/app/middleware"
	"simple-notes/backend/app/models"
	"simple-notes/backend/app/services"
	"simple-notes/backend/config"
	"simple-notes/backend/global"
	"simple-notes/backend/router"
)

type App struct {
	Cfg       *config.Config
	DB        *gorm.DB
	Router    http.Handler
	Auth      *controllers.AuthController
	Notes     *controllers.NoteController
	Translate *controllers.TranslateController
	Tokens    *services.TokenService
}

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	// Connect DB
	gdb, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate
	if err := gdb.AutoMigrate(&models.User{}, &models.Token{}, &models.Note{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Services
	tokenSvc := services.NewTokenService(gdb, cfg.Auth.TokenTTL)
	authSvc := services.NewAuthService(gdb, tokenSvc)
	noteSvc := services.NewNoteService(gdb, tokenSvc)
	translateSvc := services.NewTranslateService(cfg.Translate)

	// Controllers
	httpCtrl := controllers.NewHTTPController()
	authCtrl := controllers.NewAuthController(authSvc)
	noteCtrl := controllers.NewNoteController(noteSvc)
	translateCtrl := controllers.NewTranslateController(tokenSvc, translateSvc)

	// Router
	h := router.NewRouter(httpCtrl, authCtrl, noteCtrl, translateCtrl)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Auth: authCtrl, Notes: noteCtrl, Translate: translateCtrl, Tokens: tokenSvc}, nil
}
