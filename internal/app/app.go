package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/stocklane/product-service/internal/db"
	"github.com/stocklane/product-service/internal/platform/logger"
	"github.com/stocklane/product-service/internal/rpc"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Repos    Repos
	Services Services
	Server   *rpc.Server
}

func New() (*App, error) {
	cfg := LoadConfig()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	var gdb *gorm.DB
	switch cfg.DBDriver {
	case "sqlite":
		gdb, err = db.NewSQLite(cfg.SQLitePath)
	default:
		gdb, err = db.NewPostgres(log)
	}
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init store: %w", err)
	}

	reposet := wireRepos(gdb, log)
	serviceset := wireServices(reposet, log)
	server := rpc.NewServer(serviceset.Product, log)

	return &App{
		Log:      log,
		DB:       gdb,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
		Server:   server,
	}, nil
}

func (a *App) Run() error {
	return a.Server.Serve(a.Cfg.ListenAddr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Server != nil {
		a.Server.GracefulStop()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
