package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/roguecreek/quartermaster/internal/api"
	"github.com/roguecreek/quartermaster/internal/bot"
	"github.com/roguecreek/quartermaster/internal/catalog"
	"github.com/roguecreek/quartermaster/internal/config"
	"github.com/roguecreek/quartermaster/internal/db"
	"github.com/roguecreek/quartermaster/internal/logger"
	"github.com/roguecreek/quartermaster/internal/repository"
	"github.com/roguecreek/quartermaster/internal/repository/dao"
	"github.com/roguecreek/quartermaster/internal/service"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to initialize tables -> %w", err)
	}

	stockRepo := repository.NewStockRepository(dao.NewStockDAO(postgresDB))
	stateRepo := repository.NewStateRepository(dao.NewStateDAO(postgresDB))
	ledger := service.NewLedgerService(stockRepo)
	radio := service.NewRadioService()

	// Seed every domain before anything reads or adjusts.
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelSeed()
	for _, dom := range catalog.Domains() {
		if err = ledger.Seed(seedCtx, dom); err != nil {
			return fmt.Errorf("failed to seed %v stocks -> %w", dom, err)
		}
	}

	botConf := bot.NewConfig()
	botConf.Token = conf.Discord.Token
	if conf.Discord.CommandPrefix != "" {
		botConf.CommandPrefix = conf.Discord.CommandPrefix
	}
	botConf.AmmunitionChannel = conf.Discord.AmmunitionChannel
	botConf.MedicalChannel = conf.Discord.MedicalChannel
	botConf.RadioChannel = conf.Discord.RadioChannel
	if conf.Discord.PromptTimeoutSecs > 0 {
		botConf.RequestTimeout = time.Duration(conf.Discord.PromptTimeoutSecs) * time.Second
	}

	quartermaster, err := bot.New(botConf, ledger, stateRepo, radio)
	if err != nil {
		return fmt.Errorf("failed to create bot -> %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	s := api.NewServer(conf, postgresDB)
	addr := ":" + s.Config.API.Port
	go func() {
		zap.L().Info(fmt.Sprintf("starting status server at %v", addr))
		if runErr := s.Router.Run(addr); runErr != nil {
			zap.L().Error("status server stopped", zap.Error(runErr))
		}
	}()

	zap.L().Info("starting Discord bot")
	if err = quartermaster.Run(ctx); err != nil {
		return fmt.Errorf("failed to run the bot -> %w", err)
	}

	return nil
}
