package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/omarshaarawi/fantrax/internal/api/fantasy"
	"github.com/omarshaarawi/fantrax/internal/api/fantrax"
	"github.com/omarshaarawi/fantrax/internal/config"
	"github.com/omarshaarawi/fantrax/internal/repository/memory"
	"github.com/omarshaarawi/fantrax/internal/repository/payload"
	"github.com/omarshaarawi/fantrax/internal/scheduler"
	"github.com/omarshaarawi/fantrax/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	report := flag.String("report", "scoreboard", "report to print: standings|scoreboard|roster|trades|transactions|close")
	team := flag.String("team", "", "team name for the roster report")
	week := flag.Int("week", 0, "standings week, 0 for the season table")
	margin := flag.Float64("margin", 10, "point margin for the close report")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	location, err := cfg.Fantrax.Location()
	if err != nil {
		return err
	}

	repo := memory.NewRepository()
	mapper := fantrax.NewMapper(repo,
		fantrax.WithLocation(location),
		fantrax.WithLogger(slog.Default()),
	)
	fantasyAPI := fantasy.NewAPI(payload.NewDir(cfg.Fantrax.PayloadDir), mapper)
	fantasyService := service.NewFantasyService(fantasyAPI, repo)

	if err := fantasyService.LoadLeague(); err != nil {
		return err
	}

	if cfg.Fantrax.WatchInterval > 0 {
		return watch(fantasyService, cfg)
	}

	var weekPtr *int
	if *week > 0 {
		weekPtr = week
	}

	var out string
	switch *report {
	case "standings":
		out, err = fantasyService.GetStandings(weekPtr)
	case "scoreboard":
		out, err = fantasyService.GetScoreboard()
	case "close":
		out, err = fantasyService.GetCloseGames(*margin)
	case "roster":
		if *team == "" {
			return errors.New("the roster report needs -team")
		}
		out, err = fantasyService.GetTeamRoster(*team)
	case "trades":
		out, err = fantasyService.GetTrades()
	case "transactions":
		out, err = fantasyService.GetTransactions()
	default:
		return fmt.Errorf("unknown report: %s", *report)
	}
	if err != nil {
		return err
	}

	fmt.Println(out)
	return nil
}

func watch(fantasyService *service.FantasyService, cfg *config.Config) error {
	location, err := cfg.Fantrax.Location()
	if err != nil {
		return err
	}

	sched, err := scheduler.NewScheduler(fantasyService, cfg.Fantrax.WatchInterval, location, func(msg string) error {
		_, err := fmt.Fprintln(os.Stdout, msg)
		return err
	})
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("Watching scoreboard", "interval", cfg.Fantrax.WatchInterval)
	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}
