package main

import (
	"fmt"
	"os"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/depth-chart/internal/config"
	"github.com/riskibarqy/depth-chart/internal/domain/depthchart"
	"github.com/riskibarqy/depth-chart/internal/platform/logging"
	"github.com/riskibarqy/depth-chart/internal/usecase"
)

type seedEntry struct {
	position string
	player   *depthchart.Player
	rank     int
}

type report struct {
	Team      string             `json:"team"`
	Positions []depthchart.Entry `json:"positions"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel).With("service", cfg.ServiceName, "env", cfg.AppEnv)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("depth chart demo failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *logging.Logger) error {
	svc := usecase.NewDepthChartService(depthchart.New(cfg.TeamName), logger)

	brady := &depthchart.Player{Number: 12, FirstName: "Tom", LastName: "Brady"}
	gabbert := &depthchart.Player{Number: 11, FirstName: "Blaine", LastName: "Gabbert"}
	trask := &depthchart.Player{Number: 2, FirstName: "Kyle", LastName: "Trask"}
	evans := &depthchart.Player{Number: 13, FirstName: "Mike", LastName: "Evans"}
	darden := &depthchart.Player{Number: 1, FirstName: "Jaelon", LastName: "Darden"}
	miller := &depthchart.Player{Number: 10, FirstName: "Scott", LastName: "Miller"}

	seed := []seedEntry{
		{position: "QB", player: brady, rank: 0},
		{position: "QB", player: gabbert, rank: 1},
		{position: "QB", player: trask, rank: 2},
		{position: "LWR", player: evans, rank: 0},
		{position: "LWR", player: darden, rank: 1},
		{position: "LWR", player: miller, rank: 2},
	}
	for _, s := range seed {
		if err := svc.AddPlayerAt(s.position, s.player, s.rank); err != nil {
			return fmt.Errorf("seed %s %s: %w", s.position, s.player, err)
		}
	}

	for _, q := range []struct {
		position string
		player   *depthchart.Player
	}{
		{"QB", brady},
		{"LWR", darden},
		{"QB", miller},
		{"QB", trask},
	} {
		backups, err := svc.Backups(q.position, q.player)
		if err != nil {
			return fmt.Errorf("backups of %s at %s: %w", q.player, q.position, err)
		}
		logger.Info("backups", "position", q.position, "player", q.player.String(), "backups", len(backups))
	}

	if _, err := svc.RemovePlayer("LWR", evans); err != nil {
		return fmt.Errorf("remove %s from LWR: %w", evans, err)
	}

	switch cfg.OutputFormat {
	case config.OutputJSON:
		out := report{Team: cfg.TeamName, Positions: svc.FullDepthChart()}
		if err := sonic.ConfigDefault.NewEncoder(os.Stdout).Encode(out); err != nil {
			return fmt.Errorf("encode depth chart: %w", err)
		}
	default:
		svc.LogFullDepthChart()
	}

	return nil
}
