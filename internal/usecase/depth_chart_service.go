package usecase

import (
	"github.com/riskibarqy/depth-chart/internal/domain/depthchart"
	"github.com/riskibarqy/depth-chart/internal/platform/logging"
)

// DepthChartService drives one team's chart and reports every change.
type DepthChartService struct {
	chart  *depthchart.DepthChart
	logger *logging.Logger
}

func NewDepthChartService(chart *depthchart.DepthChart, logger *logging.Logger) *DepthChartService {
	if logger == nil {
		logger = logging.Default()
	}
	if chart == nil {
		chart = depthchart.New("")
	}
	return &DepthChartService{
		chart:  chart,
		logger: logger.With("team", chart.TeamName()),
	}
}

func (s *DepthChartService) Chart() *depthchart.DepthChart {
	return s.chart
}

func (s *DepthChartService) AddPlayer(position string, p *depthchart.Player) error {
	return s.AddPlayerAt(position, p, depthchart.AppendRank)
}

func (s *DepthChartService) AddPlayerAt(position string, p *depthchart.Player, rank int) error {
	if err := s.chart.AddPlayerAt(position, p, rank); err != nil {
		s.logger.Warn("add player rejected", "position", position, "player", p.String(), "rank", rank, "error", err)
		return err
	}

	s.logger.Debug("player added", "position", position, "player", p.String(), "rank", rank)
	return nil
}

func (s *DepthChartService) RemovePlayer(position string, p *depthchart.Player) (*depthchart.Player, error) {
	removed, err := s.chart.RemovePlayer(position, p)
	if err != nil {
		s.logger.Warn("remove player rejected", "position", position, "player", p.String(), "error", err)
		return nil, err
	}
	if removed == nil {
		s.logger.Info("player not listed at position", "position", position, "player", p.String())
		return nil, nil
	}

	s.logger.Debug("player removed", "position", position, "player", removed.String())
	return removed, nil
}

func (s *DepthChartService) Backups(position string, p *depthchart.Player) ([]*depthchart.Player, error) {
	backups, err := s.chart.Backups(position, p)
	if err != nil {
		s.logger.Warn("backups query rejected", "position", position, "player", p.String(), "error", err)
		return nil, err
	}

	s.logger.Debug("backups listed", "position", position, "player", p.String(), "count", len(backups))
	return backups, nil
}

func (s *DepthChartService) FullDepthChart() []depthchart.Entry {
	return s.chart.FullDepthChart()
}

// LogFullDepthChart writes one line per position in label order.
func (s *DepthChartService) LogFullDepthChart() {
	s.logger.Info("full depth chart", "positions", len(s.chart.Positions()))
	for _, position := range s.chart.Positions() {
		row, _ := s.chart.Row(position)
		s.logger.Info("depth chart row", "position", position, "players", row.String())
	}
}
