package config

import (
	"log/slog"

	"github.com/secmon-lab/tgdoor/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr         string
	MetricsAddr  string
	FunctionName string
	MaxBodyBytes int64
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("TGDOOR_ADDR"),
			Destination: &s.Addr,
		},
		&cli.StringFlag{
			Name:        "metrics-addr",
			Usage:       "Address of the Prometheus metrics listener (disabled if empty)",
			Sources:     cli.EnvVars("TGDOOR_METRICS_ADDR"),
			Destination: &s.MetricsAddr,
		},
		&cli.Int64Flag{
			Name:        "max-body-bytes",
			Usage:       "Maximum size of a POST body",
			Value:       1 << 20,
			Sources:     cli.EnvVars("TGDOOR_MAX_BODY_BYTES"),
			Destination: &s.MaxBodyBytes,
		},
		&cli.StringFlag{
			Name:        "function-name",
			Usage:       "Identifier reported by the health check",
			Value:       model.DefaultFunctionName,
			Sources:     cli.EnvVars("TGDOOR_FUNCTION_NAME"),
			Destination: &s.FunctionName,
		},
	}
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.String("metrics_addr", s.MetricsAddr),
		slog.String("function_name", s.FunctionName),
		slog.Int64("max_body_bytes", s.MaxBodyBytes),
	)
}
