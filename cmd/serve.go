package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/metrics"
	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the /analyze HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m := metrics.New(reg)

		p, closer, err := buildPipeline(ctx, cfg, log, m)
		if err != nil {
			return err
		}
		defer closer()

		srv := server.NewServer(cfg.Server, p, m, log)
		if err := srv.Run(ctx); err != nil {
			return err
		}
		log.Info("stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", ":5001", "listen address")
	v.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}
