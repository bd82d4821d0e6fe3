package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tanvi3004/Multimodal-Emotion-Recognition-Chatbot/orchestrator"
)

var (
	analyzeText  string
	analyzeImage string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one message and/or image and print the response as JSON",
	Example: `  emotichat analyze --text "This is the best day ever!"
  emotichat analyze --text "hi" --image frame.jpg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := orchestrator.Request{}
		if cmd.Flags().Changed("text") {
			req.Text = &analyzeText
		}
		if analyzeImage != "" {
			b, err := os.ReadFile(analyzeImage)
			if err != nil {
				return err
			}
			req.Image = b
		}
		if !req.HasText() && !req.HasImage() {
			return errors.New("usage: emotichat analyze [--text message] [--image path]")
		}

		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if cfg.Server.RequestTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Server.RequestTimeout)
			defer cancel()
		}

		p, closer, err := buildPipeline(ctx, cfg, log, nil)
		if err != nil {
			return err
		}
		defer closer()

		resp, err := p.Handle(ctx, req)
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeText, "text", "", "message text")
	analyzeCmd.Flags().StringVar(&analyzeImage, "image", "", "path to a still image (jpeg, png, gif, webp, bmp)")
}
