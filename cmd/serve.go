package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/docs"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/logger"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/server"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/sheet"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the applicant intake HTTP server",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "listen address (default :8080)")
	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
}

func serve(_ *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zlog.Fatal("getting a config", zap.Error(err))
	}

	zlog.Info("starting the iselect server", zap.String("version", version))

	pretty, _ := json.MarshalIndent(config, "", "  ")
	zlog.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	c, err := buildCore(ctx, config, zlog)
	if err != nil {
		zlog.Fatal("building extraction core", zap.Error(err))
	}

	srv := server.New(
		c.pipeline,
		c.engine,
		c.advisor,
		docs.NewConverter(config.UploadsDir),
		sheet.NewStore(config.SheetFile),
		zlog,
	)

	if err := srv.ListenAndServe(ctx, config.Listen); err != nil {
		zlog.Fatal("http server stopped", zap.Error(err))
	}

	zlog.Info("shutdown complete")
}
