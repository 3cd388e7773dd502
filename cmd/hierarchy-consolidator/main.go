// cmd/hierarchy-consolidator/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bd-admin-hierarchy/internal/common/config"
	apperrors "bd-admin-hierarchy/internal/common/errors"
	"bd-admin-hierarchy/internal/common/logger"
	"bd-admin-hierarchy/internal/common/metrics"
	"bd-admin-hierarchy/internal/console"
	"bd-admin-hierarchy/internal/consolidator"
	"bd-admin-hierarchy/internal/models"
)

var configFile string

// exitError carries an exit status out of cobra's RunE.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

var rootCmd = &cobra.Command{
	Use:   "hierarchy-consolidator",
	Short: "Consolidate Bangladesh divisions, districts, upazilas and thanas",
	Long: `Reads the four administrative reference files, re-keys every record,
prints verification counts and writes the consolidated hierarchy as a JSON
document and as a JavaScript module exporting the same data.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConsolidate,
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that the emitted module embeds exactly the emitted JSON",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ./configs/config.yaml or ./config.yaml if present)")
	rootCmd.AddCommand(verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if exitErr, ok := err.(*exitError); ok {
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the run-scoped logger and handler.
func setup() (*consolidator.Handler, *zap.Logger, logger.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		zapLog := logger.New("info", "console", "stderr")
		return nil, zapLog, logger.NewZapAdapter(zapLog), apperrors.NewConfigInvalidError(err.Error(), err)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	log := logger.NewZapAdapter(zapLog).WithFields(map[string]interface{}{
		"runId":   uuid.New().String(),
		"app":     cfg.App.Name,
		"version": cfg.App.Version,
	})

	handler := consolidator.NewHandler(
		consolidator.LoadConfig(cfg),
		log,
		metrics.New(),
		console.NewPrinter(os.Stdout),
	)
	return handler, zapLog, log, nil
}

func runConsolidate(cmd *cobra.Command, args []string) error {
	handler, zapLog, log, err := setup()
	defer zapLog.Sync()
	if err != nil {
		return &exitError{code: apperrors.NewErrorHandler(log).HandleFatal(err)}
	}

	if _, err := handler.Execute(context.Background()); err != nil {
		return &exitError{code: apperrors.NewErrorHandler(log).HandleFatal(err)}
	}
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	handler, zapLog, log, err := setup()
	defer zapLog.Sync()
	if err != nil {
		return &exitError{code: apperrors.NewErrorHandler(log).HandleFatal(err)}
	}

	verified, err := handler.Verify(context.Background())
	if err != nil {
		return &exitError{code: apperrors.NewErrorHandler(log).HandleFatal(err)}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Outputs agree: %d divisions, %d districts, %d upazilas, %d thanas\n",
		console.CheckMark,
		verified.Counts[models.CollectionDivisions], verified.Counts[models.CollectionDistricts],
		verified.Counts[models.CollectionUpazilas], verified.Counts[models.CollectionThanas])
	return nil
}
