package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ougirez/coalportal/internal/api"
	"github.com/ougirez/coalportal/internal/pkg/artifact"
	"github.com/ougirez/coalportal/internal/pkg/config"
	"github.com/ougirez/coalportal/internal/pkg/constants"
	"github.com/ougirez/coalportal/internal/pkg/logger"
	"github.com/ougirez/coalportal/internal/pkg/seed"
	"github.com/ougirez/coalportal/internal/pkg/store"
	"github.com/ougirez/coalportal/internal/service/board"
	"github.com/ougirez/coalportal/internal/service/compliance"
	"github.com/ougirez/coalportal/internal/service/directory"
	"github.com/ougirez/coalportal/internal/service/messages"
	"github.com/ougirez/coalportal/internal/service/portal"
	"github.com/ougirez/coalportal/internal/service/reports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the dataset and serve the portal API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx)
		},
	}

	cmd.Flags().String("addr", "", "listen address")
	cmd.Flags().String("dataset", "", "CSV dataset path or URL")
	_ = viper.BindPFlag(constants.ViperServerAddrKey, cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag(constants.ViperDatasetPathKey, cmd.Flags().Lookup("dataset"))

	return cmd
}

func runServe(ctx context.Context) error {
	datasetStore, closeStore, err := openDatasetStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	records, err := datasetStore.ListCompanyRecords(ctx)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	aliases, err := config.Aliases()
	if err != nil {
		return err
	}

	seedData, err := seed.Load(viper.GetString(constants.ViperSeedPathKey))
	if err != nil {
		return err
	}

	dir := directory.NewDirectoryService(records, aliases)
	artifacts := artifact.NewFileStore(viper.GetString(constants.ViperReportsDirKey))

	boardSvc := board.NewBoardService()
	boardSvc.Seed(seedData.Notices, seedData.Auctions)

	reportsSvc := reports.NewReportsService(dir, artifacts, viper.GetString(constants.ViperReportsPublicURLKey))
	reportsSvc.Seed(seedData.Reports)

	portalSvc := portal.NewPortalService(
		dir,
		compliance.NewComplianceService(dir),
		messages.NewMessagesService(dir),
		boardSvc,
		reportsSvc,
	)

	secret := viper.GetString(constants.ViperSecretKey)
	if secret == "" {
		logger.Warnf(ctx, "%s is empty, admin endpoints are not protected", constants.ViperSecretKey)
	}

	apiSvc, err := api.NewAPIService(portalSvc, artifacts, api.Config{
		AdminSecret:  secret,
		AllowOrigins: viper.GetStringSlice(constants.ViperServerAllowOriginsKey),
	})
	if err != nil {
		return fmt.Errorf("build api: %w", err)
	}

	logger.Infof(ctx, "portal ready: %d companies, %d records", portalSvc.CompanyCount(), len(records))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return apiSvc.Serve(viper.GetString(constants.ViperServerAddrKey))
	})
	eg.Go(func() error {
		<-egCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), viper.GetDuration(constants.ViperServerShutdownTimeoutKey))
		defer cancel()

		logger.Infof(ctx, "shutting down http server")
		return apiSvc.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

func openDatasetStore(ctx context.Context) (store.Store, func(), error) {
	switch source := viper.GetString(constants.ViperDatasetSourceKey); source {
	case constants.DatasetSourceCSV:
		return store.NewCSVStore(viper.GetString(constants.ViperDatasetPathKey)), func() {}, nil
	case constants.DatasetSourcePG:
		pool, err := pgxpool.New(ctx, viper.GetString(constants.ViperDatasetDSNKey))
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err = pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		return store.NewPostgresStore(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown %s %q", constants.ViperDatasetSourceKey, source)
	}
}
