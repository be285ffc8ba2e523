package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/climate-wheel-map/internal/adapter/gdal"
	kafkaadapter "github.com/couchcryptid/climate-wheel-map/internal/adapter/kafka"
	"github.com/couchcryptid/climate-wheel-map/internal/adapter/locations"
	"github.com/couchcryptid/climate-wheel-map/internal/adapter/mapbox"
	"github.com/couchcryptid/climate-wheel-map/internal/adapter/tsv"
	"github.com/couchcryptid/climate-wheel-map/internal/config"
	"github.com/couchcryptid/climate-wheel-map/internal/domain"
	"github.com/couchcryptid/climate-wheel-map/internal/observability"
	"github.com/couchcryptid/climate-wheel-map/internal/pipeline"
	"github.com/couchcryptid/climate-wheel-map/internal/raster"
	"github.com/couchcryptid/climate-wheel-map/internal/render"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

var (
	dataDir       string
	locationsFile string
	outputPath    string
	dpi           float64
)

var rootCmd = &cobra.Command{
	Use:   "climatemap",
	Short: "Render a world map of monthly climate wheels",
	Long: `Samples monthly maximum temperature, precipitation and vapour pressure
rasters at each location and draws a twelve-wedge climate wheel per location
onto a world map. Sampled values are printed to stdout as tab-separated rows.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMap,
}

func init() {
	rootCmd.Flags().StringVarP(&dataDir, "data-dir", "d", "", "Directory holding the monthly rasters (overrides DATA_DIR)")
	rootCmd.Flags().StringVarP(&locationsFile, "locations", "l", "", "Location list JSON file (overrides LOCATIONS_FILE)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "PNG output path (overrides OUTPUT_PATH)")
	rootCmd.Flags().Float64Var(&dpi, "dpi", 0, "Output resolution (overrides DPI)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("climate map failed", "error", err)
		os.Exit(1)
	}
}

func runMap(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := observability.NewLogger(cfg)
	slog.SetDefault(logger)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	// Initialize geocoder (feature-flagged via MAPBOX_ENABLED / MAPBOX_TOKEN).
	var geocoder domain.Geocoder
	if cfg.MapboxEnabled {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, metrics, logger)
		geocoder = mapbox.NewCachedGeocoder(client, cfg.MapboxCacheSize, metrics)
		logger.Info("mapbox geocoding enabled", "cache_size", cfg.MapboxCacheSize, "timeout", cfg.MapboxTimeout)
	} else {
		logger.Info("mapbox geocoding disabled")
	}

	sinks := []pipeline.ReadingSink{tsv.NewWriter(os.Stdout)}
	if cfg.KafkaEnabled() {
		writer := kafkaadapter.NewWriter(cfg.KafkaBrokers, cfg.KafkaTopic, clock.Now, logger)
		defer closeWithin(cfg, writer, logger)
		sinks = append(sinks, writer)
		logger.Info("kafka publication enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	opts := render.DefaultOptions()
	opts.WidthIn, opts.HeightIn, opts.DPI = cfg.FigureWidthIn, cfg.FigureHeightIn, cfg.DPI
	canvas, err := render.New(opts)
	if err != nil {
		return err
	}

	p := pipeline.New(pipeline.Deps{
		Locations: locations.NewFile(cfg.LocationsFile),
		Rasters:   gdal.NewReader(logger),
		Geocoder:  geocoder,
		Canvas:    canvas,
		Sinks:     sinks,
		Logger:    logger,
		Metrics:   metrics,
		Clock:     clock,
	}, pipeline.Options{
		Paths: raster.Paths{
			Dir:           cfg.DataDir,
			TmaxPattern:   cfg.TmaxPattern,
			PrecipPattern: cfg.PrecipPattern,
			VaporPattern:  cfg.VaporPattern,
			OutlineFile:   cfg.OutlineFile,
		},
		OutlineNoData:   cfg.OutlineNoData,
		OutputPath:      cfg.OutputPath,
		MetricsTextfile: cfg.MetricsTextfile,
		Scales:          opts.Scales,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return p.Run(ctx)
}

// applyFlags overrides environment settings with flags given on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("locations") {
		cfg.LocationsFile = locationsFile
	}
	if flags.Changed("output") {
		cfg.OutputPath = outputPath
	}
	if flags.Changed("dpi") {
		cfg.DPI = dpi
	}
}

// closeWithin closes c, giving up after the shutdown timeout.
func closeWithin(cfg *config.Config, c io.Closer, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- c.Close() }()

	select {
	case err := <-done:
		if err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	case <-ctx.Done():
		logger.Error("kafka writer close timed out", "timeout", cfg.ShutdownTimeout)
	}
}
