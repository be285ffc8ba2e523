package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all run settings, populated from environment variables.
type Config struct {
	DataDir       string
	LocationsFile string
	OutputPath    string

	TmaxPattern   string
	PrecipPattern string
	VaporPattern  string
	OutlineFile   string
	OutlineNoData float64

	FigureWidthIn  float64
	FigureHeightIn float64
	DPI            float64

	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Kafka publication is disabled when no brokers are configured.
	KafkaBrokers []string
	KafkaTopic   string

	// Mapbox geocoding configuration.
	MapboxToken     string
	MapboxEnabled   bool
	MapboxTimeout   time.Duration
	MapboxCacheSize int

	MetricsTextfile string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	mapboxTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("MAPBOX_TIMEOUT", "5s"))
	if err != nil || mapboxTimeout <= 0 {
		return nil, errors.New("invalid MAPBOX_TIMEOUT")
	}

	nodata, err := parseFloat("OUTLINE_NODATA", "-32768")
	if err != nil {
		return nil, err
	}
	width, err := parsePositive("FIGURE_WIDTH_IN", "20")
	if err != nil {
		return nil, err
	}
	height, err := parsePositive("FIGURE_HEIGHT_IN", "7")
	if err != nil {
		return nil, err
	}
	dpi, err := parsePositive("DPI", "300")
	if err != nil {
		return nil, err
	}

	mapboxToken := os.Getenv("MAPBOX_TOKEN")
	mapboxEnabled := mapboxToken != ""
	if v := os.Getenv("MAPBOX_ENABLED"); v != "" {
		mapboxEnabled = v == "true"
	}

	var brokers []string
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		brokers = sharedcfg.ParseBrokers(v)
	}

	cfg := &Config{
		DataDir:       sharedcfg.EnvOrDefault("DATA_DIR", "data"),
		LocationsFile: sharedcfg.EnvOrDefault("LOCATIONS_FILE", "locations.json"),
		OutputPath:    sharedcfg.EnvOrDefault("OUTPUT_PATH", "monthly_climate_map.png"),

		TmaxPattern:   sharedcfg.EnvOrDefault("TMAX_PATTERN", "wc2.1_10m_tmax_%02d.tif"),
		PrecipPattern: sharedcfg.EnvOrDefault("PRECIP_PATTERN", "wc2.1_10m_prec_%02d.tif"),
		VaporPattern:  sharedcfg.EnvOrDefault("VAPR_PATTERN", "wc2.1_10m_vapr_%02d.tif"),
		OutlineFile:   sharedcfg.EnvOrDefault("OUTLINE_FILE", "wc2.1_10m_prec_01.tif"),
		OutlineNoData: nodata,

		FigureWidthIn:  width,
		FigureHeightIn: height,
		DPI:            dpi,

		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		KafkaBrokers: brokers,
		KafkaTopic:   sharedcfg.EnvOrDefault("KAFKA_TOPIC", "climate-readings"),

		MapboxToken:     mapboxToken,
		MapboxEnabled:   mapboxEnabled,
		MapboxTimeout:   mapboxTimeout,
		MapboxCacheSize: parseMapboxCacheSize(),

		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that may also have been overridden by flags.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("DATA_DIR is required")
	}
	if c.LocationsFile == "" {
		return errors.New("LOCATIONS_FILE is required")
	}
	if c.OutputPath == "" {
		return errors.New("OUTPUT_PATH is required")
	}
	for name, pattern := range map[string]string{
		"TMAX_PATTERN":   c.TmaxPattern,
		"PRECIP_PATTERN": c.PrecipPattern,
		"VAPR_PATTERN":   c.VaporPattern,
	} {
		if !strings.Contains(pattern, "%") {
			return fmt.Errorf("%s must contain a month verb such as %%02d", name)
		}
	}
	if c.DPI <= 0 {
		return errors.New("DPI must be positive")
	}
	if len(c.KafkaBrokers) > 0 && c.KafkaTopic == "" {
		return errors.New("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
	}
	if c.MapboxEnabled && c.MapboxToken == "" {
		return errors.New("MAPBOX_ENABLED is true but MAPBOX_TOKEN is not set")
	}
	return nil
}

// KafkaEnabled reports whether readings are published to Kafka.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func parseFloat(key, def string) (float64, error) {
	v, err := strconv.ParseFloat(sharedcfg.EnvOrDefault(key, def), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return v, nil
}

func parsePositive(key, def string) (float64, error) {
	v, err := parseFloat(key, def)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return v, nil
}

func parseMapboxCacheSize() int {
	if s := os.Getenv("MAPBOX_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 1000
}
