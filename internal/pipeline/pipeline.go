package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/climate-wheel-map/internal/domain"
	"github.com/couchcryptid/climate-wheel-map/internal/layout"
	"github.com/couchcryptid/climate-wheel-map/internal/observability"
	"github.com/couchcryptid/climate-wheel-map/internal/raster"
	"github.com/jonboulle/clockwork"
)

// LocationSource supplies the named locations to plot.
type LocationSource interface {
	Load(ctx context.Context) ([]domain.Location, error)
}

// Canvas is the drawing surface the run composes onto.
type Canvas interface {
	DrawOutline(m *raster.Mask)
	DrawWedge(w domain.WedgeGlyph)
	DrawLegend()
	SavePNG(path string) error
}

// ReadingSink receives one month's readings at a time.
type ReadingSink interface {
	WriteReadings(ctx context.Context, readings []domain.Reading) error
}

// Deps are the collaborators of a run. Geocoder may be nil.
type Deps struct {
	Locations LocationSource
	Rasters   raster.Loader
	Geocoder  domain.Geocoder
	Canvas    Canvas
	Sinks     []ReadingSink
	Logger    *slog.Logger
	Metrics   *observability.Metrics
	Clock     clockwork.Clock
}

// Options fixes where inputs are read from and the output is written to.
type Options struct {
	Paths           raster.Paths
	OutlineNoData   float64
	OutputPath      string
	MetricsTextfile string
	Scales          domain.Scales
}

// Pipeline composes sampling, conversion, encoding and drawing for one map.
type Pipeline struct {
	deps Deps
	opts Options
}

// New creates a Pipeline. A nil clock defaults to the real clock.
func New(deps Deps, opts Options) *Pipeline {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	return &Pipeline{deps: deps, opts: opts}
}

// Run renders the map once. Any failure aborts the run before the image is
// saved; readings already handed to sinks for earlier months stay written.
func (p *Pipeline) Run(ctx context.Context) (err error) {
	start := p.deps.Clock.Now()
	log := p.deps.Logger

	if p.opts.MetricsTextfile != "" {
		defer func() {
			if werr := p.deps.Metrics.WriteTextfile(p.opts.MetricsTextfile); werr != nil {
				log.Warn("write metrics textfile failed", "path", p.opts.MetricsTextfile, "error", werr)
			}
		}()
	}

	locations, err := p.locations(ctx)
	if err != nil {
		return err
	}
	log.Info("run started", "locations", len(locations), "output", p.opts.OutputPath)

	p.checkOverlaps(locations)

	if err := p.drawOutline(ctx); err != nil {
		return err
	}

	for month := 1; month <= 12; month++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.processMonth(ctx, month, locations); err != nil {
			return err
		}
	}

	p.deps.Canvas.DrawLegend()
	if err := p.deps.Canvas.SavePNG(p.opts.OutputPath); err != nil {
		return fmt.Errorf("write map: %w", err)
	}

	elapsed := p.deps.Clock.Since(start)
	p.deps.Metrics.RunDuration.Set(elapsed.Seconds())
	p.deps.Metrics.LastSuccess.Set(float64(p.deps.Clock.Now().Unix()))
	log.Info("map written", "path", p.opts.OutputPath, "duration", elapsed)
	return nil
}

func (p *Pipeline) locations(ctx context.Context) ([]domain.Location, error) {
	locs, err := p.deps.Locations.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load locations: %w", err)
	}
	if len(locs) == 0 {
		p.deps.Logger.Warn("location list is empty; the map will only show the outline and legend")
	}
	resolved, err := domain.ResolveLocations(ctx, locs, p.deps.Geocoder, p.deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("resolve locations: %w", err)
	}
	return resolved, nil
}

// checkOverlaps logs wheels that will be drawn on top of each other.
func (p *Pipeline) checkOverlaps(locations []domain.Location) {
	overlaps, err := layout.FindOverlaps(locations, p.opts.Scales.WedgeRadius)
	if err != nil {
		p.deps.Logger.Warn("overlap check skipped", "error", err)
		return
	}
	p.deps.Metrics.OverlappingWheels.Set(float64(len(overlaps)))
	for _, o := range overlaps {
		p.deps.Logger.Warn("climate wheels overlap", "a", o.A, "b", o.B, "distance_deg", o.Distance)
	}
}

func (p *Pipeline) drawOutline(ctx context.Context) error {
	g, err := raster.LoadGrid(ctx, p.deps.Rasters, p.opts.Paths.Outline())
	if err != nil {
		return err
	}
	p.deps.Metrics.RastersLoaded.Inc()

	mask := raster.NewMask(g, p.opts.OutlineNoData)
	p.deps.Canvas.DrawOutline(mask)
	p.deps.Logger.Debug("outline drawn", "cols", mask.Cols, "rows", mask.Rows, "sea_cells", mask.SeaCount())
	return nil
}

// processMonth loads and validates the month's grids before sampling any
// location, then draws one wedge per location and hands the readings to the
// sinks.
func (p *Pipeline) processMonth(ctx context.Context, month int, locations []domain.Location) error {
	set, err := raster.LoadMonth(ctx, p.deps.Rasters, p.opts.Paths, month)
	if err != nil {
		return fmt.Errorf("month %d: %w", month, err)
	}
	p.deps.Metrics.RastersLoaded.Add(3)

	readings := make([]domain.Reading, 0, len(locations))
	for _, loc := range locations {
		r, err := p.reading(set, loc)
		if err != nil {
			return fmt.Errorf("month %d, location %q: %w", month, loc.Name, err)
		}
		readings = append(readings, r)
		p.deps.Metrics.ReadingsProduced.Inc()

		p.deps.Canvas.DrawWedge(domain.NewWedgeGlyph(loc.Name, r.Geo, month-1, r.Encoding, p.opts.Scales))
		p.deps.Metrics.WedgesDrawn.Inc()
	}

	var errs []error
	for _, sink := range p.deps.Sinks {
		if err := sink.WriteReadings(ctx, readings); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("month %d: write readings: %w", month, err)
	}
	return nil
}

// reading runs one location through sample, derive and encode.
func (p *Pipeline) reading(set *raster.MonthlySet, loc domain.Location) (domain.Reading, error) {
	sampled, err := set.Sample(*loc.Geo, p.opts.Scales)
	if err != nil {
		return domain.Reading{}, err
	}
	derived, err := domain.Derive(sampled)
	if err != nil {
		return domain.Reading{}, err
	}
	return domain.Reading{
		Location:       loc.Name,
		Geo:            *loc.Geo,
		Month:          set.Month,
		SampledReading: sampled,
		DerivedClimate: derived,
		Encoding:       domain.Encode(sampled, derived, p.opts.Scales),
	}, nil
}
