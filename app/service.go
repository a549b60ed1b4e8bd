package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spaceshare/spaceshare/config"
	"github.com/spaceshare/spaceshare/core/assignlog"
	"github.com/spaceshare/spaceshare/core/events"
	"github.com/spaceshare/spaceshare/core/grouping"
	coremetrics "github.com/spaceshare/spaceshare/core/metrics"
	"github.com/spaceshare/spaceshare/core/model"
	"github.com/spaceshare/spaceshare/core/notify"
	"github.com/spaceshare/spaceshare/core/optimize"
	"github.com/spaceshare/spaceshare/infra/logger"
	"github.com/spaceshare/spaceshare/infra/metrics"
	_ "github.com/spaceshare/spaceshare/infra/notify"
	"github.com/spaceshare/spaceshare/infra/table"
	"github.com/spaceshare/spaceshare/internal/eventbus"
	"github.com/spaceshare/spaceshare/pkg/export"
)

// Service runs the grouping pipeline: read the sheet, assign groups, write
// the annotated sheet, wait for confirmation and notify the participants.
type Service struct {
	cfg       *config.Config
	kinds     []model.Kind
	optimizer *optimize.Optimizer
	notifier  *notify.Notifier
	bus       *eventbus.Bus[events.Event]
	sink      coremetrics.MetricsSink
	store     assignlog.LogStore
	log       logger.Logger
	client    *http.Client
	collector <-chan struct{}
	stop      context.CancelFunc

	// Stdin and Stdout carry the confirmation prompt.
	Stdin  io.Reader
	Stdout io.Writer
	// AssumeYes skips the confirmation prompt.
	AssumeYes bool
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	grouper, err := grouping.NewGrouper(cfg.Grouping.Params())
	if err != nil {
		return nil, fmt.Errorf("grouper: %w", err)
	}
	basis, err := cfg.Grouping.Basis()
	if err != nil {
		return nil, err
	}
	kinds, err := cfg.Grouping.ParsedKinds()
	if err != nil {
		return nil, err
	}
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	sender, err := notify.NewSender(cfg.Notify.Sender)
	if err != nil {
		return nil, fmt.Errorf("notification sender: %w", err)
	}
	store, err := assignlog.Open(cfg.History)
	if err != nil {
		return nil, fmt.Errorf("history store: %w", err)
	}

	bus := eventbus.New[events.Event]()
	opt, err := optimize.NewOptimizer(grouper, basis, bus, logger.New("optimizer"))
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	opt.SetLogStore(store)

	ctx, stop := context.WithCancel(context.Background())
	svc := &Service{
		cfg:       cfg,
		kinds:     kinds,
		optimizer: opt,
		notifier:  notify.NewNotifier(sender, bus, logger.New("notify")),
		bus:       bus,
		sink:      sink,
		store:     store,
		log:       logg,
		client:    cfg.Input.Client(ctx, &http.Client{Timeout: 30 * time.Second}),
		stop:      stop,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
	}
	svc.collector = metrics.StartEventCollector(ctx, bus, sink, logger.New("metrics"))
	return svc, nil
}

// Grouped is the outcome of optimising one sheet.
type Grouped struct {
	// Table is sorted by the group columns.
	Table   *model.Table
	Results []optimize.Result
	// Names holds participant names in the row order the results index.
	Names []string
}

// Reports resolves the results to participant names.
func (g *Grouped) Reports() []export.KindReport { return export.Reports(g.Results, g.Names) }

// Group reads the sheet and optimises the given kinds, or the configured
// kinds when none are given, without writing or sending anything.
func (s *Service) Group(ctx context.Context, kinds ...model.Kind) (*Grouped, error) {
	if len(kinds) == 0 {
		kinds = s.kinds
	}
	t, err := table.Load(ctx, s.client, s.cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("read sheet: %w", err)
	}
	names, err := t.Column(model.ColumnName)
	if err != nil {
		return nil, err
	}
	results, err := s.optimizer.OptimizeAll(ctx, t, kinds)
	if err != nil {
		return nil, err
	}
	return &Grouped{Table: t, Results: results, Names: names}, nil
}

// Run executes the full pipeline once.
func (s *Service) Run(ctx context.Context) error {
	if addr := s.cfg.Metrics.PrometheusAddr; addr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, addr, nil); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	g, err := s.Group(ctx)
	if err != nil {
		return err
	}
	if err := export.WriteCSVFile(s.cfg.Output.Path, g.Table); err != nil {
		return fmt.Errorf("write %s: %w", s.cfg.Output.Path, err)
	}
	s.log.Infof("groups written to %s", s.cfg.Output.Path)
	if p := s.cfg.Output.GroupsJSON; p != "" {
		if err := writeReports(p, g.Reports()); err != nil {
			return fmt.Errorf("write %s: %w", p, err)
		}
	}
	if p := s.cfg.Output.Chart; p != "" {
		if err := export.WriteGroupChartFile(p, g.Results, g.Names); err != nil {
			return fmt.Errorf("write %s: %w", p, err)
		}
	}

	if !s.AssumeYes {
		if err := Confirm(s.Stdin, s.Stdout, s.cfg.Output.Path); err != nil {
			return err
		}
	}

	// The sheet may have been edited by hand while waiting for confirmation.
	edited, err := table.ReadFile(s.cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("reread %s: %w", s.cfg.Output.Path, err)
	}
	ps, err := model.Participants(edited)
	if err != nil {
		return err
	}
	var msgs []notify.Message
	for _, k := range s.kinds {
		m, err := notify.ComposeWith(ps, k, s.cfg.Notify.Options())
		if err != nil {
			return fmt.Errorf("compose %s messages: %w", k, err)
		}
		msgs = append(msgs, m...)
	}
	return s.notifier.Notify(ctx, msgs)
}

// History returns the stored grouping runs matching q.
func (s *Service) History(ctx context.Context, q assignlog.LogQuery) ([]assignlog.LogRecord, error) {
	return s.store.Query(ctx, q)
}

// Close flushes pending events to the metrics sink and releases resources.
func (s *Service) Close() error {
	s.bus.Close()
	<-s.collector
	s.stop()
	if n := s.bus.Dropped(); n > 0 {
		s.log.Warnf("%d events dropped before reaching the metrics sink", n)
	}
	var errs []error
	if c, ok := s.sink.(interface{ Close() }); ok {
		c.Close()
	}
	if err := s.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("history store: %w", err))
	}
	return errors.Join(errs...)
}

func writeReports(path string, reports []export.KindReport) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteGroupsJSON(f, reports); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
