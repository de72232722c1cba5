package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/goicu/internal/logging"
	"github.com/yaklabco/goicu/pkg/catalog"
	"github.com/yaklabco/goicu/pkg/fix"
	"github.com/yaklabco/goicu/pkg/icumsg"
	"github.com/yaklabco/goicu/pkg/pseudo"
)

// Runner processes messages with a fixed set of options.
type Runner struct {
	opts   Options
	logger *log.Logger
}

// New creates a Runner.
func New(opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &Runner{opts: opts, logger: logger}
}

// Options returns the runner's options.
func (r *Runner) Options() Options {
	return r.opts
}

// RunPaths discovers and loads every catalog under the configured paths and
// processes their messages. A catalog that fails to load aborts the run.
func (r *Runner) RunPaths(ctx context.Context) (*Result, error) {
	files, err := Discover(ctx, r.opts)
	if err != nil {
		return nil, err
	}

	cats := make([]*catalog.Catalog, 0, len(files))
	for _, path := range files {
		cat, err := catalog.Load(path)
		if err != nil {
			return nil, err
		}
		r.logger.Debug("catalog loaded",
			logging.FieldPath, path,
			logging.FieldFormat, cat.Format,
			logging.FieldEntriesTotal, cat.Len())
		cats = append(cats, cat)
	}

	return r.RunCatalogs(ctx, cats...)
}

// RunCatalogs processes every message of the given catalogs.
func (r *Runner) RunCatalogs(ctx context.Context, cats ...*catalog.Catalog) (*Result, error) {
	var jobs []Job
	for _, cat := range cats {
		jobs = append(jobs, JobsFromCatalog(cat)...)
	}

	res, err := r.Run(ctx, jobs)
	if res != nil {
		res.Stats.CatalogsLoaded = len(cats)
	}
	return res, err
}

// Run processes jobs concurrently. Outcomes are returned in job order.
// Cancelling ctx stops the run; outcomes gathered so far are returned with
// the context error.
func (r *Runner) Run(ctx context.Context, jobs []Job) (*Result, error) {
	result := newResult(len(jobs))
	if len(jobs) == 0 {
		return result, nil
	}

	workers := r.opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, len(jobs))

	type indexed struct {
		idx     int
		outcome Outcome
	}

	workCh := make(chan int)
	outCh := make(chan indexed)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range workCh {
				outcome := r.process(jobs[idx])
				select {
				case outCh <- indexed{idx: idx, outcome: outcome}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(workCh)
		for idx := range jobs {
			select {
			case workCh <- idx:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make([]*Outcome, len(jobs))
	for out := range outCh {
		outcomes[out.idx] = &out.outcome
	}

	for _, o := range outcomes {
		if o != nil {
			result.accumulate(*o)
		}
	}

	r.logger.Debug("run complete",
		logging.FieldEntriesTotal, result.Stats.EntriesTotal,
		logging.FieldEntriesICU, result.Stats.EntriesICU,
		logging.FieldEntriesFailed, result.Stats.EntriesErrored,
		logging.FieldDiagnostics, result.Stats.DiagnosticsTotal)

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	return result, nil
}

func (r *Runner) process(job Job) Outcome {
	out := Outcome{Catalog: job.Catalog, Key: job.Key, Input: job.Message}

	msg := icumsg.Parse(job.Message,
		icumsg.WithMergeDuplicates(r.opts.MergeDuplicates),
		icumsg.WithRegistry(r.opts.Registry),
		icumsg.WithLogger(r.logger))

	out.IsICU = msg.IsICU()
	out.Diagnostics = msg.Diagnostics()

	items, err := msg.Items()
	if err != nil {
		out.Err = err
		r.logFailure(job, err)
		return out
	}

	if r.opts.Mode == ModeCheck {
		return out
	}
	out.Items = items

	if r.opts.Mode == ModeExtract {
		return out
	}

	if r.opts.Mode == ModePseudo {
		opts := r.opts.Pseudo
		if opts == (pseudo.Options{}) {
			opts = pseudo.DefaultOptions()
		}
		if err := pseudo.Items(items, opts); err != nil {
			out.Err = err
			r.logFailure(job, err)
			return out
		}
	}

	composed, err := msg.Compose(items, r.opts.targetLanguage())
	if err != nil {
		out.Err = err
		r.logFailure(job, err)
		return out
	}
	out.Output = composed
	out.Diff = fix.GenerateDiff(job.Key, job.Message, composed)

	return out
}

func (r *Runner) logFailure(job Job, err error) {
	r.logger.Warn("entry failed",
		logging.FieldPath, job.Catalog,
		logging.FieldEntry, job.Key,
		logging.FieldError, err)
}

// Errors joins the per-entry faults of res, or returns nil.
func Errors(res *Result) error {
	if res == nil {
		return nil
	}
	var errs []error
	for _, o := range res.Outcomes {
		if o.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", o.Key, o.Err))
		}
	}
	return errors.Join(errs...)
}
