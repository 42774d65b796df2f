package metrics

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"project-health/src/config"
	"project-health/src/model"
	"project-health/src/service/workspace"
	"project-health/src/syntax"
	"project-health/src/util"
)

// ProgressFunc is called once per finished document
type ProgressFunc func(done, total int, document string)

// Provider computes per-document metrics with caching.
// It hides tree handling from the detectors, which only see model results.
type Provider struct {
	analysis    config.AnalysisConfig
	concurrency config.ConcurrencyConfig
	progress    ProgressFunc

	// Cached metrics, keyed by project path
	mu       sync.RWMutex
	projects map[string]*model.ProjectMetrics
}

// NewProvider creates a new metrics provider
func NewProvider(analysis config.AnalysisConfig, concurrency config.ConcurrencyConfig) *Provider {
	return &Provider{
		analysis:    analysis,
		concurrency: concurrency,
		projects:    make(map[string]*model.ProjectMetrics),
	}
}

// SetProgress registers a callback invoked after every document
func (p *Provider) SetProgress(fn ProgressFunc) {
	p.progress = fn
}

// Compute calculates the metrics of every document in the solution in
// parallel and caches them per project. Document failures are recorded on
// the document; only cancellation of ctx itself is returned.
func (p *Provider) Compute(ctx context.Context, solution *workspace.Solution) error {
	results := make([][]model.DocumentMetrics, len(solution.Projects))
	var pending []int
	total := 0

	p.mu.RLock()
	for i, project := range solution.Projects {
		if _, ok := p.projects[project.Path]; ok {
			continue
		}
		pending = append(pending, i)
		results[i] = make([]model.DocumentMetrics, len(project.Documents))
		total += len(project.Documents)
	}
	p.mu.RUnlock()

	if len(pending) == 0 {
		util.Debug("All project metrics already cached")
		return nil
	}

	util.Info("Computing metrics for %d documents in %d projects", total, len(pending))

	tracker := newProgressTracker(total, p.progress)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxParallel())

	for _, pi := range pending {
		project := solution.Projects[pi]
		for di, doc := range project.Documents {
			g.Go(func() error {
				results[pi][di] = p.computeDocument(gctx, doc)
				tracker.done(doc.RelPath)
				return nil
			})
		}
	}

	// Join barrier: aggregation only starts once every document is done
	_ = g.Wait()

	p.mu.Lock()
	for _, pi := range pending {
		project := solution.Projects[pi]
		if _, ok := p.projects[project.Path]; ok {
			continue
		}
		p.projects[project.Path] = &model.ProjectMetrics{
			Project:   project.Ref(),
			Documents: results[pi],
		}
	}
	p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("computing metrics: %w", err)
	}
	return nil
}

// ProjectMetrics returns the metrics of one project, computing them if needed
func (p *Provider) ProjectMetrics(ctx context.Context, project *workspace.Project) (*model.ProjectMetrics, error) {
	p.mu.RLock()
	if cached, ok := p.projects[project.Path]; ok {
		defer p.mu.RUnlock()
		util.Debug("Returning cached metrics for project %s", project.Name)
		return cached, nil
	}
	p.mu.RUnlock()

	solution := &workspace.Solution{Projects: []*workspace.Project{project}}
	if err := p.Compute(ctx, solution); err != nil {
		return nil, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.projects[project.Path], nil
}

func (p *Provider) maxParallel() int {
	if p.concurrency.MaxParallelDocuments < 1 {
		return 1
	}
	return p.concurrency.MaxParallelDocuments
}

func (p *Provider) computeDocument(ctx context.Context, doc *workspace.Document) model.DocumentMetrics {
	m := model.DocumentMetrics{Document: doc.Ref()}

	tree, err := doc.Open(ctx)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			m.Error = p.documentError(doc, "parse", model.ReasonCancelled, err)
		case errors.Is(err, syntax.ErrTreeUnavailable):
			util.Debug("Skipping %s: %v", doc.RelPath, err)
		default:
			util.Warn("Skipping %s: %v", doc.RelPath, err)
		}
		return m
	}
	defer tree.Close()

	root := tree.Root()
	if root == nil {
		util.Debug("Skipping %s: empty tree", doc.RelPath)
		return m
	}
	m.Available = true

	m.Complexity = CyclomaticComplexity(root)

	counts := CountHalstead(root)
	m.Operators = counts.Operators
	m.Operands = counts.Operands
	if volume, err := counts.Volume(); err == nil {
		m.Volume = volume
		m.VolumeDefined = true
	}

	walkCtx := ctx
	if p.analysis.DocumentTimeout > 0 {
		var cancel context.CancelFunc
		walkCtx, cancel = context.WithTimeout(ctx, p.analysis.DocumentTimeout)
		defer cancel()
	}

	statements, err := CountStatements(walkCtx, root)
	if err != nil {
		util.Warn("Statement walk of %s stopped: %v", doc.RelPath, err)
		m.Available = false
		m.Error = p.documentError(doc, "maintainability", model.ReasonCancelled, err)
		return m
	}
	m.Statements = statements

	mi, err := MaintainabilityIndex(m.Complexity, statements, m.Volume)
	switch {
	case err == nil:
		m.MaintainabilityIndex = mi
		m.HasMaintainability = true
	case errors.Is(err, ErrNoStatements):
		util.Debug("No executable statements in %s", doc.RelPath)
	default:
		m.Error = p.documentError(doc, "maintainability", model.ReasonDegenerateVolume, err)
	}
	return m
}

func (p *Provider) documentError(doc *workspace.Document, check string, reason model.ErrorReason, err error) *model.DocumentError {
	return &model.DocumentError{
		Document: doc.Name,
		Path:     doc.RelPath,
		Check:    check,
		Reason:   reason,
		Message:  err.Error(),
	}
}

// progressTracker serializes progress callbacks from worker goroutines
type progressTracker struct {
	mu    sync.Mutex
	count int
	total int
	fn    ProgressFunc
}

func newProgressTracker(total int, fn ProgressFunc) *progressTracker {
	return &progressTracker{total: total, fn: fn}
}

func (t *progressTracker) done(document string) {
	if t.fn == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.count++
	t.fn(t.count, t.total, document)
}
