package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/pitchside/clubadmin/internal/domain/drill"
	"github.com/pitchside/clubadmin/internal/domain/scope"
	"github.com/pitchside/clubadmin/internal/platform/id"
)

const (
	importStatusSuccess = "success"
	importStatusFailed  = "failed"

	importDefaultWorkers = 4
	importMaxWorkers     = 16
)

// DrillImportInput is a bulk authoring request: many drills created at one
// scope in a single call, e.g. from a curriculum spreadsheet.
type DrillImportInput struct {
	Rows       []DrillInput
	MaxWorkers int
	// DryRun validates every row without writing any of them.
	DryRun bool
}

type DrillImportResult struct {
	RowCount     int                    `json:"row_count"`
	SuccessCount int                    `json:"success_count"`
	FailedCount  int                    `json:"failed_count"`
	WorkerCount  int                    `json:"worker_count"`
	DryRun       bool                   `json:"dry_run"`
	Rows         []DrillImportRowResult `json:"rows"`
}

type DrillImportRowResult struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	DrillID string `json:"drill_id,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type DrillImportService struct {
	repo           drill.Repository
	hierarchy      *HierarchyService
	ids            id.Generator
	defaultWorkers int
	now            func() time.Time
}

// NewDrillImportService builds the bulk import service. defaultWorkers is the
// pool size used when a request does not ask for one; values below one fall
// back to the built-in default.
func NewDrillImportService(repo drill.Repository, hierarchy *HierarchyService, ids id.Generator, defaultWorkers int) *DrillImportService {
	if defaultWorkers < 1 {
		defaultWorkers = importDefaultWorkers
	}
	return &DrillImportService{repo: repo, hierarchy: hierarchy, ids: ids, defaultWorkers: defaultWorkers, now: time.Now}
}

// Import creates the rows at the addressed scope on a bounded worker pool.
// The archive guard is checked once for the scope; each row then validates
// and persists independently, so one bad row never fails the batch.
func (s *DrillImportService) Import(ctx context.Context, clubID, ageGroupID, teamID string, input DrillImportInput) (DrillImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DrillImportService.Import")
	defer span.End()

	path, err := s.hierarchy.ResolveScope(ctx, clubID, ageGroupID, teamID)
	if err != nil {
		return DrillImportResult{}, err
	}

	decision := scope.CanMutate(scope.ActionCreateChild, path.Ref, path.Ancestors(), path.DeepestArchived())
	if !decision.Allowed {
		return DrillImportResult{}, fmt.Errorf("%w: %s", ErrForbidden, decision.Reason)
	}

	workerCount := normalizeImportWorkerCount(input.MaxWorkers, s.defaultWorkers, len(input.Rows))
	result := DrillImportResult{
		RowCount:    len(input.Rows),
		WorkerCount: workerCount,
		DryRun:      input.DryRun,
		Rows:        make([]DrillImportRowResult, 0, len(input.Rows)),
	}
	if len(input.Rows) == 0 {
		return result, nil
	}

	rows := make(chan DrillImportRowResult, len(input.Rows))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	p, err := ants.NewPool(workerCount)
	if err != nil {
		return DrillImportResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer p.Release()

	var workers sync.WaitGroup
	for i, in := range input.Rows {
		i, in := i, in
		workers.Add(1)
		if err := p.Submit(func() {
			defer workers.Done()

			row := DrillImportRowResult{Index: i, Name: strings.TrimSpace(in.Name)}
			drillID, err := s.importRow(ctx, path.Ref, in, input.DryRun)
			if err != nil {
				row.Status = importStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
			} else {
				row.Status = importStatusSuccess
				row.DrillID = drillID
				successCount.Add(1)
			}

			rows <- row
		}); err != nil {
			workers.Done()
			return DrillImportResult{}, fmt.Errorf("submit row to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Rows = append(result.Rows, row)
	}
	sort.Slice(result.Rows, func(i, j int) bool { return result.Rows[i].Index < result.Rows[j].Index })

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())

	return result, nil
}

func (s *DrillImportService) importRow(ctx context.Context, ref scope.Reference, in DrillInput, dryRun bool) (string, error) {
	newID, err := s.ids.NewID()
	if err != nil {
		return "", fmt.Errorf("generate drill id: %w", err)
	}

	d := drill.Drill{
		ID:              newID,
		Name:            strings.TrimSpace(in.Name),
		Category:        strings.TrimSpace(in.Category),
		Description:     strings.TrimSpace(in.Description),
		Scope:           ref,
		Attributes:      normalizeAttributeCodes(in.Attributes),
		DurationMinutes: in.DurationMinutes,
		UpdatedAt:       s.now().UTC(),
	}
	if err := d.Validate(); err != nil {
		return "", err
	}
	if dryRun {
		return d.ID, nil
	}
	if err := s.repo.Upsert(ctx, d); err != nil {
		return "", fmt.Errorf("save drill: %w", err)
	}

	return d.ID, nil
}

func normalizeImportWorkerCount(requested, fallback, rowCount int) int {
	count := requested
	if count <= 0 {
		count = fallback
	}
	if count > importMaxWorkers {
		count = importMaxWorkers
	}
	if rowCount > 0 && count > rowCount {
		count = rowCount
	}
	return count
}
