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

	"github.com/clubpulse/matchday/internal/platform/cache"
	"github.com/clubpulse/matchday/internal/platform/resilience"
)

// ResyncInput selects which season rollups to rebuild. An empty ClubID
// targets every club.
type ResyncInput struct {
	ClubID     string
	MaxWorkers int
	// DryRun recomputes rollups without writing them back.
	DryRun bool
}

type ResyncResult struct {
	ClubCount    int                `json:"club_count"`
	TaskCount    int                `json:"task_count"`
	SuccessCount int                `json:"success_count"`
	FailedCount  int                `json:"failed_count"`
	WorkerCount  int                `json:"worker_count"`
	Tasks        []ResyncTaskResult `json:"tasks"`
}

type ResyncTaskResult struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Status     string `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

const (
	resyncStatusSuccess = "success"
	resyncStatusFailed  = "failed"

	resyncEntityClub   = "club"
	resyncEntityPlayer = "player"

	resyncMaxWorkers = 4
)

type resyncTask struct {
	entityType string
	entityID   string
	// clubID owns the entity's season cache entries; player caches nest
	// under their club.
	clubID string
}

// ResyncService rebuilds season rollups for whole clubs from match-level
// truth, for recovery after manual data correction. Tasks run on a bounded
// worker pool; per-entity locks serialize against concurrent ingests.
type ResyncService struct {
	stores Stores
	locks  *resilience.KeyedMutex
	cache  *cache.Store
	nowFn  func() time.Time
}

func NewResyncService(stores Stores, locks *resilience.KeyedMutex, store *cache.Store) *ResyncService {
	return &ResyncService{
		stores: stores,
		locks:  locks,
		cache:  store,
		nowFn:  time.Now,
	}
}

func (s *ResyncService) Resync(ctx context.Context, input ResyncInput) (ResyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ResyncService.Resync")
	defer span.End()

	tasks, clubCount, err := s.collectTasks(ctx, strings.TrimSpace(input.ClubID))
	if err != nil {
		return ResyncResult{}, err
	}

	workerCount := normalizeResyncWorkerCount(input.MaxWorkers, len(tasks))
	result := ResyncResult{
		ClubCount:   clubCount,
		TaskCount:   len(tasks),
		WorkerCount: workerCount,
		Tasks:       make([]ResyncTaskResult, 0, len(tasks)),
	}
	if len(tasks) == 0 {
		return result, nil
	}

	results := make(chan ResyncTaskResult, len(tasks))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return ResyncResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := ResyncTaskResult{
				EntityType: task.entityType,
				EntityID:   task.entityID,
				Status:     resyncStatusSuccess,
			}
			if err := s.runTask(ctx, task, input.DryRun); err != nil {
				row.Status = resyncStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
			} else {
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()
			results <- row
		}); err != nil {
			workers.Done()
			return ResyncResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		if result.Tasks[i].EntityType != result.Tasks[j].EntityType {
			return result.Tasks[i].EntityType < result.Tasks[j].EntityType
		}
		return result.Tasks[i].EntityID < result.Tasks[j].EntityID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

func (s *ResyncService) collectTasks(ctx context.Context, clubID string) ([]resyncTask, int, error) {
	clubIDs := []string{clubID}
	if clubID == "" {
		clubs, err := s.stores.Clubs().List(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("list clubs: %w", err)
		}
		clubIDs = clubIDs[:0]
		for _, c := range clubs {
			clubIDs = append(clubIDs, c.ID)
		}
	} else {
		if _, ok, err := s.stores.Clubs().GetByID(ctx, clubID); err != nil {
			return nil, 0, fmt.Errorf("get club: %w", err)
		} else if !ok {
			return nil, 0, fmt.Errorf("%w: club %s", ErrNotFound, clubID)
		}
	}

	tasks := make([]resyncTask, 0, len(clubIDs)*2)
	for _, id := range clubIDs {
		tasks = append(tasks, resyncTask{entityType: resyncEntityClub, entityID: id, clubID: id})

		roster, err := s.stores.Players().ListByClub(ctx, id)
		if err != nil {
			return nil, 0, fmt.Errorf("list club roster: %w", err)
		}
		for _, p := range roster {
			tasks = append(tasks, resyncTask{entityType: resyncEntityPlayer, entityID: p.ID, clubID: id})
		}
	}
	return tasks, len(clubIDs), nil
}

func (s *ResyncService) runTask(ctx context.Context, task resyncTask, dryRun bool) error {
	lockKey := clubLockKey(task.entityID)
	if task.entityType == resyncEntityPlayer {
		lockKey = playerLockKey(task.entityID)
	}

	err := s.locks.Do(lockKey, func() error {
		return s.stores.WithinTx(ctx, func(ctx context.Context, tx Stores) error {
			if dryRun {
				return s.dryRunTask(ctx, tx, task)
			}

			var err error
			if task.entityType == resyncEntityClub {
				_, err = recomputeClubSeason(ctx, tx, task.entityID, s.nowFn())
			} else {
				_, err = recomputePlayerSeason(ctx, tx, task.entityID, s.nowFn())
			}
			return err
		})
	})
	if err != nil {
		return err
	}

	if !dryRun {
		invalidateSeasonCache(ctx, s.cache, task.clubID)
	}
	return nil
}

// dryRunTask exercises the reads behind a recompute without writing the
// rollup back.
func (s *ResyncService) dryRunTask(ctx context.Context, tx Stores, task resyncTask) error {
	if task.entityType == resyncEntityClub {
		if _, err := tx.Matches().ListByClub(ctx, task.entityID); err != nil {
			return fmt.Errorf("list club matches: %w", err)
		}
		return nil
	}
	if _, err := tx.PlayerStats().ListByPlayer(ctx, task.entityID); err != nil {
		return fmt.Errorf("list player match statistics: %w", err)
	}
	return nil
}

func normalizeResyncWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 1
	}
	if value > resyncMaxWorkers {
		value = resyncMaxWorkers
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
