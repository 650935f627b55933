package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/clubpulse/matchday/internal/domain/event"
	qb "github.com/clubpulse/matchday/internal/platform/querybuilder"
)

// eventInsertChunkSize bounds parameter count per statement; each row binds
// four parameters.
const eventInsertChunkSize = 500

type matchEventTableModel struct {
	MatchID     string `db:"match_id"`
	FeedEventID string `db:"feed_event_id"`
	Seq         int    `db:"seq"`
	Payload     string `db:"payload"`
}

type EventRepository struct {
	q sqlx.ExtContext
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{q: db}
}

// BulkCreate stores the raw batch verbatim, one jsonb payload per event, in
// feed order.
func (r *EventRepository) BulkCreate(ctx context.Context, matchID string, events []event.RawEvent) error {
	if len(events) == 0 {
		return nil
	}

	models := make([]matchEventTableModel, 0, len(events))
	for seq, ev := range events {
		payload, err := sonic.Marshal(ev)
		if err != nil {
			return fmt.Errorf("encode event %s: %w", ev.ID, err)
		}
		models = append(models, matchEventTableModel{
			MatchID:     matchID,
			FeedEventID: ev.ID,
			Seq:         seq,
			Payload:     string(payload),
		})
	}

	for start := 0; start < len(models); start += eventInsertChunkSize {
		end := start + eventInsertChunkSize
		if end > len(models) {
			end = len(models)
		}

		query, args, err := qb.InsertModels("match_events", models[start:end], "")
		if err != nil {
			return fmt.Errorf("build insert match events query: %w", err)
		}
		if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert match events: %w", err)
		}
	}
	return nil
}

func (r *EventRepository) CountByMatch(ctx context.Context, matchID string) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("match_events").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count match events query: %w", err)
	}

	var count int
	if err := sqlx.GetContext(ctx, r.q, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count match events: %w", err)
	}
	return count, nil
}
