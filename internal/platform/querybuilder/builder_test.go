package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "kickoff_at").
		From("matches").
		Where(Eq("club_id", "club-1"), IsNull("deleted_at")).
		OrderBy("kickoff_at DESC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, kickoff_at FROM matches WHERE club_id = $1 AND deleted_at IS NULL ORDER BY kickoff_at DESC LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "club-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("clubs").
		Columns("id", "name").
		Values("club-1", "Riverton FC").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO clubs (id, name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "club-1" || args[1] != "Riverton FC" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("clubs").
		Set("feed_team_id", 217).
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", "club-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE clubs SET feed_team_id = $1, updated_at = NOW() WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != 217 || args[1] != "club-1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModels(t *testing.T) {
	type goalRow struct {
		ID      string `db:"id"`
		MatchID string `db:"match_id"`
		Scorer  string `db:"scorer_name"`
		Ignored string `db:"-"`
	}

	query, args, err := InsertModels("goals", []goalRow{
		{ID: "goal-1", MatchID: "mtch-1", Scorer: "Lena Oduya"},
		{ID: "goal-2", MatchID: "mtch-1", Scorer: "Priya Chandran"},
	}, "")
	if err != nil {
		t.Fatalf("build insert models query: %v", err)
	}

	wantQuery := "INSERT INTO goals (id, match_id, scorer_name) VALUES ($1, $2, $3), ($4, $5, $6)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 6 || args[0] != "goal-1" || args[5] != "Priya Chandran" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := InsertModels("goals", []goalRow{}, ""); err == nil {
		t.Fatalf("expected error for empty slice")
	}
}
