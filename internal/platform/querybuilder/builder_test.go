package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectToSQL(t *testing.T) {
	sql, args, err := Select("id", "name").
		From("drills").
		Where(Eq("club_id", "club-1"), IsNull("archived_at")).
		OrderBy("lower(name) ASC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	want := "SELECT id, name FROM drills WHERE club_id = $1 AND archived_at IS NULL ORDER BY lower(name) ASC LIMIT 10"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"club-1"}) {
		t.Fatalf("args = %v", args)
	}
}

func TestSelectIn(t *testing.T) {
	sql, args, err := Select("id").
		From("teams").
		Where(In("age_group_id", []any{"ag-1", "ag-2"})).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	want := "SELECT id FROM teams WHERE age_group_id IN ($1, $2)"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if len(args) != 2 {
		t.Fatalf("args = %v", args)
	}
}

func TestSelectInEmptyMatchesNothing(t *testing.T) {
	sql, _, err := Select("id").From("teams").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}
	if sql != "SELECT id FROM teams WHERE 1=0" {
		t.Fatalf("sql = %q", sql)
	}
}

func TestSelectILikeAndExpr(t *testing.T) {
	sql, args, err := Select("id").
		From("drills").
		Where(
			ILike("search_text", "%press%"),
			Expr("attribute_codes @> ?", "{PASSING}"),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	want := "SELECT id FROM drills WHERE search_text ILIKE $1 AND attribute_codes @> $2"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"%press%", "{PASSING}"}) {
		t.Fatalf("args = %v", args)
	}
}

func TestSelectRequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatal("expected error for missing table")
	}
}

func TestInsertToSQL(t *testing.T) {
	sql, args, err := InsertInto("clubs").
		Columns("id", "name").
		Values("club-1", "Northside Juniors").
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	want := "INSERT INTO clubs (id, name) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if len(args) != 2 {
		t.Fatalf("args = %v", args)
	}
}

func TestInsertMultiRow(t *testing.T) {
	sql, args, err := InsertInto("slots").
		Columns("idx", "role").
		Values(1, "GK").
		Values(2, "RB").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	want := "INSERT INTO slots (idx, role) VALUES ($1, $2), ($3, $4)"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if len(args) != 4 {
		t.Fatalf("args = %v", args)
	}
}

func TestInsertRejectsRaggedRow(t *testing.T) {
	_, _, err := InsertInto("slots").Columns("idx", "role").Values(1).ToSQL()
	if err == nil {
		t.Fatal("expected error for mismatched row length")
	}
}

func TestUpdateToSQL(t *testing.T) {
	sql, args, err := Update("age_groups").
		Set("name", "U12").
		SetExpr("updated_at", "now()").
		Where(Eq("id", "ag-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	want := "UPDATE age_groups SET name = $1, updated_at = now() WHERE id = $2"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"U12", "ag-1"}) {
		t.Fatalf("args = %v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID       string `db:"id"`
		Name     string `db:"name"`
		Internal string `db:"-"`
	}

	sql, args, err := mustInsertModel(t, "players", row{ID: "p-1", Name: "Ada"}).ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	want := "INSERT INTO players (id, name) VALUES ($1, $2)"
	if sql != want {
		t.Fatalf("sql = %q, want %q", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"p-1", "Ada"}) {
		t.Fatalf("args = %v", args)
	}
}

func TestInsertModelRejectsNonStruct(t *testing.T) {
	if _, err := InsertModel("players", 42); err == nil {
		t.Fatal("expected error for non-struct model")
	}
}

func mustInsertModel(t *testing.T, table string, model any) *InsertBuilder {
	t.Helper()
	b, err := InsertModel(table, model)
	if err != nil {
		t.Fatalf("InsertModel: %v", err)
	}
	return b
}
