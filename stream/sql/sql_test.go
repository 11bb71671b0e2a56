package sql

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lguimbarda/min-stream/stream"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	_, err = db.Exec(`
		CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			age INTEGER NOT NULL
		)
	`)
	if err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	_, err = db.Exec(`INSERT INTO users (name, age) VALUES ('Alice', 30), ('Bob', 25), ('Charlie', 35)`)
	if err != nil {
		t.Fatalf("failed to insert data: %v", err)
	}
	return db
}

type User struct {
	ID   int
	Name string
	Age  int
}

func scanUser(rows *sql.Rows) (User, error) {
	var u User
	err := rows.Scan(&u.ID, &u.Name, &u.Age)
	return u, err
}

func TestQuery(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	stage, err := Query(ctx, db, "SELECT id, name, age FROM users ORDER BY id", scanUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stage.Len() != 3 {
		t.Fatalf("expected 3 users, got %d", stage.Len())
	}
	users := stage.Values()
	for i, want := range []string{"Alice", "Bob", "Charlie"} {
		if users[i].Name != want {
			t.Errorf("user %d = %q, want %q", i, users[i].Name, want)
		}
	}
}

func TestQueryWithArgs(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	stage, err := Query(ctx, db, "SELECT id, name, age FROM users WHERE age > ? ORDER BY id", scanUser, 26)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage.Len() != 2 {
		t.Fatalf("expected 2 users, got %d", stage.Len())
	}
}

func TestQueryFeedsPipeline(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	stage, err := Query(ctx, db, "SELECT id, name, age FROM users ORDER BY id", scanUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := stream.Map(
		stage.Filter(func(u User) bool { return u.Age >= 30 }),
		func(u User) string { return u.Name },
	)
	got := stream.Collect(names)
	if len(got) != 2 || got[0] != "Alice" || got[1] != "Charlie" {
		t.Fatalf("got %v, want [Alice Charlie]", got)
	}
}

func TestQueryEmptyResult(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	stage, err := Query(ctx, db, "SELECT id, name, age FROM users WHERE age > ?", scanUser, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage.Len() != 0 {
		t.Fatalf("expected empty stage, got %d elements", stage.Len())
	}
	if stage.Any(func(User) bool { return true }) {
		t.Errorf("Any on empty query result = true")
	}
}

func TestQueryRow(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	stage, err := QueryRow(ctx, db, "SELECT COUNT(*) FROM users", func(row *sql.Row) (int, error) {
		var n int
		err := row.Scan(&n)
		return n, err
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage.Len() != 1 || stage.Values()[0] != 3 {
		t.Fatalf("got %v, want [3]", stage.Values())
	}
}

func TestQueryRowNoRows(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	stage, err := QueryRow(ctx, db, "SELECT id FROM users WHERE name = ?", func(row *sql.Row) (int, error) {
		var id int
		err := row.Scan(&id)
		return id, err
	}, "Nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage.Len() != 0 {
		t.Fatalf("expected empty stage, got %d elements", stage.Len())
	}
}

func TestInsertEach(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	minors := stream.Of(
		User{Name: "Dave", Age: 17},
		User{Name: "Erin", Age: 16},
	)
	written, err := InsertEach(ctx, db, "INSERT INTO users (name, age) VALUES (?, ?)",
		func(u User) []any { return []any{u.Name, u.Age} }, minors)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if written != 2 {
		t.Fatalf("wrote %d rows, want 2", written)
	}

	stage, err := Query(ctx, db, "SELECT id, name, age FROM users WHERE age < 18 ORDER BY id", scanUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage.Len() != 2 {
		t.Fatalf("expected 2 minors after insert, got %d", stage.Len())
	}
}

func TestExec(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	res, err := Exec(ctx, db, "UPDATE users SET age = age + 1 WHERE age < ?", 31)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.RowsAffected != 2 {
		t.Fatalf("rows affected = %d, want 2", res.RowsAffected)
	}
}

func TestQueryBadSQL(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := Query(ctx, db, "SELECT nope FROM missing", scanUser); err == nil {
		t.Fatal("expected error for invalid query")
	}
}
