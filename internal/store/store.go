package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS journal_entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp TEXT NOT NULL,
    emotion TEXT NOT NULL,
    prompt TEXT NOT NULL,
    response TEXT NOT NULL,
    x_coordinate INTEGER,
    y_coordinate INTEGER
);

CREATE INDEX IF NOT EXISTS idx_entries_timestamp ON journal_entries(timestamp);
`

// Entry is one persisted journal record. Entries are append-only: never
// updated or deleted once written.
type Entry struct {
	ID        int64
	Timestamp time.Time
	Emotion   string
	Prompt    string
	Response  string

	// X and Y are present only for entries that originated from coordinate
	// input, and always together.
	X *int
	Y *int
}

// NewEntry is the caller-supplied portion of an entry; id and timestamp are
// assigned by Append.
type NewEntry struct {
	Emotion  string
	Prompt   string
	Response string
	X        *int
	Y        *int
}

// TimelinePoint is one (emotion, timestamp) pair for chart views.
type TimelinePoint struct {
	Emotion   string
	Timestamp time.Time
}

// EmotionCount is one grouped count for aggregate views.
type EmotionCount struct {
	Emotion string
	Count   int
}

type Store struct {
	conn *sql.DB
}

func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.EnsureSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}

	return s, nil
}

// EnsureSchema creates the entries table if absent and upgrades a
// pre-coordinate table in place by adding the two nullable coordinate
// columns. Idempotent; safe to call on every startup.
func (s *Store) EnsureSchema() error {
	if _, err := s.conn.Exec(schema); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	// Older databases predate the coordinate columns. Add them lazily,
	// preserving existing rows with NULL coordinates.
	for _, col := range []string{"x_coordinate", "y_coordinate"} {
		has, err := s.hasColumn("journal_entries", col)
		if err != nil {
			return err
		}
		if has {
			continue
		}
		if _, err := s.conn.Exec(fmt.Sprintf(`ALTER TABLE journal_entries ADD COLUMN %s INTEGER`, col)); err != nil {
			return fmt.Errorf("adding column %s: %w", col, err)
		}
	}

	return nil
}

func (s *Store) hasColumn(table, column string) (bool, error) {
	rows, err := s.conn.Query(fmt.Sprintf(`PRAGMA table_info(%s)`, table))
	if err != nil {
		return false, fmt.Errorf("inspecting table %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var cid int
		var name, colType string
		var notNull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

func (s *Store) Close() error {
	return s.conn.Close()
}

// Ping reports whether the underlying database is reachable.
func (s *Store) Ping() error {
	return s.conn.Ping()
}

// Append inserts a new entry, assigning the current time at second
// resolution, and returns the assigned id. The insert is a single atomic
// statement.
func (s *Store) Append(e NewEntry) (int64, error) {
	if (e.X == nil) != (e.Y == nil) {
		return 0, fmt.Errorf("coordinates must be set together or not at all")
	}

	var x, y sql.NullInt64
	if e.X != nil {
		x = sql.NullInt64{Int64: int64(*e.X), Valid: true}
		y = sql.NullInt64{Int64: int64(*e.Y), Valid: true}
	}

	result, err := s.conn.Exec(`
		INSERT INTO journal_entries (timestamp, emotion, prompt, response, x_coordinate, y_coordinate)
		VALUES (?, ?, ?, ?, ?, ?)
	`, time.Now().UTC().Truncate(time.Second).Format(time.RFC3339), e.Emotion, e.Prompt, e.Response, x, y)
	if err != nil {
		return 0, fmt.Errorf("inserting entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading entry id: %w", err)
	}
	return id, nil
}

// EntriesBetween returns entries with timestamps in [start, end] inclusive,
// newest first, for display.
func (s *Store) EntriesBetween(start, end time.Time) ([]Entry, error) {
	rows, err := s.conn.Query(`
		SELECT id, timestamp, emotion, prompt, response, x_coordinate, y_coordinate
		FROM journal_entries
		WHERE timestamp >= ? AND timestamp <= ?
		ORDER BY timestamp DESC, id DESC
	`, formatBound(start), formatBound(end))
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var tsStr string
		var x, y sql.NullInt64
		if err := rows.Scan(&e.ID, &tsStr, &e.Emotion, &e.Prompt, &e.Response, &x, &y); err != nil {
			return nil, err
		}
		e.Timestamp, _ = time.Parse(time.RFC3339, tsStr)
		if x.Valid && y.Valid {
			xi, yi := int(x.Int64), int(y.Int64)
			e.X, e.Y = &xi, &yi
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Timeline returns (emotion, timestamp) pairs in [start, end] inclusive,
// oldest first, for chart views.
func (s *Store) Timeline(start, end time.Time) ([]TimelinePoint, error) {
	rows, err := s.conn.Query(`
		SELECT emotion, timestamp
		FROM journal_entries
		WHERE timestamp >= ? AND timestamp <= ?
		ORDER BY timestamp ASC, id ASC
	`, formatBound(start), formatBound(end))
	if err != nil {
		return nil, fmt.Errorf("querying timeline: %w", err)
	}
	defer rows.Close()

	var points []TimelinePoint
	for rows.Next() {
		var p TimelinePoint
		var tsStr string
		if err := rows.Scan(&p.Emotion, &tsStr); err != nil {
			return nil, err
		}
		p.Timestamp, _ = time.Parse(time.RFC3339, tsStr)
		points = append(points, p)
	}
	return points, rows.Err()
}

// CountByEmotion returns grouped counts in [start, end] inclusive, ordered
// by count descending; ties break on emotion so the order is stable.
func (s *Store) CountByEmotion(start, end time.Time) ([]EmotionCount, error) {
	rows, err := s.conn.Query(`
		SELECT emotion, COUNT(*) AS count
		FROM journal_entries
		WHERE timestamp >= ? AND timestamp <= ?
		GROUP BY emotion
		ORDER BY count DESC, emotion ASC
	`, formatBound(start), formatBound(end))
	if err != nil {
		return nil, fmt.Errorf("querying emotion counts: %w", err)
	}
	defer rows.Close()

	var counts []EmotionCount
	for rows.Next() {
		var c EmotionCount
		if err := rows.Scan(&c.Emotion, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func formatBound(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
