package sqlite

import "database/sql"

// schema sets up the database. It runs on startup to ensure tables exist.
// Amounts are stored as decimal strings and dates as RFC 3339 text.
const schema = `
CREATE TABLE IF NOT EXISTS sols (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    frequency TEXT NOT NULL,
    amount TEXT NOT NULL,
    member_count INTEGER NOT NULL,
    winners_per_round INTEGER NOT NULL,
    current_round INTEGER NOT NULL,
    start_date TEXT NOT NULL,
    status TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS members (
    sol_id TEXT NOT NULL,
    id TEXT NOT NULL,
    name TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (sol_id, id),
    FOREIGN KEY (sol_id) REFERENCES sols(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS payments (
    id TEXT PRIMARY KEY,
    sol_id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    member_id TEXT NOT NULL,
    round INTEGER NOT NULL,
    amount_paid TEXT NOT NULL,
    amount_due TEXT NOT NULL,
    date TEXT NOT NULL,
    FOREIGN KEY (sol_id) REFERENCES sols(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS events (
    id TEXT PRIMARY KEY,
    sol_id TEXT NOT NULL,
    seq INTEGER NOT NULL,
    type TEXT NOT NULL,
    member_id TEXT NOT NULL,
    amount TEXT NOT NULL,
    date TEXT NOT NULL,
    round INTEGER NOT NULL,
    description TEXT NOT NULL,
    FOREIGN KEY (sol_id) REFERENCES sols(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_members_sol_id ON members(sol_id);
CREATE INDEX IF NOT EXISTS idx_payments_sol_id ON payments(sol_id, seq);
CREATE INDEX IF NOT EXISTS idx_events_sol_id ON events(sol_id, seq);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
