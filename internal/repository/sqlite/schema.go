package sqlite

// AUTOINCREMENT keeps ids of deleted tickets from being handed out again.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS tickets (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       VARCHAR NOT NULL,
		description VARCHAR NOT NULL,
		status      VARCHAR NOT NULL DEFAULT 'open'
	)`,
	`CREATE INDEX IF NOT EXISTS ix_tickets_id ON tickets (id)`,
	`CREATE INDEX IF NOT EXISTS ix_tickets_title ON tickets (title)`,
	`CREATE INDEX IF NOT EXISTS ix_tickets_status ON tickets (status)`,
}
