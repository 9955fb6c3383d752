package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS audit_events (
    event_id     TEXT PRIMARY KEY,
    occurred_at  TEXT NOT NULL,
    kind         TEXT NOT NULL,
    details      TEXT NOT NULL,
    archived_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_audit_events_occurred ON audit_events(occurred_at);
`
