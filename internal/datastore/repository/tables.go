package repository

// Table names.
const (
	tableAccounts = "accounts"
	tableAreas    = "areas"
	tableStands   = "stands"
	tableFirearms = "firearms"
	tableEntries  = "entries"
)

// entryOrder is the default entry ordering: newest date, time, creation.
// NULL times sort last on both SQLite and MySQL.
const entryOrder = "date DESC, time DESC, created_at DESC, id DESC"
