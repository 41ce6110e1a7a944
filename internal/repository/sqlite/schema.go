package sqlite

// overrideColumns are shared by both tables. NULL means inherited.
const overrideColumns = `
	range_metres REAL,
	ringtone_uri TEXT,
	vibrate      INTEGER,
	message      TEXT,
	begin_time   TEXT,
	end_time     TEXT,
	own_schedule INTEGER NOT NULL DEFAULT 0,
	days         TEXT    NOT NULL DEFAULT '1111111'`

var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
	id   INTEGER PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,` + overrideColumns + `
)`,
	`CREATE TABLE IF NOT EXISTS pois (
	id            INTEGER PRIMARY KEY,
	latitude      REAL NOT NULL,
	longitude     REAL NOT NULL,
	name          TEXT NOT NULL,
	category_name TEXT NOT NULL REFERENCES categories(name),` + overrideColumns + `
)`,
	`CREATE INDEX IF NOT EXISTS pois_category_name ON pois(category_name)`,
}

const (
	selectCategories = `SELECT id, name,
	range_metres, ringtone_uri, vibrate, message, begin_time, end_time, own_schedule, days
	FROM categories ORDER BY id`
	selectPOIs = `SELECT id, latitude, longitude, name, category_name,
	range_metres, ringtone_uri, vibrate, message, begin_time, end_time, own_schedule, days
	FROM pois ORDER BY id`
	insertCategory = `INSERT INTO categories (id, name,
	range_metres, ringtone_uri, vibrate, message, begin_time, end_time, own_schedule, days)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	insertPOI = `INSERT INTO pois (id, latitude, longitude, name, category_name,
	range_metres, ringtone_uri, vibrate, message, begin_time, end_time, own_schedule, days)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
)
