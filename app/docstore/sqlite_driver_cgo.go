//go:build cgo_sqlite

package docstore

import (
	"database/sql"

	sqlite3 "github.com/mattn/go-sqlite3"
)

func init() {
	sql.Register(SQLiteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("regexp", matchRegexp, true)
		},
	})
}

const SQLiteDriverName = "sqlite3_bibletext"

func sqliteDSN(path string, readonly bool) string {
	if readonly {
		return "file:" + path + "?mode=ro&immutable=1"
	}
	return "file:" + path + "?_busy_timeout=5000"
}
