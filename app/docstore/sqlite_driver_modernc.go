//go:build !cgo_sqlite

package docstore

import (
	"database/sql/driver"
	"errors"

	sqlite "modernc.org/sqlite"
)

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(
		"regexp",
		2,
		func(ctx *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
			re, ok := args[0].(string)
			if !ok {
				return nil, errors.New("expected argv[0] to be text")
			}
			s, ok := args[1].(string)
			if !ok {
				return nil, errors.New("expected argv[1] to be text")
			}
			return matchRegexp(re, s)
		},
	)
}

const SQLiteDriverName = "sqlite"

func sqliteDSN(path string, readonly bool) string {
	if readonly {
		return "file:" + path + "?mode=ro&immutable=1"
	}
	return "file:" + path + "?_pragma=busy_timeout(5000)"
}
