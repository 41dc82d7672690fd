package migrations

import "embed"

// Files holds the SQL migrations compiled into the binary, applied in
// filename order at startup.
//
//go:embed *.sql
var Files embed.FS
