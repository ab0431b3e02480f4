// Package procedure owns the calling convention for the MySQL stored
// procedures that hold all business logic.  Every procedure reports its
// outcome through session output variables (@error, @msg, plus
// operation-specific outputs) read by a follow-up SELECT.  Session variables
// are connection-scoped, so the CALL and the SELECT are pinned to a single
// connection checked out of the pool; running them through the bare pool
// could land on different connections and read someone else's outputs.
package procedure

import (
	"context"
	"database/sql"
)

// Meta is the @error/@msg pair set by every procedure.  Both arrive as
// nullable columns: a procedure that aborts before setting its outputs
// leaves them NULL, which callers must treat as a failure rather than
// success with an empty message.
type Meta struct {
	ErrorCode sql.NullInt64
	Message   sql.NullString
}

// OK reports whether the procedure set a zero error code.
func (m Meta) OK() bool { return m.ErrorCode.Valid && m.ErrorCode.Int64 == 0 }

// Code returns the reported error code, defaulting to 1 when the procedure
// never set one.
func (m Meta) Code() int {
	if m.ErrorCode.Valid {
		return int(m.ErrorCode.Int64)
	}
	return 1
}

// Text returns the reported message, or fallback when none was set.
func (m Meta) Text(fallback string) string {
	if m.Message.Valid && m.Message.String != "" {
		return m.Message.String
	}
	return fallback
}

// Exec runs a procedure that produces no result set, then scans the session
// outputs selected by outQuery into outs.
func Exec(ctx context.Context, db *sql.DB, call string, args []any, outQuery string, outs ...any) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, call, args...); err != nil {
		return err
	}
	return conn.QueryRowContext(ctx, outQuery).Scan(outs...)
}

// Query runs a procedure whose body SELECTs a result set, hands that set to
// scan, then reads the session outputs.  scan must drain the rows it is
// given; a procedure that errors out before its SELECT yields an empty set,
// which scan sees as zero rows and the outputs report as a failure.
func Query(ctx context.Context, db *sql.DB, call string, args []any, scan func(*sql.Rows) error, outQuery string, outs ...any) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, call, args...)
	if err != nil {
		return err
	}
	if err := scan(rows); err != nil {
		rows.Close()
		return err
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	if err := rows.Close(); err != nil {
		return err
	}
	return conn.QueryRowContext(ctx, outQuery).Scan(outs...)
}
