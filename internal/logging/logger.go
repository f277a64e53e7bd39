// Package logging is the diagnostics seam of the client. User-facing text
// goes to the REPL writer; anything the user should not have to read, such
// as a session store that failed to persist, goes through Logger instead.
package logging

import "context"

// Logger is what services and stores log through. Variadic args are
// alternating key-value pairs, slog style:
//
//	log.Warn(ctx, "session not persisted", "error", err)
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that stamps every record with the given pairs,
	// used to tag records with the component that produced them.
	With(args ...any) Logger
}
