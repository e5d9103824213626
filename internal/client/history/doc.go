// Package history keeps a local journal of transfer attempts.
//
// Every CreateTransfer run started by the terminal client is recorded with
// its outcome, including failed runs whose transfer record was created on
// the server but never finalized. Records live in a SQLite database whose
// schema is managed with goose (see internal/client/migrations).
//
//	repo, closeFn, err := history.Open(ctx, "sharefile.db")
//	_ = repo.Save(ctx, rec)
//	recent, _ := repo.List(ctx, 20)
package history
