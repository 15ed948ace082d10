// Package export dumps a built index into a SQLite database so that
// other tools can query the generated forms without rebuilding them.
package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/cours-de-latin/paradigma"
)

const schema = `
DROP TABLE IF EXISTS forms;
DROP TABLE IF EXISTS lemmas;

CREATE TABLE lemmas (
	id INTEGER PRIMARY KEY,
	pos TEXT NOT NULL,
	canonical TEXT NOT NULL,
	meaning TEXT
);

CREATE TABLE forms (
	form TEXT NOT NULL,
	plain TEXT NOT NULL,
	lemma_id INTEGER NOT NULL,
	code TEXT NOT NULL,
	description TEXT NOT NULL,
	UNIQUE(form, lemma_id, code),
	FOREIGN KEY(lemma_id) REFERENCES lemmas(id) ON DELETE CASCADE
);

CREATE INDEX idx_forms_plain ON forms(plain);
`

// Summary counts the rows written.
type Summary struct {
	Lemmas int
	Forms  int
}

// SQLite writes every form of idx to the database at path, replacing
// earlier exports. Each row carries the surface form, its plain
// spelling (no length marks, j and v folded) and the category code.
func SQLite(ctx context.Context, idx *paradigma.Index, path string) (Summary, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return Summary{}, err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		return Summary{}, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return Summary{}, fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Summary{}, err
	}
	sum, err := write(ctx, tx, idx)
	if err != nil {
		return Summary{}, errors.Join(err, tx.Rollback())
	}
	if err := tx.Commit(); err != nil {
		return Summary{}, fmt.Errorf("commit: %w", err)
	}
	return sum, nil
}

func write(ctx context.Context, tx *sql.Tx, idx *paradigma.Index) (Summary, error) {
	insLemma, err := tx.PrepareContext(ctx, `INSERT INTO lemmas (id, pos, canonical, meaning) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return Summary{}, err
	}
	defer insLemma.Close()
	insForm, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO forms (form, plain, lemma_id, code, description) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return Summary{}, err
	}
	defer insForm.Close()

	// lemmas are shared by pointer between the entries of one paradigm
	ids := make(map[paradigma.Lemma]int64)
	var sum Summary
	var werr error
	idx.Walk(func(_ string, entries []paradigma.Entry) bool {
		if werr = ctx.Err(); werr != nil {
			return false
		}
		for _, e := range entries {
			// the walked key is case-folded; rows keep the rendered spelling
			surface := paradigma.RenderSurface(e)
			id, ok := ids[e.Lemma]
			if !ok {
				id = int64(len(ids) + 1)
				ids[e.Lemma] = id
				if _, werr = insLemma.ExecContext(ctx, id, e.POS().String(), paradigma.RenderCanonical(e), e.Lemma.Gloss()); werr != nil {
					werr = fmt.Errorf("insert lemma %s: %w", paradigma.RenderCanonical(e), werr)
					return false
				}
				sum.Lemmas++
			}
			res, err := insForm.ExecContext(ctx, surface, paradigma.Plain(surface), id, e.Code(), paradigma.Describe(e))
			if err != nil {
				werr = fmt.Errorf("insert form %s: %w", surface, err)
				return false
			}
			if n, _ := res.RowsAffected(); n > 0 {
				sum.Forms++
			}
		}
		return true
	})
	return sum, werr
}
