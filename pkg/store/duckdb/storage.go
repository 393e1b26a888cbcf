package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const RowsTableSchema = `
	CREATE TABLE IF NOT EXISTS tourism_rows (
		source VARCHAR NOT NULL,
		position INTEGER NOT NULL,
		date DATE NOT NULL,
		inbound DOUBLE NULL,
		outbound DOUBLE NULL,
		gdp DOUBLE NULL,
		usdjpy DOUBLE NULL,
		PRIMARY KEY (source, position)
	);
`
const ImportState = `
	CREATE TABLE IF NOT EXISTS import_state (
		source VARCHAR PRIMARY KEY,
		rows INTEGER NOT NULL,
		imported_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

var bootQueries = []string{
	RowsTableSchema,
	ImportState,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(fmt.Sprintf("%s?threads=4", settings.DbPath), func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(c)
	return db, nil
}
