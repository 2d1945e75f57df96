package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// BulkWriter acumula filas nuevas y las escribe por COPY en grupos de a lo
// sumo chunkSize, vaciando el buffer tras cada escritura. Acota la memoria
// pico y el tamaño por sentencia con lotes de tamaño arbitrario. Cualquier
// error aborta la transacción que lo envuelve: la unidad de atomicidad es la
// operación de orden completa, no el grupo.
type BulkWriter struct {
	q         Querier
	table     pgx.Identifier
	columns   []string
	chunkSize int
	buf       [][]any
}

// NewBulkWriter construye el writer para una tabla y sus columnas.
func NewBulkWriter(q Querier, table string, columns []string, chunkSize int) *BulkWriter {
	if chunkSize <= 0 {
		chunkSize = 1
	}
	return &BulkWriter{
		q:         q,
		table:     pgx.Identifier{table},
		columns:   columns,
		chunkSize: chunkSize,
		buf:       make([][]any, 0, chunkSize),
	}
}

// Add agrega filas al buffer y lo vacía cada vez que alcanza chunkSize.
func (w *BulkWriter) Add(ctx context.Context, rows ...[]any) error {
	for _, row := range rows {
		w.buf = append(w.buf, row)
		if len(w.buf) >= w.chunkSize {
			if err := w.flushChunk(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flush escribe el resto por debajo de chunkSize. No-op con buffer vacío.
func (w *BulkWriter) Flush(ctx context.Context) error {
	if len(w.buf) == 0 {
		return nil
	}
	return w.flushChunk(ctx)
}

func (w *BulkWriter) flushChunk(ctx context.Context) error {
	n, err := w.q.CopyFrom(ctx, w.table, w.columns, pgx.CopyFromRows(w.buf))
	if err != nil {
		return fmt.Errorf("copy %s: %w", w.table.Sanitize(), err)
	}
	if int(n) != len(w.buf) {
		return fmt.Errorf("copy %s: se esperaban %d filas y se escribieron %d", w.table.Sanitize(), len(w.buf), n)
	}
	w.buf = w.buf[:0]
	return nil
}
