package storage

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// StatusRows returns the presence rows, lowest id first. The first row is
// the one reapplied at startup.
func (s *Storage) StatusRows(ctx context.Context) ([]StatusRow, error) {
	var rows []StatusRow
	err := s.db.NewSelect().Model(&rows).Order("id ASC").Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list status rows: %w", err)
	}
	return rows, nil
}

// SetStatus replaces the presence configuration with a single row.
func (s *Storage) SetStatus(ctx context.Context, statusType, message, status string) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*StatusRow)(nil)).Where("1 = 1").Exec(ctx); err != nil {
			return err
		}
		row := &StatusRow{Type: statusType, Message: message, Status: status}
		_, err := tx.NewInsert().Model(row).Exec(ctx)
		return err
	})
}
