package jobs

import (
	"context"
	"database/sql"

	"timeless-backend/internal/logger"
)

// AuditInventory reports watches whose quantity has gone negative. The
// conditional decrement should make this impossible; a hit means stock
// was mutated outside the reservation path.
func (jr *JobRunner) AuditInventory() {
	jr.runWithRecovery("AuditInventory", func() {
		ctx := context.Background()

		query := `SELECT id, model, quantity FROM watches WHERE quantity < 0 OR quantity IS NULL`
		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to audit inventory", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id int32
			var model string
			var quantity sql.NullInt32
			if err := rows.Scan(&id, &model, &quantity); err != nil {
				logger.Error("Failed to scan inventory row", "error", err)
				continue
			}
			logger.Error("Watch has invalid quantity", "watch_id", id, "model", model, "quantity", quantity.Int32, "quantity_null", !quantity.Valid)
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating inventory audit", "error", err)
			return
		}
		logger.Info("Inventory audit finished", "violations", count)
	})
}

// AuditOrphanedRentals reports rentals whose watch no longer exists.
// Deleting such a rental releases a unit into nothing, so these are
// worth knowing about before an admin cleans them up.
func (jr *JobRunner) AuditOrphanedRentals() {
	jr.runWithRecovery("AuditOrphanedRentals", func() {
		ctx := context.Background()

		query := `SELECT r.id, r.watch_id FROM rentals r
		          LEFT JOIN watches w ON w.id = r.watch_id
		          WHERE w.id IS NULL`
		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to audit orphaned rentals", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var rentalID, watchID int32
			if err := rows.Scan(&rentalID, &watchID); err != nil {
				logger.Error("Failed to scan orphaned rental", "error", err)
				continue
			}
			logger.Warn("Rental references a deleted watch", "rental_id", rentalID, "watch_id", watchID)
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating orphaned rentals", "error", err)
			return
		}
		logger.Info("Orphaned rental audit finished", "orphans", count)
	})
}

// AuditPayments reports Completed payments with an empty transaction id,
// which the write paths are supposed to reject.
func (jr *JobRunner) AuditPayments() {
	jr.runWithRecovery("AuditPayments", func() {
		ctx := context.Background()

		query := `SELECT id, rental_id FROM payments
		          WHERE payment_status = 'Completed' AND (transaction_id IS NULL OR transaction_id = '')`
		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to audit payments", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var paymentID, rentalID int32
			if err := rows.Scan(&paymentID, &rentalID); err != nil {
				logger.Error("Failed to scan payment row", "error", err)
				continue
			}
			logger.Error("Completed payment missing transaction id", "payment_id", paymentID, "rental_id", rentalID)
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating payment audit", "error", err)
			return
		}
		logger.Info("Payment audit finished", "violations", count)
	})
}
