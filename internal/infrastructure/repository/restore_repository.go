package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/milldesk/milldesk-api/internal/domain/entity"
	domainRepo "github.com/milldesk/milldesk-api/internal/domain/repository"
)

type restoreRepository struct {
	db *gorm.DB
}

// NewRestoreRepository creates a new restore repository
func NewRestoreRepository(db *gorm.DB) domainRepo.RestoreRepository {
	return &restoreRepository{db: db}
}

// Restore applies a backup document in a single transaction. Customers are
// upserted by their imported IDs; customers absent from the document are
// removed together with their dependent rows, children before parents so the
// foreign keys hold. A nil side collection in the set was not part of the
// document and is left untouched, apart from rows whose customer went away.
// Loadings are never carried in a backup, so they survive on the same terms.
func (r *restoreRepository) Restore(ctx context.Context, set *domainRepo.RestoreSet) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		keep := make([]uuid.UUID, 0, len(set.Customers))
		for _, c := range set.Customers {
			keep = append(keep, c.ID)
		}

		children := []interface{}{
			&entity.Loading{},
			&entity.LedgerEntry{},
			&entity.Sale{},
			&entity.BookedStock{},
		}
		for _, model := range children {
			if err := deleteOutside(tx, "customer_id", keep, model); err != nil {
				return err
			}
		}
		if err := deleteOutside(tx, "id", keep, &entity.Customer{}); err != nil {
			return err
		}

		if len(set.Customers) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&set.Customers).Error; err != nil {
				return err
			}
		}

		if set.LedgerEntries != nil {
			if err := replaceChildren(tx, &entity.LedgerEntry{}, set.LedgerEntries); err != nil {
				return err
			}
		}
		if set.Sales != nil {
			if err := replaceChildren(tx, &entity.Sale{}, set.Sales); err != nil {
				return err
			}
		}
		if set.BookedStock != nil {
			if err := replaceChildren(tx, &entity.BookedStock{}, set.BookedStock); err != nil {
				return err
			}
		}
		return nil
	})
}

// deleteOutside hard-deletes every row whose column is not in keep. An empty
// keep list clears the table.
func deleteOutside(tx *gorm.DB, column string, keep []uuid.UUID, model interface{}) error {
	q := tx.Unscoped()
	if len(keep) > 0 {
		q = q.Where(column+" NOT IN ?", keep)
	} else {
		q = q.Where("1 = 1")
	}
	return q.Delete(model).Error
}

// replaceChildren swaps the full contents of a child table for the imported
// rows, identity preserved verbatim.
func replaceChildren[T any](tx *gorm.DB, model interface{}, rows []T) error {
	if err := tx.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}
