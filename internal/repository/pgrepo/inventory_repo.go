package pgrepo

import (
	"context"

	"github.com/fsdevblog/study-market/internal/repository/repoargs"
	"github.com/fsdevblog/study-market/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type InventoryRepository struct {
	conn uow.DBTX
}

func NewInventoryRepository(conn uow.DBTX) *InventoryRepository {
	return &InventoryRepository{conn: conn}
}

// CreateBatch вставляет записи инвентаря батчем, по одной строке на купленную единицу.
// Результат каждой вставки передается в fn.
func (r *InventoryRepository) CreateBatch(
	ctx context.Context,
	items []repoargs.CreateInventoryItem,
	fn repoargs.BatchExecQueryRow,
) {
	batch := new(pgx.Batch)
	for _, item := range items {
		batch.Queue(`INSERT INTO inventory_items (user_id, guide_id) VALUES ($1, $2)`, item.UserID, item.GuideID)
	}

	results := r.conn.SendBatch(ctx, batch)
	defer results.Close() //nolint:errcheck

	for i := range items {
		_, err := results.Exec()
		fn(i, convertErr(err, "creating inventory item"))
	}
}

// GetByUserIDDetailed возвращает инвентарь юзера вместе с полями записей каталога.
func (r *InventoryRepository) GetByUserIDDetailed(
	ctx context.Context,
	userID int64,
) ([]repoargs.InventoryItemDetail, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT ii.id, ii.created_at, ii.guide_id, g.subject, g.topic, g.price, g.creator, g.link
		FROM inventory_items ii
		JOIN guides g ON g.id = ii.guide_id
		WHERE ii.user_id = $1
		ORDER BY ii.id`, userID)
	if err != nil {
		return nil, convertErr(err, "getting inventory of user %d", userID)
	}
	defer rows.Close()

	var items []repoargs.InventoryItemDetail
	for rows.Next() {
		var item repoargs.InventoryItemDetail
		scanErr := rows.Scan(
			&item.ID,
			&item.CreatedAt,
			&item.GuideID,
			&item.Subject,
			&item.Topic,
			&item.Price,
			&item.Creator,
			&item.Link,
		)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting inventory of user %d", userID)
		}
		items = append(items, item)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting inventory of user %d", userID)
	}
	return items, nil
}
