package pgrepo

import (
	"context"

	"github.com/fsdevblog/study-market/internal/domain"
	"github.com/fsdevblog/study-market/internal/repository/repoargs"
	"github.com/fsdevblog/study-market/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type PendingGuideRepository struct {
	conn uow.DBTX
}

func NewPendingGuideRepository(conn uow.DBTX) *PendingGuideRepository {
	return &PendingGuideRepository{conn: conn}
}

const pendingGuideColumns = `id, created_at, subject, topic, price, creator, link`

// Create добавляет заявку в очередь модерации.
func (p *PendingGuideRepository) Create(ctx context.Context, args repoargs.CreateGuide) (*domain.PendingGuide, error) {
	row := p.conn.QueryRow(ctx, `
		INSERT INTO pending_guides (subject, topic, price, creator, link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+pendingGuideColumns,
		args.Subject, args.Topic, args.Price, args.Creator, args.Link)

	pending, err := scanPendingGuide(row)
	if err != nil {
		return nil, convertErr(err, "creating pending guide")
	}
	return pending, nil
}

func (p *PendingGuideRepository) GetAll(ctx context.Context) ([]domain.PendingGuide, error) {
	rows, err := p.conn.Query(ctx, `SELECT `+pendingGuideColumns+` FROM pending_guides ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "getting pending guides")
	}
	defer rows.Close()

	var pendings []domain.PendingGuide
	for rows.Next() {
		pending, scanErr := scanPendingGuide(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting pending guides")
		}
		pendings = append(pendings, *pending)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting pending guides")
	}
	return pendings, nil
}

func (p *PendingGuideRepository) FindByID(ctx context.Context, id int64) (*domain.PendingGuide, error) {
	row := p.conn.QueryRow(ctx, `SELECT `+pendingGuideColumns+` FROM pending_guides WHERE id = $1`, id)

	pending, err := scanPendingGuide(row)
	if err != nil {
		return nil, convertErr(err, "finding pending guide by id %d", id)
	}
	return pending, nil
}

// Delete удаляет заявку. Возвращает domain.ErrRecordNotFound если заявки с таким id нет.
func (p *PendingGuideRepository) Delete(ctx context.Context, id int64) error {
	tag, err := p.conn.Exec(ctx, `DELETE FROM pending_guides WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting pending guide %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting pending guide %d", id)
	}
	return nil
}

func scanPendingGuide(row rowScanner) (*domain.PendingGuide, error) {
	var pending domain.PendingGuide
	err := row.Scan(
		&pending.ID,
		&pending.CreatedAt,
		&pending.Subject,
		&pending.Topic,
		&pending.Price,
		&pending.Creator,
		&pending.Link,
	)
	if err != nil {
		return nil, err
	}
	return &pending, nil
}
