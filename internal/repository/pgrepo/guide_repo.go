package pgrepo

import (
	"context"

	"github.com/fsdevblog/study-market/internal/domain"
	"github.com/fsdevblog/study-market/internal/repository/repoargs"
	"github.com/fsdevblog/study-market/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type GuideRepository struct {
	conn uow.DBTX
}

func NewGuideRepository(conn uow.DBTX) *GuideRepository {
	return &GuideRepository{conn: conn}
}

const guideColumns = `id, created_at, subject, topic, price, creator, link`

// CreateGuide вставляет одобренную запись в каталог. Вызывается воркфлоу модерации и импортером.
func (g *GuideRepository) CreateGuide(ctx context.Context, args repoargs.CreateGuide) (*domain.Guide, error) {
	row := g.conn.QueryRow(ctx, `
		INSERT INTO guides (subject, topic, price, creator, link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+guideColumns,
		args.Subject, args.Topic, args.Price, args.Creator, args.Link)

	guide, err := scanGuide(row)
	if err != nil {
		return nil, convertErr(err, "creating guide")
	}
	return guide, nil
}

// GetAll возвращает все записи каталога. Порядок по умолчанию - порядок вставки,
// opts.OrderByPrice включает сортировку по возрастанию цены.
func (g *GuideRepository) GetAll(ctx context.Context, opts repoargs.GuideListOptions) ([]domain.Guide, error) {
	query := `SELECT ` + guideColumns + ` FROM guides ORDER BY id`
	if opts.OrderByPrice {
		query = `SELECT ` + guideColumns + ` FROM guides ORDER BY price, id`
	}

	rows, err := g.conn.Query(ctx, query)
	if err != nil {
		return nil, convertErr(err, "getting all guides")
	}
	return collectGuides(rows, "getting all guides")
}

// Search ищет записи каталога по подстроке term (без учета регистра) в полях subject, topic и creator.
func (g *GuideRepository) Search(ctx context.Context, term string) ([]domain.Guide, error) {
	pattern := "%" + term + "%"
	rows, err := g.conn.Query(ctx, `
		SELECT `+guideColumns+` FROM guides
		WHERE subject ILIKE $1 OR topic ILIKE $1 OR creator ILIKE $1
		ORDER BY id`, pattern)
	if err != nil {
		return nil, convertErr(err, "searching guides by term %s", term)
	}
	return collectGuides(rows, "searching guides")
}

func (g *GuideRepository) FindByID(ctx context.Context, id int64) (*domain.Guide, error) {
	row := g.conn.QueryRow(ctx, `SELECT `+guideColumns+` FROM guides WHERE id = $1`, id)

	guide, err := scanGuide(row)
	if err != nil {
		return nil, convertErr(err, "finding guide by id %d", id)
	}
	return guide, nil
}

func collectGuides(rows pgx.Rows, msg string) ([]domain.Guide, error) {
	defer rows.Close()

	var guides []domain.Guide
	for rows.Next() {
		guide, err := scanGuide(rows)
		if err != nil {
			return nil, convertErr(err, msg)
		}
		guides = append(guides, *guide)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, msg)
	}
	return guides, nil
}

func scanGuide(row rowScanner) (*domain.Guide, error) {
	var guide domain.Guide
	err := row.Scan(
		&guide.ID,
		&guide.CreatedAt,
		&guide.Subject,
		&guide.Topic,
		&guide.Price,
		&guide.Creator,
		&guide.Link,
	)
	if err != nil {
		return nil, err
	}
	return &guide, nil
}
