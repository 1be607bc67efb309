package pgrepo

import (
	"context"

	"github.com/fsdevblog/study-market/internal/domain"
	"github.com/fsdevblog/study-market/internal/repository/repoargs"
	"github.com/fsdevblog/study-market/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type CartRepository struct {
	conn uow.DBTX
}

func NewCartRepository(conn uow.DBTX) *CartRepository {
	return &CartRepository{conn: conn}
}

// GetOrCreate возвращает корзину юзера, создавая её при отсутствии. Одна операция upsert
// по UNIQUE(user_id), так что две корзины на юзера не появятся даже при конкурентных запросах.
func (c *CartRepository) GetOrCreate(ctx context.Context, userID int64) (*domain.Cart, error) {
	row := c.conn.QueryRow(ctx, `
		INSERT INTO carts (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = excluded.user_id
		RETURNING id, created_at, user_id`, userID)

	var cart domain.Cart
	if err := row.Scan(&cart.ID, &cart.CreatedAt, &cart.UserID); err != nil {
		return nil, convertErr(err, "getting or creating cart for user %d", userID)
	}
	return &cart, nil
}

// FindByUserID возвращает корзину юзера или domain.ErrRecordNotFound если корзины нет.
func (c *CartRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Cart, error) {
	row := c.conn.QueryRow(ctx, `SELECT id, created_at, user_id FROM carts WHERE user_id = $1`, userID)

	var cart domain.Cart
	if err := row.Scan(&cart.ID, &cart.CreatedAt, &cart.UserID); err != nil {
		return nil, convertErr(err, "finding cart of user %d", userID)
	}
	return &cart, nil
}

// UpsertItem добавляет запись каталога в корзину. Если позиция уже есть - увеличивает
// её количество на единицу, иначе создает новую с количеством 1.
func (c *CartRepository) UpsertItem(ctx context.Context, cartID, guideID int64) (*domain.CartItem, error) {
	row := c.conn.QueryRow(ctx, `
		INSERT INTO cart_items (cart_id, guide_id, quantity)
		VALUES ($1, $2, 1)
		ON CONFLICT (cart_id, guide_id) DO UPDATE SET quantity = cart_items.quantity + 1
		RETURNING id, cart_id, guide_id, quantity`, cartID, guideID)

	var item domain.CartItem
	if err := row.Scan(&item.ID, &item.CartID, &item.GuideID, &item.Quantity); err != nil {
		return nil, convertErr(err, "upserting item for cart %d, guide %d", cartID, guideID)
	}
	return &item, nil
}

// GetItemsDetailed возвращает позиции корзины вместе с полями записей каталога.
func (c *CartRepository) GetItemsDetailed(ctx context.Context, cartID int64) ([]repoargs.CartItemDetail, error) {
	rows, err := c.conn.Query(ctx, `
		SELECT ci.id, ci.cart_id, ci.guide_id, ci.quantity, g.subject, g.topic, g.price, g.creator
		FROM cart_items ci
		JOIN guides g ON g.id = ci.guide_id
		WHERE ci.cart_id = $1
		ORDER BY ci.id`, cartID)
	if err != nil {
		return nil, convertErr(err, "getting items of cart %d", cartID)
	}
	defer rows.Close()

	var items []repoargs.CartItemDetail
	for rows.Next() {
		var item repoargs.CartItemDetail
		scanErr := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.GuideID,
			&item.Quantity,
			&item.Subject,
			&item.Topic,
			&item.Price,
			&item.Creator,
		)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting items of cart %d", cartID)
		}
		items = append(items, item)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting items of cart %d", cartID)
	}
	return items, nil
}

// FindItemOwned возвращает позицию корзины вместе с id владельца, для проверки принадлежности.
func (c *CartRepository) FindItemOwned(ctx context.Context, itemID int64) (*repoargs.CartItemOwned, error) {
	row := c.conn.QueryRow(ctx, `
		SELECT ci.id, ci.cart_id, carts.user_id
		FROM cart_items ci
		JOIN carts ON carts.id = ci.cart_id
		WHERE ci.id = $1`, itemID)

	var item repoargs.CartItemOwned
	if err := row.Scan(&item.ID, &item.CartID, &item.OwnerID); err != nil {
		return nil, convertErr(err, "finding cart item %d", itemID)
	}
	return &item, nil
}

// DeleteItem удаляет позицию корзины. Возвращает domain.ErrRecordNotFound если позиции нет.
func (c *CartRepository) DeleteItem(ctx context.Context, itemID int64) error {
	tag, err := c.conn.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return convertErr(err, "deleting cart item %d", itemID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting cart item %d", itemID)
	}
	return nil
}

// DeleteItemsByCartID удаляет все позиции корзины. Отсутствие позиций ошибкой не считается.
func (c *CartRepository) DeleteItemsByCartID(ctx context.Context, cartID int64) error {
	if _, err := c.conn.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
		return convertErr(err, "deleting items of cart %d", cartID)
	}
	return nil
}

// DeleteCart удаляет саму корзину.
func (c *CartRepository) DeleteCart(ctx context.Context, cartID int64) error {
	tag, err := c.conn.Exec(ctx, `DELETE FROM carts WHERE id = $1`, cartID)
	if err != nil {
		return convertErr(err, "deleting cart %d", cartID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting cart %d", cartID)
	}
	return nil
}
