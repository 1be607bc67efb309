package pgrepo

import (
	"context"

	"github.com/fsdevblog/study-market/internal/domain"
	"github.com/fsdevblog/study-market/internal/repository/repoargs"
	"github.com/fsdevblog/study-market/pkg/uow"
)

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

const userColumns = `id, created_at, updated_at, username, encrypted_password, wallet, is_admin`

// CreateUser создает юзера в базе данных. В случае конфликта юзернейма возвращает ошибку domain.ErrDuplicateKey,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `
		INSERT INTO users (username, encrypted_password)
		VALUES ($1, $2)
		RETURNING `+userColumns, args.Username, args.Password)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return user, nil
}

// FindUserByUsername ищет юзера по его юзернейму. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by username %s", username)
	}
	return user, nil
}

func (u *UserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

// LockUserByID читает юзера с блокировкой строки (SELECT FOR UPDATE). Вызывать только внутри транзакции.
func (u *UserRepository) LockUserByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "locking user by id %d", id)
	}
	return user, nil
}

// AddToWallet атомарно изменяет баланс кошелька на delta (может быть отрицательной) и возвращает
// обновленного юзера. CHECK (wallet >= 0) в схеме не даст балансу уйти в минус.
func (u *UserRepository) AddToWallet(ctx context.Context, id int64, delta int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `
		UPDATE users
		SET wallet = wallet + $2, updated_at = now()
		WHERE id = $1
		RETURNING `+userColumns, id, delta)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "changing wallet of user %d by %d", id, delta)
	}
	return user, nil
}

// AddToWalletByUsername то же что AddToWallet, но адресует юзера по юзернейму. Нужен движку покупок:
// создатель записи каталога хранится как юзернейм, а не как id.
func (u *UserRepository) AddToWalletByUsername(ctx context.Context, username string, delta int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `
		UPDATE users
		SET wallet = wallet + $2, updated_at = now()
		WHERE username = $1
		RETURNING `+userColumns, username, delta)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "changing wallet of user %s by %d", username, delta)
	}
	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Username,
		&user.Password,
		&user.Wallet,
		&user.Admin,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
