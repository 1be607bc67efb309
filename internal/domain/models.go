package domain

import (
	"time"
)

type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Password  string
	Wallet    int64
	Admin     bool
}

// Guide одобренная запись каталога. После одобрения не мутируется.
type Guide struct {
	ID        int64
	CreatedAt time.Time
	Subject   string
	Topic     string
	Price     int64
	Creator   string
	Link      string
}

// PendingGuide заявка на публикацию. Живет до одобрения или отклонения модератором,
// id при переносе в каталог не сохраняется.
type PendingGuide struct {
	ID        int64
	CreatedAt time.Time
	Subject   string
	Topic     string
	Price     int64
	Creator   string
	Link      string
}

type Cart struct {
	ID        int64
	CreatedAt time.Time
	UserID    int64
}

type CartItem struct {
	ID       int64
	CartID   int64
	GuideID  int64
	Quantity int64
}

// InventoryItem одна строка на одну купленную единицу.
type InventoryItem struct {
	ID        int64
	CreatedAt time.Time
	UserID    int64
	GuideID   int64
}
