package repoargs

import "time"

// InventoryItemDetail строка инвентаря вместе с полями записи каталога, на которую она ссылается.
type InventoryItemDetail struct {
	ID        int64
	CreatedAt time.Time
	GuideID   int64
	Subject   string
	Topic     string
	Price     int64
	Creator   string
	Link      string
}
