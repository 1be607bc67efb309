package repoargs

// CartItemDetail строка корзины вместе с полями записи каталога, на которую она ссылается.
type CartItemDetail struct {
	ID       int64
	CartID   int64
	GuideID  int64
	Quantity int64
	Subject  string
	Topic    string
	Price    int64
	Creator  string
}

// CartItemOwned строка корзины вместе с id владельца корзины, для проверки принадлежности.
type CartItemOwned struct {
	ID      int64
	CartID  int64
	OwnerID int64
}

type CreateInventoryItem struct {
	UserID  int64
	GuideID int64
}
