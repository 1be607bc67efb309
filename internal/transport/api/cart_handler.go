package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/study-market/internal/domain"
	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartSvs     CartServicer
	purchaseSvs PurchaseServicer
}

func NewCartHandler(cartSvs CartServicer, purchaseSvs PurchaseServicer) *CartHandler {
	return &CartHandler{
		cartSvs:     cartSvs,
		purchaseSvs: purchaseSvs,
	}
}

type CartItemResponse struct {
	ID       int64  `json:"ID"`
	GuideID  int64  `json:"guideID"`
	Subject  string `json:"subject"`
	Topic    string `json:"topic"`
	Price    int64  `json:"price"`
	Creator  string `json:"creator"`
	Quantity int64  `json:"quantity"`
}

// Index GET RouteGroup + CartRoute. Содержимое корзины текущего юзера.
func (h *CartHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	items, err := h.cartSvs.Items(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]CartItemResponse, len(items))
	for i, item := range items {
		response[i] = CartItemResponse{
			ID:       item.ID,
			GuideID:  item.GuideID,
			Subject:  item.Subject,
			Topic:    item.Topic,
			Price:    item.Price,
			Creator:  item.Creator,
			Quantity: item.Quantity,
		}
	}
	c.JSON(http.StatusOK, response)
}

type AddCartItemParams struct {
	GuideID int64 `binding:"required,min=1" json:"guide_id"`
}

// Add POST RouteGroup + CartRoute. Кладет запись каталога в корзину; повторное добавление
// увеличивает количество.
func (h *CartHandler) Add(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params AddCartItemParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	item, err := h.cartSvs.AddItem(reqCtx, currentUserID, params.GuideID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"itemID": item.ID, "quantity": item.Quantity})
}

// Remove DELETE RouteGroup + CartItemRoute. Удаляет позицию корзины; чужая позиция - 403.
func (h *CartHandler) Remove(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	itemID, ok := parseIDParam(c, "itemID")
	if !ok {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.cartSvs.RemoveItem(reqCtx, currentUserID, itemID); err != nil {
		switch {
		case errors.Is(err, domain.ErrOwnerConflict):
			c.AbortWithStatus(http.StatusForbidden)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.AbortWithStatus(http.StatusOK)
}

type ReceiptItemResponse struct {
	GuideID  int64  `json:"guideID"`
	Subject  string `json:"subject"`
	Topic    string `json:"topic"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

type ReceiptResponse struct {
	Items   []ReceiptItemResponse `json:"items"`
	Total   int64                 `json:"total"`
	Balance int64                 `json:"balance"`
}

// Checkout POST RouteGroup + CheckoutRoute. Финализация покупки всей корзины.
// Пустая корзина - 422, нехватка средств - 402.
func (h *CartHandler) Checkout(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	receipt, err := h.purchaseSvs.Finalize(reqCtx, currentUserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			c.AbortWithStatus(http.StatusUnprocessableEntity)
		case errors.Is(err, domain.ErrNotEnoughBalance):
			c.AbortWithStatus(http.StatusPaymentRequired)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	items := make([]ReceiptItemResponse, len(receipt.Items))
	for i, item := range receipt.Items {
		items[i] = ReceiptItemResponse{
			GuideID:  item.GuideID,
			Subject:  item.Subject,
			Topic:    item.Topic,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}
	c.JSON(http.StatusOK, ReceiptResponse{
		Items:   items,
		Total:   receipt.Total,
		Balance: receipt.Balance,
	})
}

type InventoryItemResponse struct {
	ID        int64     `json:"ID"`
	GuideID   int64     `json:"guideID"`
	Subject   string    `json:"subject"`
	Topic     string    `json:"topic"`
	Creator   string    `json:"creator"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"purchasedAt"`
}

// Inventory GET RouteGroup + InventoryRoute. Инвентарь текущего юзера, по строке на единицу.
func (h *CartHandler) Inventory(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	items, err := h.purchaseSvs.Inventory(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]InventoryItemResponse, len(items))
	for i, item := range items {
		response[i] = InventoryItemResponse{
			ID:        item.ID,
			GuideID:   item.GuideID,
			Subject:   item.Subject,
			Topic:     item.Topic,
			Creator:   item.Creator,
			Link:      item.Link,
			CreatedAt: item.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, response)
}
