package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/study-market/internal/domain"
	"github.com/fsdevblog/study-market/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type CatalogHandler struct {
	catalogSvs CatalogServicer
}

func NewCatalogHandler(catalogSvs CatalogServicer) *CatalogHandler {
	return &CatalogHandler{
		catalogSvs: catalogSvs,
	}
}

type GuideResponse struct {
	ID        int64     `json:"ID"`
	Subject   string    `json:"subject"`
	Topic     string    `json:"topic"`
	Price     int64     `json:"price"`
	Creator   string    `json:"creator"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"createdAt"`
}

// Index GET RouteGroup + GuidesRoute. Весь каталог; query-параметр order=price включает
// сортировку по возрастанию цены.
func (h *CatalogHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	guides, err := h.catalogSvs.List(reqCtx, c.Query("order") == "price")
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, guidesResponse(guides))
}

// Search GET RouteGroup + SearchRoute. Поиск по подстроке в subject, topic и creator.
func (h *CatalogHandler) Search(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	guides, err := h.catalogSvs.Search(reqCtx, c.Query("query"))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, guidesResponse(guides))
}

type ShareGuideParams struct {
	Subject string `binding:"required,min=4,max=100"    json:"subject"`
	Topic   string `binding:"required,min=4,max=100"    json:"topic"`
	Price   int64  `binding:"min=0,max=1000"            json:"price"`
	Link    string `binding:"required,min=10,max=10000" json:"link"`
}

// Share POST RouteGroup + ShareRoute. Подача заявки на публикацию; заявка уходит в очередь
// модерации, а не сразу в каталог.
func (h *CatalogHandler) Share(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params ShareGuideParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	pending, err := h.catalogSvs.Share(reqCtx, currentUserID, service.ShareGuideArgs{
		Subject: params.Subject,
		Topic:   params.Topic,
		Price:   params.Price,
		Link:    params.Link,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"pendingID": pending.ID})
}

func guidesResponse(guides []domain.Guide) []GuideResponse {
	response := make([]GuideResponse, len(guides))
	for i, guide := range guides {
		response[i] = GuideResponse{
			ID:        guide.ID,
			Subject:   guide.Subject,
			Topic:     guide.Topic,
			Price:     guide.Price,
			Creator:   guide.Creator,
			Link:      guide.Link,
			CreatedAt: guide.CreatedAt,
		}
	}
	return response
}
