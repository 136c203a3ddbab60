package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httperr "github.com/techfinance-lab/techfinance/internal/core/errors"
)

// RegisterRoutes registers the catalog routes on the given (guarded) router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/produtos", s.HandleProducts)
	r.GET("/clientes", s.HandleCustomers)
}

type listQuery struct {
	Nome   string `form:"nome"`
	Grupo  string `form:"grupo"`
	Limite int    `form:"limite,default=10"`
	Pagina int    `form:"pagina,default=1"`
}

// HandleProducts handles GET /produtos.
func (s *Service) HandleProducts(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: httperr.MsgInvalidQuery,
			Details: err.Error(),
		})
		return
	}

	products := s.Products(c.Request.Context(), Query{
		Name:  q.Nome,
		Group: q.Grupo,
		Limit: q.Limite,
		Page:  q.Pagina,
	})
	c.JSON(http.StatusOK, products)
}

// HandleCustomers handles GET /clientes.
func (s *Service) HandleCustomers(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: httperr.MsgInvalidQuery,
			Details: err.Error(),
		})
		return
	}

	customers := s.Customers(c.Request.Context(), Query{
		Name:  q.Nome,
		Group: q.Grupo,
		Limit: q.Limite,
		Page:  q.Pagina,
	})
	c.JSON(http.StatusOK, customers)
}
