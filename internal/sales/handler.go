package sales

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httperr "github.com/techfinance-lab/techfinance/internal/core/errors"
)

// RegisterRoutes registers the sales routes on the given (guarded) router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/vendas", s.HandleSales)
	r.GET("/produtos/mais-vendidos", s.HandleTopProductsByQuantity)
	r.GET("/produtos/maior-valor", s.HandleTopProductsByValue)
	r.GET("/produtos/variacao-preco", s.HandlePriceVariation)
	r.GET("/empresas/participacao", s.HandleCompanyShareByQuantity)
	r.GET("/empresas/participacao-por-valor", s.HandleCompanyShareByValue)
}

// salesQuery accepts both the Portuguese and English spellings that clients
// historically used; the Portuguese name wins when both are present.
type salesQuery struct {
	Limite int `form:"limite"`
	Limit  int `form:"limit"`
	Pagina int `form:"pagina"`
	Page   int `form:"page"`
}

func (q salesQuery) limit() int {
	if q.Limite != 0 {
		return q.Limite
	}
	if q.Limit != 0 {
		return q.Limit
	}
	return 10
}

func (q salesQuery) page() int {
	if q.Pagina != 0 {
		return q.Pagina
	}
	if q.Page != 0 {
		return q.Page
	}
	return 1
}

type reportQuery struct {
	Limite int `form:"limite,default=10"`
}

func bindQuery(c *gin.Context, q any) bool {
	if err := c.ShouldBindQuery(q); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			Status:  http.StatusBadRequest,
			Message: httperr.MsgInvalidQuery,
			Details: err.Error(),
		})
		return false
	}
	return true
}

// HandleSales handles GET /vendas.
func (s *Service) HandleSales(c *gin.Context) {
	var q salesQuery
	if !bindQuery(c, &q) {
		return
	}
	c.JSON(http.StatusOK, s.Sales(c.Request.Context(), q.limit(), q.page()))
}

// HandleTopProductsByQuantity handles GET /produtos/mais-vendidos.
func (s *Service) HandleTopProductsByQuantity(c *gin.Context) {
	var q reportQuery
	if !bindQuery(c, &q) {
		return
	}
	c.JSON(http.StatusOK, s.TopProductsByQuantity(c.Request.Context(), q.Limite))
}

// HandleTopProductsByValue handles GET /produtos/maior-valor.
func (s *Service) HandleTopProductsByValue(c *gin.Context) {
	var q reportQuery
	if !bindQuery(c, &q) {
		return
	}
	c.JSON(http.StatusOK, s.TopProductsByValue(c.Request.Context(), q.Limite))
}

// HandlePriceVariation handles GET /produtos/variacao-preco.
func (s *Service) HandlePriceVariation(c *gin.Context) {
	var q reportQuery
	if !bindQuery(c, &q) {
		return
	}
	c.JSON(http.StatusOK, s.PriceVariationByProduct(c.Request.Context(), q.Limite))
}

// HandleCompanyShareByQuantity handles GET /empresas/participacao.
func (s *Service) HandleCompanyShareByQuantity(c *gin.Context) {
	var q reportQuery
	if !bindQuery(c, &q) {
		return
	}
	c.JSON(http.StatusOK, s.CompanyShareByQuantity(c.Request.Context(), q.Limite))
}

// HandleCompanyShareByValue handles GET /empresas/participacao-por-valor.
func (s *Service) HandleCompanyShareByValue(c *gin.Context) {
	var q reportQuery
	if !bindQuery(c, &q) {
		return
	}
	c.JSON(http.StatusOK, s.CompanyShareByValue(c.Request.Context(), q.Limite))
}
