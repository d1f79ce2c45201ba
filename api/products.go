package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aidin1998/walletapi/api/responses"
	"github.com/Aidin1998/walletapi/pkg/models"
)

// GET /products
func (s *Server) getProducts(c *gin.Context) {
	var paging models.PaginationParams
	if err := c.ShouldBindQuery(&paging); err != nil {
		responses.BadRequest(c, err)
		return
	}

	now := time.Now().UTC()
	c.JSON(http.StatusOK, []models.Product{
		{ID: 1, Name: "Laptop", Description: "High-performance laptop", Price: 999.99, Category: "Electronics", CreatedAt: now},
		{ID: 2, Name: "Mouse", Description: "Wireless mouse", Price: 29.99, Category: "Electronics", CreatedAt: now},
	})
}

// POST /products
func (s *Server) createProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Product{
		ID:          1,
		Name:        *req.Name,
		Description: *req.Description,
		Price:       *req.Price,
		Category:    *req.Category,
		CreatedAt:   time.Now().UTC(),
	})
}

// GET /products/{id}
func (s *Server) getProductByID(c *gin.Context) {
	var path productPath
	if err := c.ShouldBindUri(&path); err != nil {
		responses.BadRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Product{
		ID:          path.ID,
		Name:        "Sample Product",
		Description: "Sample product description",
		Price:       49.99,
		Category:    "General",
		CreatedAt:   time.Now().UTC(),
	})
}
