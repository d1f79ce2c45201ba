package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aidin1998/walletapi/api/responses"
	"github.com/Aidin1998/walletapi/pkg/models"
)

// GET /users
func (s *Server) getUsers(c *gin.Context) {
	var paging models.PaginationParams
	if err := c.ShouldBindQuery(&paging); err != nil {
		responses.BadRequest(c, err)
		return
	}

	now := time.Now().UTC()
	c.JSON(http.StatusOK, []models.User{
		{ID: 1, Email: "john@example.com", Name: "John Doe", CreatedAt: now},
		{ID: 2, Email: "jane@example.com", Name: "Jane Smith", CreatedAt: now},
	})
}

// POST /users
func (s *Server) createUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err)
		return
	}

	user := models.User{
		ID:        1,
		Email:     *req.Email,
		Name:      *req.Name,
		CreatedAt: time.Now().UTC(),
	}
	s.logger.Debug("User created", zap.Int32("id", user.ID), zap.String("email", user.Email))
	c.JSON(http.StatusCreated, user)
}

// GET /users/{id}
func (s *Server) getUserByID(c *gin.Context) {
	var path userPath
	if err := c.ShouldBindUri(&path); err != nil {
		responses.BadRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, models.User{
		ID:        path.ID,
		Email:     "test@example.com",
		Name:      "Test User",
		CreatedAt: time.Now().UTC(),
	})
}
