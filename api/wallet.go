package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aidin1998/walletapi/api/responses"
	"github.com/Aidin1998/walletapi/pkg/metrics"
	"github.com/Aidin1998/walletapi/pkg/models"
)

// GET /wallets/{user_id}
func (s *Server) getUserWallets(c *gin.Context) {
	var path walletOwnerPath
	if err := c.ShouldBindUri(&path); err != nil {
		responses.BadRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, []models.Wallet{{
		ID:        1,
		UserID:    path.UserID,
		Balance:   100.0,
		Currency:  "USD",
		CreatedAt: time.Now().UTC(),
	}})
}

// POST /transfers
func (s *Server) createTransfer(c *gin.Context) {
	var req models.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, err)
		return
	}

	metrics.TransfersEchoed.Inc()
	s.logger.Info("Transfer requested",
		zap.Int32("from_wallet_id", *req.FromWalletID),
		zap.Int32("to_wallet_id", *req.ToWalletID),
		zap.Float64("amount", *req.Amount),
		zap.Bool("idempotency_key", req.IdempotencyKey != nil))
	c.JSON(http.StatusOK, req)
}
