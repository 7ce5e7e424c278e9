package paymentControllers

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"
)

type CreateOrderInput struct {
	Amount int `json:"amount"`
}

// POST /api/create-razorpay-order — creates a gateway order for the given
// amount (smallest currency unit) and hands the key back for the client-side
// checkout widget.
func CreateRazorpayOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil || input.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount is required"})
			return
		}

		keyID := os.Getenv("RAZORPAY_KEY_ID")
		client := razorpay.NewClient(keyID, os.Getenv("RAZORPAY_KEY_SECRET"))

		order, err := client.Order.Create(map[string]interface{}{
			"amount":          input.Amount,
			"currency":        "INR",
			"payment_capture": 1,
		}, nil)
		if err != nil {
			log.Printf("❌ Razorpay order creation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Razorpay order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order_id":     order["id"],
			"razorpay_key": keyID,
		})
	}
}
