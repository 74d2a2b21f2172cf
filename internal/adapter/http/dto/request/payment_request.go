package request

// GatewayNotificationRequest is the callback body posted by the payment
// gateway. Only the routing fields are bound; the gateway sends many more.
type GatewayNotificationRequest struct {
	OrderID           string `json:"order_id" binding:"required"`
	TransactionStatus string `json:"transaction_status" binding:"required"`
	FraudStatus       string `json:"fraud_status"`
}
