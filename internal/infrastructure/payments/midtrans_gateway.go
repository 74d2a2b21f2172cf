package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"tukangku/internal/usecase/interfaces"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/sirupsen/logrus"
)

var ErrMissingMidtransServerKey = errors.New("missing MIDTRANS_SERVER_KEY")

// MidtransGateway issues Snap payment tokens and queries transaction status
// through the Midtrans Core API.
//
// With PAYMENT_GATEWAY_MOCK (or MIDTRANS_MOCK) enabled it fabricates tokens
// and settled statuses locally, so the stack runs without gateway credentials.

type MidtransGateway struct {
	snapClient snap.Client
	coreClient coreapi.Client
	mockMode   bool
}

var _ interfaces.IPaymentGateway = (*MidtransGateway)(nil)

func NewMidtransGateway(serverKey string) (*MidtransGateway, error) {
	if isPaymentGatewayMockEnabled() {
		logrus.Infof("[payment][gateway] mock mode enabled")
		return &MidtransGateway{mockMode: true}, nil
	}

	if serverKey == "" {
		logrus.Errorf("[payment][gateway] missing MIDTRANS_SERVER_KEY")
		return nil, ErrMissingMidtransServerKey
	}

	env := midtrans.Sandbox
	if strings.EqualFold(os.Getenv("MIDTRANS_ENV"), "production") {
		env = midtrans.Production
	}

	g := &MidtransGateway{}
	g.snapClient.New(serverKey, env)
	g.coreClient.New(serverKey, env)
	logrus.Infof("[payment][gateway] midtrans client initialized env=%d", env)

	return g, nil
}

func (g *MidtransGateway) CreateTransaction(ctx context.Context, reference string, amount int64, customer interfaces.PaymentCustomer) (interfaces.PaymentToken, error) {
	if g.mockMode {
		token := fmt.Sprintf("mock-%s-%d", reference, time.Now().UTC().UnixNano())
		logrus.Infof("[payment][gateway] mock transaction created reference=%s amount=%d", reference, amount)
		return interfaces.PaymentToken{
			Token:       token,
			RedirectURL: "https://app.sandbox.midtrans.com/snap/v2/vtweb/" + token,
		}, nil
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  reference,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customer.Name,
			Email: customer.Email,
		},
	}

	resp, mErr := g.snapClient.CreateTransaction(req)
	if mErr != nil {
		logrus.Errorf("[payment][gateway] snap create failed reference=%s err=%v", reference, mErr)
		return interfaces.PaymentToken{}, mErr
	}
	logrus.Infof("[payment][gateway] snap transaction created reference=%s amount=%d", reference, amount)

	return interfaces.PaymentToken{Token: resp.Token, RedirectURL: resp.RedirectURL}, nil
}

func (g *MidtransGateway) GetTransactionStatus(ctx context.Context, reference string) (json.RawMessage, error) {
	if g.mockMode {
		return json.Marshal(map[string]any{
			"order_id":           reference,
			"transaction_status": "settlement",
			"fraud_status":       "accept",
			"settlement_time":    time.Now().UTC().Format(time.RFC3339Nano),
		})
	}

	resp, mErr := g.coreClient.CheckTransaction(reference)
	if mErr != nil {
		logrus.Errorf("[payment][gateway] status check failed reference=%s err=%v", reference, mErr)
		return nil, mErr
	}
	return json.Marshal(resp)
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MIDTRANS_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
