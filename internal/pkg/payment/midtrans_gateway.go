// Package payment opens checkout sessions with Midtrans Snap.
package payment

import (
	"context"
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type Item struct {
	Id    string
	Name  string
	Price int64
	Qty   int32
}

type CheckoutRequest struct {
	OrderId       string
	GrossAmount   int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Items         []Item
}

type CheckoutSession struct {
	Token       string
	RedirectURL string
}

type IPaymentGateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
}

type midtransGateway struct {
	client snap.Client
}

func NewMidtransGateway(serverKey string, isProduction bool) IPaymentGateway {
	env := midtrans.Sandbox
	if isProduction {
		env = midtrans.Production
	}
	g := &midtransGateway{}
	g.client.New(serverKey, env)
	return g
}

func (g *midtransGateway) CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items := make([]midtrans.ItemDetails, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, midtrans.ItemDetails{
			ID:    it.Id,
			Name:  it.Name,
			Price: it.Price,
			Qty:   it.Qty,
		})
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderId,
			GrossAmt: req.GrossAmount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		},
		Items:           &items,
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := g.client.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	return &CheckoutSession{
		Token:       snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}
