package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// Item de checkout já precificado pelo servidor.
type Item struct {
	Title     string
	Quantity  int
	UnitPrice float64
}

// Checkout cria preferências de pagamento no Mercado Pago para pedidos de
// produtos. Sem token configurado o pedido segue sem link de pagamento.
type Checkout struct {
	client preference.Client
}

func NewCheckout(accessToken string) (*Checkout, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &Checkout{client: preference.NewClient(cfg)}, nil
}

// CreatePreference retorna a URL de pagamento do pedido.
func (c *Checkout) CreatePreference(
	ctx context.Context,
	reference string,
	items []Item,
) (string, error) {

	if c == nil {
		return "", nil
	}

	req := preference.Request{
		ExternalReference: reference,
	}
	for _, it := range items {
		req.Items = append(req.Items, preference.ItemRequest{
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	pref, err := c.client.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create preference: %w", err)
	}

	return pref.InitPoint, nil
}
