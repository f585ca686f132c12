package shop

import (
	"context"
	"fmt"
	"strings"

	"github.com/Bytebandit-011/Day-two-onwards-murf/pkg/agent"
)

type listProductsInput struct {
	Category   string `json:"category,omitempty" desc:"Product category, e.g. mug, t-shirt, hoodie, bag"`
	MaxPrice   int    `json:"max_price,omitempty" desc:"Maximum price in rupees"`
	Color      string `json:"color,omitempty" desc:"Product color"`
	SearchTerm string `json:"search_term,omitempty" desc:"Free-text match against name and description"`
}

type orderLineInput struct {
	ProductID string `json:"product_id" desc:"Catalog id of the product"`
	Quantity  int    `json:"quantity,omitempty" desc:"How many, defaults to 1"`
	Size      string `json:"size,omitempty" desc:"Size code for sized products"`
}

type createOrderInput struct {
	Items []orderLineInput `json:"items" desc:"Products the customer wants to buy"`
}

type emptyInput struct{}

// Tools returns the shopping assistant's tool set over the service.
func Tools(svc *Service) *agent.ToolSet {
	ts := agent.NewToolSet()

	agent.AddFunc(ts, "list_products",
		"Browse the catalog, optionally filtered by category, price, color, or a search term.",
		func(ctx context.Context, in listProductsInput) (string, error) {
			products := svc.ListProducts(ProductFilter{
				Category:   in.Category,
				MaxPrice:   in.MaxPrice,
				Color:      in.Color,
				SearchTerm: in.SearchTerm,
			})
			return describeProducts(products), nil
		})

	agent.AddFunc(ts, "create_order",
		"Place an order for one or more products. Call only after the customer confirms.",
		func(ctx context.Context, in createOrderInput) (string, error) {
			lines := make([]OrderLineRequest, len(in.Items))
			for i, item := range in.Items {
				lines[i] = OrderLineRequest{
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
					Size:      item.Size,
				}
			}
			order, err := svc.CreateOrder(lines)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("Order %s confirmed! %d item(s), total %d rupees.",
				order.ID, len(order.Items), order.Total), nil
		})

	agent.AddFunc(ts, "get_last_order",
		"Look up the most recent order.",
		func(ctx context.Context, _ emptyInput) (string, error) {
			order, ok := svc.GetLastOrder()
			if !ok {
				return "No orders have been placed yet.", nil
			}
			return describeOrder(*order), nil
		})

	agent.AddFunc(ts, "get_all_orders",
		"List every order placed so far.",
		func(ctx context.Context, _ emptyInput) (string, error) {
			orders := svc.GetAllOrders()
			if len(orders) == 0 {
				return "No orders have been placed yet.", nil
			}
			parts := make([]string, len(orders))
			for i, o := range orders {
				parts[i] = fmt.Sprintf("%s: %d item(s), %d rupees, placed %s",
					o.ID, len(o.Items), o.Total, o.CreatedAt)
			}
			return fmt.Sprintf("%d order(s). %s", len(orders), strings.Join(parts, ". ")), nil
		})

	return ts
}

// ShopperAgent builds the shopping assistant definition.
func ShopperAgent(svc *Service) *agent.Agent {
	return &agent.Agent{
		Name: "shopper",
		Instructions: `You are a friendly shopping assistant for a small Indian lifestyle store.

YOUR ROLE:
- Help customers browse the catalog and place orders
- Always quote prices in rupees
- Confirm product, size, and quantity before placing an order
- If something is out of stock or a size is unavailable, apologize and suggest alternatives

IMPORTANT:
- Use tools immediately when needed
- Be concise and clear
- No bullet points or formatting in speech`,
		Tools: Tools(svc),
	}
}

func describeProducts(products []Product) string {
	if len(products) == 0 {
		return "I couldn't find any products matching that."
	}
	parts := make([]string, len(products))
	for i, p := range products {
		desc := fmt.Sprintf("%s (%s, %d rupees", p.Name, p.ID, p.Price)
		if len(p.Sizes) > 0 {
			desc += ", sizes " + strings.Join(p.Sizes, "/")
		}
		if !p.InStock {
			desc += ", out of stock"
		}
		parts[i] = desc + ")"
	}
	return fmt.Sprintf("Found %d product(s): %s.", len(products), strings.Join(parts, "; "))
}

func describeOrder(o Order) string {
	parts := make([]string, len(o.Items))
	for i, item := range o.Items {
		d := fmt.Sprintf("%d x %s", item.Quantity, item.ProductName)
		if item.Size != "" {
			d += " (size " + item.Size + ")"
		}
		parts[i] = d
	}
	return fmt.Sprintf("Order %s, placed %s: %s. Total %d rupees, status %s.",
		o.ID, o.CreatedAt, strings.Join(parts, ", "), o.Total, o.Status)
}
