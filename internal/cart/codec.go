package cart

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/petclub-shop/internal/domain"
)

// The blob is the JSON array of cart items, each carrying the full product.
func encode(items []domain.CartItem) ([]byte, error) {
	if items == nil {
		items = []domain.CartItem{}
	}

	blob, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return blob, nil
}

func decode(blob []byte) ([]domain.CartItem, error) {
	var items []domain.CartItem
	if err := json.Unmarshal(blob, &items); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(items))
	for i, item := range items {
		if item.Product.ID == uuid.Nil {
			return nil, fmt.Errorf("item[%d] product id is empty", i)
		}
		if item.Quantity < 1 {
			return nil, fmt.Errorf("item[%d] quantity[%d] is below 1", i, item.Quantity)
		}
		if _, ok := seen[item.Product.ID]; ok {
			return nil, fmt.Errorf("item[%d] product[%s] is duplicated", i, item.Product.ID)
		}
		seen[item.Product.ID] = struct{}{}
	}

	return items, nil
}
