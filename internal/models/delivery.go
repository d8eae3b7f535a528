package models

// Delivery tiers. The price is a fixed per-tier lookup, never client-supplied.
const (
	DeliveryNormale = "normale" // 30min-1h
	DeliveryUrgente = "urgente" // 15-20min
)

var deliveryPrices = map[string]int{
	DeliveryNormale: 30,
	DeliveryUrgente: 50,
}

// DeliveryPrice returns the price in DH for a tier, or false for an unknown one.
func DeliveryPrice(deliveryType string) (int, bool) {
	price, ok := deliveryPrices[deliveryType]
	return price, ok
}
