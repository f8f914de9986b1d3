package models

import "testing"

func TestValidatePaymentMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		wantErr bool
	}{
		{name: "UPI", mode: "UPI", wantErr: false},
		{name: "cash on delivery", mode: "Cash on Delivery", wantErr: false},
		{name: "blank", mode: "", wantErr: true},
		{name: "unknown", mode: "Card", wantErr: true},
		{name: "lowercase upi", mode: "upi", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePaymentMode(tt.mode)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePaymentMode(%q) error = %v, wantErr %v", tt.mode, err, tt.wantErr)
			}
		})
	}
}

func TestNewOrderPlacedMessage(t *testing.T) {
	orders := []Order{
		{ID: 7, FoodItem: "Paratha", Quantity: 2, Price: 100, PaymentMode: "UPI", Status: "Pending"},
		{ID: 8, FoodItem: "Roti", Quantity: 3, Price: 90, PaymentMode: "UPI", Status: "Pending"},
	}

	msg := NewOrderPlacedMessage(orders)

	if len(msg.OrderIDs) != 2 || msg.OrderIDs[0] != 7 || msg.OrderIDs[1] != 8 {
		t.Errorf("unexpected order ids: %v", msg.OrderIDs)
	}
	if msg.ItemCount != 2 {
		t.Errorf("expected item count 2, got %d", msg.ItemCount)
	}
	if msg.TotalAmount != 190 {
		t.Errorf("expected total 190, got %d", msg.TotalAmount)
	}
	if msg.PaymentMode != "UPI" {
		t.Errorf("expected payment mode UPI, got %q", msg.PaymentMode)
	}
}
