package service

import (
	"crypto/sha512"
	"fmt"
	"testing"

	"testinesia-be/internal/dto"
	"testinesia-be/internal/entity"
)

func TestMapTransactionStatus(t *testing.T) {
	tests := []struct {
		gateway string
		want    entity.TransactionStatus
	}{
		{"capture", entity.TransactionStatusSuccess},
		{"settlement", entity.TransactionStatusSuccess},
		{"deny", entity.TransactionStatusFailed},
		{"cancel", entity.TransactionStatusFailed},
		{"expire", entity.TransactionStatusFailed},
		{"failure", entity.TransactionStatusFailed},
		{"pending", entity.TransactionStatusPending},
		{"authorize", entity.TransactionStatusPending},
		{"", entity.TransactionStatusPending},
	}

	for _, tt := range tests {
		if got := mapTransactionStatus(tt.gateway); got != tt.want {
			t.Errorf("mapTransactionStatus(%q) = %q, want %q", tt.gateway, got, tt.want)
		}
	}
}

func TestVerifySignature(t *testing.T) {
	const serverKey = "SB-Mid-server-testkey"

	req := &dto.MidtransWebhookRequest{
		OrderId:     "f3b1c9a0-0000-0000-0000-000000000001",
		StatusCode:  "200",
		GrossAmount: "99000.00",
	}
	req.SignatureKey = fmt.Sprintf("%x",
		sha512.Sum512([]byte(req.OrderId+req.StatusCode+req.GrossAmount+serverKey)))

	if !verifySignature(req, serverKey) {
		t.Error("valid signature should verify")
	}

	if verifySignature(req, "some-other-key") {
		t.Error("signature computed with another key should not verify")
	}

	tampered := *req
	tampered.GrossAmount = "1.00"
	if verifySignature(&tampered, serverKey) {
		t.Error("tampered amount should not verify")
	}

	unsigned := &dto.MidtransWebhookRequest{OrderId: "x", StatusCode: "200", GrossAmount: "1"}
	if verifySignature(unsigned, serverKey) {
		t.Error("missing signature should not verify")
	}
}
