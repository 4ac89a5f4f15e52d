package service

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestGenerateReceiptFormat(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	issuer := &stubReceiptIssuer{
		now:     func() time.Time { return fixed },
		randInt: func(n int) int { return 234567 },
	}

	receipt, err := issuer.GenerateReceipt(context.Background())
	if err != nil {
		t.Fatalf("GenerateReceipt: %v", err)
	}

	want := "REC-" + base36Timestamp(fixed)
	if receipt.ReceiptID != want {
		t.Errorf("ReceiptID = %s, want %s", receipt.ReceiptID, want)
	}
	if receipt.AccountNumber != "CTA-334567" {
		t.Errorf("AccountNumber = %s, want CTA-334567", receipt.AccountNumber)
	}
}

func TestAccountNumberIsSixDigits(t *testing.T) {
	issuer := &stubReceiptIssuer{now: time.Now, randInt: func(n int) int { return 0 }}
	receipt, err := issuer.GenerateReceipt(context.Background())
	if err != nil {
		t.Fatalf("GenerateReceipt: %v", err)
	}
	if receipt.AccountNumber != "CTA-100000" {
		t.Errorf("smallest account number = %s, want CTA-100000", receipt.AccountNumber)
	}
}

func TestSignDocumentFormat(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	issuer := &stubSignatureIssuer{now: func() time.Time { return fixed }}

	signature, err := issuer.SignDocument(context.Background())
	if err != nil {
		t.Fatalf("SignDocument: %v", err)
	}

	if !strings.HasPrefix(signature.SignatureID, "RENIEC-SIG-") {
		t.Errorf("SignatureID = %s, want RENIEC-SIG- prefix", signature.SignatureID)
	}
	if signature.SignatureID != "RENIEC-SIG-"+base36Timestamp(fixed) {
		t.Errorf("SignatureID = %s", signature.SignatureID)
	}
	if !signature.Timestamp.Equal(fixed) {
		t.Errorf("Timestamp = %v, want %v", signature.Timestamp, fixed)
	}
}

func TestBase36TimestampUppercase(t *testing.T) {
	ts := base36Timestamp(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	if ts != strings.ToUpper(ts) {
		t.Errorf("timestamp %s is not uppercase", ts)
	}
}

func TestIssuerHonorsContextCancellation(t *testing.T) {
	issuer := NewSignatureIssuer(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := issuer.SignDocument(ctx); err == nil {
		t.Fatal("expected context error when cancelled during latency wait")
	}
}
