package service

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Receipt is the billing stub's response at patient admission
type Receipt struct {
	ReceiptID     string `json:"receipt_id"`
	AccountNumber string `json:"account_number"`
}

// Signature is the identity provider stub's response at consultation
// sign-off
type Signature struct {
	SignatureID string    `json:"signature_id"`
	Timestamp   time.Time `json:"timestamp"`
}

// ReceiptIssuer issues a receipt and account number for a new admission.
// The call always succeeds; no retry or failure path is modeled.
type ReceiptIssuer interface {
	GenerateReceipt(ctx context.Context) (*Receipt, error)
}

// SignatureIssuer issues a digital signature for a finished consultation
type SignatureIssuer interface {
	SignDocument(ctx context.Context) (*Signature, error)
}

// stubReceiptIssuer simulates the external billing system with a fixed
// latency before resolving.
type stubReceiptIssuer struct {
	latency time.Duration
	now     func() time.Time
	randInt func(n int) int
}

// NewReceiptIssuer builds the billing stub. Latency is configurable so
// tests can run with zero delay.
func NewReceiptIssuer(latency time.Duration) ReceiptIssuer {
	return &stubReceiptIssuer{
		latency: latency,
		now:     time.Now,
		randInt: rand.Intn,
	}
}

func (s *stubReceiptIssuer) GenerateReceipt(ctx context.Context) (*Receipt, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}
	return &Receipt{
		ReceiptID:     fmt.Sprintf("REC-%s", base36Timestamp(s.now())),
		AccountNumber: fmt.Sprintf("CTA-%d", s.randInt(900000)+100000),
	}, nil
}

// stubSignatureIssuer simulates the RENIEC identity provider
type stubSignatureIssuer struct {
	latency time.Duration
	now     func() time.Time
}

// NewSignatureIssuer builds the signature stub
func NewSignatureIssuer(latency time.Duration) SignatureIssuer {
	return &stubSignatureIssuer{
		latency: latency,
		now:     time.Now,
	}
}

func (s *stubSignatureIssuer) SignDocument(ctx context.Context) (*Signature, error) {
	if err := wait(ctx, s.latency); err != nil {
		return nil, err
	}
	now := s.now()
	return &Signature{
		SignatureID: fmt.Sprintf("RENIEC-SIG-%s", base36Timestamp(now)),
		Timestamp:   now,
	}, nil
}

// base36Timestamp renders the millisecond timestamp in uppercase base36,
// matching the issued id format
func base36Timestamp(t time.Time) string {
	return strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
