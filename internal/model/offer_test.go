package model

import "testing"

func TestOfferStatusTerminal(t *testing.T) {
	if OfferStatusPending.Terminal() {
		t.Fatal("pending reported as terminal")
	}
	if !OfferStatusAccepted.Terminal() {
		t.Fatal("accepted not reported as terminal")
	}
	if !OfferStatusDeclined.Terminal() {
		t.Fatal("declined not reported as terminal")
	}
}

func TestParseOfferDecision(t *testing.T) {
	accept, ok := ParseOfferDecision("accepted")
	if !ok || accept.Status() != OfferStatusAccepted {
		t.Fatalf("accepted parsed as %v (%v)", accept, ok)
	}
	decline, ok := ParseOfferDecision("declined")
	if !ok || decline.Status() != OfferStatusDeclined {
		t.Fatalf("declined parsed as %v (%v)", decline, ok)
	}
	if _, ok := ParseOfferDecision("pending"); ok {
		t.Fatal("pending accepted as a decision")
	}
	if _, ok := ParseOfferDecision(""); ok {
		t.Fatal("empty string accepted as a decision")
	}
}

func TestParseOfferType(t *testing.T) {
	for _, raw := range []string{"loan", "donation", "equity", "other"} {
		if _, ok := ParseOfferType(raw); !ok {
			t.Fatalf("%q rejected", raw)
		}
	}
	if _, ok := ParseOfferType("grant"); ok {
		t.Fatal("unknown type accepted")
	}
}

func TestContractCompleted(t *testing.T) {
	active := Contract{TotalPayments: 5, PaymentsReceived: 4}
	if active.Completed() {
		t.Fatal("4 of 5 reported as completed")
	}
	done := Contract{TotalPayments: 5, PaymentsReceived: 5}
	if !done.Completed() {
		t.Fatal("5 of 5 not reported as completed")
	}
}
