package dto

import (
	"encoding/json"
	"testing"
)

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{"string literal", `{"amount":"250.50"}`, "250.50"},
		{"bare number", `{"amount":100.25}`, "100.25"},
		{"integer number", `{"amount":100}`, "100"},
		{"unparsable string kept verbatim", `{"amount":"abc"}`, "abc"},
		{"null becomes empty", `{"amount":null}`, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var req AmountRequest
			if err := json.Unmarshal([]byte(tt.payload), &req); err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if string(req.Amount) != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, req.Amount)
			}
		})
	}
}

func TestTransferRequestToUseCaseInput(t *testing.T) {
	var req TransferRequest
	payload := `{"from_account_id":"ACCT123456","to_account_id":"ACCT789012","amount":200}`
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	input := req.ToUseCaseInput()
	if input.FromAccountID != "ACCT123456" || input.ToAccountID != "ACCT789012" || input.Amount != "200" {
		t.Fatalf("unexpected input: %+v", input)
	}
}
