package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Account IDs are 8-12 alphanumeric characters.
var accountIDRegex = regexp.MustCompile(`^[A-Za-z0-9]{8,12}$`)

// ValidateAmount converts a raw amount into an exact decimal and checks that
// it is strictly positive. Strings parse with full precision; floats take
// their shortest exact decimal representation; any other type is rendered to
// text and parsed. Zero is rejected.
func ValidateAmount(raw any) (decimal.Decimal, error) {
	var (
		amount decimal.Decimal
		err    error
	)

	switch v := raw.(type) {
	case decimal.Decimal:
		amount = v
	case string:
		amount, err = decimal.NewFromString(strings.TrimSpace(v))
	case int:
		amount = decimal.NewFromInt(int64(v))
	case int32:
		amount = decimal.NewFromInt32(v)
	case int64:
		amount = decimal.NewFromInt(v)
	case float32:
		amount = decimal.NewFromFloat32(v)
	case float64:
		amount = decimal.NewFromFloat(v)
	default:
		amount, err = decimal.NewFromString(fmt.Sprintf("%v", v))
	}

	if err != nil {
		return decimal.Decimal{}, NewInvalidInput(
			CodeAmountFormat,
			fmt.Sprintf("invalid amount format: '%v', must be a valid number", raw),
		)
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, NewInvalidAmount(raw)
	}

	return amount, nil
}

// ValidateAccountID checks the account ID format and returns the ID
// unchanged. No normalization is applied.
func ValidateAccountID(id string) (string, error) {
	if id == "" {
		return "", NewInvalidInput(CodeEmptyAccountID, "account ID cannot be empty")
	}

	if !accountIDRegex.MatchString(id) {
		return "", NewInvalidInput(
			CodeAccountIDFormat,
			fmt.Sprintf("invalid account ID format: '%s', must be 8-12 alphanumeric characters", id),
		)
	}

	return id, nil
}

// ValidateOwnerName checks that the owner name is not blank and returns it
// unchanged.
func ValidateOwnerName(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", NewInvalidInput(CodeEmptyOwnerName, "owner name cannot be empty")
	}

	return name, nil
}
