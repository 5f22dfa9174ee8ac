package iyzico

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	pkgerrors "github.com/polattozlu/munch-gokhan/pkg/errors"
)

var (
	cvcRe    = regexp.MustCompile(`^\d{3,4}$`)
	expiryRe = regexp.MustCompile(`^(\d{2})/(\d{2})$`)
)

// ValidateCardNumber checks a card number with the Luhn algorithm. Spaces and
// dashes are tolerated, anything else fails.
func ValidateCardNumber(number string) error {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(number)
	if len(cleaned) < 12 || len(cleaned) > 19 {
		return pkgerrors.New(pkgerrors.CodeValidation, "card number length is invalid")
	}

	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		ch := cleaned[i]
		if ch < '0' || ch > '9' {
			return pkgerrors.New(pkgerrors.CodeValidation, "card number contains non-digits")
		}
		digit := int(ch - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	if sum%10 != 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "card number failed checksum")
	}
	return nil
}

// ValidateCVC checks the security code shape.
func ValidateCVC(cvc string) error {
	if !cvcRe.MatchString(cvc) {
		return pkgerrors.New(pkgerrors.CodeValidation, "cvc must be 3 or 4 digits")
	}
	return nil
}

// ValidateExpiry checks an MM/YY expiry against the reference time. A card
// expiring in the current month is still valid.
func ValidateExpiry(expiry string, now time.Time) error {
	m := expiryRe.FindStringSubmatch(strings.TrimSpace(expiry))
	if m == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "expiry must be in MM/YY format")
	}

	month, _ := strconv.Atoi(m[1])
	if month < 1 || month > 12 {
		return pkgerrors.New(pkgerrors.CodeValidation, "expiry month is out of range")
	}
	year := 2000 + mustAtoi(m[2])

	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return pkgerrors.New(pkgerrors.CodeValidation, "card is expired")
	}
	return nil
}

// ValidateCard runs all card checks and returns the first failure.
func ValidateCard(card PaymentCard, expiry string, now time.Time) error {
	if strings.TrimSpace(card.CardHolderName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "card holder name is required")
	}
	if err := ValidateCardNumber(card.CardNumber); err != nil {
		return err
	}
	if err := ValidateCVC(card.CVC); err != nil {
		return err
	}
	return ValidateExpiry(expiry, now)
}

// SplitExpiry breaks an already validated MM/YY expiry into the month and
// four-digit year fields the gateway expects.
func SplitExpiry(expiry string) (month, year string) {
	m := expiryRe.FindStringSubmatch(strings.TrimSpace(expiry))
	if m == nil {
		return "", ""
	}
	return m[1], strconv.Itoa(2000 + mustAtoi(m[2]))
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
