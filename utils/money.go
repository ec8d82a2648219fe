package utils

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySign is the Israeli new shekel sign.
const CurrencySign = "₪"

var moneyPrinter = message.NewPrinter(language.Hebrew)

// FormatMoney renders n as a shekel amount with no decimal places,
// grouped the Hebrew way: FormatMoney(1234.5) == "₪1,235".
// NaN and infinities render as zero; amounts past int64 are not grouped.
func FormatMoney(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return CurrencySign + "0"
	}

	rounded := decimal.NewFromFloat(n).Round(0)
	if !rounded.BigInt().IsInt64() {
		return CurrencySign + rounded.String()
	}
	return CurrencySign + moneyPrinter.Sprintf("%d", rounded.IntPart())
}
