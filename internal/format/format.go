// Package format holds the display helpers shared by receipts, the status
// API, and log output: currency, dates, relative time, and sizes, localized
// for the shop languages (English, Sinhala, Tamil).
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// All locales share the English digit-grouping convention; only the currency
// symbol changes per language.
var printer = message.NewPrinter(language.English)

func currencySymbol(locale string) string {
	switch locale {
	case "si":
		return "රු."
	case "ta":
		return "ரூ."
	default:
		return "Rs."
	}
}

// Currency renders a rupee amount with thousands grouping and two decimals,
// e.g. Currency(1234.5, "en") == "Rs. 1,234.50".
func Currency(amount float64, locale string) string {
	value := printer.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	return currencySymbol(locale) + " " + value
}

// Percentage renders a ratio-free percent value, e.g. 12.5 -> "12.5%".
func Percentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

func Date(t time.Time) string {
	return t.Format("02 Jan 2006")
}

func Time(t time.Time) string {
	return t.Format("03:04 PM")
}

func DateTime(t time.Time) string {
	return t.Format("02 Jan 2006 03:04 PM")
}

// RelativeTime renders the age of t against now, matching the badge text used
// for terminal last-seen columns.
func RelativeTime(t time.Time, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < 2*time.Minute:
		return "1 minute ago"
	case diff < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(diff.Minutes()))
	case diff < 2*time.Hour:
		return "1 hour ago"
	case diff < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(diff.Hours()))
	case diff < 48*time.Hour:
		return "1 day ago"
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%d days ago", int(diff.Hours()/24))
	default:
		return Date(t)
	}
}

// FileSize renders a byte count using 1024-based units, used for backup
// notification messages.
func FileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
