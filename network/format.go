package network

import "fmt"

// FormatOhms renders a resistance for display, scaling to kilo/mega ohms:
// 470 -> "470.00Ω", 4700 -> "4.70kΩ", 1.2e6 -> "1.20MΩ".
func FormatOhms(resistance float64) string {
	switch {
	case resistance >= 1e6:
		return fmt.Sprintf("%.2fMΩ", resistance/1e6)
	case resistance >= 1e3:
		return fmt.Sprintf("%.2fkΩ", resistance/1e3)
	default:
		return fmt.Sprintf("%.2fΩ", resistance)
	}
}
