package engine

// ConnectionMode is the tri-state link status gating mutating desk
// actions. The desk starts NotConnected.
type ConnectionMode string

const (
	NotConnected ConnectionMode = "not_connected"
	DemoFeed     ConnectionMode = "demo_feed"
	WalletLink   ConnectionMode = "wallet_link"
)

// Connected reports whether m is one of the linked variants.
func (m ConnectionMode) Connected() bool {
	return m == DemoFeed || m == WalletLink
}

// Label returns the human-readable name used in listings and audit
// details.
func (m ConnectionMode) Label() string {
	switch m {
	case DemoFeed:
		return "Demo feed"
	case WalletLink:
		return "Wallet link"
	default:
		return "Not connected"
	}
}
