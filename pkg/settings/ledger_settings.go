package settings

const (
	// DefaultMaxMemoLength bounds transfer/issue/retire memos. Memos carry no
	// ledger semantics, the bound only keeps audit annotations small.
	DefaultMaxMemoLength = 256
)

// LedgerSettings is the functionality configuration of a token ledger
// instance.
type LedgerSettings struct {
	// IssueToIssuerOnly requires the receiver of an issue operation to be the
	// issuing account itself. Tokens then reach other accounts only through
	// explicit transfers.
	IssueToIssuerOnly bool
	// MaxMemoLength is the maximum memo length in bytes.
	MaxMemoLength int
}

func DefaultLedgerSettings() *LedgerSettings {
	return &LedgerSettings{
		IssueToIssuerOnly: true,
		MaxMemoLength:     DefaultMaxMemoLength,
	}
}
