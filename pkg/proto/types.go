package proto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/apocnetwork/apoctoken/pkg/errs"
)

const (
	// MaxSymbolCodeLength is the maximum length of a currency code.
	MaxSymbolCodeLength = 7
	// MaxSymbolDecimals is the maximum precision of a symbol.
	MaxSymbolDecimals = 18
	// MaxAssetAmount bounds asset amounts below the full int64 range to leave
	// headroom for intermediate arithmetic.
	MaxAssetAmount = 1<<62 - 1

	// MaxAccountIDLength is the maximum length of an account name.
	MaxAccountIDLength = 12
)

// AccountID is an opaque external identity. The ledger only stores and
// compares it; authenticity of an account is the host's concern.
type AccountID string

// NewAccountIDFromString creates an AccountID from its string representation.
// Valid names are 1 to 12 characters of [a-z1-5.].
func NewAccountIDFromString(s string) (AccountID, error) {
	if l := len(s); l < 1 || l > MaxAccountIDLength {
		return "", errors.Errorf("invalid account name length %d", l)
	}
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < '1' || c > '5') && c != '.' {
			return "", errors.Errorf("invalid character %q in account name", c)
		}
	}
	return AccountID(s), nil
}

func (a AccountID) String() string {
	return string(a)
}

// Symbol identifies a token type as a currency code plus decimal precision.
// Two symbols are equal iff both code and decimals match exactly.
type Symbol struct {
	Code     string
	Decimals uint8
}

// NewSymbol creates a validated Symbol.
func NewSymbol(code string, decimals uint8) (Symbol, error) {
	if err := validateCode(code); err != nil {
		return Symbol{}, err
	}
	if decimals > MaxSymbolDecimals {
		return Symbol{}, errs.NewInvalidSymbol(fmt.Sprintf("precision %d exceeds maximum of %d", decimals, MaxSymbolDecimals))
	}
	return Symbol{Code: code, Decimals: decimals}, nil
}

// NewSymbolFromString creates a Symbol from its "<decimals>,<code>"
// representation, e.g. "4,TOK".
func NewSymbolFromString(s string) (Symbol, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return Symbol{}, errs.NewInvalidSymbol(fmt.Sprintf("invalid symbol string '%s'", s))
	}
	d, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return Symbol{}, errs.NewInvalidSymbol(fmt.Sprintf("invalid precision in symbol string '%s'", s))
	}
	return NewSymbol(parts[1], uint8(d))
}

func validateCode(code string) error {
	if code == "" {
		return errs.NewInvalidSymbol("empty currency code")
	}
	if len(code) > MaxSymbolCodeLength {
		return errs.NewInvalidSymbol(fmt.Sprintf("currency code '%s' is longer than %d characters", code, MaxSymbolCodeLength))
	}
	for _, c := range code {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return errs.NewInvalidSymbol(fmt.Sprintf("invalid character %q in currency code '%s'", c, code))
		}
	}
	return nil
}

// String converts Symbol to its "<decimals>,<code>" representation.
func (s Symbol) String() string {
	return fmt.Sprintf("%d,%s", s.Decimals, s.Code)
}

// Asset is a symbol-scoped amount. Amount is an integer scaled by the
// symbol's precision and is always within [0, MaxAssetAmount].
type Asset struct {
	Amount int64
	Symbol Symbol
}

// NewAsset creates a validated Asset.
func NewAsset(amount int64, symbol Symbol) (Asset, error) {
	if amount < 0 {
		return Asset{}, errs.NewInvalidAmount(fmt.Sprintf("negative amount %d", amount))
	}
	if amount > MaxAssetAmount {
		return Asset{}, errs.NewInvalidAmount(fmt.Sprintf("amount %d exceeds maximum of %d", amount, int64(MaxAssetAmount)))
	}
	return Asset{Amount: amount, Symbol: symbol}, nil
}

// NewAssetFromString creates an Asset from its "<amount> <code>"
// representation, e.g. "12.3400 TOK". The number of digits after the decimal
// point defines the symbol's precision.
func NewAssetFromString(s string) (Asset, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Asset{}, errs.NewInvalidAmount(fmt.Sprintf("invalid asset string '%s'", s))
	}
	num, code := parts[0], parts[1]
	var decimals uint8
	intPart, fracPart := num, ""
	if dot := strings.IndexByte(num, '.'); dot >= 0 {
		intPart, fracPart = num[:dot], num[dot+1:]
		if fracPart == "" {
			return Asset{}, errs.NewInvalidAmount(fmt.Sprintf("missing fraction digits in '%s'", s))
		}
		if len(fracPart) > MaxSymbolDecimals {
			return Asset{}, errs.NewInvalidAmount(fmt.Sprintf("too many fraction digits in '%s'", s))
		}
		decimals = uint8(len(fracPart))
	}
	symbol, err := NewSymbol(code, decimals)
	if err != nil {
		return Asset{}, err
	}
	amount, err := strconv.ParseInt(intPart+fracPart, 10, 64)
	if err != nil {
		return Asset{}, errs.NewInvalidAmount(fmt.Sprintf("invalid amount in asset string '%s'", s))
	}
	return NewAsset(amount, symbol)
}

// String converts Asset to its "<amount> <code>" representation.
func (a Asset) String() string {
	if a.Symbol.Decimals == 0 {
		return fmt.Sprintf("%d %s", a.Amount, a.Symbol.Code)
	}
	scale := int64(1)
	for i := uint8(0); i < a.Symbol.Decimals; i++ {
		scale *= 10
	}
	return fmt.Sprintf("%d.%0*d %s", a.Amount/scale, int(a.Symbol.Decimals), a.Amount%scale, a.Symbol.Code)
}

// Add returns the exact sum of two assets of the same symbol.
func (a Asset) Add(b Asset) (Asset, error) {
	if a.Symbol != b.Symbol {
		return Asset{}, errs.NewSymbolMismatch(fmt.Sprintf("cannot add %s to %s", b.Symbol, a.Symbol))
	}
	sum := a.Amount + b.Amount
	if sum > MaxAssetAmount {
		return Asset{}, errs.NewOverflow(fmt.Sprintf("%d + %d exceeds maximum asset amount", a.Amount, b.Amount))
	}
	if sum < 0 {
		return Asset{}, errs.NewUnderflow(fmt.Sprintf("%d + %d is negative", a.Amount, b.Amount))
	}
	return Asset{Amount: sum, Symbol: a.Symbol}, nil
}

// Sub returns the exact difference of two assets of the same symbol.
func (a Asset) Sub(b Asset) (Asset, error) {
	if a.Symbol != b.Symbol {
		return Asset{}, errs.NewSymbolMismatch(fmt.Sprintf("cannot subtract %s from %s", b.Symbol, a.Symbol))
	}
	diff := a.Amount - b.Amount
	if diff < 0 {
		return Asset{}, errs.NewUnderflow(fmt.Sprintf("%d - %d is negative", a.Amount, b.Amount))
	}
	return Asset{Amount: diff, Symbol: a.Symbol}, nil
}

// MarshalJSON writes Asset as a JSON string value.
func (a Asset) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

// UnmarshalJSON reads Asset from a JSON string value.
func (a *Asset) UnmarshalJSON(value []byte) error {
	s, err := strconv.Unquote(string(value))
	if err != nil {
		return errors.Wrap(err, "failed to unmarshal Asset from JSON")
	}
	v, err := NewAssetFromString(s)
	if err != nil {
		return errs.Extend(err, "failed to unmarshal Asset from JSON")
	}
	*a = v
	return nil
}
