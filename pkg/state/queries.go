package state

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/apocnetwork/apoctoken/pkg/errs"
	"github.com/apocnetwork/apoctoken/pkg/proto"
)

// SupplyInfo is the read-only view of a supply record.
type SupplyInfo struct {
	Supply    proto.Asset     `json:"supply"`
	MaxSupply proto.Asset     `json:"max_supply"`
	Issuer    proto.AccountID `json:"issuer"`
}

// SupplyInfo returns supply bookkeeping for the given currency code.
func (l *Ledger) SupplyInfo(code string) (*SupplyInfo, error) {
	st, err := l.supplies.record(code)
	if err != nil {
		return nil, err
	}
	return &SupplyInfo{Supply: st.supply, MaxSupply: st.maxSupply, Issuer: st.issuer}, nil
}

// Supply returns the current circulating supply for the given currency code.
func (l *Ledger) Supply(code string) (proto.Asset, error) {
	st, err := l.supplies.record(code)
	if err != nil {
		return proto.Asset{}, err
	}
	return st.supply, nil
}

// Balance returns the owner's holding of the given currency code.
func (l *Ledger) Balance(owner proto.AccountID, code string) (proto.Asset, error) {
	st, err := l.supplies.record(code)
	if err != nil {
		return proto.Asset{}, err
	}
	record, err := l.balances.record(owner, code)
	if err != nil {
		return proto.Asset{}, err
	}
	if record == nil {
		return proto.Asset{}, errs.NewNotFound(fmt.Sprintf("no '%s' balance found for account '%s'", code, owner))
	}
	return proto.Asset{Amount: record.amount, Symbol: st.supply.Symbol}, nil
}

// RAMBytes returns the table storage in bytes currently charged to the
// account.
func (l *Ledger) RAMBytes(account proto.AccountID) (uint64, error) {
	return l.ram.bytes(account)
}

// soleCode resolves the single registered currency code for the single-token
// accessors below.
func (l *Ledger) soleCode() (string, error) {
	codes, err := l.supplies.codes()
	if err != nil {
		return "", err
	}
	switch len(codes) {
	case 0:
		return "", errs.NewNotFound("no token has been created")
	case 1:
		return codes[0], nil
	default:
		return "", errors.Errorf("ambiguous accessor: %d tokens registered", len(codes))
	}
}

// TokenName returns the sole registered token's currency code.
func (l *Ledger) TokenName() (string, error) {
	return l.soleCode()
}

// TokenSymbol returns the sole registered token's symbol string.
func (l *Ledger) TokenSymbol() (string, error) {
	code, err := l.soleCode()
	if err != nil {
		return "", err
	}
	st, err := l.supplies.record(code)
	if err != nil {
		return "", err
	}
	return st.supply.Symbol.String(), nil
}

// Decimals returns the sole registered token's precision.
func (l *Ledger) Decimals() (uint8, error) {
	code, err := l.soleCode()
	if err != nil {
		return 0, err
	}
	st, err := l.supplies.record(code)
	if err != nil {
		return 0, err
	}
	return st.supply.Symbol.Decimals, nil
}

// TotalSupply returns the sole registered token's circulating supply.
func (l *Ledger) TotalSupply() (proto.Asset, error) {
	code, err := l.soleCode()
	if err != nil {
		return proto.Asset{}, err
	}
	return l.Supply(code)
}

// BalanceOf returns the owner's holding of the sole registered token.
func (l *Ledger) BalanceOf(owner proto.AccountID) (proto.Asset, error) {
	code, err := l.soleCode()
	if err != nil {
		return proto.Asset{}, err
	}
	return l.Balance(owner, code)
}
