package state

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/apocnetwork/apoctoken/pkg/errs"
	"github.com/apocnetwork/apoctoken/pkg/keyvalue"
	"github.com/apocnetwork/apoctoken/pkg/proto"
	"github.com/apocnetwork/apoctoken/pkg/settings"
)

// Authorization is the host-supplied proof of which accounts authorized the
// current operation. The ledger consumes it as a boolean precondition only;
// signature verification is the host's identity layer.
type Authorization interface {
	Authorizes(account proto.AccountID) bool
}

type signedBy []proto.AccountID

func (s signedBy) Authorizes(account proto.AccountID) bool {
	for _, a := range s {
		if a == account {
			return true
		}
	}
	return false
}

// SignedBy is the trivial Authorization carrying the set of authorizing
// accounts as established by the host.
func SignedBy(accounts ...proto.AccountID) Authorization {
	return signedBy(accounts)
}

// Ledger is a fungible-token ledger over a key-value store. It keeps two
// tables, supplies (one record per currency code) and balances (one record
// per owner and code), plus per-account storage charges.
//
// Every operation stages its writes in a batch and flushes the batch only
// after all preconditions passed, so a failed operation leaves the tables
// untouched. The host is expected to run operations one at a time per ledger
// instance; the ledger itself does no locking.
type Ledger struct {
	db      keyvalue.IterableKeyVal
	dbBatch keyvalue.Batch
	sets    *settings.LedgerSettings

	supplies *supplies
	balances *balances
	ram      *ramCounters
}

func NewLedger(db keyvalue.IterableKeyVal, sets *settings.LedgerSettings) (*Ledger, error) {
	dbBatch, err := db.NewBatch()
	if err != nil {
		return nil, err
	}
	return &Ledger{
		db:       db,
		dbBatch:  dbBatch,
		sets:     sets,
		supplies: newSupplies(db, dbBatch),
		balances: newBalances(db, dbBatch),
		ram:      newRAMCounters(db, dbBatch),
	}, nil
}

// finalize flushes the staged writes of a successful operation or drops them
// on failure.
func (l *Ledger) finalize(operation string, err error) error {
	if err != nil {
		l.dbBatch.Reset()
		metricLedgerOperations.WithLabelValues(operation, "failure").Inc()
		return err
	}
	if flushErr := l.db.Flush(l.dbBatch); flushErr != nil {
		l.dbBatch.Reset()
		metricLedgerOperations.WithLabelValues(operation, "failure").Inc()
		return flushErr
	}
	metricLedgerOperations.WithLabelValues(operation, "success").Inc()
	return nil
}

func (l *Ledger) checkMemo(memo string) error {
	if len(memo) > l.sets.MaxMemoLength {
		return errs.NewMemoTooLong(len(memo), l.sets.MaxMemoLength)
	}
	return nil
}

// Create registers a new token under maxSupply's currency code with zero
// issued supply. Storage of the supply record is charged to the issuer.
func (l *Ledger) Create(issuer proto.AccountID, maxSupply proto.Asset) error {
	return l.finalize("create", l.create(issuer, maxSupply))
}

func (l *Ledger) create(issuer proto.AccountID, maxSupply proto.Asset) error {
	if maxSupply.Amount <= 0 {
		return errs.NewInvalidAmount("max-supply must be positive")
	}
	if maxSupply.Amount > proto.MaxAssetAmount {
		return errs.NewInvalidAmount(fmt.Sprintf("max-supply %d exceeds maximum asset amount", maxSupply.Amount))
	}
	code := maxSupply.Symbol.Code
	exists, err := l.supplies.exists(code)
	if err != nil {
		return err
	}
	if exists {
		return errs.NewAlreadyExists(fmt.Sprintf("token with symbol '%s' already exists", code))
	}
	record := &supplyRecord{
		supply:    proto.Asset{Amount: 0, Symbol: maxSupply.Symbol},
		maxSupply: maxSupply,
		issuer:    issuer,
	}
	if err := l.supplies.putRecord(code, record); err != nil {
		return err
	}
	if err := l.ram.charge(issuer, supplyKeySize+supplyRecordSize); err != nil {
		return err
	}
	zap.S().Debugf("created token %s with max-supply %s for issuer '%s'", maxSupply.Symbol, maxSupply, issuer)
	return nil
}

// Issue mints quantity into circulation and credits it to the to account.
// Only the issuer may issue; new balance records are charged to the issuer.
func (l *Ledger) Issue(auth Authorization, to proto.AccountID, quantity proto.Asset, memo string) error {
	return l.finalize("issue", l.issue(auth, to, quantity, memo))
}

func (l *Ledger) issue(auth Authorization, to proto.AccountID, quantity proto.Asset, memo string) error {
	if err := l.checkMemo(memo); err != nil {
		return err
	}
	st, err := l.supplies.record(quantity.Symbol.Code)
	if err != nil {
		return errs.Extend(err, "issue")
	}
	if !auth.Authorizes(st.issuer) {
		return errs.NewUnauthorized(fmt.Sprintf("issue requires authorization of issuer '%s'", st.issuer))
	}
	if l.sets.IssueToIssuerOnly && to != st.issuer {
		return errs.NewUnauthorized("tokens can only be issued to the issuer account")
	}
	if quantity.Amount <= 0 {
		return errs.NewInvalidAmount("must issue positive quantity")
	}
	if quantity.Symbol != st.supply.Symbol {
		return errs.NewInvalidAmount("symbol precision mismatch")
	}
	if quantity.Amount > st.maxSupply.Amount-st.supply.Amount {
		return errs.NewExceedsMaxSupply(fmt.Sprintf("quantity %s exceeds available supply", quantity))
	}
	newSupply, err := st.supply.Add(quantity)
	if err != nil {
		return err
	}
	st.supply = newSupply
	if err := l.supplies.putRecord(quantity.Symbol.Code, st); err != nil {
		return err
	}
	if err := l.credit(to, quantity, st.issuer); err != nil {
		return err
	}
	zap.S().Debugf("issued %s to '%s'", quantity, to)
	return nil
}

// Retire burns quantity from the issuer's own balance, permanently removing
// it from circulating supply. The supply record itself is never removed.
func (l *Ledger) Retire(auth Authorization, quantity proto.Asset, memo string) error {
	return l.finalize("retire", l.retire(auth, quantity, memo))
}

func (l *Ledger) retire(auth Authorization, quantity proto.Asset, memo string) error {
	if err := l.checkMemo(memo); err != nil {
		return err
	}
	st, err := l.supplies.record(quantity.Symbol.Code)
	if err != nil {
		return errs.Extend(err, "retire")
	}
	if !auth.Authorizes(st.issuer) {
		return errs.NewUnauthorized(fmt.Sprintf("retire requires authorization of issuer '%s'", st.issuer))
	}
	if quantity.Amount <= 0 {
		return errs.NewInvalidAmount("must retire positive quantity")
	}
	if quantity.Symbol != st.supply.Symbol {
		return errs.NewInvalidAmount("symbol precision mismatch")
	}
	if err := l.debit(st.issuer, quantity); err != nil {
		return err
	}
	newSupply, err := st.supply.Sub(quantity)
	if err != nil {
		return err
	}
	st.supply = newSupply
	if err := l.supplies.putRecord(quantity.Symbol.Code, st); err != nil {
		return err
	}
	zap.S().Debugf("retired %s from '%s'", quantity, st.issuer)
	return nil
}

// Transfer moves quantity from one account to another. A balance record
// created for the receiver is charged to the sender.
func (l *Ledger) Transfer(auth Authorization, from, to proto.AccountID, quantity proto.Asset, memo string) error {
	return l.finalize("transfer", l.transfer(auth, from, to, quantity, memo))
}

func (l *Ledger) transfer(auth Authorization, from, to proto.AccountID, quantity proto.Asset, memo string) error {
	if from == to {
		return errs.NewSameAccount("cannot transfer to self")
	}
	if !auth.Authorizes(from) {
		return errs.NewUnauthorized(fmt.Sprintf("transfer requires authorization of '%s'", from))
	}
	if err := l.checkMemo(memo); err != nil {
		return err
	}
	st, err := l.supplies.record(quantity.Symbol.Code)
	if err != nil {
		return errs.Extend(err, "transfer")
	}
	if quantity.Amount <= 0 {
		return errs.NewInvalidAmount("must transfer positive quantity")
	}
	if quantity.Symbol != st.supply.Symbol {
		return errs.NewInvalidAmount("symbol precision mismatch")
	}
	if err := l.debit(from, quantity); err != nil {
		return err
	}
	if err := l.credit(to, quantity, from); err != nil {
		return err
	}
	zap.S().Debugf("transferred %s from '%s' to '%s'", quantity, from, to)
	return nil
}

// Open creates a zero balance record for (owner, symbol) charged to ramPayer.
// Opening an already open balance is a no-op.
func (l *Ledger) Open(auth Authorization, owner proto.AccountID, symbol proto.Symbol, ramPayer proto.AccountID) error {
	return l.finalize("open", l.open(auth, owner, symbol, ramPayer))
}

func (l *Ledger) open(auth Authorization, owner proto.AccountID, symbol proto.Symbol, ramPayer proto.AccountID) error {
	if !auth.Authorizes(ramPayer) {
		return errs.NewUnauthorized(fmt.Sprintf("open requires authorization of ram payer '%s'", ramPayer))
	}
	st, err := l.supplies.record(symbol.Code)
	if err != nil {
		return errs.Extend(err, "open")
	}
	if symbol != st.supply.Symbol {
		return errs.NewInvalidSymbol("symbol precision mismatch")
	}
	record, err := l.balances.record(owner, symbol.Code)
	if err != nil {
		return err
	}
	if record != nil {
		return nil
	}
	if err := l.balances.putRecord(owner, symbol.Code, &balanceRecord{amount: 0, payer: ramPayer}); err != nil {
		return err
	}
	return l.ram.charge(ramPayer, balanceKeySize+balanceRecordSize)
}

// Close deletes the zero balance record for (owner, symbol) and refunds its
// storage to the original payer. Closing an absent balance is a no-op.
func (l *Ledger) Close(auth Authorization, owner proto.AccountID, symbol proto.Symbol) error {
	return l.finalize("close", l.close(auth, owner, symbol))
}

func (l *Ledger) close(auth Authorization, owner proto.AccountID, symbol proto.Symbol) error {
	if !auth.Authorizes(owner) {
		return errs.NewUnauthorized(fmt.Sprintf("close requires authorization of owner '%s'", owner))
	}
	record, err := l.balances.record(owner, symbol.Code)
	if err != nil {
		return err
	}
	if record == nil {
		return nil
	}
	if record.amount != 0 {
		return errs.NewBalanceNotZero(fmt.Sprintf("cannot close '%s' balance of %d", symbol.Code, record.amount))
	}
	l.balances.deleteRecord(owner, symbol.Code)
	return l.ram.refund(record.payer, balanceKeySize+balanceRecordSize)
}

// debit subtracts value from the owner's balance record. A balance that
// reaches exactly zero is retained; reclaiming its storage takes an explicit
// Close.
func (l *Ledger) debit(owner proto.AccountID, value proto.Asset) error {
	record, err := l.balances.record(owner, value.Symbol.Code)
	if err != nil {
		return err
	}
	if record == nil {
		return errs.NewNotFound(fmt.Sprintf("no '%s' balance found for account '%s'", value.Symbol.Code, owner))
	}
	if record.amount < value.Amount {
		return errs.NewInsufficientBalance(fmt.Sprintf("overdrawn balance: %d < %d", record.amount, value.Amount))
	}
	balance := proto.Asset{Amount: record.amount, Symbol: value.Symbol}
	newBalance, err := balance.Sub(value)
	if err != nil {
		return err
	}
	record.amount = newBalance.Amount
	return l.balances.putRecord(owner, value.Symbol.Code, record)
}

// credit adds value to the owner's balance record, creating it on the payer's
// dime when absent.
func (l *Ledger) credit(owner proto.AccountID, value proto.Asset, payer proto.AccountID) error {
	record, err := l.balances.record(owner, value.Symbol.Code)
	if err != nil {
		return err
	}
	if record == nil {
		record = &balanceRecord{amount: 0, payer: payer}
		if err := l.ram.charge(payer, balanceKeySize+balanceRecordSize); err != nil {
			return err
		}
	}
	balance := proto.Asset{Amount: record.amount, Symbol: value.Symbol}
	newBalance, err := balance.Add(value)
	if err != nil {
		return err
	}
	record.amount = newBalance.Amount
	return l.balances.putRecord(owner, value.Symbol.Code, record)
}
