package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	"github.com/apocnetwork/apoctoken/pkg/errs"
	"github.com/apocnetwork/apoctoken/pkg/keyvalue"
	"github.com/apocnetwork/apoctoken/pkg/proto"
	"github.com/apocnetwork/apoctoken/pkg/settings"
	"github.com/apocnetwork/apoctoken/pkg/state"
	"github.com/apocnetwork/apoctoken/pkg/util/common"
)

const (
	bloomFilterSize                     = 2e6
	bloomFilterFalsePositiveProbability = 0.01
)

var (
	logLevel  = flag.String("log-level", "INFO", "Logging level. Supported levels: DEBUG, INFO, WARN, ERROR, FATAL. Default logging level INFO.")
	statePath = flag.String("state-path", "", "Path to ledger state directory.")
	action    = flag.String("action", "", "One of: create, issue, retire, transfer, open, close, supply, balance, name, symbol, decimals, total-supply, balance-of, ram.")
	actor     = flag.String("actor", "", "Account authorizing the action.")
	issuer    = flag.String("issuer", "", "Issuing account for 'create'.")
	owner     = flag.String("owner", "", "Balance owner for 'open', 'close', 'balance', 'balance-of', 'ram'.")
	from      = flag.String("from", "", "Sender account for 'transfer'.")
	to        = flag.String("to", "", "Receiver account for 'transfer' and 'issue'.")
	payer     = flag.String("payer", "", "Account charged for storage in 'open'.")
	quantity  = flag.String("quantity", "", "Asset amount, e.g. '12.3400 TOK'. Max supply for 'create'.")
	symbol    = flag.String("symbol", "", "Symbol, e.g. '4,TOK', for 'open' and 'close'.")
	code      = flag.String("code", "", "Currency code for 'supply' and 'balance'.")
	memo      = flag.String("memo", "", "Memo annotation for 'issue', 'retire' and 'transfer'.")
	issueAny  = flag.Bool("issue-to-anyone", false, "Allow 'issue' to credit accounts other than the issuer.")
)

func account(value, flagName string) proto.AccountID {
	id, err := proto.NewAccountIDFromString(value)
	if err != nil {
		zap.S().Fatalf("Invalid '%s' flag value: %v", flagName, err)
	}
	return id
}

func asset(value, flagName string) proto.Asset {
	a, err := proto.NewAssetFromString(value)
	if err != nil {
		zap.S().Fatalf("Invalid '%s' flag value: %v", flagName, err)
	}
	return a
}

// authorization builds the host-side proof that the actor authorized the
// action. A real deployment derives this from its identity layer.
func authorization() state.Authorization {
	return state.SignedBy(account(*actor, "actor"))
}

func run(ledger *state.Ledger) error {
	switch *action {
	case "create":
		return ledger.Create(account(*issuer, "issuer"), asset(*quantity, "quantity"))
	case "issue":
		return ledger.Issue(authorization(), account(*to, "to"), asset(*quantity, "quantity"), *memo)
	case "retire":
		return ledger.Retire(authorization(), asset(*quantity, "quantity"), *memo)
	case "transfer":
		return ledger.Transfer(authorization(), account(*from, "from"), account(*to, "to"), asset(*quantity, "quantity"), *memo)
	case "open":
		sym, err := proto.NewSymbolFromString(*symbol)
		if err != nil {
			return err
		}
		return ledger.Open(authorization(), account(*owner, "owner"), sym, account(*payer, "payer"))
	case "close":
		sym, err := proto.NewSymbolFromString(*symbol)
		if err != nil {
			return err
		}
		return ledger.Close(authorization(), account(*owner, "owner"), sym)
	default:
		return query(ledger)
	}
}

func query(ledger *state.Ledger) error {
	switch *action {
	case "supply":
		info, err := ledger.SupplyInfo(*code)
		if err != nil {
			return err
		}
		fmt.Printf("supply: %s, max-supply: %s, issuer: %s\n", info.Supply, info.MaxSupply, info.Issuer)
	case "balance":
		balance, err := ledger.Balance(account(*owner, "owner"), *code)
		if err != nil {
			return err
		}
		fmt.Println(balance)
	case "name":
		name, err := ledger.TokenName()
		if err != nil {
			return err
		}
		fmt.Println(name)
	case "symbol":
		sym, err := ledger.TokenSymbol()
		if err != nil {
			return err
		}
		fmt.Println(sym)
	case "decimals":
		decimals, err := ledger.Decimals()
		if err != nil {
			return err
		}
		fmt.Println(decimals)
	case "total-supply":
		supply, err := ledger.TotalSupply()
		if err != nil {
			return err
		}
		fmt.Println(supply)
	case "balance-of":
		balance, err := ledger.BalanceOf(account(*owner, "owner"))
		if err != nil {
			return err
		}
		fmt.Println(balance)
	case "ram":
		bytes, err := ledger.RAMBytes(account(*owner, "owner"))
		if err != nil {
			return err
		}
		fmt.Printf("%d bytes\n", bytes)
	default:
		return fmt.Errorf("unknown action '%s'", *action)
	}
	return nil
}

func main() {
	flag.Parse()

	common.SetupLogger(*logLevel)

	if *statePath == "" {
		zap.S().Fatal("Flag 'state-path' is required.")
	}
	params := keyvalue.NewBloomFilterParams(bloomFilterSize, bloomFilterFalsePositiveProbability)
	db, err := keyvalue.NewKeyVal(*statePath, params)
	if err != nil {
		zap.S().Fatalf("Failed to open state: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			zap.S().Errorf("Failed to close state: %v", err)
		}
	}()

	sets := settings.DefaultLedgerSettings()
	sets.IssueToIssuerOnly = !*issueAny
	ledger, err := state.NewLedger(db, sets)
	if err != nil {
		zap.S().Fatalf("Failed to create ledger: %v", err)
	}
	if err := run(ledger); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			zap.S().Errorf("Failed to close state: %v", closeErr)
		}
		if errs.IsValidationError(err) {
			zap.S().Fatalf("Action '%s' rejected: %v", *action, err)
		}
		zap.S().Fatalf("Action '%s' failed: %v", *action, err)
	}
}
