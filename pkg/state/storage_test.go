package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apocnetwork/apoctoken/pkg/proto"
	"github.com/apocnetwork/apoctoken/pkg/settings"
)

func TestSupplyRecordBinaryRoundTrip(t *testing.T) {
	symbol := proto.Symbol{Code: "TOK", Decimals: 4}
	record := supplyRecord{
		supply:    proto.Asset{Amount: 123400, Symbol: symbol},
		maxSupply: proto.Asset{Amount: 10000000, Symbol: symbol},
		issuer:    proto.AccountID("alice"),
	}
	data, err := record.marshalBinary()
	require.NoError(t, err, "marshalBinary() failed")
	assert.Len(t, data, supplyRecordSize)
	var decoded supplyRecord
	require.NoError(t, decoded.unmarshalBinary(data), "unmarshalBinary() failed")
	assert.Equal(t, record, decoded)

	// Mismatched symbols inside one record are a programming error.
	record.maxSupply.Symbol = proto.Symbol{Code: "OTH", Decimals: 4}
	_, err = record.marshalBinary()
	assert.Error(t, err)
}

func TestBalanceRecordBinaryRoundTrip(t *testing.T) {
	record := balanceRecord{amount: 42, payer: proto.AccountID("bob")}
	data, err := record.marshalBinary()
	require.NoError(t, err, "marshalBinary() failed")
	assert.Len(t, data, balanceRecordSize)
	var decoded balanceRecord
	require.NoError(t, decoded.unmarshalBinary(data), "unmarshalBinary() failed")
	assert.Equal(t, record, decoded)
}

func TestBalanceKeyRoundTrip(t *testing.T) {
	key := balanceKey{owner: proto.AccountID("alice.token"), code: "TOK"}
	var decoded balanceKey
	require.NoError(t, decoded.unmarshal(key.bytes()), "unmarshal() failed")
	assert.Equal(t, key, decoded)

	assert.Error(t, decoded.unmarshal([]byte{balanceKeyPrefix}), "short key must fail")
	bad := key.bytes()
	bad[0] = supplyKeyPrefix
	assert.Error(t, decoded.unmarshal(bad), "wrong prefix must fail")
}

func TestSupplyCodes(t *testing.T) {
	to, path, err := createLedger(settings.DefaultLedgerSettings())
	require.NoError(t, err, "createLedger() failed")
	defer to.cleanup(t, path)

	codes, err := to.ledger.supplies.codes()
	require.NoError(t, err, "codes() failed")
	assert.Empty(t, codes)

	require.NoError(t, to.ledger.Create(issuerAcc, mustAsset(t, "100.00 TOK")))
	require.NoError(t, to.ledger.Create(issuerAcc, mustAsset(t, "50 APC")))

	codes, err = to.ledger.supplies.codes()
	require.NoError(t, err, "codes() failed")
	assert.ElementsMatch(t, []string{"TOK", "APC"}, codes)

	// With two tokens registered the single-token accessors are ambiguous.
	_, err = to.ledger.TokenName()
	assert.Error(t, err)
}

func TestBalancesSumSkipsOtherCodes(t *testing.T) {
	to, path, err := createLedger(settings.DefaultLedgerSettings())
	require.NoError(t, err, "createLedger() failed")
	defer to.cleanup(t, path)

	require.NoError(t, to.ledger.Create(issuerAcc, mustAsset(t, "100.00 TOK")))
	require.NoError(t, to.ledger.Create(senderAcc, mustAsset(t, "50 APC")))
	require.NoError(t, to.ledger.Issue(SignedBy(issuerAcc), issuerAcc, mustAsset(t, "10.00 TOK"), ""))
	require.NoError(t, to.ledger.Issue(SignedBy(senderAcc), senderAcc, mustAsset(t, "7 APC"), ""))

	sum, err := to.ledger.balances.sum("TOK")
	require.NoError(t, err, "sum() failed")
	assert.Equal(t, int64(1000), sum)
	sum, err = to.ledger.balances.sum("APC")
	require.NoError(t, err, "sum() failed")
	assert.Equal(t, int64(7), sum)
}

func TestRAMCounters(t *testing.T) {
	to, path, err := createLedger(settings.DefaultLedgerSettings())
	require.NoError(t, err, "createLedger() failed")
	defer to.cleanup(t, path)

	ram := to.ledger.ram
	require.NoError(t, ram.charge(otherAcc, 100))
	require.NoError(t, to.db.Flush(to.ledger.dbBatch))
	got, err := ram.bytes(otherAcc)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), got)

	require.NoError(t, ram.refund(otherAcc, 40))
	require.NoError(t, to.db.Flush(to.ledger.dbBatch))
	got, err = ram.bytes(otherAcc)
	require.NoError(t, err)
	assert.Equal(t, uint64(60), got)

	err = ram.refund(otherAcc, 100)
	assert.Error(t, err, "refund above charge must fail")
	to.ledger.dbBatch.Reset()
}
