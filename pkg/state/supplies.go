package state

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"

	"github.com/apocnetwork/apoctoken/pkg/errs"
	"github.com/apocnetwork/apoctoken/pkg/keyvalue"
	"github.com/apocnetwork/apoctoken/pkg/proto"
)

const supplyRecordSize = 8 + 8 + 1 + proto.MaxSymbolCodeLength + proto.MaxAccountIDLength

// supplyRecord is the per-symbol bookkeeping of current and maximum issued
// amount plus the issuing account. Once created it is never deleted.
type supplyRecord struct {
	supply    proto.Asset
	maxSupply proto.Asset
	issuer    proto.AccountID
}

func (r *supplyRecord) marshalBinary() ([]byte, error) {
	if r.supply.Symbol != r.maxSupply.Symbol {
		return nil, errors.New("supply and max-supply symbols differ")
	}
	res := make([]byte, supplyRecordSize)
	binary.BigEndian.PutUint64(res[:8], uint64(r.supply.Amount))
	binary.BigEndian.PutUint64(res[8:16], uint64(r.maxSupply.Amount))
	res[16] = r.supply.Symbol.Decimals
	putPadded(res[17:17+proto.MaxSymbolCodeLength], r.supply.Symbol.Code)
	putPadded(res[17+proto.MaxSymbolCodeLength:], string(r.issuer))
	return res, nil
}

func (r *supplyRecord) unmarshalBinary(data []byte) error {
	if len(data) != supplyRecordSize {
		return errInvalidDataSize
	}
	symbol := proto.Symbol{
		Code:     unpad(data[17 : 17+proto.MaxSymbolCodeLength]),
		Decimals: data[16],
	}
	r.supply = proto.Asset{Amount: int64(binary.BigEndian.Uint64(data[:8])), Symbol: symbol}
	r.maxSupply = proto.Asset{Amount: int64(binary.BigEndian.Uint64(data[8:16])), Symbol: symbol}
	r.issuer = proto.AccountID(unpad(data[17+proto.MaxSymbolCodeLength:]))
	return nil
}

// supplies is the supply table, one record per currency code.
type supplies struct {
	db      keyvalue.IterableKeyVal
	dbBatch keyvalue.Batch
}

func newSupplies(db keyvalue.IterableKeyVal, dbBatch keyvalue.Batch) *supplies {
	return &supplies{db: db, dbBatch: dbBatch}
}

func (s *supplies) exists(code string) (bool, error) {
	key := supplyKey{code: code}
	return s.db.Has(key.bytes())
}

func (s *supplies) record(code string) (*supplyRecord, error) {
	key := supplyKey{code: code}
	recordBytes, err := s.db.Get(key.bytes())
	if err == keyvalue.ErrNotFound {
		return nil, errs.NewNotFound(fmt.Sprintf("token with symbol '%s' does not exist", code))
	}
	if err != nil {
		return nil, err
	}
	var record supplyRecord
	if err := record.unmarshalBinary(recordBytes); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal supply record")
	}
	return &record, nil
}

// putRecord stages the record in the batch; it reaches the database when the
// enclosing operation flushes.
func (s *supplies) putRecord(code string, record *supplyRecord) error {
	recordBytes, err := record.marshalBinary()
	if err != nil {
		return errors.Wrap(err, "failed to marshal supply record")
	}
	key := supplyKey{code: code}
	s.dbBatch.Put(key.bytes(), recordBytes)
	return nil
}

// codes returns all currency codes with a supply record, in key order.
func (s *supplies) codes() ([]string, error) {
	iter, err := s.db.NewKeyIterator([]byte{supplyKeyPrefix})
	if err != nil {
		return nil, err
	}
	defer iter.Release()
	var codes []string
	for iter.Next() {
		key := keyvalue.SafeKey(iter)
		if len(key) != supplyKeySize {
			return nil, errInvalidDataSize
		}
		codes = append(codes, unpad(key[1:]))
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return codes, nil
}
