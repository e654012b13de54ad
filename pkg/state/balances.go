package state

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/apocnetwork/apoctoken/pkg/keyvalue"
	"github.com/apocnetwork/apoctoken/pkg/proto"
	"github.com/apocnetwork/apoctoken/pkg/util/common"
)

const balanceRecordSize = 8 + proto.MaxAccountIDLength

// balanceRecord is a single (owner, code) holding. payer is the identity that
// was charged for the record's storage and is refunded when the record is
// closed.
type balanceRecord struct {
	amount int64
	payer  proto.AccountID
}

func (r *balanceRecord) marshalBinary() ([]byte, error) {
	res := make([]byte, balanceRecordSize)
	binary.BigEndian.PutUint64(res[:8], uint64(r.amount))
	putPadded(res[8:], string(r.payer))
	return res, nil
}

func (r *balanceRecord) unmarshalBinary(data []byte) error {
	if len(data) != balanceRecordSize {
		return errInvalidDataSize
	}
	r.amount = int64(binary.BigEndian.Uint64(data[:8]))
	r.payer = proto.AccountID(unpad(data[8:]))
	return nil
}

// balances is the balance table, one record per (owner, code) pair.
type balances struct {
	db      keyvalue.IterableKeyVal
	dbBatch keyvalue.Batch
}

func newBalances(db keyvalue.IterableKeyVal, dbBatch keyvalue.Batch) *balances {
	return &balances{db: db, dbBatch: dbBatch}
}

// record returns the balance record for (owner, code), or (nil, nil) if no
// such record exists.
func (s *balances) record(owner proto.AccountID, code string) (*balanceRecord, error) {
	key := balanceKey{owner: owner, code: code}
	recordBytes, err := s.db.Get(key.bytes())
	if err == keyvalue.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var record balanceRecord
	if err := record.unmarshalBinary(recordBytes); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal balance record")
	}
	return &record, nil
}

func (s *balances) putRecord(owner proto.AccountID, code string, record *balanceRecord) error {
	recordBytes, err := record.marshalBinary()
	if err != nil {
		return errors.Wrap(err, "failed to marshal balance record")
	}
	key := balanceKey{owner: owner, code: code}
	s.dbBatch.Put(key.bytes(), recordBytes)
	return nil
}

func (s *balances) deleteRecord(owner proto.AccountID, code string) {
	key := balanceKey{owner: owner, code: code}
	s.dbBatch.Delete(key.bytes())
}

// sum adds up all holdings of the given code across owners. Together with the
// supply record it checks the conservation invariant: the sum of all balances
// equals the issued supply.
func (s *balances) sum(code string) (int64, error) {
	iter, err := s.db.NewKeyIterator([]byte{balanceKeyPrefix})
	if err != nil {
		return 0, err
	}
	defer iter.Release()
	total := int64(0)
	for iter.Next() {
		var key balanceKey
		if err := key.unmarshal(keyvalue.SafeKey(iter)); err != nil {
			return 0, err
		}
		if key.code != code {
			continue
		}
		var record balanceRecord
		if err := record.unmarshalBinary(keyvalue.SafeValue(iter)); err != nil {
			return 0, err
		}
		total, err = common.AddInt64(total, record.amount)
		if err != nil {
			return 0, err
		}
	}
	if err := iter.Error(); err != nil {
		return 0, err
	}
	return total, nil
}
