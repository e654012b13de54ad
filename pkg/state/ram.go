package state

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/apocnetwork/apoctoken/pkg/keyvalue"
	"github.com/apocnetwork/apoctoken/pkg/proto"
	"github.com/apocnetwork/apoctoken/pkg/util/common"
)

const ramRecordSize = 8

// ramCounters tracks how many bytes of table storage are currently charged to
// each account. A billing concern, not part of ledger correctness: records are
// charged on creation and refunded on deletion.
type ramCounters struct {
	db      keyvalue.KeyValue
	dbBatch keyvalue.Batch
}

func newRAMCounters(db keyvalue.KeyValue, dbBatch keyvalue.Batch) *ramCounters {
	return &ramCounters{db: db, dbBatch: dbBatch}
}

func (r *ramCounters) bytes(account proto.AccountID) (uint64, error) {
	key := ramKey{account: account}
	data, err := r.db.Get(key.bytes())
	if err == keyvalue.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(data) != ramRecordSize {
		return 0, errInvalidDataSize
	}
	return binary.BigEndian.Uint64(data), nil
}

func (r *ramCounters) put(account proto.AccountID, value uint64) {
	key := ramKey{account: account}
	data := make([]byte, ramRecordSize)
	binary.BigEndian.PutUint64(data, value)
	r.dbBatch.Put(key.bytes(), data)
}

func (r *ramCounters) charge(account proto.AccountID, size uint64) error {
	cur, err := r.bytes(account)
	if err != nil {
		return err
	}
	next, err := common.AddUint64(cur, size)
	if err != nil {
		return err
	}
	r.put(account, next)
	return nil
}

func (r *ramCounters) refund(account proto.AccountID, size uint64) error {
	cur, err := r.bytes(account)
	if err != nil {
		return err
	}
	if cur < size {
		return errors.Errorf("ram refund of %d bytes exceeds %d charged to '%s'", size, cur, account)
	}
	r.put(account, cur-size)
	return nil
}
