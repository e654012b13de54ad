package keyvalue

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/apocnetwork/apoctoken/pkg/util/common"
)

type pair struct {
	key      []byte
	value    []byte
	deletion bool
}

type batch struct {
	filter *bloomFilter
	pairs  []pair
}

func (b *batch) Delete(key []byte) {
	b.pairs = append(b.pairs, pair{key: common.Dup(key), deletion: true})
}

func (b *batch) Put(key, val []byte) {
	b.pairs = append(b.pairs, pair{key: common.Dup(key), value: common.Dup(val), deletion: false})
}

func (b *batch) leveldbBatch() *leveldb.Batch {
	leveldbBatch := new(leveldb.Batch)
	for _, pair := range b.pairs {
		if pair.deletion {
			leveldbBatch.Delete(pair.key)
		} else {
			leveldbBatch.Put(pair.key, pair.value)
			if b.filter != nil {
				b.filter.add(pair.key)
			}
		}
	}
	return leveldbBatch
}

func (b *batch) Reset() {
	b.pairs = nil
}

type KeyVal struct {
	db     *leveldb.DB
	filter *bloomFilter
}

func initBloomFilter(kv *KeyVal, params BloomFilterParams) error {
	filter, err := newBloomFilter(params)
	if err != nil {
		return err
	}
	if filter == nil {
		return nil
	}
	iter, err := kv.NewKeyIterator([]byte{})
	if err != nil {
		return err
	}
	defer iter.Release()
	for iter.Next() {
		filter.add(iter.Key())
	}
	if err := iter.Error(); err != nil {
		return err
	}
	kv.filter = filter
	return nil
}

func NewKeyVal(path string, params BloomFilterParams) (*KeyVal, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	kv := &KeyVal{db: db}
	if err := initBloomFilter(kv, params); err != nil {
		return nil, err
	}
	return kv, nil
}

func (k *KeyVal) NewBatch() (Batch, error) {
	return &batch{filter: k.filter}, nil
}

func (k *KeyVal) Get(key []byte) ([]byte, error) {
	if k.filter != nil && k.filter.notInTheSet(key) {
		return nil, ErrNotFound
	}
	val, err := k.db.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return val, ErrNotFound
	}
	return val, err
}

func (k *KeyVal) Has(key []byte) (bool, error) {
	if k.filter != nil && k.filter.notInTheSet(key) {
		return false, nil
	}
	return k.db.Has(key, nil)
}

func (k *KeyVal) Delete(key []byte) error {
	return k.db.Delete(key, nil)
}

func (k *KeyVal) Put(key, val []byte) error {
	if k.filter != nil {
		k.filter.add(key)
	}
	return k.db.Put(key, val, nil)
}

func (k *KeyVal) Flush(b1 Batch) error {
	b, ok := b1.(*batch)
	if !ok {
		return errors.New("can't convert batch interface to leveldb's batch")
	}
	if err := k.db.Write(b.leveldbBatch(), nil); err != nil {
		return err
	}
	b.Reset()
	return nil
}

func (k *KeyVal) NewKeyIterator(prefix []byte) (Iterator, error) {
	if prefix != nil {
		return k.db.NewIterator(util.BytesPrefix(prefix), nil), nil
	}
	return k.db.NewIterator(nil, nil), nil
}

func (k *KeyVal) Close() error {
	return k.db.Close()
}
