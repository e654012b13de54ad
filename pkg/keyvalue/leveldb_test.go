package keyvalue

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	n                        = 10
	falsePositiveProbability = 0.0001
)

func TestKeyVal(t *testing.T) {
	dbDir, err := os.MkdirTemp(os.TempDir(), "dbDir0")
	assert.NoError(t, err, "MkdirTemp() failed")
	kv, err := NewKeyVal(dbDir, BloomFilterParams{N: n, FalsePositiveProbability: falsePositiveProbability})
	assert.NoError(t, err, "NewKeyVal() failed")

	defer func() {
		err = kv.Close()
		assert.NoError(t, err, "Close() failed")
		err = os.RemoveAll(dbDir)
		assert.NoError(t, err, "os.RemoveAll() failed")
	}()

	// Test direct DB operations.
	key0 := []byte("sampleKey0")
	val0 := []byte("sampleValue0")
	err = kv.Put(key0, val0)
	assert.NoError(t, err, "Put() failed")
	receivedVal, err := kv.Get(key0)
	assert.NoError(t, err, "Get() failed")
	assert.Equal(t, val0, receivedVal, "saved and retrieved values for same key differ")
	has, err := kv.Has(key0)
	assert.NoError(t, err, "Has() failed")
	assert.Equal(t, has, true, "Has() returned false for value that was saved before")
	err = kv.Delete(key0)
	assert.NoError(t, err, "Delete() failed")
	has, err = kv.Has(key0)
	assert.NoError(t, err, "Has() failed")
	assert.Equal(t, has, false, "Has() returned true for deleted value")
	// Test batch operations.
	key1 := []byte("sampleKey1")
	val1 := []byte("sampleValue1")
	batch, err := kv.NewBatch()
	assert.NoError(t, err, "NewBatch() failed")
	batch.Put(key0, val0)
	batch.Put(key1, val1)
	batch.Delete(key0)
	err = kv.Flush(batch)
	assert.NoError(t, err, "Flush() failed")
	receivedVal, err = kv.Get(key1)
	assert.NoError(t, err, "Get() failed")
	assert.Equal(t, val1, receivedVal, "saved and retrieved values for same key differ")
	has, err = kv.Has(key0)
	assert.NoError(t, err, "Has() failed")
	assert.Equal(t, has, false, "Has() returned true for value that was deleted in batch")
	// Batch is reset after flush; flushing it again must be a no-op.
	err = kv.Flush(batch)
	assert.NoError(t, err, "Flush() failed")
	// A reset batch stages nothing.
	batch.Put(key0, val0)
	batch.Reset()
	err = kv.Flush(batch)
	assert.NoError(t, err, "Flush() failed")
	has, err = kv.Has(key0)
	assert.NoError(t, err, "Has() failed")
	assert.Equal(t, has, false, "Has() returned true for value from a reset batch")
	// Test iterator.
	iter, err := kv.NewKeyIterator([]byte{})
	assert.NoError(t, err, "NewKeyIterator() failed")
	for iter.Next() {
		key := iter.Key()
		val := iter.Value()
		receivedVal, err = kv.Get(key)
		assert.NoError(t, err, "Get() failed")
		assert.Equal(t, val, receivedVal, "invalid value in iterator")
	}
	iter.Release()
	err = iter.Error()
	assert.NoError(t, err, "iterator error")
}

func TestErrNotFound(t *testing.T) {
	dbDir, err := os.MkdirTemp(os.TempDir(), "dbDir1")
	assert.NoError(t, err, "MkdirTemp() failed")
	kv, err := NewKeyVal(dbDir, BloomFilterParams{N: n, FalsePositiveProbability: falsePositiveProbability})
	assert.NoError(t, err, "NewKeyVal() failed")

	defer func() {
		err = kv.Close()
		assert.NoError(t, err, "Close() failed")
		err = os.RemoveAll(dbDir)
		assert.NoError(t, err, "os.RemoveAll() failed")
	}()

	_, err = kv.Get([]byte("missingKey"))
	assert.Equal(t, ErrNotFound, err, "Get() of missing key must return ErrNotFound")
}
