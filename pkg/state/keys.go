package state

// keys.go - database keys.

import (
	"github.com/pkg/errors"

	"github.com/apocnetwork/apoctoken/pkg/proto"
)

const (
	// Key prefixes.
	supplyKeyPrefix byte = iota
	balanceKeyPrefix
	ramKeyPrefix
)

const (
	// Key sizes.
	supplyKeySize  = 1 + proto.MaxSymbolCodeLength
	balanceKeySize = 1 + proto.MaxAccountIDLength + proto.MaxSymbolCodeLength
	ramKeySize     = 1 + proto.MaxAccountIDLength
)

var (
	errInvalidDataSize = errors.New("invalid data size")
	errInvalidPrefix   = errors.New("invalid prefix for given key")
)

// putPadded writes s into buf padded with zero bytes to the full buf length.
func putPadded(buf []byte, s string) {
	copy(buf, s)
	for i := len(s); i < len(buf); i++ {
		buf[i] = 0
	}
}

func unpad(data []byte) string {
	end := len(data)
	for end > 0 && data[end-1] == 0 {
		end--
	}
	return string(data[:end])
}

type supplyKey struct {
	code string
}

func (k *supplyKey) bytes() []byte {
	buf := make([]byte, supplyKeySize)
	buf[0] = supplyKeyPrefix
	putPadded(buf[1:], k.code)
	return buf
}

type balanceKey struct {
	owner proto.AccountID
	code  string
}

func (k *balanceKey) bytes() []byte {
	buf := make([]byte, balanceKeySize)
	buf[0] = balanceKeyPrefix
	putPadded(buf[1:1+proto.MaxAccountIDLength], string(k.owner))
	putPadded(buf[1+proto.MaxAccountIDLength:], k.code)
	return buf
}

func (k *balanceKey) unmarshal(data []byte) error {
	if len(data) != balanceKeySize {
		return errInvalidDataSize
	}
	if data[0] != balanceKeyPrefix {
		return errInvalidPrefix
	}
	k.owner = proto.AccountID(unpad(data[1 : 1+proto.MaxAccountIDLength]))
	k.code = unpad(data[1+proto.MaxAccountIDLength:])
	return nil
}

type ramKey struct {
	account proto.AccountID
}

func (k *ramKey) bytes() []byte {
	buf := make([]byte, ramKeySize)
	buf[0] = ramKeyPrefix
	putPadded(buf[1:], string(k.account))
	return buf
}
