// Package hashing lets values write themselves into a hash.Hash so that
// containers can be fingerprinted. Equal values must write identical bytes.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"math"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// ErrUnsupportedType is returned when a value has no known hash encoding.
var ErrUnsupportedType = errors.New("unsupported type for hashing")

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// Sha256, XXH3 and XXHash64 are all HashFuncs.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the hex-encoded SHA256 digest of the given Hashable.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// XXH3 returns the hex-encoded 64-bit xxh3 digest of the given Hashable.
// It is much cheaper than Sha256 and is the default for fingerprints
// that never leave the process.
func XXH3(hashable Hashable) (string, error) {
	return digest(xxh3.New(), hashable)
}

// XXHash64 returns the hex-encoded 64-bit xxHash digest of the given Hashable.
// Prefer XXH3 for new fingerprints; XXHash64 matches digests produced by
// other xxHash64 implementations.
func XXHash64(hashable Hashable) (string, error) {
	return digest(xxhash.New64(), hashable)
}

// Sum64 returns the 64-bit xxh3 digest of the given Hashable.
func Sum64(hashable Hashable) (uint64, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Write writes value into h. Hashable values write themselves; the builtin
// numeric, string, byte slice and bool types use a fixed encoding.
// Strings and byte slices are length-prefixed so that sequences of them
// cannot collide by shifting bytes across element boundaries.
func Write(h hash.Hash, value any) error { //nolint:cyclop
	var buf []byte

	switch typed := value.(type) {
	case Hashable:
		return typed.UpdateHash(h)
	case int:
		buf = binary.BigEndian.AppendUint64(nil, uint64(typed))
	case int8:
		buf = []byte{byte(typed)}
	case int16:
		buf = binary.BigEndian.AppendUint16(nil, uint16(typed))
	case int32:
		buf = binary.BigEndian.AppendUint32(nil, uint32(typed))
	case int64:
		buf = binary.BigEndian.AppendUint64(nil, uint64(typed))
	case uint:
		buf = binary.BigEndian.AppendUint64(nil, uint64(typed))
	case uint8:
		buf = []byte{typed}
	case uint16:
		buf = binary.BigEndian.AppendUint16(nil, typed)
	case uint32:
		buf = binary.BigEndian.AppendUint32(nil, typed)
	case uint64:
		buf = binary.BigEndian.AppendUint64(nil, typed)
	case float32:
		buf = binary.BigEndian.AppendUint32(nil, math.Float32bits(typed))
	case float64:
		buf = binary.BigEndian.AppendUint64(nil, math.Float64bits(typed))
	case bool:
		buf = []byte{0}
		if typed {
			buf[0] = 1
		}
	case string:
		buf = binary.AppendUvarint(nil, uint64(len(typed)))
		buf = append(buf, typed...)
	case []byte:
		buf = binary.AppendUvarint(nil, uint64(len(typed)))
		buf = append(buf, typed...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	_, err := h.Write(buf)

	return err
}

// WriteLen writes a collection length. Containers write their length before
// their elements so that nested containers hash unambiguously.
func WriteLen(h hash.Hash, n int) error {
	_, err := h.Write(binary.AppendUvarint(nil, uint64(n)))

	return err
}
