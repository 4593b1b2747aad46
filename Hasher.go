package Go_Utils

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash"
	"golang.org/x/exp/constraints"
)

// Hasher is a seed for xxhash based hashing. The zero value is a valid seed.
// Equal inputs hash equally under the same Hasher; different Hashers spread
// the same inputs differently. The receivers are safe for concurrent use.
type Hasher uint64

// fmix64 from murmur3, folds the seed into an xxhash digest.
func (u Hasher) mix(h uint64) uint64 {
	h ^= uint64(u)
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

// HashBytes hashes the given byte slice.
func (u Hasher) HashBytes(b []byte) uint64 {
	return u.mix(xxhash.Sum64(b))
}

// HashString directly hashes a string without copying it.
func (u Hasher) HashString(v string) uint64 {
	return u.mix(xxhash.Sum64String(v))
}

// HashUint64 hashes the 8 little endian bytes of v.
func (u Hasher) HashUint64(v uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return u.mix(xxhash.Sum64(b[:]))
}

// HashInt hashes v.
func (u Hasher) HashInt(v int) uint64 {
	return u.HashUint64(uint64(v))
}

// Func returns a hash function for any ordered type using u.
// Integers and floats hash their 64 bit representation, so equal values of
// different widths hash equally. Floats are normalized so that 0 and -0 agree.
func Func[E constraints.Ordered](u Hasher) func(E) uint64 {
	return func(e E) uint64 {
		switch v := any(e).(type) {
		case string:
			return u.HashString(v)
		case int:
			return u.HashUint64(uint64(v))
		case int8:
			return u.HashUint64(uint64(v))
		case int16:
			return u.HashUint64(uint64(v))
		case int32:
			return u.HashUint64(uint64(v))
		case int64:
			return u.HashUint64(uint64(v))
		case uint:
			return u.HashUint64(uint64(v))
		case uint8:
			return u.HashUint64(uint64(v))
		case uint16:
			return u.HashUint64(uint64(v))
		case uint32:
			return u.HashUint64(uint64(v))
		case uint64:
			return u.HashUint64(v)
		case uintptr:
			return u.HashUint64(uint64(v))
		case float32:
			return u.HashUint64(math.Float64bits(float64(v) + 0))
		case float64:
			return u.HashUint64(math.Float64bits(v + 0))
		default: // named types
			return u.hashKind(reflect.ValueOf(e))
		}
	}
}

// hashKind hashes a value of a named ordered type by its underlying kind, the
// same way Func hashes the unnamed type.
func (u Hasher) hashKind(rv reflect.Value) uint64 {
	switch rv.Kind() {
	case reflect.String:
		return u.HashString(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return u.HashUint64(uint64(rv.Int()))
	case reflect.Float32, reflect.Float64:
		return u.HashUint64(math.Float64bits(rv.Float() + 0))
	default:
		return u.HashUint64(rv.Uint())
	}
}
