package strategy

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
)

// Type tags keep values of different shapes apart in the digest.
const (
	tagNil byte = iota + 1
	tagBool
	tagInt
	tagUint
	tagFloat
	tagString
	tagBytes
	tagTime
	tagDecimal
	tagSequence
	tagMapping
	tagOther
)

// FlexHash is a structural hash: sequences hash element by element in order,
// mappings hash their key/value pairs regardless of iteration order, and
// scalars hash by value. Structurally equal values hash equally, which is
// what uniqueness of nested list elements is checked against.
func FlexHash(v any) uint64 {
	d := xxhash.New()
	writeFlex(d, v)

	return d.Sum64()
}

func writeTagged(d *xxhash.Digest, tag byte, bits uint64) {
	var buf [9]byte
	buf[0] = tag
	binary.LittleEndian.PutUint64(buf[1:], bits)
	_, _ = d.Write(buf[:])
}

func writeFlex(d *xxhash.Digest, v any) {
	switch x := v.(type) {
	case nil:
		_, _ = d.Write([]byte{tagNil})
		return
	case []byte:
		writeTagged(d, tagBytes, uint64(len(x)))
		_, _ = d.Write(x)
		return
	case time.Time:
		writeTagged(d, tagTime, uint64(x.Unix()))
		writeTagged(d, tagTime, uint64(x.Nanosecond()))
		return
	case decimal.Decimal:
		s := x.String()
		writeTagged(d, tagDecimal, uint64(len(s)))
		_, _ = d.WriteString(s)
		return
	case []any:
		writeTagged(d, tagSequence, uint64(len(x)))
		for _, elem := range x {
			writeFlex(d, elem)
		}
		return
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		var bit uint64
		if rv.Bool() {
			bit = 1
		}
		writeTagged(d, tagBool, bit)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeTagged(d, tagInt, uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeTagged(d, tagUint, rv.Uint())
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == 0 {
			f = 0 // -0 hashes as +0
		}
		writeTagged(d, tagFloat, math.Float64bits(f))
	case reflect.String:
		s := rv.String()
		writeTagged(d, tagString, uint64(len(s)))
		_, _ = d.WriteString(s)
	case reflect.Slice, reflect.Array:
		writeTagged(d, tagSequence, uint64(rv.Len()))
		for i := range rv.Len() {
			writeFlex(d, rv.Index(i).Interface())
		}
	case reflect.Map:
		var sum uint64
		iter := rv.MapRange()
		for iter.Next() {
			sum += FlexHash([]any{iter.Key().Interface(), iter.Value().Interface()})
		}
		writeTagged(d, tagMapping, uint64(rv.Len()))
		writeTagged(d, tagMapping, sum)
	default:
		s := fmt.Sprintf("%T:%v", v, v)
		writeTagged(d, tagOther, uint64(len(s)))
		_, _ = d.WriteString(s)
	}
}
