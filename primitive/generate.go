package primitive

import (
	"encoding/binary"
	"math/rand/v2"
	"reflect"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"

	"value-synth/utils"
)

// DefaultAlphabet is the alphanumeric alphabet used for runes and strings.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// decimalBound limits the coefficient of generated decimals to (-decimalBound, decimalBound).
const decimalBound = 1_000_000

// Entropy is a seeded random source that can also act as an io.Reader,
// which is what uuid generation consumes.
type Entropy struct {
	*rand.Rand
	stream *rand.ChaCha8
}

// NewEntropy creates a deterministic source for the given seed.
func NewEntropy(seed uint64) *Entropy {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)

	stream := rand.NewChaCha8(key)

	return &Entropy{Rand: rand.New(stream), stream: stream}
}

// Read fills p with random bytes from the same stream numbers are drawn from.
func (e *Entropy) Read(p []byte) (int, error) {
	return e.stream.Read(p)
}

// Ranges bounds every primitive draw. Intervals are half-open: [Min, Max).
type Ranges struct {
	IntMin, IntMax             int64
	FloatMin, FloatMax         float64
	StringMinLen, StringMaxLen int
	Alphabet                   []rune
	TimeMin, TimeMax           time.Time
	DurationMax                time.Duration
	DecimalScale               int32 // digits after the decimal point
}

func DefaultRanges() Ranges {
	return Ranges{
		IntMin:       -10000,
		IntMax:       10000,
		FloatMin:     -10000,
		FloatMax:     10000,
		StringMinLen: 8,
		StringMaxLen: 24,
		Alphabet:     []rune(DefaultAlphabet),
		TimeMin:      time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		TimeMax:      time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC),
		DurationMax:  24 * time.Hour,
		DecimalScale: 2,
	}
}

// Generate draws a random value of rtype. It reports false when rtype is not
// one of the seeded primitive types, or when the configured integer interval
// holds no value rtype can represent.
func Generate(rtype reflect.Type, e *Entropy, rg Ranges) (reflect.Value, bool) {
	alphabet := rg.Alphabet
	if len(alphabet) == 0 {
		alphabet = []rune(DefaultAlphabet)
	}

	kind := FromReflectType(rtype)
	out := reflect.New(rtype).Elem()

	switch {
	default:
		return reflect.Value{}, false

	case kind == KindInt32: // rune
		out.SetInt(int64(alphabet[e.IntN(len(alphabet))]))

	case kind == KindDuration:
		out.SetInt(int64Between(e, 0, int64(rg.DurationMax)))

	case kind.IsSigned():
		lo, hi, ok := signedBounds(kind, rg)
		if !ok {
			return reflect.Value{}, false
		}
		out.SetInt(int64Between(e, lo, hi))

	case kind.IsUnsigned():
		lo, hi, ok := unsignedBounds(kind, rg)
		if !ok {
			return reflect.Value{}, false
		}
		out.SetUint(lo + e.Uint64N(hi-lo))

	case kind.IsFloat():
		out.SetFloat(rg.FloatMin + e.Float64()*(rg.FloatMax-rg.FloatMin))

	case kind == KindBool:
		out.SetBool(e.IntN(2) == 1)

	case kind == KindString:
		n := utils.IntBetween(e, rg.StringMinLen, rg.StringMaxLen)
		out.SetString(utils.RandomString(e, n, alphabet))

	case kind == KindTime:
		span := int64(rg.TimeMax.Sub(rg.TimeMin))
		out.Set(reflect.ValueOf(rg.TimeMin.Add(time.Duration(int64Between(e, 0, span)))))

	case kind == KindUUID:
		id, err := uuid.NewRandomFromReader(e)
		if err != nil {
			return reflect.Value{}, false
		}
		out.Set(reflect.ValueOf(id))

	case kind == KindDecimal:
		coeff := int64Between(e, -decimalBound+1, decimalBound)
		out.Set(reflect.ValueOf(*apd.New(coeff, -rg.DecimalScale)))
	}

	return out, true
}

// int64Between draws from [lo, hi). The span is taken unsigned so that the
// whole int64 range fits.
func int64Between(e *Entropy, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}

	return lo + int64(e.Uint64N(uint64(hi)-uint64(lo)))
}

// signedBounds narrows the configured interval to what kind can hold and
// reports whether anything is left.
func signedBounds(kind KindEnum, rg Ranges) (lo, hi int64, ok bool) {
	lo, hi = rg.IntMin, rg.IntMax
	if bits := kind.Bits(); bits < 64 {
		lo = max(lo, -(int64(1) << (bits - 1)))
		hi = min(hi, int64(1)<<(bits-1))
	}

	return lo, hi, lo < hi
}

func unsignedBounds(kind KindEnum, rg Ranges) (lo, hi uint64, ok bool) {
	lo, hi = uint64(max(rg.IntMin, 0)), uint64(max(rg.IntMax, 0))
	if bits := kind.Bits(); bits < 64 {
		hi = min(hi, uint64(1)<<bits)
	}

	return lo, hi, lo < hi
}
