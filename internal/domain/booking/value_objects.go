package booking

import (
	"crypto/rand"
	"strings"
	"unicode/utf8"

	"physio-scheduler/internal/pkg/errs"
)

var (
	ErrInvalidReference = errs.New("invalid booking reference")
	ErrNegativeAmount   = errs.New("amount cannot be negative")
	ErrNoteTooLong      = errs.New("note is too long")
)

const (
	ReferencePrefix = "PHY-"
	referenceLength = 8
	// no 0/O or 1/I/L
	referenceAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"
	MaxNoteLength     = 1000
)

// Reference is the human-facing booking code.
type Reference string

func NewReference() (Reference, error) {
	buf := make([]byte, referenceLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "generate booking reference")
	}
	var sb strings.Builder
	sb.WriteString(ReferencePrefix)
	for _, b := range buf {
		sb.WriteByte(referenceAlphabet[int(b)%len(referenceAlphabet)])
	}
	return Reference(sb.String()), nil
}

func ParseReference(s string) (Reference, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(v, ReferencePrefix) || len(v) != len(ReferencePrefix)+referenceLength {
		return "", errs.MarkAll(errs.Newf("reference %q", s), ErrInvalidReference, errs.ErrValidation)
	}
	for _, r := range v[len(ReferencePrefix):] {
		if !strings.ContainsRune(referenceAlphabet, r) {
			return "", errs.MarkAll(errs.Newf("reference %q", s), ErrInvalidReference, errs.ErrValidation)
		}
	}
	return Reference(v), nil
}

func (r Reference) String() string { return string(r) }

// Money is an amount in the currency's minor unit.
type Money struct {
	cents    int64
	currency string
}

func NewMoney(cents int64, currency string) (Money, error) {
	if cents < 0 {
		return Money{}, errs.MarkAll(errs.Newf("amount %d", cents), ErrNegativeAmount, errs.ErrValidation)
	}
	return Money{cents: cents, currency: strings.ToLower(currency)}, nil
}

func (m Money) Cents() int64     { return m.cents }
func (m Money) Currency() string { return m.currency }

type Note struct {
	value string
}

func NewNote(s string) (Note, error) {
	v := strings.TrimSpace(s)
	if utf8.RuneCountInString(v) > MaxNoteLength {
		return Note{}, errs.MarkAll(errs.Newf("note has %d characters", utf8.RuneCountInString(v)), ErrNoteTooLong, errs.ErrValidation)
	}
	return Note{value: v}, nil
}

func (n Note) String() string { return n.value }
