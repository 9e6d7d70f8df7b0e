// Package rle implements a run-length text codec.
//
// Each run of identical runes is written as its decimal count followed by the
// rune: "aaabcc" encodes to "3a1b2c". The format has no escaping, so text
// containing decimal digits cannot be round-tripped. Text must be valid UTF-8.
package rle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/constraints"
)

// MaxDecodedLen bounds the size of a decoded string, in bytes.
const MaxDecodedLen = 1 << 30

var (
	ErrMissingCount = errors.New("rle: missing run count")
	ErrMissingRune  = errors.New("rle: missing run character")
	ErrInvalidCount = errors.New("rle: invalid run count")
	ErrTooLong      = errors.New("rle: decoded text too long")
	ErrInvalidRune  = errors.New("rle: invalid UTF-8 run character")
)

// Run is a sequence of Count consecutive copies of Rune
type Run struct {
	Rune  rune
	Count int
}

// Runs splits text into maximal runs of identical runes.
func Runs(text string) []Run {
	var runs []Run
	for _, r := range text {
		if n := len(runs); n > 0 && runs[n-1].Rune == r {
			runs[n-1].Count++
			continue
		}
		runs = append(runs, Run{Rune: r, Count: 1})
	}
	return runs
}

func numDigits[T constraints.Integer](number T) int {
	digits := 0
	for number != 0 {
		number /= 10
		digits++
	}
	return digits
}

// EncodedLen returns the byte length of the encoded form of runs.
func EncodedLen(runs []Run) int {
	size := 0
	for _, run := range runs {
		size += numDigits(run.Count) + utf8.RuneLen(run.Rune)
	}
	return size
}

// DecodedLen returns the byte length of the text described by runs.
func DecodedLen(runs []Run) int {
	size := 0
	for _, run := range runs {
		size += run.Count * utf8.RuneLen(run.Rune)
	}
	return size
}

// Encode returns the run-length encoding of text. The empty string encodes to itself.
func Encode(text string) string {
	runs := Runs(text)

	var encoded strings.Builder
	encoded.Grow(EncodedLen(runs))
	for _, run := range runs {
		encoded.WriteString(strconv.Itoa(run.Count))
		encoded.WriteRune(run.Rune)
	}
	return encoded.String()
}

// parse reads the <count><rune> pairs of an encoded string
func parse(encoded string) ([]Run, error) {
	var runs []Run
	total := 0

	for offset := 0; offset < len(encoded); {
		end := offset
		for end < len(encoded) && encoded[end] >= '0' && encoded[end] <= '9' {
			end++
		}
		if end == offset {
			return nil, fmt.Errorf("%w at offset %d", ErrMissingCount, offset)
		}

		count, err := strconv.Atoi(encoded[offset:end])
		if err != nil {
			return nil, fmt.Errorf("%w at offset %d: %v", ErrInvalidCount, offset, err)
		}
		if end == len(encoded) {
			return nil, fmt.Errorf("%w at offset %d", ErrMissingRune, end)
		}

		r, size := utf8.DecodeRuneInString(encoded[end:])
		if r == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("%w at offset %d", ErrInvalidRune, end)
		}
		// Cap on the bytes Decode writes, not the bytes read
		runeLen := utf8.RuneLen(r)
		if count > (MaxDecodedLen-total)/runeLen {
			return nil, fmt.Errorf("%w: run at offset %d exceeds %d bytes", ErrTooLong, offset, MaxDecodedLen)
		}
		total += count * runeLen

		runs = append(runs, Run{Rune: r, Count: count})
		offset = end + size
	}

	return runs, nil
}

// Decode reverses Encode. The empty string decodes to itself.
func Decode(encoded string) (string, error) {
	runs, err := parse(encoded)
	if err != nil {
		return "", err
	}

	var decoded strings.Builder
	decoded.Grow(DecodedLen(runs))
	for _, run := range runs {
		for i := 0; i < run.Count; i++ {
			decoded.WriteRune(run.Rune)
		}
	}
	return decoded.String(), nil
}
