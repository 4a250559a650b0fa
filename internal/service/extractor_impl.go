package service

import (
	"context"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"unicode"

	"github.com/compozy/headerver/internal/domain"
)

// whitespaceClass matches every character str.isspace() accepts, which is
// wider than RE2's \s: vertical tab, the information separators, NEL and
// the Unicode separator categories.
const whitespaceClass = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

// versionExtractor is the implementation of the VersionExtractor interface.
type versionExtractor struct {
	patterns map[domain.Field]*regexp.Regexp
}

// NewVersionExtractor creates a VersionExtractor matching "<prefix><FIELD> <digits>".
func NewVersionExtractor(prefix string) (VersionExtractor, error) {
	if err := sanitizePrefix(prefix); err != nil {
		return nil, err
	}
	patterns := make(map[domain.Field]*regexp.Regexp, len(domain.Fields))
	for _, field := range domain.Fields {
		expr := regexp.QuoteMeta(prefix+string(field)) + whitespaceClass + `+(\p{Nd}+)`
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern for %s: %w", field, err)
		}
		patterns[field] = re
	}
	return &versionExtractor{patterns: patterns}, nil
}

// sanitizePrefix validates the configured macro prefix.
func sanitizePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("macro prefix cannot be empty")
	}
	if len(prefix) > MaxMacroPrefixLength {
		return fmt.Errorf("macro prefix too long: maximum %d characters", MaxMacroPrefixLength)
	}
	return nil
}

// Extract searches content for each field in order; the first match per field wins.
func (e *versionExtractor) Extract(ctx context.Context, content string) (*domain.Components, error) {
	values := make([]*big.Int, 0, len(domain.Fields))
	for _, field := range domain.Fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		match := e.patterns[field].FindStringSubmatch(content)
		if match == nil {
			return nil, &domain.FieldNotFoundError{Field: field}
		}
		value, err := parseDecimal(match[1])
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", field, match[1], err)
		}
		values = append(values, value)
	}
	return domain.NewComponents(values[0], values[1], values[2]), nil
}

// parseDecimal parses a run of Unicode decimal digits into an unbounded integer.
func parseDecimal(digits string) (*big.Int, error) {
	var ascii strings.Builder
	ascii.Grow(len(digits))
	for _, r := range digits {
		d, ok := decimalDigit(r)
		if !ok {
			return nil, fmt.Errorf("not a decimal digit: %q", r)
		}
		ascii.WriteByte(byte('0' + d))
	}
	n, ok := new(big.Int).SetString(ascii.String(), 10)
	if !ok {
		return nil, fmt.Errorf("not a decimal number: %q", digits)
	}
	return n, nil
}

// decimalDigit returns the value of r. Every Nd range is a run of whole
// 0-9 blocks, so the value is the offset from the range start modulo 10.
func decimalDigit(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	for _, rng := range unicode.Nd.R16 {
		lo, hi := rune(rng.Lo), rune(rng.Hi)
		if r >= lo && r <= hi && rng.Stride == 1 {
			return int(r-lo) % 10, true
		}
	}
	for _, rng := range unicode.Nd.R32 {
		lo, hi := rune(rng.Lo), rune(rng.Hi)
		if r >= lo && r <= hi && rng.Stride == 1 {
			return int(r-lo) % 10, true
		}
	}
	return 0, false
}
