package idcard

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/superutils/pkg/logger"
)

const (
	legacyLength  = 15
	currentLength = 18

	minBirthYear = 1900
	dateLayout   = "20060102"
)

// Option configures a Parser.
type Option func(*Parser)

// WithNow overrides the clock used for the upper bound of the birth year.
// Nil functions are ignored.
func WithNow(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// WithLogger sets the logger used to report rejected numbers at debug level.
// Numbers are always masked in log output. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// Parser validates and decodes identity numbers.
// It holds no mutable state and is safe for concurrent use.
type Parser struct {
	now    func() time.Time
	logger *slog.Logger
}

// New creates a Parser. Without options it uses time.Now and discards logs.
func New(opts ...Option) *Parser {
	p := &Parser{
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = New()

// Parse validates number with the default parser and decodes it.
func Parse(number string) (Identity, error) {
	return defaultParser.Parse(number)
}

// Validate reports why number is not a valid identity number, or nil.
func Validate(number string) error {
	return defaultParser.Validate(number)
}

// IsValid reports whether number is a valid 15 or 18 character identity number.
func IsValid(number string) bool {
	return defaultParser.IsValid(number)
}

// Validate returns the sentinel error for the first failed check, or nil.
func (p *Parser) Validate(number string) error {
	_, err := p.Parse(number)
	return err
}

// IsValid reports whether number passes every check.
func (p *Parser) IsValid(number string) bool {
	return p.Validate(number) == nil
}

// Parse runs the checks in order and stops at the first failure:
// length, region code, birth year, month, day, calendar date and,
// for 18-character numbers, the check digit.
func (p *Parser) Parse(number string) (Identity, error) {
	id, err := p.parse(number)
	if err != nil {
		p.logger.Debug("identity number rejected",
			logger.NationalID(number),
			logger.Error(err),
		)
		return Identity{}, err
	}
	return id, nil
}

func (p *Parser) parse(number string) (Identity, error) {
	legacy := len(number) == legacyLength
	if !legacy && len(number) != currentLength {
		return Identity{}, ErrInvalidLength
	}

	region, ok := atoi(number[0:2])
	if !ok {
		return Identity{}, fmt.Errorf("%w: region code", ErrInvalidFormat)
	}
	regionName, ok := regions[region]
	if !ok {
		return Identity{}, ErrUnknownRegion
	}

	var year, month, day string
	if legacy {
		year, month, day = "19"+number[6:8], number[8:10], number[10:12]
	} else {
		year, month, day = number[6:10], number[10:12], number[12:14]
	}

	y, ok := atoi(year)
	if !ok {
		return Identity{}, fmt.Errorf("%w: birth year", ErrInvalidFormat)
	}
	if y < minBirthYear || y > p.now().Year() {
		return Identity{}, ErrInvalidYear
	}

	m, ok := atoi(month)
	if !ok {
		return Identity{}, fmt.Errorf("%w: birth month", ErrInvalidFormat)
	}
	if m < 1 || m > 12 {
		return Identity{}, ErrInvalidMonth
	}

	d, ok := atoi(day)
	if !ok {
		return Identity{}, fmt.Errorf("%w: birth day", ErrInvalidFormat)
	}
	if d < 1 || d > 31 {
		return Identity{}, ErrInvalidDay
	}

	birthdate, err := parseDate(year + month + day)
	if err != nil {
		return Identity{}, err
	}

	var sequence byte
	if legacy {
		for i := range legacyLength - 1 {
			if !isDigit(number[i]) {
				return Identity{}, ErrInvalidFormat
			}
		}
		// The last legacy position may also be 'X'.
		last := toUpperASCII(number[legacyLength-1])
		if !isDigit(last) && last != 'X' {
			return Identity{}, ErrInvalidFormat
		}
		number = number[:legacyLength-1] + string(last)
		sequence = last
	} else {
		expected, err := CheckDigit(number[:17])
		if err != nil {
			return Identity{}, err
		}
		if toUpperASCII(number[17]) != expected {
			return Identity{}, ErrChecksumMismatch
		}
		number = number[:17] + string(expected)
		sequence = number[16]
	}

	gender := GenderUnknown
	if isDigit(sequence) {
		gender = GenderFemale
		if (sequence-'0')%2 == 1 {
			gender = GenderMale
		}
	}

	return Identity{
		Number:     number,
		Region:     region,
		RegionName: regionName,
		Birthdate:  birthdate,
		Gender:     gender,
		Legacy:     legacy,
	}, nil
}

// parseDate strictly parses an 8-character yyyyMMdd string.
func parseDate(s string) (time.Time, error) {
	if len(s) != len(dateLayout) {
		return time.Time{}, ErrInvalidDate
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	return t, nil
}

// atoi parses a non-empty string of ASCII digits. Signs and spaces are rejected.
func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := range len(s) {
		if !isDigit(s[i]) {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}
