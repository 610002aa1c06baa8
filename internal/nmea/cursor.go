package nmea

import (
	"fmt"
	"strconv"
)

// cursor walks a sentence payload left to right. Typed decoders take whole
// fields; optional decoders leave the position untouched on a miss so the
// following delimiter check reports the precise offset of bad input.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(b []byte) *cursor { return &cursor{buf: b} }

func (c *cursor) eof() bool { return c.pos >= len(c.buf) }

func (c *cursor) rest() []byte { return c.buf[c.pos:] }

// comma consumes a mandatory field delimiter.
func (c *cursor) comma() error {
	if c.eof() || c.buf[c.pos] != ',' {
		return fmt.Errorf("%w: expected ',' at offset %d", ErrField, c.pos)
	}
	c.pos++
	return nil
}

// commaIfRest consumes a delimiter only when more payload follows; the last
// repeated block of a sentence carries no trailing comma.
func (c *cursor) commaIfRest() error {
	if c.eof() {
		return nil
	}
	return c.comma()
}

// peekField returns the bytes up to the next delimiter without consuming.
func (c *cursor) peekField() []byte {
	end := c.pos
	for end < len(c.buf) && c.buf[end] != ',' {
		end++
	}
	return c.buf[c.pos:end]
}

// field consumes and returns the bytes up to the next delimiter. The
// delimiter itself stays.
func (c *cursor) field() []byte {
	f := c.peekField()
	c.pos += len(f)
	return f
}

// takeFixed consumes exactly n bytes.
func (c *cursor) takeFixed(n int) ([]byte, error) {
	if c.pos+n > len(c.buf) {
		return nil, fmt.Errorf("%w: truncated field at offset %d", ErrField, c.pos)
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// oneOf consumes a single byte that must be in set.
func (c *cursor) oneOf(set string) (byte, error) {
	if !c.eof() {
		b := c.buf[c.pos]
		for i := 0; i < len(set); i++ {
			if set[i] == b {
				c.pos++
				return b, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: expected one of %q at offset %d", ErrField, set, c.pos)
}

// optByte consumes ch when it is next.
func (c *cursor) optByte(ch byte) bool {
	if !c.eof() && c.buf[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

// optUint decodes the next field as an unsigned decimal integer. An empty
// field is absence; a field with any non-digit byte is left unconsumed.
func (c *cursor) optUint() *int {
	f := c.peekField()
	if len(f) == 0 || !allDigits(f) {
		return nil
	}
	v, err := strconv.Atoi(string(f))
	if err != nil {
		return nil
	}
	c.pos += len(f)
	return &v
}

// reqUint decodes the next field as a mandatory unsigned decimal integer.
func (c *cursor) reqUint() (int, error) {
	f := c.peekField()
	if len(f) == 0 || !allDigits(f) {
		return 0, fmt.Errorf("%w: expected number at offset %d", ErrField, c.pos)
	}
	v, err := strconv.Atoi(string(f))
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q", ErrField, f)
	}
	c.pos += len(f)
	return v, nil
}

// optFloat decodes the next field as a floating-point number. An empty
// field is absence; an unparseable field is left unconsumed.
func (c *cursor) optFloat() *float64 {
	f := c.peekField()
	if len(f) == 0 {
		return nil
	}
	v, err := strconv.ParseFloat(string(f), 64)
	if err != nil {
		return nil
	}
	c.pos += len(f)
	return &v
}

// reqFloat decodes the next field as a mandatory floating-point number.
func (c *cursor) reqFloat() (float64, error) {
	f := c.peekField()
	if len(f) == 0 {
		return 0, fmt.Errorf("%w: expected number at offset %d", ErrField, c.pos)
	}
	v, err := strconv.ParseFloat(string(f), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad number %q", ErrField, f)
	}
	c.pos += len(f)
	return v, nil
}

func allDigits(b []byte) bool {
	for _, x := range b {
		if x < '0' || x > '9' {
			return false
		}
	}
	return true
}

func allCommas(b []byte) bool {
	for _, x := range b {
		if x != ',' {
			return false
		}
	}
	return true
}
