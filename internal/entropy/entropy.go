package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tarm/serial"

	"github.com/arcanaland/bj21/internal/config"
)

// ErrUnavailable marks every failure to obtain bytes from the entropy source.
// Callers must not substitute a non-cryptographic generator when they see it.
var ErrUnavailable = errors.New("entropy source unavailable")

// Uint32 draws 4 bytes from r and interprets them as a big-endian unsigned integer
func Uint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

type nopCloser struct{ io.Reader }

func (nopCloser) Close() error { return nil }

// Open returns the byte stream selected by cfg and verifies it with HealthCheck.
// The returned stream must be closed by the caller.
func Open(cfg config.Entropy) (io.ReadCloser, error) {
	var rc io.ReadCloser

	switch cfg.Source {
	case config.SourceOS, "":
		rc = nopCloser{rand.Reader}
	case config.SourceFile:
		f, err := os.Open(cfg.Device)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		rc = f
	case config.SourceSerial:
		p, err := openSerial(cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		rc = p
	default:
		return nil, fmt.Errorf("unknown entropy source: %q", cfg.Source)
	}

	if err := HealthCheck(rc); err != nil {
		rc.Close()
		return nil, err
	}

	return rc, nil
}

// openSerial opens a hardware RNG attached to a serial port
func openSerial(cfg config.Entropy) (*serial.Port, error) {
	return serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		Size:        8, // Hard coded by the library
		ReadTimeout: time.Duration(cfg.ReadTimeoutMs) * time.Millisecond,
	})
}
