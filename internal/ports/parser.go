package ports

import (
	"strings"

	"github.com/pkg/errors"
)

// DefaultProtocol is appended to entries that do not name a protocol.
const DefaultProtocol = "tcp"

// AllowedProtocols lists the protocols accepted by Validate.
var AllowedProtocols = []string{"tcp", "udp"}

var (
	// ErrUnsupportedProtocol is returned by Validate for a protocol outside AllowedProtocols.
	ErrUnsupportedProtocol = errors.New("unsupported protocol")

	// ErrEmptyPort is returned by Validate for an entry without a port.
	ErrEmptyPort = errors.New("empty port")
)

// Parse splits a comma-separated port list into "port/protocol" entries.
// Entries without a "/" get DefaultProtocol, the rest are kept unchanged.
// Order is preserved and an empty input yields a single empty entry.
func Parse(raw string) []string {
	entries := strings.Split(raw, ",")
	parsed := make([]string, 0, len(entries))

	for _, entry := range entries {
		// Empty entries stay empty so Validate can report them.
		if entry != "" && !strings.Contains(entry, "/") {
			entry = entry + "/" + DefaultProtocol
		}
		parsed = append(parsed, entry)
	}

	return parsed
}

// Split returns the port and protocol parts of a parsed entry.
func Split(entry string) (port, protocol string) {
	parts := strings.Split(entry, "/")
	port = parts[0]
	if len(parts) > 1 {
		protocol = parts[1]
	}
	return port, protocol
}

// Validate checks that every parsed entry has a port and an allowed protocol.
func Validate(entries []string) error {
	for _, entry := range entries {
		port, protocol := Split(entry)

		if strings.TrimSpace(port) == "" {
			return errors.Wrapf(ErrEmptyPort, "entry %q", entry)
		}

		if !isAllowed(protocol) {
			return errors.Wrapf(ErrUnsupportedProtocol, "%q in entry %q (must be one of: %s)",
				protocol, entry, strings.Join(AllowedProtocols, ", "))
		}
	}

	return nil
}

func isAllowed(protocol string) bool {
	for _, p := range AllowedProtocols {
		if p == protocol {
			return true
		}
	}
	return false
}
