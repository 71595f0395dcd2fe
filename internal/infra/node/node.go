package node

import (
	"net"
	"os"
	"sync"

	"github.com/google/uuid"
)

// Set at build time with -ldflags "-X customfields-server/internal/infra/node.Version=...".
var (
	Version    = "development"
	CommitHash = "unknown"
)

const _loopback = "127.0.0.1"

// Info identifies the running server instance in logs and telemetry.
type Info struct {
	ID         string
	Hostname   string
	IPAddress  string
	Version    string
	CommitHash string
}

var (
	current     Info
	currentOnce sync.Once
)

// Current returns the process-wide node information. The ID is generated
// once per process.
func Current() Info {
	currentOnce.Do(func() {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}
		current = Info{
			ID:         uuid.NewString(),
			Hostname:   hostname,
			IPAddress:  firstPrivateAddress(),
			Version:    Version,
			CommitHash: CommitHash,
		}
	})
	return current
}

func firstPrivateAddress() string {
	addresses, err := net.InterfaceAddrs()
	if err != nil {
		return _loopback
	}

	for _, address := range addresses {
		ipNet, ok := address.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if ip := ipNet.IP.To4(); ip != nil {
			return ip.String()
		}
	}
	return _loopback
}
