package share

import (
	"fmt"
	"os"

	"github.com/hashicorp/mdns"
)

const serviceType = "_localpaint._tcp"

// advertise announces the live view on the local network.
func advertise(port int, id string) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	info := []string{"LocalPaint", "id=" + id, "path=/ws"}
	service, err := mdns.NewMDNSService(host, serviceType, "", "", port, nil, info)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}
