package share

import (
	"fmt"
	"log"
	"net"
	"strconv"
)

// Link is the address viewers open to watch the canvas.
func Link(port int) string {
	return fmt.Sprintf("http://%s/snapshot.png", net.JoinHostPort(viewerIP(), strconv.Itoa(port)))
}

// viewerIP picks the address other machines on the LAN can reach this host
// at: the source address of the default route, else the first non-loopback
// IPv4 interface address, else loopback.
func viewerIP() string {
	if conn, err := net.Dial("udp", "8.8.8.8:80"); err == nil {
		defer conn.Close()
		if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
			return addr.IP.String()
		}
	}

	addrs, err := net.InterfaceAddrs()
	if err != nil {
		log.Printf("[SHARE] Could not list interface addresses: %v", err)
		return "127.0.0.1"
	}
	if ip := firstLANv4(addrs); ip != nil {
		return ip.String()
	}
	log.Println("[SHARE] No suitable local IP found, using loopback")
	return "127.0.0.1"
}

func firstLANv4(addrs []net.Addr) net.IP {
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() {
			continue
		}
		if v4 := ipnet.IP.To4(); v4 != nil {
			return v4
		}
	}
	return nil
}
