package config

import (
	"net"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// DaemonConf holds the RPC settings found in a daemon conf file such as
// VRSC.conf. Absent keys are left zero.
type DaemonConf struct {
	RPCUser     string
	RPCPassword string
	RPCPort     int
	RPCHost     string
}

// LoadDaemonConf reads the key=value conf file at path.
func LoadDaemonConf(path string) (*DaemonConf, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("properties")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading daemon conf %s", path)
	}

	dc := &DaemonConf{
		RPCUser:     strings.TrimSpace(v.GetString("rpcuser")),
		RPCPassword: strings.TrimSpace(v.GetString("rpcpassword")),
	}

	if v.IsSet("rpcport") {
		port := v.GetInt("rpcport")
		if port <= 0 || port > 65535 {
			return nil, errors.Wrapf(ErrInvalidPort{Port: port}, "daemon conf %s", path)
		}
		dc.RPCPort = port
	}

	for _, key := range []string{"rpcconnect", "rpchost", "rpcbind"} {
		if host := connectableHost(v.GetString(key)); host != "" {
			dc.RPCHost = host
			break
		}
	}

	return dc, nil
}

// connectableHost strips an optional port from addr and drops wildcard
// addresses, which a daemon can bind to but a client cannot dial.
func connectableHost(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	if ip := net.ParseIP(addr); ip != nil && ip.IsUnspecified() {
		return ""
	}
	return addr
}
