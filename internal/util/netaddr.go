package util

import "net"

// LocalIP 返回本机第一个非回环 IPv4 地址
// 用于生成手机扫描端可访问的局域网地址，找不到时退回 localhost
func LocalIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "localhost"
	}

	for _, addr := range addrs {
		ipNet, ok := addr.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipNet.IP.To4(); ip4 != nil {
			return ip4.String()
		}
	}

	return "localhost"
}
