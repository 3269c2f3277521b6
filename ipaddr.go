package simdparse

import (
	"bytes"
	"net/netip"
)

// IPv4Addr is an IPv4 address in network byte order. Parsing and formatting
// delegate to net/netip; the family is strict, so an IPv6 string never
// parses as IPv4.
type IPv4Addr [4]byte

// ParseIPv4Addr decodes dotted-quad notation.
func ParseIPv4Addr(text []byte) (IPv4Addr, bool) {
	var a IPv4Addr
	ok := a.parse(text)
	return a, ok
}

func (a *IPv4Addr) displayName() string { return "IPv4 address" }

func (a *IPv4Addr) parse(text []byte) bool {
	addr, err := netip.ParseAddr(string(text))
	if err != nil || !addr.Is4() {
		return false
	}
	*a = addr.As4()
	return true
}

func (a IPv4Addr) String() string { return netip.AddrFrom4(a).String() }

func (a IPv4Addr) Compare(op IPv4Addr) int { return bytes.Compare(a[:], op[:]) }

// IPv6Addr is an IPv6 address in network byte order. IPv4-mapped notation
// (::ffff:a.b.c.d) parses into the mapped 16-byte form; zone suffixes are
// rejected.
type IPv6Addr [16]byte

// ParseIPv6Addr decodes RFC 4291 text notation.
func ParseIPv6Addr(text []byte) (IPv6Addr, bool) {
	var a IPv6Addr
	ok := a.parse(text)
	return a, ok
}

func (a *IPv6Addr) displayName() string { return "IPv6 address" }

func (a *IPv6Addr) parse(text []byte) bool {
	addr, err := netip.ParseAddr(string(text))
	if err != nil || !addr.Is6() || addr.Zone() != "" {
		return false
	}
	*a = addr.As16()
	return true
}

func (a IPv6Addr) String() string { return netip.AddrFrom16(a).String() }

func (a IPv6Addr) Compare(op IPv6Addr) int { return bytes.Compare(a[:], op[:]) }
