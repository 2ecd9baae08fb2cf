// Package addrseq exposes a contiguous range of IP addresses as a random
// access sequence of netip.Addr.
package addrseq

import (
	"fmt"
	"math"
	"math/big"
	"net/netip"

	"github.com/henderiw/iterrange/pkg/iterator"
	"github.com/henderiw/iterrange/pkg/rangeview"
	"github.com/pkg/errors"
	"go4.org/netipx"
)

type AddrRange struct {
	ipRange netipx.IPRange
	size    int
}

// New returns the sequence from..to, both inclusive.
func New(from, to netip.Addr) (*AddrRange, error) {
	return FromIPRange(netipx.IPRangeFrom(from, to))
}

// Parse accepts "from-to" or a prefix such as "10.0.0.0/24".
func Parse(s string) (*AddrRange, error) {
	ipRange, err := netipx.ParseIPRange(s)
	if err != nil {
		prefix, perr := netip.ParsePrefix(s)
		if perr != nil {
			return nil, errors.Wrapf(err, "invalid address range %q", s)
		}
		ipRange = netipx.RangeOfPrefix(prefix)
	}
	return FromIPRange(ipRange)
}

func FromIPRange(ipRange netipx.IPRange) (*AddrRange, error) {
	if !ipRange.IsValid() {
		return nil, errors.Errorf("invalid address range from %s to %s", ipRange.From(), ipRange.To())
	}
	n := numIPs(ipRange.From(), ipRange.To())
	if !n.IsInt64() || n.Int64() > math.MaxInt {
		return nil, errors.Errorf("address range %s holds %s addresses, more than can be indexed", ipRange, n)
	}
	return &AddrRange{
		ipRange: ipRange,
		size:    int(n.Int64()),
	}, nil
}

func (r *AddrRange) IPRange() netipx.IPRange { return r.ipRange }
func (r *AddrRange) Size() int               { return r.size }
func (r *AddrRange) Empty() bool             { return r.size == 0 }

func (r *AddrRange) Begin() iterator.Iterator[netip.Addr] {
	return pos{from: r.ipRange.From(), addr: r.ipRange.From()}
}

// End is the position past To. Its address is not valid when To is the last
// address of the family.
func (r *AddrRange) End() iterator.Iterator[netip.Addr] {
	return pos{from: r.ipRange.From(), addr: r.ipRange.To().Next(), idx: r.size}
}

func (r *AddrRange) Contains(addr netip.Addr) bool {
	return r.ipRange.Contains(addr)
}

// Index returns the offset of addr from the start of the range.
func (r *AddrRange) Index(addr string) (int, error) {
	ip, err := r.validateIP(addr)
	if err != nil {
		return 0, err
	}
	return int(calculateIndex(ip, r.ipRange.From())), nil
}

func (r *AddrRange) validateIP(addr string) (netip.Addr, error) {
	ip, err := netip.ParseAddr(addr)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("ip address %s is invalid", addr)
	}
	if !r.ipRange.Contains(ip) {
		return netip.Addr{}, fmt.Errorf("ip address %s, does not fit in the range from %s to %s", addr, r.ipRange.From().String(), r.ipRange.To().String())
	}
	return ip, nil
}

// ToIPRange converts a non empty view of addresses back to an IPRange.
func ToIPRange(rv rangeview.Range[netip.Addr]) netipx.IPRange {
	if rv.Empty() {
		return netipx.IPRange{}
	}
	return netipx.IPRangeFrom(rangeview.Front[netip.Addr](rv), rangeview.Back[netip.Addr](rv))
}

// Split divides the range into n address pools of near equal size. Pools
// that would be empty, when n exceeds the size, are left out.
func (r *AddrRange) Split(n int) ([]netipx.IPRange, error) {
	parts, err := rangeview.Divide[netip.Addr](r, n)
	if err != nil {
		return nil, errors.Wrapf(err, "split %s", r.ipRange)
	}
	pools := make([]netipx.IPRange, 0, len(parts))
	for _, part := range parts {
		if part.Empty() {
			continue
		}
		pools = append(pools, ToIPRange(part))
	}
	return pools, nil
}

type pos struct {
	from netip.Addr
	addr netip.Addr
	idx  int
}

func (r pos) Get() netip.Addr { return r.addr }

func (r pos) Next() iterator.Iterator[netip.Addr] {
	r.addr = r.addr.Next()
	r.idx++
	return r
}

func (r pos) Prev() iterator.Iterator[netip.Addr] {
	r.idx--
	r.addr = calculateIPFromIndex(r.from, int64(r.idx))
	return r
}

func (r pos) Advance(n int) iterator.Iterator[netip.Addr] {
	r.idx += n
	r.addr = calculateIPFromIndex(r.from, int64(r.idx))
	return r
}

func (r pos) Distance(to iterator.Iterator[netip.Addr]) int {
	return to.(pos).idx - r.idx
}

func (r pos) Equal(other iterator.Iterator[netip.Addr]) bool {
	o, ok := other.(pos)
	return ok && o.idx == r.idx
}

func calculateIndex(ip, start netip.Addr) int64 {
	return new(big.Int).Sub(ipToInt(ip), ipToInt(start)).Int64()
}

func numIPs(startIP, endIP netip.Addr) *big.Int {
	diff := new(big.Int).Sub(ipToInt(endIP), ipToInt(startIP))
	return diff.Add(diff, big.NewInt(1))
}

func ipToInt(ip netip.Addr) *big.Int {
	bytes := ip.As16()
	return new(big.Int).SetBytes(bytes[:])
}

func calculateIPFromIndex(startIP netip.Addr, id int64) netip.Addr {
	ipInt := new(big.Int).Add(ipToInt(startIP), big.NewInt(id))
	ipBytes := ipInt.Bytes()
	if len(ipBytes) > 16 {
		// past the end of the address family
		return netip.Addr{}
	}

	var ip16 [16]byte
	copy(ip16[16-len(ipBytes):], ipBytes)

	addr := netip.AddrFrom16(ip16)
	if startIP.Is4() {
		if !addr.Is4In6() {
			return netip.Addr{}
		}
		return netip.AddrFrom4(addr.As4())
	}
	return addr
}
