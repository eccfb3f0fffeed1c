package domain

// numberHashMask is XORed onto every hash produced by the decimal fast path.
// The generic path deliberately omits it; the two paths live on different
// numeric scales and their outputs must not be conflated.
const numberHashMask uint32 = 0x55555555

// hashUnits picks the hash algorithm by scanning the units. While every unit
// is an ASCII digit it folds them into a running decimal value; the first
// non-digit abandons that accumulation and rehashes the whole sequence with
// the generic scheme. All arithmetic wraps in uint32.
func hashUnits(units []uint16) uint32 {
	var acc uint32
	for _, u := range units {
		if u < '0' || u > '9' {
			return genericHash(units)
		}
		acc = acc*10 + uint32(u-'0')
	}
	return acc ^ numberHashMask
}

// genericHash processes the units two at a time, packed little-endian into a
// 32-bit word, with h = h*9 + chunk per step. A trailing odd unit is folded
// with only its own 16 bits.
func genericHash(units []uint16) uint32 {
	var h uint32
	i := 0
	for ; i+1 < len(units); i += 2 {
		h = h*9 + (uint32(units[i+1])<<16 | uint32(units[i]))
	}
	if i < len(units) {
		h = h*9 + uint32(units[i])
	}
	return h
}
