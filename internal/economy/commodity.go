// Package economy provides commodities, station markets, and the elastic pricing model.
package economy

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Commodity enumerates the tradeable goods.
type Commodity uint8

const (
	Food       Commodity = iota // Staple, needed everywhere
	Minerals                    // Raw ore from mining colonies
	Technology                  // Manufactured components
	Medicine                    // Research station output
	Luxuries                    // High value, low volume
	Fuel                        // Cheap, bulky
)

// NumCommodities is the total number of commodity types.
const NumCommodities = 6

// AllCommodities lists every commodity in canonical order. Every loop over
// commodities uses this order so agent behaviour is reproducible.
var AllCommodities = [NumCommodities]Commodity{Food, Minerals, Technology, Medicine, Luxuries, Fuel}

// String returns the display name of the commodity.
func (c Commodity) String() string {
	switch c {
	case Food:
		return "Food"
	case Minerals:
		return "Minerals"
	case Technology:
		return "Technology"
	case Medicine:
		return "Medicine"
	case Luxuries:
		return "Luxuries"
	case Fuel:
		return "Fuel"
	}
	return fmt.Sprintf("Commodity(%d)", uint8(c))
}

// Valid reports whether c is one of the known commodities.
func (c Commodity) Valid() bool {
	return c < NumCommodities
}

// BasePrice returns the fixed reference price of a commodity. Market prices
// are always held within [0.5, 2.0] × BasePrice.
func BasePrice(c Commodity) float64 {
	switch c {
	case Food:
		return 100
	case Minerals:
		return 150
	case Technology:
		return 500
	case Medicine:
		return 300
	case Luxuries:
		return 800
	case Fuel:
		return 80
	}
	panic(fmt.Sprintf("economy: no base price for %v", c))
}

// ParseCommodity resolves a commodity from its name (case-insensitive, prefix
// match allowed when unambiguous) or its 1-based menu number.
func ParseCommodity(s string) (Commodity, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty commodity")
	}
	if len(s) == 1 && s[0] >= '1' && s[0] <= '0'+NumCommodities {
		return Commodity(s[0] - '1'), nil
	}

	var match Commodity
	found := 0
	for _, c := range AllCommodities {
		name := strings.ToLower(c.String())
		if name == s {
			return c, nil
		}
		if strings.HasPrefix(name, s) {
			match = c
			found++
		}
	}
	switch found {
	case 1:
		return match, nil
	case 0:
		return 0, fmt.Errorf("unknown commodity %q", s)
	default:
		return 0, fmt.Errorf("ambiguous commodity %q", s)
	}
}

// MarshalText encodes the commodity by name.
func (c Commodity) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid commodity %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a commodity name.
func (c *Commodity) UnmarshalText(b []byte) error {
	v, err := ParseCommodity(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Cargo is a fixed-size array holding quantities of each commodity.
type Cargo [NumCommodities]int

// Total returns the sum of all quantities.
func (c Cargo) Total() int {
	total := 0
	for _, qty := range c {
		total += qty
	}
	return total
}

// IsEmpty returns true if all quantities are zero.
func (c Cargo) IsEmpty() bool {
	for _, qty := range c {
		if qty != 0 {
			return false
		}
	}
	return true
}

// MarshalJSON encodes cargo as an object keyed by commodity name.
func (c Cargo) MarshalJSON() ([]byte, error) {
	m := make(map[Commodity]int, NumCommodities)
	for _, k := range AllCommodities {
		m[k] = c[k]
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes a name-keyed cargo object. Missing commodities are zero.
func (c *Cargo) UnmarshalJSON(b []byte) error {
	var m map[Commodity]int
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("decode cargo: %w", err)
	}
	*c = Cargo{}
	for k, qty := range m {
		if qty < 0 {
			return fmt.Errorf("decode cargo: negative %s %d", k, qty)
		}
		c[k] = qty
	}
	return nil
}
