package clinicbook

import (
	"fmt"
	"strconv"
)

// Percent is a whole-number commission percentage between 0 and 100.
type Percent int

// FullCommission is the sentinel percentage, see ComputeSplit.
const FullCommission Percent = 100

// ParsePercent parses a whole-number percentage and rejects anything outside 0..100.
func ParsePercent(s string) (Percent, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid percentage %q: %w", s, err)
	}
	p := Percent(n)
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p, nil
}

// Validate checks the percentage is within 0..100.
func (p Percent) Validate() error {
	if p < 0 || p > 100 {
		return fmt.Errorf("percentage %d out of range 0..100", p)
	}
	return nil
}

func (p Percent) String() string { return strconv.Itoa(int(p)) + "%" }
