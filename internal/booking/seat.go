package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatSeatID builds the "<floor>-<pcId>" seat identifier.
func FormatSeatID(floor, pcID int64) string {
	return strconv.FormatInt(floor, 10) + "-" + strconv.FormatInt(pcID, 10)
}

// ParseSeatID accepts only the canonical form produced by FormatSeatID,
// so "1-012" or " 1-12" never alias "1-12".
func ParseSeatID(id string) (floor, pcID int64, err error) {
	f, p, ok := strings.Cut(id, "-")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSeatID, id)
	}
	floor, err = strconv.ParseInt(f, 10, 64)
	if err != nil || floor < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSeatID, id)
	}
	pcID, err = strconv.ParseInt(p, 10, 64)
	if err != nil || pcID <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSeatID, id)
	}
	if FormatSeatID(floor, pcID) != id {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSeatID, id)
	}
	return floor, pcID, nil
}
