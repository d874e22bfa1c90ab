package airport

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteAirport. write the airport registry as indented json.
func (a *Airport) WriteAirport(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create airport file %s: %w", filename, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("encode airport %s: %w", a.ICAO, err)
	}
	return nil
}

func ReadAirport(filename string) (*Airport, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open airport file %s: %w", filename, err)
	}
	defer f.Close()

	a := NewAirport("", "")
	if err := json.NewDecoder(f).Decode(a); err != nil {
		return nil, fmt.Errorf("decode airport file %s: %w", filename, err)
	}
	a.Sort()
	return a, nil
}
