package main

import "strconv"

// float32Flag lets the flag package fill in a float32.
type float32Flag struct{ p *float32 }

func (f float32Flag) String() string {
	if f.p == nil {
		return ""
	}
	return strconv.FormatFloat(float64(*f.p), 'g', -1, 32)
}

func (f float32Flag) Set(s string) error {
	x, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return err
	}
	*f.p = float32(x)
	return nil
}
