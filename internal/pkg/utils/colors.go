package utils

import (
	"crypto/rand"
	"fmt"
	"strconv"
)

// RandomColor returns a random #RRGGBB background color.
func RandomColor() string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "#209cee"
	}
	return fmt.Sprintf("#%02x%02x%02x", buf[0], buf[1], buf[2])
}

// ContrastTextColor returns white or black, whichever reads better on the
// given background color.
func ContrastTextColor(background string) string {
	if len(background) != 7 || background[0] != '#' {
		return "#ffffff"
	}
	r, err1 := strconv.ParseInt(background[1:3], 16, 32)
	g, err2 := strconv.ParseInt(background[3:5], 16, 32)
	b, err3 := strconv.ParseInt(background[5:7], 16, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return "#ffffff"
	}
	// ITU-R BT.601 luma
	if 299*r+587*g+114*b > 128000 {
		return "#000000"
	}
	return "#ffffff"
}
