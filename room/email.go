package room

import (
	"fmt"
	"strconv"
	"strings"
)

// User ids are emails encoded as colon separated hex pairs so they can
// travel as an opaque UUID-looking token.
const (
	minEmailChar = '-'
	maxEmailChar = 'z'
)

func isAuthorizedEmailChar(c rune) bool {
	return c == '0' || (c >= minEmailChar && c < maxEmailChar)
}

// EncodeUserEmail packs an email into uuidLen groups of two hex encoded
// chars joined by ':'. When the email is too short, groups are repeated
// from the start until the length is reached. Unauthorized chars are
// skipped.
func EncodeUserEmail(email string, uuidLen int) string {
	if strings.TrimSpace(email) == "" {
		return ""
	}

	chars := []rune(email)
	hexValues := make([]string, 0, uuidLen)

	for i := 0; i < len(chars); i += 2 {
		byteOne := chars[i]
		byteTwo := '0'
		if i+1 < len(chars) {
			byteTwo = chars[i+1]
		}

		if !isAuthorizedEmailChar(byteOne) || !isAuthorizedEmailChar(byteTwo) {
			continue
		}

		hexValues = append(hexValues, fmt.Sprintf("%02X%02X", byteOne, byteTwo))
	}

	// An even length leaves the final index unpaired, encoded as a
	// filler ('0', '0') group.
	if len(chars)%2 == 0 {
		hexValues = append(hexValues, "3030")
	}

	if len(hexValues) == 0 {
		return ""
	}

	for i := 0; len(hexValues) < uuidLen; i++ {
		hexValues = append(hexValues, hexValues[i%len(hexValues)])
	}

	return strings.Join(hexValues, ":")
}

// DecodeUserEmail is the inverse of EncodeUserEmail, padding included.
func DecodeUserEmail(userID UserID) string {
	var res strings.Builder

	for _, s := range strings.Split(userID, ":") {
		if len(s) < 4 {
			continue
		}

		b1, err1 := strconv.ParseUint(s[0:2], 16, 8)
		b2, err2 := strconv.ParseUint(s[2:4], 16, 8)
		if err1 != nil || err2 != nil {
			continue
		}

		res.WriteByte(byte(b1))
		res.WriteByte(byte(b2))
	}

	return res.String()
}

func EmailContainsInvalidChars(email string) bool {
	for _, c := range email {
		if !isAuthorizedEmailChar(c) {
			return true
		}
	}
	return false
}

// HexUUIDToValidEmail recovers the original email of emailLen chars
// from an encoded user id, or false when the id is too short to hold
// it.
func HexUUIDToValidEmail(hex string, emailLen int) (string, bool) {
	if len(strings.ReplaceAll(hex, ":", "")) < emailLen {
		return "", false
	}

	email := DecodeUserEmail(hex)
	if len(email) <= emailLen {
		return email, true
	}

	return email[:emailLen], true
}
