package validate

import "fmt"

const (
	upcLength = 12
	eanLength = 13
)

// CalcChecksum computes the GS1 check digit over the first length digits of
// value and returns it as an ASCII digit. value must hold exactly length
// digits, or length+1 when the check digit is still attached; any other size
// is an ErrInvalidLength error.
func CalcChecksum(value string, length int) (byte, error) {
	if len(value) == length+1 {
		value = value[:length]
	}
	if len(value) != length {
		return 0, fmt.Errorf("%w: got %d characters, want %d or %d", ErrInvalidLength, len(value), length, length+1)
	}

	odd, even := 0, 0
	for i := len(value) - 1; i >= 0; i-- {
		c := value[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidDigit, c, i+1)
		}
		if (len(value)-i)%2 == 0 {
			even += int(c - '0')
		} else {
			odd += int(c - '0')
		}
	}

	check := 10 - (even+3*odd)%10
	if check == 10 {
		check = 0
	}
	return byte('0' + check), nil
}

// CalcUPCChecksum returns the check digit a 12 character UPC-A code should
// carry in its last position.
func CalcUPCChecksum(upc string) (byte, error) {
	if len(upc) != upcLength {
		return 0, fmt.Errorf("%w: UPC must be %d characters, got %d", ErrInvalidLength, upcLength, len(upc))
	}
	return CalcChecksum(upc, upcLength-1)
}

// CalcEANChecksum returns the check digit a 13 character EAN-13 code should
// carry in its last position.
func CalcEANChecksum(ean string) (byte, error) {
	if len(ean) != eanLength {
		return 0, fmt.Errorf("%w: EAN must be %d characters, got %d", ErrInvalidLength, eanLength, len(ean))
	}
	return CalcChecksum(ean, eanLength-1)
}

// IsValidUPC reports whether the last digit of a UPC-A code matches its
// checksum. Codes that are not 12 digits return an error.
func IsValidUPC(upc string) (bool, error) {
	check, err := CalcUPCChecksum(upc)
	if err != nil {
		return false, err
	}
	return upc[upcLength-1] == check, nil
}

// IsValidEAN reports whether the last digit of an EAN-13 code matches its
// checksum. Codes that are not 13 digits return an error.
func IsValidEAN(ean string) (bool, error) {
	check, err := CalcEANChecksum(ean)
	if err != nil {
		return false, err
	}
	return ean[eanLength-1] == check, nil
}
