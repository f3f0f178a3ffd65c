package validate

import (
	"fmt"
	"strings"
)

var forbiddenIDChars = []struct {
	char byte
	name string
}{
	{' ', "space"},
	{'"', "double-quote"},
	{'\'', "single-quote"},
	{'&', "ampersand"},
	{'?', "question mark"},
	{'<', "less-than sign"},
	{'>', "greater-than sign"},
	{'\\', "back-slash"},
	{'/', "forward-slash"},
}

// CheckDatabaseID reports the first character class in id that is unsafe in a
// primary key: space, quotes, &, ?, <, >, back-slash or slash. Classes are
// checked in that order; the returned error names the class and its first
// 1-based byte position and wraps ErrForbiddenCharacter.
func CheckDatabaseID(id string) error {
	for _, f := range forbiddenIDChars {
		if i := strings.IndexByte(id, f.char); i >= 0 {
			return fmt.Errorf("%w: [%s found at position %d]", ErrForbiddenCharacter, f.name, i+1)
		}
	}
	return nil
}

func IsValidDatabaseID(id string) bool {
	return CheckDatabaseID(id) == nil
}
