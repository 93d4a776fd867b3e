package validate

import "regexp"

// Both citizen ID cards and driver licenses carry a 12-digit number.
var documentNumberRe = regexp.MustCompile(`^[0-9]{12}$`)

func IsDocumentNumber(s string) bool {
	return documentNumberRe.MatchString(s)
}
