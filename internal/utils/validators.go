package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// moroccanPhoneRegex accepts mobile numbers with the +212 country code or a
// leading 0, then a 5/6/7 prefix and eight digits.
var moroccanPhoneRegex = regexp.MustCompile(`^(\+212|0)[5-7][0-9]{8}$`)

// ValidatePhoneNumber checks a Moroccan mobile number and returns it with
// whitespace stripped, or an error with the user-facing French message.
func ValidatePhoneNumber(phone string) (string, error) {
	stripped := strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	if stripped == "" {
		return "", fmt.Errorf("le numéro de téléphone est requis")
	}
	if !moroccanPhoneRegex.MatchString(stripped) {
		return "", fmt.Errorf("veuillez entrer un numéro de téléphone marocain valide (ex: +212600000000 ou 0600000000)")
	}
	return stripped, nil
}

// ValidateRating checks a 1-5 star rating.
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("la note doit être comprise entre 1 et 5")
	}
	return nil
}
