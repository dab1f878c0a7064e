package contribution

import "fmt"

// GenerateContributionID generates a contribution ID from the current max number.
// The format is CONTRIB-XXX where XXX is a zero-padded 3-digit number.
func GenerateContributionID(currentMax int) string {
	return fmt.Sprintf("CONTRIB-%03d", currentMax+1)
}
