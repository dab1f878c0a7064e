package repository

import "fmt"

// GenerateRepositoryID generates a repository ID from the current max number.
// The format is REPO-XXX where XXX is a zero-padded 3-digit number.
func GenerateRepositoryID(currentMax int) string {
	return fmt.Sprintf("REPO-%03d", currentMax+1)
}

// ParseRepositoryNumber extracts the numeric portion from a repository ID.
// Returns -1 if the ID format is invalid.
func ParseRepositoryNumber(id string) int {
	var num int
	_, err := fmt.Sscanf(id, "REPO-%d", &num)
	if err != nil {
		return -1
	}
	return num
}
