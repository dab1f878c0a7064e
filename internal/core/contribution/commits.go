package contribution

import "strings"

// CommitList is an ordered sequence of commit hash references.
// Order is meaningful: the first key commit is the primary evidence.
type CommitList []string

// ParseCommitList splits comma-separated input, trimming entries, dropping
// empty ones and keeping only the first occurrence of a repeated hash.
func ParseCommitList(input string) CommitList {
	seen := make(map[string]bool)
	list := CommitList{}
	for _, part := range strings.Split(input, ",") {
		ref := strings.TrimSpace(part)
		key := strings.ToLower(ref)
		if ref == "" || seen[key] {
			continue
		}
		seen[key] = true
		list = append(list, ref)
	}
	return list
}

// String joins the list back into its comma-separated form.
func (l CommitList) String() string {
	return strings.Join(l, ",")
}

// Len returns the number of references.
func (l CommitList) Len() int {
	return len(l)
}
