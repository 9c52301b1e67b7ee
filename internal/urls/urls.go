// Package urls maps named routes and positional arguments to paths.
// The route shapes here mirror the registrations in internal/router;
// model code reverses names instead of hand-building paths.
package urls

import "fmt"

// Route names understood by Reverse.
const (
	EntryList       = "entry_list"
	EntryDetail     = "entry_detail"
	TaggedEntryList = "tagged_entry_list"
	TagList         = "tag_list"
)

// Reverse builds the path for a named route. EntryDetail accepts either
// a single slug (unpublished entries) or year, month, day, slug.
func Reverse(name string, args ...any) (string, error) {
	switch name {
	case EntryList:
		if len(args) != 0 {
			break
		}
		return "/entries", nil
	case EntryDetail:
		switch len(args) {
		case 1:
			return fmt.Sprintf("/entries/%v", args[0]), nil
		case 4:
			year, month, day, ok := intArgs(args[0], args[1], args[2])
			if !ok {
				break
			}
			return fmt.Sprintf("/entries/%04d/%02d/%02d/%v", year, month, day, args[3]), nil
		}
	case TaggedEntryList:
		if len(args) != 1 {
			break
		}
		return fmt.Sprintf("/tags/%v", args[0]), nil
	case TagList:
		if len(args) != 0 {
			break
		}
		return "/tags", nil
	}
	return "", fmt.Errorf("urls: no route %q taking %d arguments", name, len(args))
}

// MustReverse is Reverse for call sites whose route and arity are fixed
// at compile time; an unknown combination is a programming error.
func MustReverse(name string, args ...any) string {
	path, err := Reverse(name, args...)
	if err != nil {
		panic(err)
	}
	return path
}

func intArgs(values ...any) (int, int, int, bool) {
	out := make([]int, 0, 3)
	for _, v := range values {
		switch n := v.(type) {
		case int:
			out = append(out, n)
		default:
			return 0, 0, 0, false
		}
	}
	return out[0], out[1], out[2], true
}
