package options

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIndex reads a zero based index argument.
func ParseIndex(what, arg string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("%s index %q is not a number", what, arg)
	}
	return i, nil
}

// ParseTaskRef reads "S.T" or the two arguments "S T" into a subject and
// task index.
func ParseTaskRef(args []string) (int, int, error) {
	parts := args
	if len(args) == 1 {
		parts = strings.SplitN(args[0], ".", 2)
	}
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want a task reference like 0.1, got %q", strings.Join(args, " "))
	}
	s, err := ParseIndex("subject", parts[0])
	if err != nil {
		return 0, 0, err
	}
	t, err := ParseIndex("task", parts[1])
	if err != nil {
		return 0, 0, err
	}
	return s, t, nil
}
