package cache

import "fmt"

func solutionKey(prefix, gridHash string) string {
	return fmt.Sprintf(solutionKeyFmt, prefix, gridHash)
}
