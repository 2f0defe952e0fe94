package utils

import (
	"fmt"
	"strings"
)

// AddToLogMessage appends one entry to a request's log builder
func AddToLogMessage(logMessagesBuilder *strings.Builder, strToAdd string) {
	logMessagesBuilder.Grow(len(strToAdd) + 2)
	logMessagesBuilder.WriteString(strToAdd)
	logMessagesBuilder.WriteString(";\n")
}

// PrintLogMessage writes the accumulated request log in one piece so entries
// of concurrent requests do not interleave
func PrintLogMessage(logMessagesBuilder *strings.Builder) {
	if logMessagesBuilder.Len() == 0 {
		return
	}
	fmt.Print(logMessagesBuilder.String())
}
