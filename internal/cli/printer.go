package cli

import (
	"fmt"

	"github.com/fatih/color"
)

// messagePrefix tags every status line the tool prints.
const messagePrefix = "[cmakegen]"

var (
	infoColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
)

func printInfo(format string, a ...any) {
	infoColor.Printf(messagePrefix+" "+format+"\n", a...)
}

func printSuccess(format string, a ...any) {
	successColor.Printf(messagePrefix+" "+format+"\n", a...)
}

func printWarning(format string, a ...any) {
	warnColor.Printf(messagePrefix+" "+format+"\n", a...)
}

func printError(format string, a ...any) {
	errorColor.Printf(messagePrefix+" "+format+"\n", a...)
}

func printPlain(format string, a ...any) {
	fmt.Printf(format+"\n", a...)
}
