package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	PromptColor  = color.New(color.FgMagenta).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like the expanded line
)

// Statement Inspection Colors
var (
	FieldNameColor  = color.New(color.FgBlue, color.Bold).SprintFunc()
	FieldValueColor = color.New(color.FgWhite).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)
