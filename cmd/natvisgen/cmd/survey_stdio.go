package cmd

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// SurveyIO holds the streams interactive prompts read from and write to.
type SurveyIO struct {
	In  terminal.FileReader
	Out terminal.FileWriter
	Err terminal.FileWriter
}

// DefaultSurveyIO prompts on the process stdio.
var DefaultSurveyIO = SurveyIO{
	In:  os.Stdin,
	Out: os.Stdout,
	Err: os.Stderr,
}

// WithStdio returns the survey option for these streams.
func (s SurveyIO) WithStdio() survey.AskOpt {
	return survey.WithStdio(s.In, s.Out, s.Err)
}
