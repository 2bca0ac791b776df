// Package commands defines the extract-phones CLI.
//
// The CLI runs the same extractor as the HTTP service over local files or
// stdin, so uploads can be checked without a running server:
//
//	extract-phones contacts.txt notes.md
//	cat dump.txt | extract-phones --json
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"phone-extractor/internal/domain"
	"phone-extractor/internal/service"
	apperrors "phone-extractor/pkg/errors"
	"phone-extractor/pkg/logger"
)

const stdinName = "-"

// ErrSomeFailed is returned when at least one input could not be processed
var ErrSomeFailed = errors.New("some inputs failed")

type options struct {
	contentType string
	asJSON      bool
	verbose     bool
}

type fileResult struct {
	File    string   `json:"file"`
	Phones  []string `json:"phones,omitempty"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// NewRootCmd builds the root command reading stdin and writing to the given streams
func NewRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "extract-phones [file...]",
		Short:         "Find Russian phone numbers in text files",
		Long:          "Prints the distinct phone numbers found in each file as +7(AAA)BBB-CC-DD, in order of first occurrence. Use - or no arguments for stdin.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{stdinName}
			}

			var log domain.Logger
			if opts.verbose {
				l := logger.NewLoggerWithOutput("debug", "stderr")
				defer func() { _ = l.Sync() }()
				log = l
			}
			extractor := service.NewPhoneExtractor(log, nil)

			failed := false
			for _, name := range args {
				res := run(extractor, stdin, name, opts.contentType)
				if res.Error != "" {
					failed = true
				}
				if err := printResult(stdout, stderr, res, opts.asJSON, len(args) > 1); err != nil {
					return err
				}
			}
			if failed {
				return ErrSomeFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.contentType, "content-type", "t", "text/plain", "declared content type of the inputs")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print one JSON object per input")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log extraction events to stderr")

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// Execute runs the CLI against the process streams
func Execute() error {
	err := NewRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute()
	if err != nil && !errors.Is(err, ErrSomeFailed) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func run(extractor domain.PhoneExtractor, stdin io.Reader, name, contentType string) fileResult {
	res := fileResult{File: name}

	content, err := readInput(stdin, name)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	phones, err := extractor.Extract(domain.RawUpload{
		Content:     content,
		ContentType: contentType,
		Filename:    name,
	})
	if err != nil {
		res.Error = apperrors.FromExtraction(err).Message
		return res
	}
	if len(phones) == 0 {
		res.Message = domain.MsgNoPhonesFound
		return res
	}
	res.Phones = phones.Strings()
	return res
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == stdinName {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

func printResult(stdout, stderr io.Writer, res fileResult, asJSON, withName bool) error {
	if asJSON {
		return json.NewEncoder(stdout).Encode(res)
	}

	switch {
	case res.Error != "":
		fmt.Fprintf(stderr, "%s: %s\n", res.File, res.Error)
	case res.Message != "":
		fmt.Fprintf(stderr, "%s: %s\n", res.File, res.Message)
	default:
		for _, p := range res.Phones {
			if withName {
				if _, err := fmt.Fprintf(stdout, "%s\t%s\n", res.File, p); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintln(stdout, p); err != nil {
				return err
			}
		}
	}
	return nil
}
