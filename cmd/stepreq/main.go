// Copyright 2021 The stepreq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command stepreq builds request descriptors from a YAML catalog, or
// from a set of built-in examples, and prints them.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gogama/stepreq/internal/catalog"
	"github.com/gogama/stepreq/internal/render"
	"github.com/gogama/stepreq/timeout"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	formatText  = "text"
	formatTable = "table"
)

type options struct {
	logLevel       string
	format         string
	defaultTimeout time.Duration
}

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the command with args, writing rendered requests to out
// and log lines to logOut.
func run(out, logOut io.Writer, args []string) error {
	cmd := newRootCmd(out, logOut)
	// cobra reads os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newRootCmd(out, logOut io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "stepreq [catalog.yaml]",
		Short:         "Build and print HTTP request descriptors",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(logOut, opts.logLevel)
			if err != nil {
				return err
			}
			return build(out, log, opts, args)
		},
	}
	cmd.SetOut(out)
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "Output format: text or table")
	cmd.Flags().DurationVar(&opts.defaultTimeout, "default-timeout", 30*time.Second, "Timeout for requests that do not set one")
	return cmd
}

func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	return log, nil
}

func build(out io.Writer, log *logrus.Logger, opts options, args []string) error {
	var (
		entries  []catalog.Entry
		buildErr error
	)
	if len(args) == 0 {
		log.Debug("no catalog given, building examples")
		entries, buildErr = examples()
	} else {
		c, err := catalog.Load(args[0])
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"path": args[0], "requests": len(c.Requests)}).Debug("catalog loaded")
		entries, buildErr = c.Build()
	}

	policy := timeout.Fallback(opts.defaultTimeout)
	rows := make([]render.Row, len(entries))
	for i, e := range entries {
		rows[i] = render.Row{
			Name:       e.Name,
			Descriptor: e.Descriptor,
			Effective:  policy.Timeout(e.Descriptor),
		}
		log.WithFields(logrus.Fields{
			"name":   e.Name,
			"method": e.Descriptor.Method(),
			"url":    e.Descriptor.URL(),
		}).Info("request built")
	}

	var err error
	switch opts.format {
	case formatText:
		err = render.Text(out, rows...)
	case formatTable:
		err = render.Table(out, rows...)
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
	if err != nil {
		return err
	}

	if buildErr != nil {
		log.WithError(buildErr).Error("some requests could not be built")
		return fmt.Errorf("building requests: %w", buildErr)
	}
	return nil
}
