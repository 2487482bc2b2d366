package main

import (
	"errors"

	"github.com/spf13/cobra"
)

// errNotImplemented is returned by build, which is reserved for a future
// ahead-of-time compilation pipeline and does nothing today.
var errNotImplemented = errors.New("build: not implemented")

func buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "build <path>",
		Short:  "Reserved for future use",
		Args:   cobra.ExactArgs(1),
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errNotImplemented
		},
	}
}
